// cursive is a handwriting engine designed to be used mainly with
// the Ebitengine game engine: it turns raw pointer input into
// pressure-sensitive ink strokes, learns a user's personal
// handwriting style from training samples, and synthesizes new
// strokes from arbitrary text in that learned style.
//
// While the API surface can look slightly intimidating at the
// beginning, common usage depends only on a couple types and a few
// functions...
//
// First, you record some training samples (or skip this entirely and
// accept the procedural fallback glyphs):
//   samples := train.NewSampleSet()
//   samples.Add("a", strokeDrawnByUser)
//
// Then, you create a [Synthesizer] and hand it the learned style:
//   synth := cursive.NewSynthesizer()
//   synth.SetSamples(samples)
//   synth.SetProfile(style.DeriveProfile(samples))
//
// Finally, you set a target and start writing:
//   synth.Draw(screen, "Hello world!", x, y)
//
// There are a lot of parameters you can configure, but the critical
// ones are samples, profile, glyph height, color and cache. Take a
// good look at those and have fun exploring the rest!
//
// For live ink capture and display, see the capture and canvas
// subpackages; they share the same stroke model and rendering
// pipeline as synthesis, so human and synthetic ink are
// indistinguishable on screen.
package cursive
