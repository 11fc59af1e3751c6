package cursive

import "math"
import "math/rand"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/style"
import "github.com/bilalghalib/Cursive-sub000/connect"

// This file contains the per-glyph instance generation: picking a
// template (trained sample or fallback skeleton), scaling it to the
// configured glyph height and applying the profile and mood
// perturbations that keep repeated glyphs from looking stamped.

// Returns the advance width of the given token in canvas units,
// before spacing. Deterministic for a given token and ordinal; the
// word wrapping logic depends on that.
func (self *Synthesizer) tokenAdvance(tok token, ordinal int) float64 {
	_, advance, _ := self.glyphTemplate(tok, ordinal)
	return advance*self.profile.SpacingMultiplier
}

func (self *Synthesizer) spaceAdvance() float64 {
	return self.glyphHeight*0.5*self.profile.SpacingMultiplier
}

// Returns the template points for a token in local glyph space
// (x growing rightward from 0, y = 0 at the baseline, ascenders
// negative), the advance width, and whether the points still need
// the profile slant applied. Trained samples already carry the
// user's slant in their geometry; skeletons don't.
func (self *Synthesizer) glyphTemplate(tok token, ordinal int) ([]ink.Point, float64, bool) {
	if tok.trained {
		variations := self.getSamples().Samples(tok.label)
		sample := variations[ordinal % len(variations)]
		points, advance := normalizeSample(sample, self.glyphHeight)
		return points, advance, false
	}
	skel, _ := skeletonFor(firstRune(tok.label))
	return skeletonPoints(skel, self.glyphHeight), skel.width*self.glyphHeight, true
}

// Builds one synthetic stroke for a glyph token at the given pen
// position. The clock is the synthetic timeline in milliseconds;
// the updated clock is returned so consecutive glyphs share one
// monotonic timeline.
func (self *Synthesizer) glyphInstance(tok token, ordinal int, penX, penY float64, rng *rand.Rand, clock int64) (ink.Stroke, float64, int64) {
	template, advance, needsSlant := self.glyphTemplate(tok, ordinal)
	points := make([]ink.Point, len(template))
	copy(points, template)

	slant := self.mood.Slant
	if needsSlant { slant += self.profile.SlantDegrees }
	if slant != 0 {
		shear := math.Tan(slant*math.Pi/180)
		for i := range points {
			// leaning right means the ascending parts shift right
			points[i].X += -points[i].Y*shear
		}
	}

	// per-glyph variation: a small scale wobble and offset so the
	// same template never lands twice as an identical copy
	variation := (0.5 + self.profile.Messiness)*self.mood.CharacterVariation
	scale := 1 + (rng.Float64()*2 - 1)*0.05*variation
	offsetX := (rng.Float64()*2 - 1)*self.glyphHeight*0.02*variation
	baseline := (rng.Float64()*2 - 1)*self.profile.BaselineVariance*self.mood.BaselineVariation

	// per-point wobble, scaled by messiness and the mood's jitter
	wobble := self.glyphHeight*0.012*(0.3 + self.profile.Messiness)*self.mood.Jitter

	for i := range points {
		points[i].X = penX + offsetX + points[i].X*scale + (rng.Float64()*2 - 1)*wobble
		points[i].Y = penY + baseline + points[i].Y*scale + (rng.Float64()*2 - 1)*wobble
	}

	clock = self.applyInkDynamics(points, tok.trained, rng, clock)

	stroke := ink.NewStroke(points, self.inkColor, self.baseWidth*self.mood.Thickness, ink.Synthetic)
	if anchors, ok := connect.ComputeAnchors([]ink.Stroke{ stroke }); ok {
		entry, exit := anchors.Entry, anchors.Exit
		if tok.trained {
			// stored anchors average the label's variations, so their
			// headings are steadier than this single instance's
			if stored, found := self.connections.Lookup(tok.label); found {
				entry.AngleDegrees = stored.Entry.AngleDegrees
				exit.AngleDegrees = stored.Exit.AngleDegrees
			}
		}
		stroke.Entry, stroke.Exit = &entry, &exit
	}
	return stroke, advance*self.profile.SpacingMultiplier, clock
}

// Applies the light-heavy-light pressure curve and the synthetic
// timestamps. Trained samples blend the curve with the pressures
// the user actually produced; skeletons use the curve alone.
func (self *Synthesizer) applyInkDynamics(points []ink.Point, trained bool, rng *rand.Rand, clock int64) int64 {
	dyn := self.profile.Pressure
	if dyn.Max <= dyn.Min { dyn = style.Default().Pressure }
	noise := math.Sqrt(dyn.Variance)
	baseDelta := self.profile.Speed.PointDeltaMillis()

	last := float64(len(points) - 1)
	if last <= 0 { last = 1 }
	for i := range points {
		t := float64(i)/last
		curve := dyn.Min + (dyn.Max - dyn.Min)*math.Sin(t*math.Pi)
		curve += (rng.Float64()*2 - 1)*noise
		if trained {
			curve = 0.5*points[i].Pressure + 0.5*curve
		}
		points[i].Pressure = clamp01(curve)

		if i > 0 {
			delta := baseDelta + int64(float64(baseDelta)*(rng.Float64()*2 - 1)/3)
			if delta < 1 { delta = 1 }
			clock += delta
		}
		points[i].Time = clock
	}
	return clock
}

// Converts a trained sample into local glyph space: leftmost point
// at x = 0, bottom of its bounds on the baseline, scaled so the
// sample's height matches the target height. Pressures are kept for
// blending; timestamps are discarded later.
func normalizeSample(sample ink.Stroke, height float64) ([]ink.Point, float64) {
	bounds := sample.Bounds()
	scale := 1.0
	if bounds.Height() > 0 { scale = height/bounds.Height() }
	points := make([]ink.Point, len(sample.Points))
	for i, point := range sample.Points {
		points[i] = ink.Point{
			X: (point.X - bounds.MinX)*scale,
			Y: (point.Y - bounds.MaxY)*scale,
			Pressure: point.Pressure,
		}
	}
	return points, bounds.Width()*scale
}

// Converts a skeleton into local glyph space, resampling each
// segment so the jitter and pressure curve have enough points to
// act on. Skeleton pressure starts neutral; the curve takes over.
func skeletonPoints(skel skeleton, height float64) []ink.Point {
	step := height/6
	var points []ink.Point
	for i := 0; i + 3 < len(skel.path); i += 2 {
		x1, y1 := skel.path[i]*height, (skel.path[i + 1] - 1)*height
		x2, y2 := skel.path[i + 2]*height, (skel.path[i + 3] - 1)*height
		length := math.Hypot(x2 - x1, y2 - y1)
		segments := int(math.Ceil(length/step))
		if segments < 1 { segments = 1 }
		start := 0
		if i > 0 { start = 1 } // segment joints are shared points
		for j := start; j <= segments; j++ {
			t := float64(j)/float64(segments)
			points = append(points, ink.Point{
				X: x1 + (x2 - x1)*t,
				Y: y1 + (y2 - y1)*t,
				Pressure: ink.DefaultPressure,
			})
		}
	}
	if len(points) == 0 && len(skel.path) >= 2 {
		points = append(points, ink.Point{
			X: skel.path[0]*height,
			Y: (skel.path[1] - 1)*height,
			Pressure: ink.DefaultPressure,
		})
	}
	return points
}

func firstRune(label string) rune {
	for _, r := range label { return r }
	return 0
}

func clamp01(value float64) float64 {
	if value < 0 { return 0 }
	if value > 1 { return 1 }
	return value
}
