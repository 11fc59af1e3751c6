package cursive

import "context"

import "github.com/bilalghalib/Cursive-sub000/ink"

// Synthesizes handwriting for the given text, returning the
// strokes in reading order (left to right, top to bottom), with
// glyph positions relative to a (0, 0) starting pen.
//
// Every returned stroke is tagged [ink.Synthetic]. Characters with
// trained samples use them; the rest degrade to procedural fallback
// glyphs, so synthesis never fails outright for un-trained text.
//
// For progressive rendering or cancellation, use
// [Synthesizer.NewFeed]() instead; this method simply drains one.
func (self *Synthesizer) Synthesize(text string) []ink.Stroke {
	feed := self.NewFeed(text)
	var strokes []ink.Stroke
	for {
		stroke, ok, err := feed.Next(context.Background())
		if err != nil || !ok { return strokes }
		strokes = append(strokes, stroke)
	}
}
