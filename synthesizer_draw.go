package cursive

import "context"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/mask"
import "github.com/bilalghalib/Cursive-sub000/cache"

// Synthesizes handwriting for the given text and draws it onto the
// target, starting at pen position (x, y). This is the high level
// one-stop method; for progressive rendering, create a feed with
// [Synthesizer.NewFeed]() and draw each stroke as it comes out.
//
// Passing a nil target will panic. There's no reasonable way to
// draw on nothing, so that's always a caller bug.
func (self *Synthesizer) Draw(target TargetImage, text string, x, y float64) error {
	if target == nil { panic("can't draw on a nil TargetImage") }
	feed := self.NewFeed(text).At(x, y)
	for {
		stroke, ok, err := feed.Next(context.Background())
		if err != nil { return err }
		if !ok { return nil }
		err = self.DrawStroke(target, stroke)
		if err != nil { return err }
	}
}

// Draws a single stroke onto the target through the outline,
// rasterize and compose pipeline, consulting the cache handler when
// one is set. Human and synthetic strokes take this exact same
// path, which is what makes them indistinguishable on screen.
func (self *Synthesizer) DrawStroke(target TargetImage, stroke ink.Stroke) error {
	if target == nil { panic("can't draw on a nil TargetImage") }
	self.initProps()
	if stroke.IsEmpty() { return nil }

	var strokeMask cache.StrokeMask
	if self.cacheHandler != nil {
		if cached, found := self.cacheHandler.GetMask(stroke.Hash()); found {
			strokeMask = cached
		}
	}
	if strokeMask == nil {
		polygon := self.outliner.Outline(stroke.Points, stroke.Width)
		alpha, err := mask.Rasterize(polygon, self.getRasterizer())
		if err != nil { return err }
		if alpha == nil { return nil } // degenerate outline, nothing to draw
		strokeMask = convertAlphaMask(alpha)
		if self.cacheHandler != nil {
			self.cacheHandler.PassMask(stroke.Hash(), strokeMask)
		}
	}
	emitMask(target, strokeMask, stroke.Color)
	return nil
}
