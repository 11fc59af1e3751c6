package canvas

import "math"
import "image"
import "image/draw"
import "image/color"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/mask"

type backgroundColor struct {
	value color.RGBA
	set bool
}

// Sets the background color used by the raster render paths. The
// default is opaque white, the paper color. Use a zero-alpha color
// for transparent exports.
func (self *Surface) SetBackground(clr color.RGBA) {
	self.background = backgroundColor{ value: clr, set: true }
}

func (self *Surface) getBackground() color.RGBA {
	if !self.background.set { return color.RGBA{ 255, 255, 255, 255 } }
	return self.background.value
}

// Renders the full committed stroke list into the given image through
// the current view transform. This is the same path used for live
// display in pure-CPU hosts and for PNG/PDF export hand-offs.
//
// Every stroke goes through the outliner and the mask rasterizer;
// there is no incremental dirty-rectangle pass, redraws are always
// full (see the package overview for why that's acceptable).
func (self *Surface) Render(dst draw.Image) {
	if dst == nil { panic("can't render on nil image") }
	self.initView()
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(self.getBackground()), image.Point{}, draw.Src)
	for _, stroke := range self.strokes {
		self.renderStroke(dst, stroke, self.view)
	}
}

// Renders the committed strokes at the given scale into a new bitmap
// sized to fit all ink, for the export collaborator. Returns nil when
// the canvas has no ink. The margin is applied on every side, in
// output pixels.
func (self *Surface) RenderScaled(scale float64, margin int) *image.RGBA {
	if len(self.strokes) == 0 { return nil }
	if scale <= 0 { scale = 1 }
	if margin < 0 { margin = 0 }

	var bounds ink.Rect
	for i, stroke := range self.strokes {
		grown := stroke.Bounds().Inset(-stroke.Width) // ink extends half a width past the centerline
		if i == 0 { bounds = grown } else { bounds = bounds.Union(grown) }
	}

	width  := int(math.Ceil(bounds.Width()*scale)) + margin*2
	height := int(math.Ceil(bounds.Height()*scale)) + margin*2
	if width <= 0 || height <= 0 { return nil }
	bitmap := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(bitmap, bitmap.Bounds(), image.NewUniform(self.getBackground()), image.Point{}, draw.Src)

	transform := ViewTransform{
		PanX: float64(margin) - bounds.MinX*scale,
		PanY: float64(margin) - bounds.MinY*scale,
		Scale: scale,
	}
	for _, stroke := range self.strokes {
		self.renderStroke(bitmap, stroke, transform)
	}
	return bitmap
}

// Renders the strokes intersecting the current selection into an
// offscreen bitmap at the viewport's current scale, for hand-off to
// the transcription collaborator. Returns nil when the selection is
// missing or degenerate (zero width or height); an empty selection
// is a normal UI state, not an error.
func (self *Surface) ExtractSelectionBitmap() *image.RGBA {
	if !self.hasSelection || self.selection.Empty() { return nil }
	self.initView()
	scale := self.view.Scale

	width  := int(math.Ceil(self.selection.Width()*scale))
	height := int(math.Ceil(self.selection.Height()*scale))
	if width <= 0 || height <= 0 { return nil }
	bitmap := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(bitmap, bitmap.Bounds(), image.NewUniform(self.getBackground()), image.Point{}, draw.Src)

	transform := ViewTransform{
		PanX: -self.selection.MinX*scale,
		PanY: -self.selection.MinY*scale,
		Scale: scale,
	}
	for _, stroke := range self.strokes {
		grown := stroke.Bounds().Inset(-stroke.Width)
		if !grown.Intersects(self.selection) { continue }
		self.renderStroke(bitmap, stroke, transform)
	}
	return bitmap
}

// Outlines, rasterizes and composites a single stroke under the given
// transform. Strokes whose outline collapses are skipped silently.
func (self *Surface) renderStroke(dst draw.Image, stroke ink.Stroke, transform ViewTransform) {
	transformed := make([]ink.Point, len(stroke.Points))
	for i, point := range stroke.Points {
		x, y := transform.Apply(point.X, point.Y)
		transformed[i] = ink.Point{ X: x, Y: y, Pressure: point.Pressure, Time: point.Time }
	}
	outline := self.outliner.Outline(transformed, stroke.Width*transform.Scale)
	alpha, err := mask.Rasterize(outline, self.getRasterizer())
	if err != nil || alpha == nil { return }
	draw.DrawMask(dst, alpha.Bounds(), image.NewUniform(stroke.Color), image.Point{}, alpha, alpha.Bounds().Min, draw.Over)
}
