package mask

import "math"
import "image"
import "image/draw"

import "golang.org/x/image/vector"

import "github.com/bilalghalib/Cursive-sub000/ink"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	onChange func(Rasterizer)

	// Notice that the x/image/vector rasterizer expects coords in the
	// positive quadrant, so Rasterize() normalizes every vertex against
	// the polygon's floored minimum and restores the offset on the
	// returned mask rect afterwards.
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) SetOnChangeFunc(onChange func(Rasterizer)) {
	self.onChange = onChange
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero, but may be customized as
// you want through type embedding and method overriding.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline ink.Polygon) (*image.Alpha, error) {
	if outline.IsEmpty() { return nil, nil }

	// compute integer bounds and the normalization offset
	bounds := outline.Bounds()
	minX := int(math.Floor(bounds.MinX))
	minY := int(math.Floor(bounds.MinY))
	width  := int(math.Ceil(bounds.MaxX)) - minX
	height := int(math.Ceil(bounds.MaxY)) - minY
	if width  <= 0 { width  = 1 }
	if height <= 0 { height = 1 }

	// prepare rasterizer
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate stroke mask
	mask := image.NewAlpha(self.rasterizer.Bounds())

	// trace the polygon loop
	offX, offY := float32(minX), float32(minY)
	self.rasterizer.MoveTo(float32(outline[0].X) - offX, float32(outline[0].Y) - offY)
	for _, vertex := range outline[1:] {
		self.rasterizer.LineTo(float32(vertex.X) - offX, float32(vertex.Y) - offY)
	}
	self.rasterizer.ClosePath()

	// since the source texture is a uniform (an image that returns the same
	// color for any coordinate), the value of the point at which we want to
	// start sampling the texture (the fourth parameter) is unimportant.
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(image.Point{ X: minX, Y: minY })
	return mask, nil
}
