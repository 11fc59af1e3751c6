package mask

import "image"

import "github.com/bilalghalib/Cursive-sub000/ink"

// Rasterizer is an interface for 2D stroke-outline rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, allowing anyone
// to target it and use their own rasterizer for ink rendering.
//
// Mask rasterizers can't be used concurrently and must tolerate
// degenerate polygons (empty, collinear, self-touching).
type Rasterizer interface {
	// Rasterizes the given outline polygon to an alpha mask. The mask's
	// bounds are set to the polygon's integer bounding box in canvas
	// coordinates, so compositing the mask at its own Rect.Min places
	// the ink exactly where the stroke was drawn.
	//
	// Empty polygons return a nil mask and no error; callers are
	// expected to skip rendering in that case.
	Rasterize(outline ink.Polygon) (*image.Alpha, error)

	// The signature returns a uint64 that can be used with stroke mask
	// caches in order to tell rasterizers apart. When using multiple
	// rasterizers with a single cache, you normally want to make sure
	// that their signatures are different.
	Signature() uint64

	// Sets the function to be called when the rasterizer configuration
	// or the signature change. This is a reserved function that only
	// canvas surfaces should call internally in order to connect their
	// cache handlers to the rasterizer changes.
	SetOnChangeFunc(func(Rasterizer))
}

// A low level helper to rasterize outlines. Returns nil (and no error)
// for polygons that enclose no area, mirroring how empty strokes are
// skipped rather than treated as failures everywhere else.
func Rasterize(outline ink.Polygon, rasterizer Rasterizer) (*image.Alpha, error) {
	if outline.IsEmpty() { return nil, nil }
	return rasterizer.Rasterize(outline)
}
