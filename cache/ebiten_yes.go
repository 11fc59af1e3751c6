//go:build !gink

package cache

import "github.com/hajimehoshi/ebiten/v2"

// Same as [cursive.StrokeMask], redefined locally for improved clarity
// and consistency with the cursive parent package when defining caches
// and the [MaskCacheHandler] interface.
type StrokeMask = *ebiten.Image

// Based on Ebitengine internals.
const constMaskSizeFactor = 192

// Returns an approximation of a [StrokeMask] size in bytes.
//
// With Ebitengine, the exact amount of mipmaps and helper fields is
// not known, so the values may not be completely accurate, and should
// be treated as a lower bound. With gink, the returned values are
// exact.
func StrokeMaskByteSize(mask StrokeMask) uint32 {
	if mask == nil { return constMaskSizeFactor }
	bounds := mask.Bounds()
	return maskDimsByteSize(bounds.Dx(), bounds.Dy())
}

func maskDimsByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constMaskSizeFactor
}
