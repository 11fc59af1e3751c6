//go:build gink

package cache

import "image"

// Alias for cursive.StrokeMask.
type StrokeMask = *image.Alpha

const constMaskSizeFactor = 56

func StrokeMaskByteSize(mask StrokeMask) uint32 {
	if mask == nil { return constMaskSizeFactor }
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	return maskDimsByteSize(w, h)
}

func maskDimsByteSize(width, height int) uint32 {
	return uint32(width*height) + constMaskSizeFactor
}
