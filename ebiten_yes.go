//go:build !gink

package cursive

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/bilalghalib/Cursive-sub000/cache"

// Alias to allow compiling the package without Ebitengine (gink
// version).
//
// With Ebitengine, TargetImage defaults to *ebiten.Image. Without
// it, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// Helper required when working with Ebitengine images.
func convertAlphaMask(alpha *image.Alpha) cache.StrokeMask {
	if alpha == nil { return nil }

	// NOTICE: ebiten doesn't have good support for alpha images,
	//         so we expand to premultiplied white RGBA first.
	rgba := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index := 0
	for _, value := range alpha.Pix {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	opts := ebiten.NewImageFromImageOptions{ PreserveBounds: true }
	return ebiten.NewImageFromImageWithOptions(rgba, &opts)
}

// Composes a stroke mask onto the target at the mask's own canvas
// position, tinted with the stroke's ink color.
func emitMask(target TargetImage, strokeMask cache.StrokeMask, inkColor color.RGBA) {
	if strokeMask == nil { return }
	bounds := strokeMask.Bounds()
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	opts.ColorScale.ScaleWithColor(inkColor)
	target.DrawImage(strokeMask, &opts)
}
