//go:build gink

package cursive

import "image"
import "image/draw"
import "image/color"

import "github.com/bilalghalib/Cursive-sub000/cache"

// Without Ebitengine (gink version), targets are standard library
// draw images and stroke masks stay as plain alpha images.
type TargetImage = draw.Image

// This doesn't do anything in gink, only ebiten needs it.
func convertAlphaMask(alpha *image.Alpha) cache.StrokeMask { return alpha }

// Composes a stroke mask onto the target at the mask's own canvas
// position, tinted with the stroke's ink color.
func emitMask(target TargetImage, strokeMask cache.StrokeMask, inkColor color.RGBA) {
	if strokeMask == nil { return }
	bounds := strokeMask.Bounds()
	draw.DrawMask(target, bounds, image.NewUniform(inkColor), image.Point{}, strokeMask, bounds.Min, draw.Over)
}
