// The mask subpackage defines the [Rasterizer] interface used within the
// engine and provides a ready-to-use implementation.
//
// In this context, "[Rasterizer]" refers to a "stroke mask rasterizer":
// whenever we want to render ink on a screen we first have to rasterize
// the individual stroke outlines, produced by the ink package as closed
// polygons, into raster images (grids of alpha values).
//
// This subpackage allows anyone to swap rasterizers or implement their
// own by targeting the [Rasterizer] interface. This opens the door to
// custom ink effects that modify the outlines (e.g.: ink bleed), the
// rasterization itself (e.g.: dry-brush texture) or the resulting masks
// (e.g.: blurring).
//
// Crucially, captured and synthesized strokes go through the exact same
// rasterization path: that's what makes synthetic ink render
// indistinguishably from human ink on the same canvas.
package mask
