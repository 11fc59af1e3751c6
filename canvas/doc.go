// canvas implements the drawing surface: the ordered list of committed
// strokes, the pan/zoom view transform, undo/redo history, the
// selection region used for transcription hand-offs, and the raster
// render paths (full redraws and selection bitmaps).
//
// The surface is deliberately single-threaded: every operation runs
// synchronously on the caller's goroutine, and rendering never blocks
// on I/O. Mutations don't redraw by themselves either; they raise a
// redraw flag that the host application checks once per frame, so any
// number of mutations within one input-handling tick coalesce into a
// single redraw. See [Surface.NeedsRedraw]().
package canvas
