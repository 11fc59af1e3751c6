// The cache subpackage defines the [MaskCacheHandler] interface used
// within the engine and provides a default cache implementation.
//
// Outlining and rasterizing a stroke is an expensive CPU process, and
// a canvas can easily accumulate thousands of committed strokes while
// being expected to redraw within a frame. Caching the rasterized
// stroke masks is what keeps full redraws affordable at that scale.
//
// As far as practical advice goes, "how to determine the size of my
// cache" would be the main topic of discussion. Handwritten strokes
// are bigger than typical font glyphs (a word-sized stroke mask can
// easily reach 100x60 pixels), so anything below a few hundred KiB
// will fall short quickly. A few MiBs is a reasonable ballpark for a
// notebook page worth of ink; use [DefaultCache.PeakSize]() on your
// own workload to refine the estimate.
package cache
