package cache

import "github.com/bilalghalib/Cursive-sub000/mask"

// A [MaskCacheHandler] acts as an intermediator between a stroke mask
// cache and another object, typically a canvas surface or a synthesizer,
// to give the later a clear target interface to conform to while
// abstracting the details of an underlying cache, which might be
// finickier to deal with directly in a performant way.
//
// Mask cache handlers can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
type MaskCacheHandler interface {

	// --- configuration notification methods ---
	// Update methods (called only if required so overhead can be low).

	// Notifies that the rasterizer has changed. Typically, the
	// rasterizer's Signature() will be used to tell them apart.
	NotifyRasterizerChange(mask.Rasterizer) // called on config changes too

	// Notifies that the view scale has changed. Stroke masks are
	// rasterized at a concrete scale, so masks cached at other
	// scales can't be reused.
	NotifyScaleChange(float64)

	// --- cache access methods ---

	// Gets the mask for the given stroke identity and current
	// configuration. The stroke identity is typically obtained
	// through ink.Stroke.Hash(). The bool indicates whether the
	// mask has been found (as it may be nil).
	GetMask(uint64) (StrokeMask, bool)

	// Passes a mask for the given stroke identity and current
	// configuration to the underlying cache. PassMask should only
	// be called after GetMask() fails.
	//
	// Given a specific configuration, the contents of the mask must
	// always be consistent, so passed masks may be ignored if one is
	// already cached under that configuration.
	PassMask(uint64, StrokeMask)
}

var _ MaskCacheHandler = (*DefaultCacheHandler)(nil)

// A default implementation of [MaskCacheHandler]. It memorizes the
// active rasterizer signature and view scale so callers only have to
// pass the stroke hash on each lookup; the full [MaskKey] is built
// internally.
type DefaultCacheHandler struct {
	cache *DefaultCache
	key MaskKey
}

// Implements [MaskCacheHandler].NotifyRasterizerChange(...)
func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.key.Rasterizer = rasterizer.Signature()
}

// Implements [MaskCacheHandler].NotifyScaleChange(...)
//
// See [NewMaskKey]() for the scale quantization rules.
func (self *DefaultCacheHandler) NotifyScaleChange(scale float64) {
	self.key.ScaleMilli = quantizeScale(scale)
}

// Implements [MaskCacheHandler].GetMask(...)
func (self *DefaultCacheHandler) GetMask(strokeHash uint64) (StrokeMask, bool) {
	self.key.Stroke = strokeHash
	return self.cache.GetMask(self.key)
}

// Implements [MaskCacheHandler].PassMask(...)
func (self *DefaultCacheHandler) PassMask(strokeHash uint64, mask StrokeMask) {
	self.key.Stroke = strokeHash
	self.cache.PassMask(self.key, mask)
}

// Provides access to [DefaultCache.ApproxByteSize]().
func (self *DefaultCacheHandler) ApproxCacheByteSize() int {
	return self.cache.ApproxByteSize()
}

// Provides access to [DefaultCache.PeakSize]().
func (self *DefaultCacheHandler) PeakCacheSize() int {
	return self.cache.PeakSize()
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
