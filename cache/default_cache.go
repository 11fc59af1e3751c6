package cache

import "sync"
import "sync/atomic"

import "github.com/bilalghalib/Cursive-sub000/mask"

// The composite key under which stroke masks are cached. A mask is
// only reusable when all three coordinates match: the stroke identity
// (see [ink.Stroke.Hash]()), the signature of the rasterizer that
// produced it, and the view scale it was rasterized at.
type MaskKey struct {
	Stroke uint64
	Rasterizer uint64
	ScaleMilli uint32
}

// Builds a [MaskKey] from its raw ingredients. The scale is quantized
// to 1/1024ths, so masks survive sub-millistep zoom jitter but are
// never reused across visibly different zoom levels. A nil rasterizer
// contributes a zero signature.
func NewMaskKey(strokeHash uint64, rasterizer mask.Rasterizer, scale float64) MaskKey {
	key := MaskKey{ Stroke: strokeHash, ScaleMilli: quantizeScale(scale) }
	if rasterizer != nil { key.Rasterizer = rasterizer.Signature() }
	return key
}

func quantizeScale(scale float64) uint32 {
	if scale <= 0 { return 0 }
	return uint32(scale*1024)
}

// A cached mask plus the marker for second-chance eviction.
type maskEntry struct {
	mask StrokeMask
	byteSize uint32
	touched uint32 // set on every hit, cleared by the sweep hand
}

// The default stroke mask cache. It is concurrent-safe, byte-bounded
// and evicts with a second-chance sweep: every hit marks its entry,
// and when room is needed a hand walks the entries in insertion
// order, unmarking the recently hit ones and reclaiming the first
// cold one it finds. A canvas redraw touches every visible stroke
// once, so whatever the sweep finds unmarked really hasn't been
// drawn lately.
type DefaultCache struct {
	mutex sync.RWMutex
	entries map[MaskKey]*maskEntry
	sweepOrder []MaskKey
	hand int
	usedBytes uint32
	peakBytes uint32
	capacity uint32
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Handwritten stroke masks are bigger than typical font glyphs, so
// values below a few hundred KiB fall short quickly; a few MiBs is
// a reasonable ballpark for a notebook page worth of ink. See the
// package overview and [DefaultCache.PeakSize]() for sizing advice.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &DefaultCache {
		entries: make(map[MaskKey]*maskEntry, 128),
		capacity: uint32(maxByteSize),
	}
}

// Gets the mask cached under the given key and marks it as recently
// used. The bool indicates whether the mask has been found.
func (self *DefaultCache) GetMask(key MaskKey) (StrokeMask, bool) {
	self.mutex.RLock()
	entry, found := self.entries[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	atomic.StoreUint32(&entry.touched, 1)
	return entry.mask, true
}

// Stores the given mask under the given key. Masks bigger than the
// whole cache are silently discarded, and so are duplicate keys:
// under a fixed configuration a stroke always rasterizes to the same
// mask, so there's nothing worth replacing.
func (self *DefaultCache) PassMask(key MaskKey, strokeMask StrokeMask) {
	byteSize := StrokeMaskByteSize(strokeMask)
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if byteSize > self.capacity { return }
	_, alreadyCached := self.entries[key]
	if alreadyCached { return }
	for self.usedBytes + byteSize > self.capacity {
		if !self.evictOne() { return }
	}
	self.entries[key] = &maskEntry{ mask: strokeMask, byteSize: byteSize }
	self.sweepOrder = append(self.sweepOrder, key)
	self.usedBytes += byteSize
	if self.usedBytes > self.peakBytes { self.peakBytes = self.usedBytes }
}

// Advances the sweep hand until an entry is reclaimed. Entries hit
// since the hand last passed them get a second chance. Returns false
// only when there's nothing left to evict. Must be called with the
// write lock held.
func (self *DefaultCache) evictOne() bool {
	fullSweeps := 0
	for len(self.sweepOrder) > 0 {
		if self.hand >= len(self.sweepOrder) {
			self.hand = 0
			fullSweeps += 1
			if fullSweeps > 2 { break } // unreachable, but don't risk spinning
		}
		key := self.sweepOrder[self.hand]
		entry := self.entries[key]
		if atomic.SwapUint32(&entry.touched, 0) == 1 {
			self.hand += 1
			continue
		}
		delete(self.entries, key)
		self.sweepOrder = append(self.sweepOrder[:self.hand], self.sweepOrder[self.hand + 1:]...)
		self.usedBytes -= entry.byteSize
		return true
	}
	return false
}

// Returns the number of bytes taken by the stroke masks currently
// stored in the cache. With Ebitengine targets this is a lower-bound
// approximation, see [StrokeMaskByteSize]().
func (self *DefaultCache) ApproxByteSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.usedBytes)
}

// Returns the maximum amount of bytes that the cache has been filled
// with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *DefaultCache) PeakSize() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return int(self.peakBytes)
}

// Returns the number of masks currently cached.
func (self *DefaultCache) EntryCount() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

// Returns a new cache handler for the current cache. While
// DefaultCache is concurrent-safe, handlers can only be used
// non-concurrently. One can create multiple handlers for the same
// cache to be used with different canvas surfaces or synthesizers.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	return &DefaultCacheHandler{ cache: self }
}
