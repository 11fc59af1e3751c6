//go:build gink

package cache

import "image/color"
import "testing"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/mask"

// Rasterizes a small three-point stroke through the real
// outline-then-rasterize pipeline, shifted by the given offset so
// each call yields a distinct stroke identity with equal mask sizes.
func rasterizeTestStroke(t *testing.T, offsetX float64) (ink.Stroke, StrokeMask) {
	t.Helper()
	points := []ink.Point{
		{ X: offsetX + 2, Y: 2, Pressure: 0.5, Time: 0 },
		{ X: offsetX + 10, Y: 6, Pressure: 0.8, Time: 16 },
		{ X: offsetX + 16, Y: 14, Pressure: 0.4, Time: 32 },
	}
	stroke := ink.NewStroke(points, color.RGBA{ 0, 0, 0, 255 }, 3, ink.Human)
	var outliner ink.Outliner
	var rasterizer mask.DefaultRasterizer
	alpha, err := rasterizer.Rasterize(outliner.Outline(stroke.Points, stroke.Width))
	if err != nil { t.Fatalf("rasterize failed: %v", err) }
	if alpha == nil { t.Fatal("expected ink in the mask") }
	return stroke, alpha
}

func TestDefaultCacheEviction(t *testing.T) {
	strokes := make([]ink.Stroke, 4)
	masks := make([]StrokeMask, 4)
	for i := range strokes {
		strokes[i], masks[i] = rasterizeTestStroke(t, float64(i*40))
	}
	refSize := StrokeMaskByteSize(masks[0])
	for _, strokeMask := range masks[1:] {
		if StrokeMaskByteSize(strokeMask) != refSize {
			t.Fatal("translated strokes must rasterize to equal size masks")
		}
	}

	var rasterizer mask.DefaultRasterizer
	keys := make([]MaskKey, 4)
	for i, stroke := range strokes {
		keys[i] = NewMaskKey(stroke.Hash(), &rasterizer, 1.0)
		for j := 0; j < i; j++ {
			if keys[j] == keys[i] { t.Fatal("stroke identities must differ") }
		}
	}

	cache := NewDefaultCache(int(refSize)*3)
	for i := 0; i < 3; i++ { cache.PassMask(keys[i], masks[i]) }
	if count := cache.EntryCount(); count != 3 { t.Fatalf("expected %d, got %d", 3, count) }
	if size := cache.ApproxByteSize(); size != int(refSize)*3 {
		t.Fatalf("expected %d, got %d", int(refSize)*3, size)
	}

	// hits protect entries from the next eviction sweep
	_, found := cache.GetMask(keys[0])
	if !found { t.Fatal("expected to find mask") }
	_, found = cache.GetMask(keys[2])
	if !found { t.Fatal("expected to find mask") }

	cache.PassMask(keys[3], masks[3])
	_, found = cache.GetMask(keys[1])
	if found { t.Fatal("expected the cold mask to be evicted") }
	for _, i := range []int{ 0, 2, 3 } {
		got, stillThere := cache.GetMask(keys[i])
		if !stillThere { t.Fatalf("expected mask %d to survive", i) }
		if got != masks[i] { t.Fatalf("wrong mask for stroke %d", i) }
	}

	if count := cache.EntryCount(); count != 3 { t.Fatalf("expected %d, got %d", 3, count) }
	if size := cache.ApproxByteSize(); size != int(refSize)*3 {
		t.Fatalf("expected %d, got %d", int(refSize)*3, size)
	}
	if peak := cache.PeakSize(); peak != int(refSize)*3 {
		t.Fatalf("expected %d, got %d", int(refSize)*3, peak)
	}
}

func TestDefaultCacheLimits(t *testing.T) {
	_, strokeMask := rasterizeTestStroke(t, 0)
	size := StrokeMaskByteSize(strokeMask)

	tiny := NewDefaultCache(int(size) - 1)
	tiny.PassMask(MaskKey{ Stroke: 1 }, strokeMask)
	if tiny.EntryCount() != 0 { t.Fatal("oversized masks must be discarded") }

	cache := NewDefaultCache(int(size)*2)
	key := MaskKey{ Stroke: 9, Rasterizer: 1, ScaleMilli: 1024 }
	cache.PassMask(key, strokeMask)
	cache.PassMask(key, strokeMask) // duplicates are ignored
	if count := cache.EntryCount(); count != 1 { t.Fatalf("expected %d, got %d", 1, count) }
	if got := cache.ApproxByteSize(); got != int(size) { t.Fatalf("expected %d, got %d", int(size), got) }
}

func TestMaskKeyScaleQuantization(t *testing.T) {
	var rasterizer mask.DefaultRasterizer
	base := NewMaskKey(5, &rasterizer, 1.0)
	if NewMaskKey(5, &rasterizer, 1.0004) != base {
		t.Fatal("sub-millistep zoom jitter must not change the key")
	}
	if NewMaskKey(5, &rasterizer, 2.0) == base {
		t.Fatal("different zoom levels must not share masks")
	}
	if NewMaskKey(5, nil, 1.0).Rasterizer != 0 {
		t.Fatal("nil rasterizer must contribute a zero signature")
	}
}

func TestCacheHandler(t *testing.T) {
	_, strokeMask := rasterizeTestStroke(t, 0)
	cache := NewDefaultCache(int(StrokeMaskByteSize(strokeMask))*4)
	handler := cache.NewHandler()

	_, found := handler.GetMask(77)
	if found { t.Fatal("didn't expect to find mask") }
	handler.PassMask(77, strokeMask)
	got, found := handler.GetMask(77)
	if !found { t.Fatal("expected to find mask") }
	if got != strokeMask { t.Fatal("wrong mask") }

	// a scale change must invalidate the lookup key
	handler.NotifyScaleChange(2.0)
	_, found = handler.GetMask(77)
	if found { t.Fatal("didn't expect to find mask at new scale") }

	// back at the original scale, the mask must still be there
	handler.NotifyScaleChange(0)
	got, found = handler.GetMask(77)
	if !found { t.Fatal("expected to find mask at original scale") }
	if got != strokeMask { t.Fatal("wrong mask") }

	if handler.Cache() != cache { t.Fatal("expected underlying cache") }
	if handler.ApproxCacheByteSize() != cache.ApproxByteSize() { t.Fatal("size mismatch") }
	if handler.PeakCacheSize() != cache.PeakSize() { t.Fatal("peak mismatch") }
}
