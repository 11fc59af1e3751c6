package canvas

import "image"
import "math"
import "image/color"
import "reflect"
import "testing"

import "github.com/bilalghalib/Cursive-sub000/ink"

func testStroke(x, y float64) ink.Stroke {
	return ink.NewStroke([]ink.Point{
		{ X: x, Y: y, Pressure: 0.8 },
		{ X: x + 10, Y: y, Pressure: 0.6 },
	}, color.RGBA{ 0, 0, 0, 255 }, 3, ink.Human)
}

func TestUndoRedoInverseLaw(t *testing.T) {
	const adds = 7
	surface := NewSurface()
	for i := 0; i < adds; i++ {
		surface.AddStroke(testStroke(float64(i)*20, 10))
	}
	committed := make([]ink.Stroke, len(surface.Strokes()))
	copy(committed, surface.Strokes())

	for n := 0; n <= adds; n++ {
		for i := 0; i < n; i++ { surface.Undo() }
		if surface.StrokeCount() != adds - n {
			t.Fatalf("after %d undos expected %d strokes, got %d", n, adds - n, surface.StrokeCount())
		}
		for i := 0; i < n; i++ { surface.Redo() }
		if !reflect.DeepEqual(surface.Strokes(), committed) {
			t.Fatalf("n = %d: undo/redo did not restore the committed list", n)
		}
	}
}

func TestUndoRedoEmptyNoOp(t *testing.T) {
	surface := NewSurface()
	surface.Undo() // must not panic
	surface.Redo()
	surface.AddStroke(testStroke(0, 0))
	surface.Undo()
	surface.Undo() // exhausted, still fine
	if surface.StrokeCount() != 0 { t.Fatal("expected empty canvas") }
	surface.Redo()
	surface.Redo() // exhausted, still fine
	if surface.StrokeCount() != 1 { t.Fatal("expected one stroke") }
}

func TestAddClearsRedo(t *testing.T) {
	surface := NewSurface()
	surface.AddStroke(testStroke(0, 0))
	surface.Undo()
	surface.AddStroke(testStroke(40, 0)) // forks history
	surface.Redo() // must be a no-op now
	if surface.StrokeCount() != 1 { t.Fatalf("expected 1 stroke, got %d", surface.StrokeCount()) }
	if surface.Strokes()[0].Points[0].X != 40 { t.Fatal("expected the fork to survive") }
}

func TestRemoveStrokeUndo(t *testing.T) {
	surface := NewSurface()
	surface.AddStroke(testStroke(0, 0))
	surface.AddStroke(testStroke(20, 0))
	surface.AddStroke(testStroke(40, 0))
	surface.RemoveStroke(1)
	if surface.StrokeCount() != 2 { t.Fatal("expected 2 strokes after erase") }
	surface.Undo()
	if surface.StrokeCount() != 3 { t.Fatal("expected erase to be undone") }
	if surface.Strokes()[1].Points[0].X != 20 { t.Fatal("expected stroke restored at its index") }
}

func TestBasicStrokeScenario(t *testing.T) {
	surface := NewSurface()
	stroke := ink.NewStroke([]ink.Point{
		{ X: 10, Y: 10, Pressure: 0.8 },
		{ X: 20, Y: 10, Pressure: 0.6 },
	}, color.RGBA{ A: 255 }, 3, ink.Human)
	surface.AddStroke(stroke)
	if surface.StrokeCount() != 1 { t.Fatal("expected one committed stroke") }
	if len(surface.Strokes()[0].Points) != 2 { t.Fatal("expected 2 points") }
	if ink.Outline(stroke.Points, stroke.Width).IsEmpty() { t.Fatal("expected non-empty outline") }
	surface.Undo()
	if surface.StrokeCount() != 0 { t.Fatal("expected zero committed strokes after undo") }
}

func TestRedrawCoalescing(t *testing.T) {
	surface := NewSurface()
	if surface.NeedsRedraw() { t.Fatal("fresh surface shouldn't need a redraw") }
	surface.AddStroke(testStroke(0, 0))
	surface.AddStroke(testStroke(10, 0))
	surface.PanBy(3, 3)
	if !surface.NeedsRedraw() { t.Fatal("expected a pending redraw") }
	surface.MarkRedrawn()
	if surface.NeedsRedraw() { t.Fatal("expected the redraw flag to be cleared") }
}

func TestZoomClamp(t *testing.T) {
	surface := NewSurface()
	for i := 0; i < 100; i++ { surface.ZoomAt(0, 0, 10) }
	if surface.View().Scale > defaultMaxScale { t.Fatalf("scale blew past the clamp: %f", surface.View().Scale) }
	for i := 0; i < 100; i++ { surface.ZoomAt(0, 0, 0.1) }
	if surface.View().Scale < defaultMinScale { t.Fatalf("scale collapsed past the clamp: %f", surface.View().Scale) }
}

func TestZoomKeepsFocalPoint(t *testing.T) {
	surface := NewSurface()
	surface.PanBy(30, 40)
	worldX, worldY := surface.View().Invert(100, 100)
	surface.ZoomAt(100, 100, 2)
	deviceX, deviceY := surface.View().Apply(worldX, worldY)
	if math.Abs(deviceX - 100) > 1e-9 || math.Abs(deviceY - 100) > 1e-9 {
		t.Fatalf("focal point drifted to (%f, %f)", deviceX, deviceY)
	}
}

func TestExtractSelectionBitmap(t *testing.T) {
	surface := NewSurface()
	if surface.ExtractSelectionBitmap() != nil { t.Fatal("expected nil without selection") }

	surface.AddStroke(testStroke(10, 10))
	surface.SetSelection(ink.NewRect(0, 0, 40, 20))
	bitmap := surface.ExtractSelectionBitmap()
	if bitmap == nil { t.Fatal("expected a bitmap") }
	if bitmap.Bounds().Dx() != 40 || bitmap.Bounds().Dy() != 20 {
		t.Fatalf("unexpected bitmap size %v", bitmap.Bounds())
	}

	// the stroke runs along y = 10 from x = 10 to 20: there must be ink there
	if !regionHasInk(bitmap, image.Rect(10, 8, 20, 12)) { t.Fatal("expected ink in the selection bitmap") }

	// degenerate selections return the nil sentinel
	surface.SetSelection(ink.NewRect(5, 5, 5, 25))
	if surface.ExtractSelectionBitmap() != nil { t.Fatal("expected nil for zero-width selection") }

	surface.ClearSelection()
	if surface.ExtractSelectionBitmap() != nil { t.Fatal("expected nil after clearing selection") }
}

func TestRenderScaled(t *testing.T) {
	surface := NewSurface()
	if surface.RenderScaled(1, 4) != nil { t.Fatal("expected nil for empty canvas") }
	surface.AddStroke(testStroke(100, 200))
	bitmap := surface.RenderScaled(2, 4)
	if bitmap == nil { t.Fatal("expected a bitmap") }
	if !regionHasInk(bitmap, bitmap.Bounds()) { t.Fatal("expected ink in the export bitmap") }
}

func regionHasInk(bitmap *image.RGBA, region image.Rectangle) bool {
	background := color.RGBA{ 255, 255, 255, 255 }
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if bitmap.RGBAAt(x, y) != background { return true }
		}
	}
	return false
}
