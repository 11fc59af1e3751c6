package capture

import "math"
import "testing"

import "github.com/bilalghalib/Cursive-sub000/ink"

func TestBasicStroke(t *testing.T) {
	recorder := NewRecorder()

	_, done := recorder.Handle(PointerEvent{ Type: Down, X: 10, Y: 10, Pressure: 0.8, Pointer: Pen, ID: 1 })
	if done { t.Fatal("down must not finalize a stroke") }
	if !recorder.IsDrawing() { t.Fatal("expected drawing state") }

	_, done = recorder.Handle(PointerEvent{ Type: Move, X: 20, Y: 10, Pressure: 0.6, Pointer: Pen, ID: 1 })
	if done { t.Fatal("move must not finalize a stroke") }

	stroke, done := recorder.Handle(PointerEvent{ Type: Up, X: 20, Y: 10, Pressure: 0.6, Pointer: Pen, ID: 1 })
	if !done { t.Fatal("expected finalized stroke on up") }
	if recorder.IsDrawing() { t.Fatal("expected idle state") }
	if len(stroke.Points) != 2 { t.Fatalf("expected 2 points, got %d", len(stroke.Points)) }
	if stroke.Points[0].Pressure != 0.8 { t.Fatalf("expected pressure 0.8, got %f", stroke.Points[0].Pressure) }
	if stroke.Source != ink.Human { t.Fatal("captured strokes must be human-sourced") }
	if ink.Outline(stroke.Points, stroke.Width).IsEmpty() { t.Fatal("expected non-empty outline") }
}

func TestPalmRejection(t *testing.T) {
	recorder := NewRecorder()

	// pen starts drawing
	recorder.Handle(PointerEvent{ Type: Down, X: 5, Y: 5, Pressure: 0.5, Pointer: Pen, ID: 1 })

	// a large-radius touch contact lands on the canvas
	_, done := recorder.Handle(PointerEvent{ Type: Down, X: 80, Y: 90, ContactRadius: 40, Pointer: Touch, ID: 2 })
	if done { t.Fatal("palm contact must not produce a stroke") }
	recorder.Handle(PointerEvent{ Type: Move, X: 82, Y: 91, ContactRadius: 40, Pointer: Touch, ID: 2 })
	_, done = recorder.Handle(PointerEvent{ Type: Up, X: 82, Y: 91, Pointer: Touch, ID: 2 })
	if done { t.Fatal("palm contact must never finalize a stroke") }

	// the pen stroke is unaffected
	recorder.Handle(PointerEvent{ Type: Move, X: 6, Y: 6, Pressure: 0.5, Pointer: Pen, ID: 1 })
	stroke, done := recorder.Handle(PointerEvent{ Type: Up, X: 7, Y: 7, Pressure: 0.5, Pointer: Pen, ID: 1 })
	if !done { t.Fatal("expected pen stroke to finalize") }
	if len(stroke.Points) != 3 { t.Fatalf("expected 3 points, got %d", len(stroke.Points)) }
}

func TestPalmRejectionIdle(t *testing.T) {
	recorder := NewRecorder()
	_, done := recorder.Handle(PointerEvent{ Type: Down, X: 10, Y: 10, ContactRadius: 50, Pointer: Touch, ID: 7 })
	if done || recorder.IsDrawing() { t.Fatal("palm-sized contact must not start a stroke") }
}

func TestPenTakesOverTouch(t *testing.T) {
	recorder := NewRecorder()

	// a small touch contact starts drawing, then a pen lands: the
	// touch was a palm that slipped under the radius threshold
	recorder.Handle(PointerEvent{ Type: Down, X: 10, Y: 10, Pointer: Touch, ID: 1, Pressure: -1 })
	recorder.Handle(PointerEvent{ Type: Move, X: 12, Y: 10, Pointer: Touch, ID: 1, Pressure: -1 })
	recorder.Handle(PointerEvent{ Type: Down, X: 50, Y: 50, Pressure: 0.7, Pointer: Pen, ID: 2 })
	if !recorder.IsDrawing() { t.Fatal("expected pen to be drawing") }

	stroke, done := recorder.Handle(PointerEvent{ Type: Up, X: 51, Y: 50, Pressure: 0.7, Pointer: Pen, ID: 2 })
	if !done { t.Fatal("expected pen stroke") }
	if len(stroke.Points) != 2 { t.Fatalf("expected the touch points to be discarded, got %d points", len(stroke.Points)) }
	if stroke.Points[0].X != 50 { t.Fatalf("expected pen origin, got %f", stroke.Points[0].X) }
}

func TestPressureDefaulting(t *testing.T) {
	recorder := NewRecorder()
	recorder.Handle(PointerEvent{ Type: Down, X: 0, Y: 0, Pressure: -1, Pointer: Mouse, ID: 1 })
	stroke, done := recorder.Handle(PointerEvent{ Type: Up, X: 1, Y: 0, Pressure: -1, Pointer: Mouse, ID: 1 })
	if !done { t.Fatal("expected stroke") }
	for _, point := range stroke.Points {
		if point.Pressure != ink.DefaultPressure {
			t.Fatalf("expected default pressure, got %f", point.Pressure)
		}
	}
}

func TestInputAnomaliesDropped(t *testing.T) {
	recorder := NewRecorder()

	// NaN down must not even start a stroke
	_, done := recorder.Handle(PointerEvent{ Type: Down, X: math.NaN(), Y: 0, Pressure: 0.5, ID: 1 })
	if done || recorder.IsDrawing() { t.Fatal("NaN down must be dropped") }

	// NaN moves are dropped, valid ones kept
	recorder.Handle(PointerEvent{ Type: Down, X: 0, Y: 0, Pressure: 0.5, ID: 1 })
	recorder.Handle(PointerEvent{ Type: Move, X: math.Inf(1), Y: 0, Pressure: 0.5, ID: 1 })
	recorder.Handle(PointerEvent{ Type: Move, X: 2, Y: 2, Pressure: 0.5, ID: 1 })
	stroke, done := recorder.Handle(PointerEvent{ Type: Up, X: 2, Y: 2, Pressure: 0.5, ID: 1 })
	if !done { t.Fatal("expected stroke") }
	if len(stroke.Points) != 2 { t.Fatalf("expected 2 valid points, got %d", len(stroke.Points)) }
	for _, point := range stroke.Points {
		if point.Invalid() { t.Fatal("anomalous point leaked into the stroke model") }
	}
}

func TestLeaveFinalizes(t *testing.T) {
	recorder := NewRecorder()
	recorder.Handle(PointerEvent{ Type: Down, X: 0, Y: 0, Pressure: 0.5, ID: 1 })
	stroke, done := recorder.Handle(PointerEvent{ Type: Leave, X: 0, Y: 0, ID: 1 })
	if !done { t.Fatal("expected leave to finalize the stroke") }
	if len(stroke.Points) != 1 { t.Fatalf("expected 1 point, got %d", len(stroke.Points)) }
}
