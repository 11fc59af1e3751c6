package connect

import "math"
import "testing"
import "image/color"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/train"

func lineStroke(points ...ink.Point) ink.Stroke {
	return ink.NewStroke(points, color.RGBA{ A: 255 }, 3, ink.Human)
}

func TestComputeAnchors(t *testing.T) {
	stroke := lineStroke(
		ink.Point{ X: 0, Y: 0, Pressure: 0.9 },
		ink.Point{ X: 10, Y: 0, Pressure: 0.7 },
		ink.Point{ X: 10, Y: 10, Pressure: 0.4 },
	)
	anchors, ok := ComputeAnchors([]ink.Stroke{ stroke })
	if !ok { t.Fatal("expected anchors") }
	if anchors.Entry.X != 0 || anchors.Entry.Y != 0 { t.Fatalf("bad entry position %v", anchors.Entry) }
	if anchors.Entry.Pressure != 0.9 { t.Fatalf("bad entry pressure %f", anchors.Entry.Pressure) }
	if math.Abs(anchors.Entry.AngleDegrees - 0) > 0.001 { t.Fatalf("bad entry angle %f", anchors.Entry.AngleDegrees) }
	if math.Abs(anchors.Exit.AngleDegrees - 90) > 0.001 { t.Fatalf("bad exit angle %f", anchors.Exit.AngleDegrees) }
	if anchors.Exit.X != 10 || anchors.Exit.Y != 10 { t.Fatalf("bad exit position %v", anchors.Exit) }
}

func TestComputeAnchorsNeverFromNothing(t *testing.T) {
	if _, ok := ComputeAnchors(nil); ok { t.Fatal("anchors from zero samples") }
	dot := lineStroke(ink.Point{ X: 1, Y: 1, Pressure: 0.5 })
	if _, ok := ComputeAnchors([]ink.Stroke{ dot }); ok { t.Fatal("anchors from a single-point stroke") }
}

func TestBuildTableLookup(t *testing.T) {
	samples := train.NewSampleSet()
	samples.Add("a", lineStroke(
		ink.Point{ X: 0, Y: 0, Pressure: 0.5 },
		ink.Point{ X: 8, Y: 2, Pressure: 0.5 },
	))
	table := BuildTable(samples)
	if _, found := table.Lookup("a"); !found { t.Fatal("expected anchors for trained label") }
	if _, found := table.Lookup("z"); found { t.Fatal("expected explicit absence for untrained label") }
	var nilTable *Table
	if _, found := nilTable.Lookup("a"); found { t.Fatal("nil table must answer absent") }
}

func TestCanConnect(t *testing.T) {
	a := lineStroke(ink.Point{ X: 0, Y: 0, Pressure: 0.5 }, ink.Point{ X: 10, Y: 0, Pressure: 0.5 })
	b := lineStroke(ink.Point{ X: 14, Y: 1, Pressure: 0.5 }, ink.Point{ X: 24, Y: 1, Pressure: 0.5 })
	a.Exit = &ink.Anchor{ X: 10, Y: 0, AngleDegrees: 0, Pressure: 0.5 }
	b.Entry = &ink.Anchor{ X: 14, Y: 1, AngleDegrees: 10, Pressure: 0.5 }

	if !CanConnect(a, b, 40, 75) { t.Fatal("expected connectable strokes") }
	if CanConnect(a, b, 2, 75) { t.Fatal("expected distance rejection") }
	if CanConnect(a, b, 40, 5) { t.Fatal("expected angle rejection") }

	// wrapped angles must compare on the circle
	a.Exit.AngleDegrees = 175
	b.Entry.AngleDegrees = -175
	if !CanConnect(a, b, 40, 15) { t.Fatal("expected wrap-around angle delta of 10") }

	// strokes without anchors can never connect
	b.Entry = nil
	if CanConnect(a, b, 1000, 180) { t.Fatal("expected rejection without anchors") }
}

func TestConnectorContinuity(t *testing.T) {
	const epsilon = 1e-9
	a := lineStroke(ink.Point{ X: 0, Y: 0, Pressure: 0.8, Time: 100 }, ink.Point{ X: 10, Y: 0, Pressure: 0.8, Time: 120 })
	b := lineStroke(ink.Point{ X: 18, Y: 4, Pressure: 0.4, Time: 150 }, ink.Point{ X: 28, Y: 4, Pressure: 0.4, Time: 170 })
	a.Exit = &ink.Anchor{ X: 10, Y: 0, AngleDegrees: 15, Pressure: 0.8 }
	b.Entry = &ink.Anchor{ X: 18, Y: 4, AngleDegrees: 20, Pressure: 0.4 }
	if !CanConnect(a, b, DefaultMaxDistance, DefaultMaxAngleDelta) { t.Fatal("fixture should connect") }

	bridge := CreateConnector(a, b)
	if len(bridge) < 2 { t.Fatal("expected bridge points") }
	first, last := bridge[0], bridge[len(bridge) - 1]
	if math.Abs(first.X - 10) > epsilon || math.Abs(first.Y - 0) > epsilon {
		t.Fatalf("bridge must start at a's exit, got (%f, %f)", first.X, first.Y)
	}
	if math.Abs(last.X - 18) > epsilon || math.Abs(last.Y - 4) > epsilon {
		t.Fatalf("bridge must end at b's entry, got (%f, %f)", last.X, last.Y)
	}
	if first.Pressure != 0.8 || last.Pressure != 0.4 { t.Fatal("bridge pressure must interpolate anchor pressures") }
	for i := 1; i < len(bridge); i++ {
		if bridge[i].Time < bridge[i - 1].Time { t.Fatal("bridge timestamps must not go backwards") }
	}
}

func TestSplitPoints(t *testing.T) {
	// a two-character ligature with a clear slowdown in the middle
	var points []ink.Point
	timestamp := int64(0)
	for i := 0; i < 40; i++ {
		step := int64(8)
		if i >= 18 && i <= 22 { step = 40 } // slow zone, the character boundary
		timestamp += step
		points = append(points, ink.Point{ X: float64(i)*3, Y: 50 + 10*math.Sin(float64(i)/4), Pressure: 0.5, Time: timestamp })
	}
	stroke := lineStroke(points...)

	splits := SplitPoints(stroke, 2)
	if len(splits) != 1 { t.Fatalf("expected 1 split, got %d", len(splits)) }
	if splits[0] < 16 || splits[0] > 24 {
		t.Fatalf("expected the split inside the slow zone, got %d", splits[0])
	}

	if SplitPoints(stroke, 1) != nil { t.Fatal("single characters have no splits") }
	if SplitPoints(lineStroke(points[ : 3]...), 2) != nil { t.Fatal("tiny strokes have no splits") }
}
