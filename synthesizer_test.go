//go:build gink

package cursive

import "math"
import "reflect"
import "testing"
import "image"
import "image/color"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/train"
import "github.com/bilalghalib/Cursive-sub000/connect"
import "github.com/bilalghalib/Cursive-sub000/style"

func flatSample(y float64) ink.Stroke {
	points := []ink.Point{
		{ X: 0, Y: y, Pressure: 0.5, Time: 0 },
		{ X: 5, Y: y, Pressure: 0.6, Time: 12 },
		{ X: 10, Y: y, Pressure: 0.5, Time: 24 },
	}
	return ink.NewStroke(points, color.RGBA{ A: 255 }, 3, ink.Human)
}

func TestSynthesizeFallback(t *testing.T) {
	synth := NewSynthesizer()
	strokes := synth.Synthesize("xyz123")
	if len(strokes) != 6 {
		t.Fatalf("expected 6 fallback strokes, got %d", len(strokes))
	}
	for i, stroke := range strokes {
		if stroke.Source != ink.Synthetic { t.Fatalf("stroke %d not synthetic", i) }
		if stroke.Character != "" { t.Fatalf("fallback stroke %d carries label %q", i, stroke.Character) }
		if stroke.IsEmpty() { t.Fatalf("stroke %d has no points", i) }
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	synth := NewSynthesizer()
	if strokes := synth.Synthesize(""); len(strokes) != 0 {
		t.Fatalf("expected no strokes, got %d", len(strokes))
	}
	if strokes := synth.Synthesize("   "); len(strokes) != 0 {
		t.Fatalf("whitespace must only move the pen, got %d strokes", len(strokes))
	}
}

func TestSynthesizeSeededIdempotent(t *testing.T) {
	synth := NewSynthesizer()
	synth.SetSeed(42)
	first := synth.Synthesize("hello world")
	second := synth.Synthesize("hello world")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("seeded synthesis must replay identical strokes")
	}
}

func TestSynthesizeStructuralStability(t *testing.T) {
	synth := NewSynthesizer()
	first := synth.Synthesize("stability check")
	second := synth.Synthesize("stability check")
	if len(first) != len(second) {
		t.Fatalf("stroke count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Points) != len(second[i].Points) {
			t.Fatalf("stroke %d changed point count between runs", i)
		}
	}
	w1, h1 := synth.Measure("stability check")
	w2, h2 := synth.Measure("stability check")
	if w1 != w2 || h1 != h2 { t.Fatal("measuring must be deterministic") }
	if w1 <= 0 || h1 <= 0 { t.Fatalf("degenerate measure %f x %f", w1, h1) }
}

func TestTokenizeLigatures(t *testing.T) {
	samples := train.NewSampleSet()
	samples.Add("t", flatSample(0))
	samples.Add("h", flatSample(0))
	samples.Add("e", flatSample(0))
	samples.Add("th", flatSample(0))

	tokens := tokenize("the cat", samples)
	if len(tokens) != 6 { t.Fatalf("expected 6 tokens, got %d", len(tokens)) }
	if tokens[0].label != "th" || !tokens[0].trained { t.Fatalf("expected trained ligature first, got %+v", tokens[0]) }
	if tokens[1].label != "e" { t.Fatalf("expected e, got %+v", tokens[1]) }
	if tokens[2].kind != tokenSpace { t.Fatal("expected a space token") }
	if tokens[3].label != "c" || tokens[3].trained { t.Fatalf("expected un-trained c, got %+v", tokens[3]) }
}

func TestSkeletonCurriculumCoverage(t *testing.T) {
	for _, phase := range train.Curriculum {
		for _, label := range phase.Labels {
			runes := []rune(label)
			if len(runes) != 1 { continue } // ligatures and words fall back per rune
			if _, unknown := skeletonFor(runes[0]); unknown {
				t.Fatalf("no skeleton for curriculum label %q", label)
			}
		}
	}
	if _, unknown := skeletonFor('A'); unknown { t.Fatal("uppercase must reuse lowercase skeletons") }
	if _, unknown := skeletonFor('√'); !unknown { t.Fatal("expected the placeholder for exotic runes") }
}

func TestWordWrap(t *testing.T) {
	synth := NewSynthesizer()
	synth.SetSeed(7)
	synth.SetGlyphHeight(10)
	synth.SetMaxLineWidth(30)
	strokes := synth.Synthesize("aaa aaa")
	if len(strokes) != 6 { t.Fatalf("expected 6 strokes, got %d", len(strokes)) }

	firstLine := strokes[0].Bounds()
	secondLine := strokes[3].Bounds()
	if secondLine.MinY <= firstLine.MaxY {
		t.Fatalf("expected the second word on a new line: first %v, second %v", firstLine, secondLine)
	}
	if math.Abs(secondLine.MinX - firstLine.MinX) > 3 {
		t.Fatal("wrapped line must restart near the origin x")
	}
}

func TestConnectedTrainedGlyphs(t *testing.T) {
	samples := train.NewSampleSet()
	samples.Add("a", flatSample(0))

	profile := style.Default()
	profile.ConnectLetters = true
	profile.SlantDegrees = 0

	synth := NewSynthesizer()
	synth.SetSeed(3)
	synth.SetSamples(samples)
	synth.SetProfile(profile)
	synth.SetConnections(connect.BuildTable(samples))

	strokes := synth.Synthesize("aa")
	if len(strokes) != 3 {
		t.Fatalf("expected glyph, bridge, glyph, got %d strokes", len(strokes))
	}
	bridge := strokes[1]
	exit := strokes[0].Points[len(strokes[0].Points) - 1]
	entry := strokes[2].Points[0]
	start := bridge.Points[0]
	end := bridge.Points[len(bridge.Points) - 1]
	if start.DistanceTo(exit) > 1 {
		t.Fatalf("bridge must start at the first glyph's exit, off by %f", start.DistanceTo(exit))
	}
	if end.DistanceTo(entry) > 1 {
		t.Fatalf("bridge must end at the second glyph's entry, off by %f", end.DistanceTo(entry))
	}
}

func TestSynthesizedInkDynamics(t *testing.T) {
	synth := NewSynthesizer()
	synth.SetSeed(11)
	strokes := synth.Synthesize("o")
	if len(strokes) != 1 { t.Fatalf("expected 1 stroke, got %d", len(strokes)) }
	points := strokes[0].Points

	for i, point := range points {
		if point.Pressure < 0 || point.Pressure > 1 { t.Fatalf("point %d pressure %f out of range", i, point.Pressure) }
		if i > 0 && point.Time <= points[i - 1].Time { t.Fatalf("timestamps must increase, point %d", i) }
	}

	// light-heavy-light: the middle should press harder than the ends
	mid := points[len(points)/2].Pressure
	if mid <= points[0].Pressure || mid <= points[len(points) - 1].Pressure {
		t.Fatalf("expected a pressure peak in the middle: %f vs ends %f, %f",
			mid, points[0].Pressure, points[len(points) - 1].Pressure)
	}
}

func TestMeasureLines(t *testing.T) {
	synth := NewSynthesizer()
	synth.SetGlyphHeight(10)
	synth.SetLineHeight(20)
	_, height := synth.Measure("ab\ncd")
	if height != 30 { t.Fatalf("expected height 30, got %f", height) }
	width, _ := synth.Measure("ab")
	wider, _ := synth.Measure("abab")
	if wider <= width { t.Fatal("more glyphs must measure wider") }
}

func TestDrawStroke(t *testing.T) {
	synth := NewSynthesizer()
	synth.SetSeed(5)
	synth.SetColor(color.RGBA{ 0, 0, 255, 255 })
	target := image.NewRGBA(image.Rect(0, 0, 120, 80))
	err := synth.Draw(target, "hi", 20, 60)
	if err != nil { t.Fatalf("unexpected draw error: %v", err) }

	inked := false
	for i := 3; i < len(target.Pix); i += 4 {
		if target.Pix[i] != 0 { inked = true ; break }
	}
	if !inked { t.Fatal("drawing left the target blank") }
}
