// connect derives the entry/exit anchors of trained glyphs and
// builds the bridging curves that join adjacent glyphs into
// continuous handwriting.
//
// The [Table] is rebuilt from the training sample set whenever it
// changes, mirroring how style profiles are derived: whole-table
// atomic replacement, never incremental patching.
package connect

import "math"
import "sort"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/train"

// The averaged entry and exit anchors of a trained label.
type Anchors struct {
	Entry ink.Anchor `json:"entry"`
	Exit ink.Anchor `json:"exit"`
}

// A connection point table: derived anchors per trained label. Zero
// value tables are valid and simply answer "absent" for everything.
type Table struct {
	anchors map[string]Anchors
}

// Builds the connection point table for a whole sample set. Labels
// without samples never enter the table (anchors are never computed
// from zero samples).
func BuildTable(samples *train.SampleSet) *Table {
	table := &Table{ anchors: make(map[string]Anchors) }
	if samples == nil { return table }
	for _, label := range samples.Labels() {
		variations := samples.Samples(label)
		if anchors, ok := ComputeAnchors(variations); ok {
			table.anchors[label] = anchors
		}
	}
	return table
}

// Returns the anchors for the given label and whether the label is
// present. Unknown labels are an expected, explicit "absent" result,
// not an error: the synthesizer falls back to pen lifts for them.
func (self *Table) Lookup(label string) (Anchors, bool) {
	if self == nil || self.anchors == nil { return Anchors{}, false }
	anchors, found := self.anchors[label]
	return anchors, found
}

// Returns the table's label-to-anchors mapping for serialization.
// Treat as read-only.
func (self *Table) Map() map[string]Anchors {
	if self.anchors == nil { return map[string]Anchors{} }
	return self.anchors
}

// Rebuilds a table from a previously serialized mapping.
func TableFromMap(anchors map[string]Anchors) *Table {
	table := &Table{ anchors: make(map[string]Anchors, len(anchors)) }
	for label, labelAnchors := range anchors {
		table.anchors[label] = labelAnchors
	}
	return table
}

// Computes the averaged entry and exit anchors across a label's
// variations. Returns false when no variation has enough points to
// define a direction (anchors are never fabricated from nothing).
func ComputeAnchors(variations []ink.Stroke) (Anchors, bool) {
	var entries, exits []ink.Anchor
	for _, stroke := range variations {
		if entry, exit, ok := strokeAnchors(stroke); ok {
			entries = append(entries, entry)
			exits = append(exits, exit)
		}
	}
	if len(entries) == 0 { return Anchors{}, false }
	return Anchors{ Entry: averageAnchor(entries), Exit: averageAnchor(exits) }, true
}

// Entry anchor = first point with the initial tangent direction;
// exit anchor = its mirror at the stroke's end.
func strokeAnchors(stroke ink.Stroke) (ink.Anchor, ink.Anchor, bool) {
	points := stroke.Points
	if len(points) < 2 { return ink.Anchor{}, ink.Anchor{}, false }
	first, second := points[0], points[1]
	last, beforeLast := points[len(points) - 1], points[len(points) - 2]
	entry := ink.Anchor{
		X: first.X, Y: first.Y,
		AngleDegrees: headingDegrees(first, second),
		Pressure: first.Pressure,
	}
	exit := ink.Anchor{
		X: last.X, Y: last.Y,
		AngleDegrees: headingDegrees(beforeLast, last),
		Pressure: last.Pressure,
	}
	return entry, exit, true
}

func headingDegrees(from, to ink.Point) float64 {
	return math.Atan2(to.Y - from.Y, to.X - from.X)*180/math.Pi
}

// Positions and pressures average linearly; angles average on the
// unit circle so a pair like 170 and -170 degrees doesn't collapse
// to zero.
func averageAnchor(anchors []ink.Anchor) ink.Anchor {
	var x, y, pressure, sinSum, cosSum float64
	for _, anchor := range anchors {
		x += anchor.X
		y += anchor.Y
		pressure += anchor.Pressure
		radians := anchor.AngleDegrees*math.Pi/180
		sinSum += math.Sin(radians)
		cosSum += math.Cos(radians)
	}
	n := float64(len(anchors))
	return ink.Anchor{
		X: x/n, Y: y/n,
		AngleDegrees: math.Atan2(sinSum/n, cosSum/n)*180/math.Pi,
		Pressure: pressure/n,
	}
}

// Locates the internal split point candidates of a ligature sample:
// indices where the pen moved slowest (velocity minima), which in
// practice land on the boundaries between the constituent characters.
// At most expected-1 splits are returned for a ligature of expected
// characters, sorted by position along the path.
//
// This enables decomposing a trained ligature into reusable
// sub-glyphs later on; callers with single-character labels get an
// empty result.
func SplitPoints(stroke ink.Stroke, expectedChars int) []int {
	points := stroke.Points
	if expectedChars < 2 || len(points) < 5 { return nil }

	// velocity per interior point, using time deltas when present
	// and unit steps otherwise
	type candidate struct {
		index int
		velocity float64
	}
	var candidates []candidate
	margin := len(points)/8 + 1 // endpoints aren't split candidates
	for i := margin; i < len(points) - margin; i++ {
		distance := points[i - 1].DistanceTo(points[i]) + points[i].DistanceTo(points[i + 1])
		elapsed := float64(points[i + 1].Time - points[i - 1].Time)
		if elapsed <= 0 { elapsed = 2 }
		candidates = append(candidates, candidate{ index: i, velocity: distance/elapsed })
	}
	if len(candidates) == 0 { return nil }

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].velocity < candidates[j].velocity })

	// take the slowest points, discarding ones too close to an
	// already-chosen split
	minGap := len(points)/(expectedChars*2) + 1
	var splits []int
	for _, cand := range candidates {
		if len(splits) == expectedChars - 1 { break }
		tooClose := false
		for _, split := range splits {
			if abs(split - cand.index) < minGap { tooClose = true ; break }
		}
		if !tooClose { splits = append(splits, cand.index) }
	}
	sort.Ints(splits)
	return splits
}

func abs(value int) int {
	if value < 0 { return -value }
	return value
}
