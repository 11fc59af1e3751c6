package connect

import "math"

import "github.com/bilalghalib/Cursive-sub000/ink"

// Default thresholds for [CanConnect]. Exposed because the config
// package lets applications tune them.
const DefaultMaxDistance = 40.0
const DefaultMaxAngleDelta = 75.0

// Reports whether stroke a's exit can be smoothly joined to stroke
// b's entry: the anchors must be within maxDistance of each other
// and their headings within maxAngleDelta degrees. Strokes missing
// cached anchors can never connect (the synthesizer lifts the pen).
func CanConnect(a, b ink.Stroke, maxDistance, maxAngleDelta float64) bool {
	if a.Exit == nil || b.Entry == nil { return false }
	if a.Exit.DistanceTo(*b.Entry) > maxDistance { return false }
	return angleDelta(a.Exit.AngleDegrees, b.Entry.AngleDegrees) <= maxAngleDelta
}

// Absolute angular difference in degrees, wrapped to [0, 180].
func angleDelta(a, b float64) float64 {
	delta := math.Mod(math.Abs(a - b), 360)
	if delta > 180 { delta = 360 - delta }
	return delta
}

// Builds the bridging point sequence from stroke a's exit anchor to
// stroke b's entry anchor: a cubic Bézier whose control points extend
// along each anchor's tangent heading, producing a visually
// continuous joint. Pressure and timestamps interpolate linearly
// between the two anchors.
//
// The sequence starts exactly at a's exit and ends exactly at b's
// entry. Calling this for strokes that don't satisfy [CanConnect]
// still works geometrically, it just tends to look like a scrawl.
func CreateConnector(a, b ink.Stroke) []ink.Point {
	if a.Exit == nil || b.Entry == nil { return nil }
	exit, entry := *a.Exit, *b.Entry

	distance := exit.DistanceTo(entry)
	reach := distance*0.4
	exitRadians := exit.AngleDegrees*math.Pi/180
	entryRadians := entry.AngleDegrees*math.Pi/180

	// control points pushed along the tangents keep the joint smooth
	// at both ends
	c1x := exit.X + math.Cos(exitRadians)*reach
	c1y := exit.Y + math.Sin(exitRadians)*reach
	c2x := entry.X - math.Cos(entryRadians)*reach
	c2y := entry.Y - math.Sin(entryRadians)*reach

	segments := connectorSegments(distance)
	var startTime, endTime int64
	if len(a.Points) > 0 { startTime = a.Points[len(a.Points) - 1].Time }
	if len(b.Points) > 0 { endTime = b.Points[0].Time }
	if endTime < startTime { endTime = startTime }

	points := make([]ink.Point, segments + 1)
	for i := 0; i <= segments; i++ {
		t := float64(i)/float64(segments)
		mt := 1 - t
		points[i] = ink.Point{
			X: mt*mt*mt*exit.X + 3*mt*mt*t*c1x + 3*mt*t*t*c2x + t*t*t*entry.X,
			Y: mt*mt*mt*exit.Y + 3*mt*mt*t*c1y + 3*mt*t*t*c2y + t*t*t*entry.Y,
			Pressure: exit.Pressure + (entry.Pressure - exit.Pressure)*t,
			Time: startTime + int64(float64(endTime - startTime)*t),
		}
	}
	return points
}

func connectorSegments(distance float64) int {
	segments := int(math.Ceil(distance/3)) + 2
	if segments > 24 { segments = 24 }
	return segments
}
