package ink

import "math"
import "image/color"

// A single sample of pen input. Coordinates are given in canvas
// (world) units, pressure is normalized to [0, 1], and Time is
// expressed in milliseconds. Devices that don't report pressure
// (mouse, finger) should use [DefaultPressure].
type Point struct {
	X float64
	Y float64
	Pressure float64
	Time int64
}

// The pressure assigned to input samples whose device doesn't
// report any. Chosen so pressure-insensitive devices still produce
// a reasonable mid-weight line.
const DefaultPressure = 0.5

// Returns true if the point contains NaN or infinite coordinates.
// Misbehaving input devices occasionally produce these; the capture
// pipeline drops them before they can reach a [Stroke].
func (self Point) Invalid() bool {
	return math.IsNaN(self.X) || math.IsInf(self.X, 0) ||
		math.IsNaN(self.Y) || math.IsInf(self.Y, 0) ||
		math.IsNaN(self.Pressure) || math.IsInf(self.Pressure, 0)
}

// Euclidean distance to another point.
func (self Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X - self.X, other.Y - self.Y)
}

// Stroke provenance. Strokes drawn by the user are [Human], strokes
// fabricated by the synthesizer are [Synthetic]. The value is set at
// creation and never mutated afterwards.
type Source uint8

const (
	Human Source = iota
	Synthetic
)

// Returns "human" or "synthetic".
func (self Source) String() string {
	if self == Synthetic { return "synthetic" }
	return "human"
}

// An Anchor describes how a stroke connects to a neighbor: where the
// pen enters or leaves the glyph, at which heading and with how much
// pressure. Anchors are computed once per stroke (or per trained
// label) and cached; see the connect package.
type Anchor struct {
	X float64
	Y float64
	AngleDegrees float64
	Pressure float64
}

// Euclidean distance between two anchors.
func (self Anchor) DistanceTo(other Anchor) float64 {
	return math.Hypot(other.X - self.X, other.Y - self.Y)
}

// One continuous pen-down-to-pen-up ink path, either human-drawn or
// synthesized. Once created, a stroke is a value: renderers and
// analyzers must never mutate the point slice in place.
//
// The labeling fields (Character, VariationIndex, Phase) are only
// set on training samples; they are zero otherwise. Entry and Exit
// are optional cached connection anchors.
type Stroke struct {
	Points []Point
	Color color.RGBA
	Width float64 // base width, before pressure modulation
	Source Source

	Character string // trained glyph / ligature / word label, if any
	VariationIndex int // 1..K among the label's variations, 0 if unlabeled
	Phase string // curriculum stage that produced this sample, if any

	Entry *Anchor
	Exit *Anchor
}

// Creates a finalized stroke from the given points. The point slice
// is copied, never aliased, so the caller remains free to reuse or
// keep appending to its own buffer.
func NewStroke(points []Point, clr color.RGBA, width float64, source Source) Stroke {
	owned := make([]Point, len(points))
	copy(owned, points)
	return Stroke{ Points: owned, Color: clr, Width: width, Source: source }
}

// Returns a deep copy of the stroke. Anchors are copied too.
func (self Stroke) Clone() Stroke {
	clone := self
	clone.Points = make([]Point, len(self.Points))
	copy(clone.Points, self.Points)
	if self.Entry != nil { entry := *self.Entry ; clone.Entry = &entry }
	if self.Exit  != nil { exit  := *self.Exit  ; clone.Exit  = &exit  }
	return clone
}

// Returns true if the stroke has no points.
func (self Stroke) IsEmpty() bool { return len(self.Points) == 0 }

// Returns the stroke's axis-aligned bounding box, ignoring the ink
// width. Empty strokes return an empty rect.
func (self Stroke) Bounds() Rect {
	if len(self.Points) == 0 { return Rect{} }
	rect := Rect{
		MinX: self.Points[0].X, MinY: self.Points[0].Y,
		MaxX: self.Points[0].X, MaxY: self.Points[0].Y,
	}
	for _, point := range self.Points[1:] {
		if point.X < rect.MinX { rect.MinX = point.X }
		if point.Y < rect.MinY { rect.MinY = point.Y }
		if point.X > rect.MaxX { rect.MaxX = point.X }
		if point.Y > rect.MaxY { rect.MaxY = point.Y }
	}
	return rect
}

// Total centerline length of the stroke.
func (self Stroke) PathLength() float64 {
	var length float64
	for i := 1; i < len(self.Points); i++ {
		length += self.Points[i - 1].DistanceTo(self.Points[i])
	}
	return length
}

// An axis-aligned rectangle in canvas units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Returns a rect with min/max normalized so Min <= Max.
func NewRect(x1, y1, x2, y2 float64) Rect {
	rect := Rect{ MinX: x1, MinY: y1, MaxX: x2, MaxY: y2 }
	if rect.MinX > rect.MaxX { rect.MinX, rect.MaxX = rect.MaxX, rect.MinX }
	if rect.MinY > rect.MaxY { rect.MinY, rect.MaxY = rect.MaxY, rect.MinY }
	return rect
}

// Returns true if the rect has zero or negative area.
func (self Rect) Empty() bool {
	return self.MaxX <= self.MinX || self.MaxY <= self.MinY
}

func (self Rect) Width() float64 { return self.MaxX - self.MinX }
func (self Rect) Height() float64 { return self.MaxY - self.MinY }

// Returns true if the two rects share any area.
func (self Rect) Intersects(other Rect) bool {
	if self.Empty() || other.Empty() { return false }
	return self.MinX < other.MaxX && other.MinX < self.MaxX &&
		self.MinY < other.MaxY && other.MinY < self.MaxY
}

// Returns the smallest rect containing both.
func (self Rect) Union(other Rect) Rect {
	if self.Empty() { return other }
	if other.Empty() { return self }
	return Rect{
		MinX: math.Min(self.MinX, other.MinX),
		MinY: math.Min(self.MinY, other.MinY),
		MaxX: math.Max(self.MaxX, other.MaxX),
		MaxY: math.Max(self.MaxY, other.MaxY),
	}
}

// Expands the rect by the given margin on every side.
func (self Rect) Inset(margin float64) Rect {
	return Rect{
		MinX: self.MinX + margin, MinY: self.MinY + margin,
		MaxX: self.MaxX - margin, MaxY: self.MaxY - margin,
	}
}
