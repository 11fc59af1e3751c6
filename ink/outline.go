package ink

import "math"

// A polygon vertex, in canvas units.
type Vertex struct {
	X float64
	Y float64
}

// A closed vertex loop suitable for fill-rasterization. The loop is
// implicitly closed: the last vertex connects back to the first one.
// An empty polygon is valid and simply renders nothing.
type Polygon []Vertex

// Returns true if the polygon has fewer than three vertices and
// therefore encloses no area.
func (self Polygon) IsEmpty() bool { return len(self) < 3 }

// Returns the polygon's axis-aligned bounding box.
func (self Polygon) Bounds() Rect {
	if len(self) == 0 { return Rect{} }
	rect := Rect{ MinX: self[0].X, MinY: self[0].Y, MaxX: self[0].X, MaxY: self[0].Y }
	for _, vertex := range self[1:] {
		if vertex.X < rect.MinX { rect.MinX = vertex.X }
		if vertex.Y < rect.MinY { rect.MinY = vertex.Y }
		if vertex.X > rect.MaxX { rect.MaxX = vertex.X }
		if vertex.Y > rect.MaxY { rect.MaxY = vertex.Y }
	}
	return rect
}

// The pressure-to-width thinning curve. Monotonic, clamped, and
// shared by every renderer in the module so human and synthetic
// strokes thin identically: a pressure of zero still leaves 30%
// of the base width, full pressure uses all of it.
func WidthFactor(pressure float64) float64 {
	if pressure < 0 { pressure = 0 }
	if pressure > 1 { pressure = 1 }
	return 0.3 + 0.7*pressure
}

// Outliners convert a stroke centerline plus pressure data into a
// filled [Polygon], the module's rendering primitive. The zero value
// is usable and equivalent to what [Outline]() uses: moderate point
// reduction, offset smoothing and round caps.
//
// Outliners are plain configuration holders; the [Outliner.Outline]()
// operation itself is pure and can be invoked repeatedly with
// different strokes.
type Outliner struct {
	reduction float64 // 0..1, see SetReduction
	reductionSet bool
	smoothing bool
	smoothingSet bool
	roundCaps bool
	roundCapsSet bool
}

// Maximum centerline distance, in canvas units, merged away at
// reduction = 1. See [Outliner.SetReduction]().
const maxStreamlineDistance = 4.0

// Sets the streamlining strength in [0, 1]. Consecutive centerline
// points closer than reduction*4 canvas units are merged before
// offsetting. Higher values produce smoother, lighter outlines at
// the cost of fidelity to the raw input. Values outside [0, 1] are
// silently clamped. The default is 0.25.
func (self *Outliner) SetReduction(reduction float64) {
	if reduction < 0 { reduction = 0 }
	if reduction > 1 { reduction = 1 }
	self.reduction = reduction
	self.reductionSet = true
}

// Returns the current streamlining strength.
func (self *Outliner) GetReduction() float64 {
	if !self.reductionSet { return 0.25 }
	return self.reduction
}

// Enables or disables the moving-average smoothing pass applied to
// the offset points. Enabled by default. Disabling it preserves
// sampling jaggies, which can be desirable for debugging.
func (self *Outliner) SetSmoothing(smoothing bool) {
	self.smoothing = smoothing
	self.smoothingSet = true
}

// Enables or disables round caps at the stroke's start and end.
// Enabled by default. The synthesizer disables them on internal
// ligature joints so bridged glyphs read as one continuous path.
func (self *Outliner) SetRoundCaps(roundCaps bool) {
	self.roundCaps = roundCaps
	self.roundCapsSet = true
}

func (self *Outliner) getSmoothing() bool {
	if !self.smoothingSet { return true }
	return self.smoothing
}

func (self *Outliner) getRoundCaps() bool {
	if !self.roundCapsSet { return true }
	return self.roundCaps
}

// Outlines a stroke centerline with the default [Outliner]
// configuration. See [Outliner.Outline]() for details.
func Outline(points []Point, baseWidth float64) Polygon {
	var outliner Outliner
	return outliner.Outline(points, baseWidth)
}

// Converts the given centerline into a closed polygon of variable
// width: at each sample the local half-width is
// baseWidth*[WidthFactor](pressure)/2, applied perpendicularly to
// the local tangent direction.
//
// The function is total: an empty point list returns an empty
// polygon (callers skip rendering, they don't get an error), and a
// single point (or a run of coincident points) produces a filled
// circle at the pressure-peak radius.
func (self *Outliner) Outline(points []Point, baseWidth float64) Polygon {
	if len(points) == 0 { return nil }
	if baseWidth <= 0 { return nil }

	points = self.streamline(points)
	if len(points) == 1 {
		return circlePolygon(points[0].X, points[0].Y, halfWidth(baseWidth, maxPressure(points)))
	}

	// offset each sample perpendicularly to the local tangent
	left  := make([]Vertex, len(points))
	right := make([]Vertex, len(points))
	for i, point := range points {
		tx, ty := tangentAt(points, i)
		nx, ny := -ty, tx
		hw := halfWidth(baseWidth, point.Pressure)
		left[i]  = Vertex{ X: point.X + nx*hw, Y: point.Y + ny*hw }
		right[i] = Vertex{ X: point.X - nx*hw, Y: point.Y - ny*hw }
	}
	if self.getSmoothing() {
		smoothOffsets(left)
		smoothOffsets(right)
	}

	// stitch left side, end cap, reversed right side, start cap
	capSegments := 0
	if self.getRoundCaps() { capSegments = capSegmentCount(baseWidth) }
	polygon := make(Polygon, 0, 2*len(points) + 2*capSegments)
	polygon = append(polygon, left...)
	last := len(points) - 1
	polygon = appendCap(polygon, points[last], left[last], right[last], capSegments)
	for i := last; i >= 0; i-- { polygon = append(polygon, right[i]) }
	polygon = appendCap(polygon, points[0], right[0], left[0], capSegments)
	return polygon
}

// Merges consecutive points closer than the reduction threshold.
// The first and last points always survive.
func (self *Outliner) streamline(points []Point) []Point {
	minDistance := self.GetReduction()*maxStreamlineDistance
	kept := make([]Point, 0, len(points))
	kept = append(kept, points[0])
	for _, point := range points[1:] {
		if point.DistanceTo(kept[len(kept) - 1]) >= math.Max(minDistance, 0.001) {
			kept = append(kept, point)
		}
	}
	if len(kept) == 1 && len(points) > 1 {
		last := points[len(points) - 1]
		if last.DistanceTo(kept[0]) >= 0.001 { kept = append(kept, last) }
	}
	return kept
}

func halfWidth(baseWidth, pressure float64) float64 {
	return baseWidth*WidthFactor(pressure)/2
}

func maxPressure(points []Point) float64 {
	peak := 0.0
	for _, point := range points {
		if point.Pressure > peak { peak = point.Pressure }
	}
	return peak
}

// Normalized local tangent at index i. Interior points use the
// central difference; endpoints use their single neighbor.
func tangentAt(points []Point, i int) (float64, float64) {
	var from, to Point
	switch {
	case i == 0: from, to = points[0], points[1]
	case i == len(points) - 1: from, to = points[i - 1], points[i]
	default: from, to = points[i - 1], points[i + 1]
	}
	dx, dy := to.X - from.X, to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 { return 1, 0 } // coincident neighbors, pick any heading
	return dx/length, dy/length
}

// In-place moving average with window 3, endpoints preserved.
func smoothOffsets(offsets []Vertex) {
	if len(offsets) < 3 { return }
	prev := offsets[0]
	for i := 1; i < len(offsets) - 1; i++ {
		smoothed := Vertex{
			X: (prev.X + offsets[i].X + offsets[i + 1].X)/3,
			Y: (prev.Y + offsets[i].Y + offsets[i + 1].Y)/3,
		}
		prev = offsets[i]
		offsets[i] = smoothed
	}
}

func capSegmentCount(baseWidth float64) int {
	segments := int(math.Ceil(baseWidth)) + 2
	if segments > 16 { segments = 16 }
	return segments
}

// Appends a half-circle arc around center, from the "from" offset to
// the "to" offset, excluding both endpoints (they are already part
// of the outline sides). With zero segments this appends nothing,
// producing a butt cap.
func appendCap(polygon Polygon, center Point, from, to Vertex, segments int) Polygon {
	if segments <= 0 { return polygon }
	startAngle := math.Atan2(from.Y - center.Y, from.X - center.X)
	radius := math.Hypot(from.X - center.X, from.Y - center.Y)
	for i := 1; i < segments; i++ {
		angle := startAngle - math.Pi*float64(i)/float64(segments)
		polygon = append(polygon, Vertex{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return polygon
}

// Builds a filled circle polygon, used for single-point strokes.
func circlePolygon(x, y, radius float64) Polygon {
	if radius <= 0 { radius = 0.5 }
	segments := capSegmentCount(radius*2)*2
	polygon := make(Polygon, segments)
	for i := 0; i < segments; i++ {
		angle := 2*math.Pi*float64(i)/float64(segments)
		polygon[i] = Vertex{ X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle) }
	}
	return polygon
}
