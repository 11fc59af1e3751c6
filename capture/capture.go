// capture implements the pointer-event state machine that turns raw
// input device events into finalized [ink.Stroke] values.
//
// The pipeline is strictly synchronous and side-effect free: events go
// in, at most one finalized stroke comes out per pen lift. It never
// touches storage or the network, which is what keeps a drawn stroke
// renderable within the same frame it was finished on.
//
// Input anomalies (NaN coordinates, events from misbehaving devices,
// strokes that never accumulated a point) are dropped silently here
// and never reach the stroke model.
package capture

import "image/color"

import "github.com/bilalghalib/Cursive-sub000/ink"

// Pointer event types, mirroring the browser/OS input layer.
type EventType uint8

const (
	Down EventType = iota
	Move
	Up
	Leave // pointer left the canvas while drawing; treated like Up
)

// The kind of input device behind a pointer event.
type PointerType uint8

const (
	Mouse PointerType = iota
	Touch
	Pen
)

// A raw input event. Pressure below zero means "not reported by the
// device" (mouse, most touch screens); ContactRadius is zero when the
// device doesn't report contact geometry. Time is in milliseconds.
type PointerEvent struct {
	Type EventType
	X float64
	Y float64
	Pressure float64
	ContactRadius float64
	Pointer PointerType
	ID int64
	Time int64
}

// Contact radii above this threshold are considered palm-sized.
// See [Recorder.SetPalmRadius]().
const defaultPalmRadius = 22.0

type recorderState uint8

const (
	stateIdle recorderState = iota
	stateDrawing
)

// A Recorder accumulates pointer events into strokes. The state
// machine is minimal: Idle goes to Drawing on pointer-down, Drawing
// accumulates one point per move event, and pointer-up (or the
// pointer leaving the canvas) finalizes the accumulated points into
// an immutable stroke.
//
// Recorders apply best-effort palm rejection: while a pen pointer is
// drawing, concurrent touch contacts and palm-sized contacts can't
// start competing strokes. This is a heuristic filter driven by what
// the device reports, not a hard guarantee.
//
// The zero value is usable: black ink, 3px base width, default palm
// threshold.
type Recorder struct {
	state recorderState
	activeID int64
	activePointer PointerType
	points []ink.Point
	lastPressure float64

	inkColor color.RGBA
	inkColorSet bool
	baseWidth float64
	palmRadius float64
}

// Creates a new stroke [Recorder].
func NewRecorder() *Recorder { return &Recorder{} }

// Sets the color assigned to finalized strokes. Black by default.
func (self *Recorder) SetColor(clr color.RGBA) {
	self.inkColor = clr
	self.inkColorSet = true
}

// Sets the base width assigned to finalized strokes. Values below
// zero are silently clamped to zero (producing invisible but valid
// strokes). The default is 3.
func (self *Recorder) SetBaseWidth(width float64) {
	if width < 0 { width = 0 }
	self.baseWidth = width
}

// Sets the contact radius above which a concurrent contact is treated
// as a resting palm and ignored. The default is 22 canvas units.
func (self *Recorder) SetPalmRadius(radius float64) {
	if radius <= 0 { radius = defaultPalmRadius }
	self.palmRadius = radius
}

// Returns true while a stroke is actively being drawn.
func (self *Recorder) IsDrawing() bool { return self.state == stateDrawing }

// Returns the points accumulated so far for the in-progress stroke.
// The returned slice is the recorder's live buffer: callers may render
// it for live feedback but must not retain or mutate it. Finalized
// strokes always receive their own copy.
func (self *Recorder) LivePoints() []ink.Point { return self.points }

// Feeds one pointer event into the state machine. When the event
// finalizes a stroke (pointer up or leave with at least one valid
// accumulated point), the finalized stroke and true are returned;
// in every other case the second result is false.
func (self *Recorder) Handle(event PointerEvent) (ink.Stroke, bool) {
	switch self.state {
	case stateIdle:
		if event.Type != Down { return ink.Stroke{}, false }
		if self.rejectContact(event) { return ink.Stroke{}, false }
		point, valid := self.eventPoint(event)
		if !valid { return ink.Stroke{}, false }
		self.state = stateDrawing
		self.activeID = event.ID
		self.activePointer = event.Pointer
		self.points = self.points[ : 0]
		self.points = append(self.points, point)
		return ink.Stroke{}, false
	case stateDrawing:
		if event.ID != self.activeID {
			// concurrent contact: palm rejection territory. down events
			// from other pointers are ignored entirely while drawing,
			// with one exception: a pen showing up while a touch contact
			// is drawing means the touch was almost surely a palm, so
			// the touch stroke is discarded and the pen takes over.
			if event.Type == Down && event.Pointer == Pen && self.activePointer != Pen {
				self.points = self.points[ : 0]
				self.state = stateIdle
				return self.Handle(event)
			}
			return ink.Stroke{}, false
		}
		switch event.Type {
		case Move:
			point, valid := self.eventPoint(event)
			if valid { self.points = append(self.points, point) }
			return ink.Stroke{}, false
		case Up, Leave:
			return self.finalize()
		default: // a second Down for the active id is nonsensical, drop it
			return ink.Stroke{}, false
		}
	default:
		panic("invalid recorder state") // unreachable
	}
}

// Returns true if the contact trying to start a stroke looks like a
// palm or otherwise shouldn't draw.
func (self *Recorder) rejectContact(event PointerEvent) bool {
	palmRadius := self.palmRadius
	if palmRadius == 0 { palmRadius = defaultPalmRadius }
	if event.ContactRadius >= palmRadius { return true }
	return false
}

// Converts an event to a point, validating coordinates and filling
// in pressure. Returns false for events that must be dropped.
func (self *Recorder) eventPoint(event PointerEvent) (ink.Point, bool) {
	pressure := event.Pressure
	if pressure < 0 {
		// device doesn't report pressure: reuse the last reported value,
		// or the standard default when there's none
		if self.state == stateDrawing && self.lastPressure >= 0 {
			pressure = self.lastPressure
		} else {
			pressure = ink.DefaultPressure
		}
	}
	if pressure > 1 { pressure = 1 }
	point := ink.Point{ X: event.X, Y: event.Y, Pressure: pressure, Time: event.Time }
	if point.Invalid() { return ink.Point{}, false }
	self.lastPressure = pressure
	return point, true
}

// Closes the in-progress stroke. Strokes without any valid point are
// dropped silently, as the error handling design mandates for input
// anomalies.
func (self *Recorder) finalize() (ink.Stroke, bool) {
	self.state = stateIdle
	self.lastPressure = -1
	if len(self.points) == 0 { return ink.Stroke{}, false }

	clr := self.inkColor
	if !self.inkColorSet { clr = color.RGBA{ A: 255 } }
	width := self.baseWidth
	if width == 0 { width = 3 }
	stroke := ink.NewStroke(self.points, clr, width, ink.Human)
	self.points = self.points[ : 0]
	return stroke, true
}
