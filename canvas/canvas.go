package canvas

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/mask"

// A history delta: one stroke added at or removed from an index of
// the committed list. Undo applies the delta in reverse, redo replays
// it; both directions are exact inverses of each other.
type historyDelta struct {
	stroke ink.Stroke
	index int
	added bool
}

// Surface is the canvas: an ordered list of committed strokes plus
// the view transform, history and selection state around it. The
// zero value is a valid, empty surface with an identity view.
//
// Surfaces are not concurrent-safe; like the rest of the engine they
// expect to live on the UI goroutine.
type Surface struct {
	strokes []ink.Stroke
	undoStack []historyDelta
	redoStack []historyDelta

	view ViewTransform
	minScale float64
	maxScale float64

	selection ink.Rect
	hasSelection bool

	outliner ink.Outliner
	rasterizer mask.Rasterizer
	background backgroundColor
	needsRedraw bool
}

// Creates an empty [Surface].
func NewSurface() *Surface { return &Surface{} }

// Returns the committed strokes in commit order. The returned slice
// is the surface's internal buffer: treat it as read-only and don't
// retain it across mutations.
func (self *Surface) Strokes() []ink.Stroke { return self.strokes }

// Returns the number of committed strokes.
func (self *Surface) StrokeCount() int { return len(self.strokes) }

// Commits a stroke to the canvas. This clears the redo stack (a new
// action forks history) and schedules a redraw. Empty strokes are
// ignored: the capture pipeline never emits them, and synthetic
// producers shouldn't either, but the canvas stays silent rather
// than panicking if one shows up.
func (self *Surface) AddStroke(stroke ink.Stroke) {
	if stroke.IsEmpty() { return }
	index := len(self.strokes)
	self.strokes = append(self.strokes, stroke)
	self.undoStack = append(self.undoStack, historyDelta{ stroke: stroke, index: index, added: true })
	self.redoStack = self.redoStack[ : 0]
	self.needsRedraw = true
}

// Removes the stroke at the given index (the erase operation). Out of
// range indices are a caller bug and panic. Like [Surface.AddStroke](),
// this clears the redo stack and schedules a redraw.
func (self *Surface) RemoveStroke(index int) {
	if index < 0 || index >= len(self.strokes) { panic("stroke index out of range") }
	removed := self.strokes[index]
	self.strokes = append(self.strokes[ : index], self.strokes[index + 1 : ]...)
	self.undoStack = append(self.undoStack, historyDelta{ stroke: removed, index: index, added: false })
	self.redoStack = self.redoStack[ : 0]
	self.needsRedraw = true
}

// Reverts the most recent committed mutation. Calling Undo with an
// empty history is a no-op, not an error.
func (self *Surface) Undo() {
	if len(self.undoStack) == 0 { return }
	delta := self.undoStack[len(self.undoStack) - 1]
	self.undoStack = self.undoStack[ : len(self.undoStack) - 1]
	self.applyDelta(delta, true)
	self.redoStack = append(self.redoStack, delta)
	self.needsRedraw = true
}

// Replays the most recently undone mutation. Calling Redo with
// nothing undone is a no-op, not an error.
func (self *Surface) Redo() {
	if len(self.redoStack) == 0 { return }
	delta := self.redoStack[len(self.redoStack) - 1]
	self.redoStack = self.redoStack[ : len(self.redoStack) - 1]
	self.applyDelta(delta, false)
	self.undoStack = append(self.undoStack, delta)
	self.needsRedraw = true
}

func (self *Surface) applyDelta(delta historyDelta, invert bool) {
	insert := delta.added != invert // XOR: undoing an add removes, redoing it adds
	if insert {
		self.strokes = append(self.strokes, ink.Stroke{})
		copy(self.strokes[delta.index + 1 : ], self.strokes[delta.index : ])
		self.strokes[delta.index] = delta.stroke
	} else {
		self.strokes = append(self.strokes[ : delta.index], self.strokes[delta.index + 1 : ]...)
	}
}

// Sets the selection region, in world coordinates. The rect is
// normalized so min/max ordering doesn't matter to callers. Selection
// changes don't mutate strokes and don't schedule redraws by
// themselves (hosts typically draw the selection box as an overlay).
func (self *Surface) SetSelection(rect ink.Rect) {
	self.selection = ink.NewRect(rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
	self.hasSelection = true
}

// Clears the selection region.
func (self *Surface) ClearSelection() {
	self.selection = ink.Rect{}
	self.hasSelection = false
}

// Returns the current selection region and whether one is set.
func (self *Surface) Selection() (ink.Rect, bool) {
	return self.selection, self.hasSelection
}

// Returns true if a redraw has been requested by any mutation since
// the last [Surface.MarkRedrawn]() call. Host applications poll this
// once per frame: however many strokes were added, undone or panned
// within the frame, the answer collapses into a single redraw.
func (self *Surface) NeedsRedraw() bool { return self.needsRedraw }

// Acknowledges the pending redraw. Call after actually re-rendering.
func (self *Surface) MarkRedrawn() { self.needsRedraw = false }

// Replaces the outliner configuration used when rendering strokes.
func (self *Surface) SetOutliner(outliner ink.Outliner) {
	self.outliner = outliner
	self.needsRedraw = true
}

// Sets the mask rasterizer used for rendering. The default is a
// [mask.DefaultRasterizer]; setting a nil rasterizer restores it.
func (self *Surface) SetRasterizer(rasterizer mask.Rasterizer) {
	self.rasterizer = rasterizer
	self.needsRedraw = true
}

func (self *Surface) getRasterizer() mask.Rasterizer {
	if self.rasterizer == nil { self.rasterizer = &mask.DefaultRasterizer{} }
	return self.rasterizer
}
