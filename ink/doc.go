// ink defines the canonical data model of the engine: pressure-aware
// points, strokes and their connection anchors, plus the outliner that
// turns a stroke centerline into a fillable polygon.
//
// Everything else in the module consumes these types: the capture
// pipeline produces them, the canvas renders them, the style learner
// measures them and the synthesizer fabricates them. The rules are
// simple but important:
//   - A [Point] is never modified after creation.
//   - A [Stroke] owns its points. Constructors copy the given slice,
//     so finalized strokes can't alias a buffer that someone else is
//     still appending to.
//   - Outlining is a pure function of the points and the base width.
//
// Strokes serialize to JSON and back without loss; see [Stroke.MarshalJSON].
package ink
