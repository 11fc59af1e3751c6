package ink

import "fmt"
import "image/color"
import "encoding/json"

// Wire format for strokes, matching the persistence collaborator's
// contract. The schema is stable: external notebooks store exactly
// this shape, so field names can't be renamed casually.

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Pressure float64 `json:"pressure"`
	Time int64 `json:"t"`
}

type jsonAnchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	AngleDegrees float64 `json:"angleDegrees"`
	Pressure float64 `json:"pressure"`
}

type jsonStroke struct {
	Points []jsonPoint `json:"points"`
	Color string `json:"color"`
	Width float64 `json:"width"`
	Source string `json:"source"`
	Character string `json:"character,omitempty"`
	VariationIndex int `json:"variationIndex,omitempty"`
	TrainingPhase string `json:"trainingPhase,omitempty"`
	Entry *jsonAnchor `json:"entryPoint,omitempty"`
	Exit *jsonAnchor `json:"exitPoint,omitempty"`
}

// Serializes the stroke in the engine's wire format. The round trip
// through [Stroke.UnmarshalJSON]() is lossless: points, color, width,
// provenance, training metadata and anchors all survive intact.
func (self Stroke) MarshalJSON() ([]byte, error) {
	wire := jsonStroke{
		Points: make([]jsonPoint, len(self.Points)),
		Color: formatColor(self.Color),
		Width: self.Width,
		Source: self.Source.String(),
		Character: self.Character,
		VariationIndex: self.VariationIndex,
		TrainingPhase: self.Phase,
	}
	for i, point := range self.Points {
		wire.Points[i] = jsonPoint{ X: point.X, Y: point.Y, Pressure: point.Pressure, Time: point.Time }
	}
	if self.Entry != nil { wire.Entry = &jsonAnchor{ self.Entry.X, self.Entry.Y, self.Entry.AngleDegrees, self.Entry.Pressure } }
	if self.Exit  != nil { wire.Exit  = &jsonAnchor{ self.Exit.X, self.Exit.Y, self.Exit.AngleDegrees, self.Exit.Pressure } }
	return json.Marshal(wire)
}

// Deserializes a stroke from the engine's wire format.
func (self *Stroke) UnmarshalJSON(data []byte) error {
	var wire jsonStroke
	if err := json.Unmarshal(data, &wire); err != nil { return err }

	clr, err := parseColor(wire.Color)
	if err != nil { return err }
	var source Source
	switch wire.Source {
	case "synthetic": source = Synthetic
	case "human", "": source = Human
	default:
		return fmt.Errorf("invalid stroke source %q", wire.Source)
	}

	stroke := Stroke{
		Points: make([]Point, len(wire.Points)),
		Color: clr,
		Width: wire.Width,
		Source: source,
		Character: wire.Character,
		VariationIndex: wire.VariationIndex,
		Phase: wire.TrainingPhase,
	}
	for i, point := range wire.Points {
		stroke.Points[i] = Point{ X: point.X, Y: point.Y, Pressure: point.Pressure, Time: point.Time }
	}
	if wire.Entry != nil { stroke.Entry = &Anchor{ wire.Entry.X, wire.Entry.Y, wire.Entry.AngleDegrees, wire.Entry.Pressure } }
	if wire.Exit  != nil { stroke.Exit  = &Anchor{ wire.Exit.X, wire.Exit.Y, wire.Exit.AngleDegrees, wire.Exit.Pressure } }
	*self = stroke
	return nil
}

// Serializes a whole stroke list. This is the array form consumed by
// the persistence and export collaborators.
func MarshalStrokes(strokes []Stroke) ([]byte, error) {
	return json.Marshal(strokes)
}

// Deserializes a stroke list previously produced by [MarshalStrokes]().
func UnmarshalStrokes(data []byte) ([]Stroke, error) {
	var strokes []Stroke
	if err := json.Unmarshal(data, &strokes); err != nil { return nil, err }
	return strokes, nil
}

func formatColor(clr color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", clr.R, clr.G, clr.B, clr.A)
}

func parseColor(text string) (color.RGBA, error) {
	if text == "" { return color.RGBA{ A: 255 }, nil }
	if len(text) != 9 && len(text) != 7 { return color.RGBA{}, fmt.Errorf("invalid color %q", text) }
	if text[0] != '#' { return color.RGBA{}, fmt.Errorf("invalid color %q", text) }
	var r, g, b uint8
	var a uint8 = 255
	var err error
	if len(text) == 9 {
		_, err = fmt.Sscanf(text, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	} else {
		_, err = fmt.Sscanf(text, "#%02x%02x%02x", &r, &g, &b)
	}
	if err != nil { return color.RGBA{}, fmt.Errorf("invalid color %q", text) }
	return color.RGBA{ R: r, G: g, B: b, A: a }, nil
}
