package cursive

import "unicode"

// Procedural fallback glyphs for un-trained characters. Each
// skeleton is a single continuous polyline in a unit space with
// x growing rightward from 0 and y growing downward, y = 1 being
// the baseline. Ascenders reach toward y = 0 and descenders dip
// below 1. Crossbars are handled by retracing, since a skeleton
// must stay one pen-down-to-pen-up path.
//
// These are deliberately minimal: synthesis never fails for a
// missing label, it just degrades to these monoline shapes until
// the user trains the real thing.
type skeleton struct {
	width float64 // advance relative to the glyph height
	path []float64 // x, y pairs
}

var unknownSkeleton = skeleton{ width: 0.62, path: []float64{
	0.08, 0.3, 0.54, 0.3, 0.54, 1.0, 0.08, 1.0, 0.08, 0.3,
}}

var skeletons = map[rune]skeleton{
	'a': { width: 0.62, path: []float64{ 0.55, 0.48, 0.3, 0.42, 0.1, 0.6, 0.15, 0.86, 0.36, 0.96, 0.55, 0.8, 0.55, 0.48, 0.56, 0.97 }},
	'b': { width: 0.62, path: []float64{ 0.1, 0.0, 0.1, 1.0, 0.1, 0.62, 0.34, 0.46, 0.55, 0.62, 0.52, 0.87, 0.32, 0.98, 0.1, 0.88 }},
	'c': { width: 0.56, path: []float64{ 0.54, 0.5, 0.34, 0.42, 0.14, 0.55, 0.1, 0.72, 0.2, 0.9, 0.4, 0.97, 0.55, 0.88 }},
	'd': { width: 0.62, path: []float64{ 0.55, 0.0, 0.55, 1.0, 0.55, 0.62, 0.3, 0.46, 0.1, 0.64, 0.15, 0.89, 0.38, 0.98, 0.55, 0.86 }},
	'e': { width: 0.58, path: []float64{ 0.1, 0.7, 0.54, 0.65, 0.5, 0.46, 0.26, 0.42, 0.09, 0.6, 0.13, 0.86, 0.36, 0.97, 0.56, 0.9 }},
	'f': { width: 0.5, path: []float64{ 0.48, 0.06, 0.3, 0.0, 0.2, 0.24, 0.2, 0.46, 0.44, 0.46, 0.2, 0.46, 0.2, 1.0 }},
	'g': { width: 0.62, path: []float64{ 0.55, 0.46, 0.3, 0.42, 0.12, 0.6, 0.2, 0.82, 0.44, 0.86, 0.55, 0.48, 0.55, 1.12, 0.4, 1.28, 0.18, 1.2 }},
	'h': { width: 0.6, path: []float64{ 0.1, 0.0, 0.1, 1.0, 0.1, 0.6, 0.34, 0.44, 0.52, 0.6, 0.52, 1.0 }},
	'i': { width: 0.3, path: []float64{ 0.16, 0.46, 0.16, 1.0 }},
	'j': { width: 0.36, path: []float64{ 0.28, 0.46, 0.28, 1.1, 0.18, 1.28, 0.04, 1.2 }},
	'k': { width: 0.58, path: []float64{ 0.1, 0.0, 0.1, 1.0, 0.1, 0.7, 0.5, 0.44, 0.1, 0.7, 0.5, 1.0 }},
	'l': { width: 0.3, path: []float64{ 0.14, 0.0, 0.14, 0.93, 0.24, 1.0 }},
	'm': { width: 0.78, path: []float64{ 0.06, 1.0, 0.06, 0.5, 0.2, 0.42, 0.32, 0.54, 0.32, 1.0, 0.32, 0.54, 0.48, 0.42, 0.6, 0.54, 0.6, 1.0 }},
	'n': { width: 0.6, path: []float64{ 0.1, 1.0, 0.1, 0.5, 0.3, 0.42, 0.5, 0.55, 0.5, 1.0 }},
	'o': { width: 0.6, path: []float64{ 0.3, 0.42, 0.12, 0.56, 0.08, 0.76, 0.21, 0.94, 0.42, 0.96, 0.54, 0.78, 0.5, 0.55, 0.3, 0.42 }},
	'p': { width: 0.62, path: []float64{ 0.1, 0.46, 0.1, 1.3, 0.1, 0.56, 0.34, 0.43, 0.54, 0.6, 0.5, 0.86, 0.3, 0.96, 0.1, 0.85 }},
	'q': { width: 0.62, path: []float64{ 0.55, 0.46, 0.3, 0.42, 0.12, 0.6, 0.18, 0.86, 0.4, 0.95, 0.55, 0.78, 0.55, 0.46, 0.55, 1.3 }},
	'r': { width: 0.46, path: []float64{ 0.1, 1.0, 0.1, 0.5, 0.2, 0.42, 0.36, 0.44, 0.44, 0.54 }},
	's': { width: 0.52, path: []float64{ 0.48, 0.48, 0.3, 0.42, 0.14, 0.52, 0.28, 0.66, 0.42, 0.76, 0.38, 0.92, 0.2, 0.97, 0.08, 0.88 }},
	't': { width: 0.46, path: []float64{ 0.1, 0.46, 0.42, 0.46, 0.24, 0.46, 0.24, 0.1, 0.24, 0.9, 0.38, 1.0 }},
	'u': { width: 0.6, path: []float64{ 0.1, 0.46, 0.1, 0.84, 0.26, 0.97, 0.44, 0.88, 0.5, 0.46, 0.5, 1.0 }},
	'v': { width: 0.56, path: []float64{ 0.08, 0.46, 0.28, 1.0, 0.5, 0.46 }},
	'w': { width: 0.78, path: []float64{ 0.04, 0.46, 0.18, 1.0, 0.32, 0.6, 0.46, 1.0, 0.6, 0.46 }},
	'x': { width: 0.56, path: []float64{ 0.08, 0.46, 0.5, 1.0, 0.3, 0.73, 0.5, 0.46, 0.08, 1.0 }},
	'y': { width: 0.58, path: []float64{ 0.08, 0.46, 0.3, 0.92, 0.52, 0.46, 0.24, 1.3 }},
	'z': { width: 0.56, path: []float64{ 0.08, 0.46, 0.5, 0.46, 0.08, 1.0, 0.5, 1.0 }},

	'0': { width: 0.62, path: []float64{ 0.3, 0.0, 0.1, 0.2, 0.08, 0.7, 0.3, 1.0, 0.5, 0.76, 0.52, 0.26, 0.3, 0.0 }},
	'1': { width: 0.42, path: []float64{ 0.1, 0.2, 0.28, 0.0, 0.28, 1.0 }},
	'2': { width: 0.58, path: []float64{ 0.1, 0.2, 0.3, 0.0, 0.5, 0.2, 0.1, 1.0, 0.54, 1.0 }},
	'3': { width: 0.58, path: []float64{ 0.1, 0.1, 0.38, 0.0, 0.5, 0.2, 0.3, 0.45, 0.54, 0.7, 0.4, 1.0, 0.1, 0.9 }},
	'4': { width: 0.6, path: []float64{ 0.44, 1.0, 0.44, 0.0, 0.06, 0.64, 0.56, 0.64 }},
	'5': { width: 0.58, path: []float64{ 0.5, 0.0, 0.14, 0.0, 0.1, 0.44, 0.38, 0.4, 0.54, 0.68, 0.36, 1.0, 0.08, 0.9 }},
	'6': { width: 0.58, path: []float64{ 0.5, 0.05, 0.2, 0.3, 0.1, 0.7, 0.3, 1.0, 0.5, 0.8, 0.42, 0.56, 0.12, 0.62 }},
	'7': { width: 0.56, path: []float64{ 0.08, 0.0, 0.54, 0.0, 0.24, 1.0 }},
	'8': { width: 0.6, path: []float64{ 0.3, 0.46, 0.12, 0.26, 0.3, 0.0, 0.48, 0.26, 0.3, 0.46, 0.1, 0.73, 0.3, 1.0, 0.5, 0.73, 0.3, 0.46 }},
	'9': { width: 0.58, path: []float64{ 0.48, 0.3, 0.32, 0.04, 0.12, 0.2, 0.15, 0.46, 0.36, 0.52, 0.5, 0.34, 0.42, 1.0 }},

	'.': { width: 0.26, path: []float64{ 0.12, 0.94, 0.15, 1.0 }},
	',': { width: 0.26, path: []float64{ 0.16, 0.9, 0.18, 1.0, 0.06, 1.18 }},
	'!': { width: 0.3, path: []float64{ 0.16, 0.0, 0.13, 0.66, 0.16, 0.94, 0.18, 1.0 }},
	'?': { width: 0.54, path: []float64{ 0.08, 0.2, 0.28, 0.0, 0.48, 0.2, 0.3, 0.45, 0.28, 0.65, 0.28, 0.94, 0.3, 1.0 }},
	'\'': { width: 0.2, path: []float64{ 0.12, 0.0, 0.08, 0.22 }},
	'-': { width: 0.46, path: []float64{ 0.08, 0.6, 0.4, 0.6 }},
	':': { width: 0.26, path: []float64{ 0.13, 0.5, 0.15, 0.56, 0.13, 0.94, 0.15, 1.0 }},
	';': { width: 0.26, path: []float64{ 0.15, 0.5, 0.17, 0.56, 0.16, 0.9, 0.18, 1.0, 0.06, 1.18 }},
}

// Returns the fallback skeleton for a rune. Uppercase letters
// without their own entry reuse the lowercase shape at full height;
// anything else unknown gets a generic placeholder box.
func skeletonFor(r rune) (skeleton, bool) {
	if skel, found := skeletons[r]; found { return skel, false }
	lower := unicode.ToLower(r)
	if skel, found := skeletons[lower]; found && unicode.IsUpper(r) {
		return stretchToCap(skel), false
	}
	return unknownSkeleton, true
}

// Uppercase reuse of a lowercase skeleton: the x-height band is
// stretched to span the full cap height.
func stretchToCap(skel skeleton) skeleton {
	stretched := skeleton{ width: skel.width*1.15, path: make([]float64, len(skel.path)) }
	for i := 0; i < len(skel.path); i += 2 {
		stretched.path[i] = skel.path[i]*1.15
		y := (skel.path[i + 1] - 0.42)/0.58
		if y < 0 { y = y*0.2 } // ascenders flatten near the cap line
		stretched.path[i + 1] = y
	}
	return stretched
}
