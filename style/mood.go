package style

import "strings"

// An Emotional style is a perturbation applied on top of a [Profile]
// during synthesis to convey a mood in the generated handwriting.
//
// Jitter, CharacterVariation and Thickness are multipliers over the
// profile's own values (1 = unchanged); Slant is additive degrees;
// BaselineVariation is a multiplier over the profile's baseline
// variance.
type Emotional struct {
	Jitter float64 `json:"jitter"`
	Slant float64 `json:"slant"`
	BaselineVariation float64 `json:"baselineVariation"`
	CharacterVariation float64 `json:"characterVariation"`
	Thickness float64 `json:"thickness"`
}

// Bounds external values into ranges the geometry math tolerates.
// Arbitrary JSON from the chat collaborator must pass through here
// before reaching the synthesizer.
func (self Emotional) Clamped() Emotional {
	clampMul := func(value float64) float64 {
		if value < 0.1 { return 0.1 }
		if value > 4 { return 4 }
		return value
	}
	self.Jitter = clampMul(self.Jitter)
	self.CharacterVariation = clampMul(self.CharacterVariation)
	self.Thickness = clampMul(self.Thickness)
	self.BaselineVariation = clampMul(self.BaselineVariation)
	if self.Slant < -30 { self.Slant = -30 }
	if self.Slant >  30 { self.Slant =  30 }
	return self
}

// Returns the identity perturbation: multipliers at 1, no extra
// slant. Applying it leaves a profile's handwriting unchanged. This
// is what the synthesizer uses when no mood override is supplied.
func Neutral() Emotional {
	return Emotional{ Jitter: 1, Slant: 0, BaselineVariation: 1, CharacterVariation: 1, Thickness: 1 }
}

// The named mood presets. Fixed tuples: the same mood always maps to
// the exact same perturbation.
var presets = map[string]Emotional{
	"excited":    { Jitter: 1.8, Slant:  8, BaselineVariation: 2.2, CharacterVariation: 1.6, Thickness: 1.15 },
	"calm":       { Jitter: 0.6, Slant:  0, BaselineVariation: 0.6, CharacterVariation: 0.7, Thickness: 0.95 },
	"formal":     { Jitter: 0.3, Slant:  2, BaselineVariation: 0.3, CharacterVariation: 0.5, Thickness: 1.0  },
	"casual":     { Jitter: 1.0, Slant:  4, BaselineVariation: 1.0, CharacterVariation: 1.0, Thickness: 1.0  },
	"urgent":     { Jitter: 2.2, Slant: 12, BaselineVariation: 2.0, CharacterVariation: 1.3, Thickness: 1.25 },
	"thoughtful": { Jitter: 0.8, Slant:  1, BaselineVariation: 0.9, CharacterVariation: 0.9, Thickness: 0.9  },
}

// Small keyword tables for the best-effort text scan fallback. This
// is knowingly fuzzy; the authoritative signal is the explicit mood
// tag from the chat collaborator, and anything fancier than substring
// matching belongs to an NLP pipeline this engine doesn't want.
var moodKeywords = []struct {
	mood string
	keywords []string
}{
	{ "excited", []string{ "amazing", "awesome", "excit", "incredible", "wonderful", "can't wait", "woohoo" } },
	{ "urgent", []string{ "urgent", "immediately", "asap", "right away", "hurry", "deadline" } },
	{ "calm", []string{ "calm", "peaceful", "relax", "gently", "no rush", "take your time" } },
	{ "formal", []string{ "sincerely", "regards", "pursuant", "hereby", "respectfully" } },
	{ "thoughtful", []string{ "perhaps", "i wonder", "consider", "reflect", "on the other hand", "hmm" } },
}

// Returns the preset for the given mood name and whether the name is
// a known preset. Lookup is case-insensitive.
func Preset(mood string) (Emotional, bool) {
	preset, found := presets[strings.ToLower(strings.TrimSpace(mood))]
	return preset, found
}

// Resolves the emotional style for a response. Resolution order:
//  1. An explicit mood hint from the chat collaborator, when it names
//     a known preset (authoritative).
//  2. A keyword scan over the response text (best-effort fallback).
//  3. The "casual" default.
//
// Resolve never fails: it always returns a complete, valid style.
func Resolve(moodHint, responseText string) Emotional {
	if preset, found := Preset(moodHint); found { return preset }
	lowered := strings.ToLower(responseText)
	if lowered != "" {
		for _, entry := range moodKeywords {
			for _, keyword := range entry.keywords {
				if strings.Contains(lowered, keyword) {
					preset, _ := Preset(entry.mood)
					return preset
				}
			}
		}
	}
	preset, _ := Preset("casual")
	return preset
}
