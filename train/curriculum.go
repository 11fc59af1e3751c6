package train

import "strconv"
import "strings"

// A curriculum phase: a named stage of the training flow and the
// labels it asks the user to write. Every phase asks for several
// variations per label, but a single one already unlocks synthesis
// for that label.
type Phase struct {
	Name string
	Labels []string
}

// The number of variations the training flow requests per label.
// More variations mean less visible repetition during synthesis.
const VariationsPerLabel = 3

// The training curriculum, in the order the training flow presents
// it. Ligatures are trained as single continuous samples so the
// synthesizer can reuse their joined form directly; the word phase
// exists mostly to measure spacing and letter connection habits.
var Curriculum = []Phase{
	{ Name: "lowercase", Labels: splitChars("abcdefghijklmnopqrstuvwxyz") },
	{ Name: "uppercase", Labels: splitChars("ABCDEFGHIJKLMNOPQRSTUVWXYZ") },
	{ Name: "digits", Labels: splitChars("0123456789") },
	{ Name: "punctuation", Labels: splitChars(".,!?'-") },
	{ Name: "ligatures", Labels: []string{ "th", "he", "in", "er", "an", "re", "on", "at", "ing", "ion" } },
	{ Name: "words", Labels: []string{ "the", "and", "you", "was", "hello" } },
}

func splitChars(chars string) []string {
	labels := make([]string, 0, len(chars))
	for _, r := range chars { labels = append(labels, string(r)) }
	return labels
}

// Returns the name of the curriculum phase the given label belongs
// to, or the empty string for labels outside the curriculum (users
// can train arbitrary extra labels; they simply don't belong to a
// phase).
func PhaseOf(label string) string {
	for _, phase := range Curriculum {
		for _, phaseLabel := range phase.Labels {
			if phaseLabel == label { return phase.Name }
		}
	}
	return ""
}

// Returns the curriculum labels that don't have any sample in the
// given set yet, in curriculum order. An empty result means the
// whole curriculum is covered and synthesis won't need procedural
// fallbacks for standard text.
func MissingLabels(set *SampleSet) []string {
	var missing []string
	for _, phase := range Curriculum {
		for _, label := range phase.Labels {
			if !set.HasLabel(label) { missing = append(missing, label) }
		}
	}
	return missing
}

// Returns a short human-readable summary of training progress, used
// by the CLI ("lowercase 20/26, uppercase 0/26, ...").
func Progress(set *SampleSet) string {
	var report strings.Builder
	for i, phase := range Curriculum {
		have := 0
		for _, label := range phase.Labels {
			if set.HasLabel(label) { have += 1 }
		}
		if i > 0 { report.WriteString(", ") }
		report.WriteString(phase.Name)
		report.WriteString(" ")
		report.WriteString(strconv.Itoa(have))
		report.WriteString("/")
		report.WriteString(strconv.Itoa(len(phase.Labels)))
	}
	return report.String()
}
