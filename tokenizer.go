package cursive

import "github.com/bilalghalib/Cursive-sub000/train"

// Token kinds produced by tokenize. Glyph tokens carry a label;
// space and break tokens only move the pen.
const (
	tokenGlyph uint8 = iota
	tokenSpace
	tokenBreak
)

type token struct {
	label string
	kind uint8
	trained bool
}

// Splits the text into glyph, space and line break tokens, matching
// the longest trained label at each position. Greedy longest-match
// means a trained ligature like "th" wins over two separate "t" and
// "h" lookups, so the user's joined forms are reused directly.
//
// Tokenization depends only on the text and the set of trained
// labels, never on randomness. Everything downstream that must be
// structurally stable across calls builds on this.
func tokenize(text string, samples *train.SampleSet) []token {
	runes := []rune(text)
	lookahead := samples.LongestLabelLen()
	if lookahead < 1 { lookahead = 1 }

	tokens := make([]token, 0, len(runes))
	for i := 0; i < len(runes); {
		switch runes[i] {
		case '\n':
			tokens = append(tokens, token{ kind: tokenBreak })
			i += 1
			continue
		case ' ', '\t':
			tokens = append(tokens, token{ kind: tokenSpace })
			i += 1
			continue
		}

		// try multi-rune labels first, longest to shortest
		maxLen := lookahead
		if i + maxLen > len(runes) { maxLen = len(runes) - i }
		matched := false
		for length := maxLen; length >= 2; length-- {
			if hasSeparator(runes[i : i + length]) { continue }
			label := string(runes[i : i + length])
			if samples.HasLabel(label) {
				tokens = append(tokens, token{ label: label, kind: tokenGlyph, trained: true })
				i += length
				matched = true
				break
			}
		}
		if matched { continue }

		label := string(runes[i])
		tokens = append(tokens, token{ label: label, kind: tokenGlyph, trained: samples.HasLabel(label) })
		i += 1
	}
	return tokens
}

func hasSeparator(runes []rune) bool {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' { return true }
	}
	return false
}
