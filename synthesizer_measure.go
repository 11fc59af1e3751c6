package cursive

// Measures the pen-advance dimensions of the given text without
// synthesizing any stroke: the width of the widest line and the
// total height, in canvas units.
//
// Measuring is fully deterministic. Two calls with the same text
// and configuration always agree, and they also agree with the
// layout [Synthesizer.Synthesize]() will produce, jitter aside.
func (self *Synthesizer) Measure(text string) (width, height float64) {
	self.initProps()
	tokens := tokenize(text, self.getSamples())

	lineWidth := 0.0
	lines := 1
	ordinal := 0
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.kind {
		case tokenSpace:
			lineWidth += self.spaceAdvance()
			i += 1
		case tokenBreak:
			if lineWidth > width { width = lineWidth }
			lineWidth = 0
			lines += 1
			i += 1
		default:
			// words wrap as a unit, mirroring the feed's layout
			wordWidth := 0.0
			wordGlyphs := 0
			for j := i; j < len(tokens) && tokens[j].kind == tokenGlyph; j++ {
				wordWidth += self.tokenAdvance(tokens[j], ordinal + wordGlyphs)
				wordGlyphs += 1
			}
			if self.maxLineWidth > 0 && lineWidth > 0 && lineWidth + wordWidth > self.maxLineWidth {
				if lineWidth > width { width = lineWidth }
				lineWidth = 0
				lines += 1
			}
			lineWidth += wordWidth
			ordinal += wordGlyphs
			i += wordGlyphs
		}
	}
	if lineWidth > width { width = lineWidth }
	height = self.glyphHeight + float64(lines - 1)*self.getLineHeight()
	return width, height
}
