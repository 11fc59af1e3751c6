package cursive

import "context"
import "math/rand"
import "time"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/connect"

// Feeds are the streaming mechanism of synthesis: instead of
// materializing every stroke up front like [Synthesizer.Synthesize](),
// a feed emits strokes one at a time so the caller can render
// progressively while the handwriting "appears" on the canvas.
//
// A feed is a lazy, finite, restartable producer. Cancellation is
// checked between glyph emissions, never mid-glyph: whatever was
// already emitted stays whole, and nothing half-drawn ever comes
// out of a feed.
//
// The feed captures the synthesizer's configuration lazily: it
// reads properties as it advances, so reconfiguring the synthesizer
// mid-stream is possible but rarely what you want. In most cases,
// creating a feed per text and draining it is the sane approach.
type Feed struct {
	synthesizer *Synthesizer
	tokens []token
	seed int64

	index int
	glyphOrdinal int
	originX, originY float64
	penX, penY float64
	clock int64
	rng *rand.Rand
	prev ink.Stroke
	prevConnectable bool
	queued *ink.Stroke
}

// Creates a [Feed] that will emit the synthetic strokes for the
// given text, starting at pen position (0, 0). Often chained as
// follows:
//   feed := synth.NewFeed("hello").At(x, y)
//
// If the synthesizer has a fixed seed, every feed created from it
// replays the exact same strokes. Otherwise each feed gets its own
// seed and only the glyph structure is stable.
func (self *Synthesizer) NewFeed(text string) *Feed {
	self.initProps()
	seed := self.seed
	if !self.seeded { seed = time.Now().UnixNano() }
	feed := &Feed{
		synthesizer: self,
		tokens: tokenize(text, self.getSamples()),
		seed: seed,
	}
	feed.Rewind()
	return feed
}

// Sets the feed's starting pen position, in canvas units. The pen
// position is the left end of the baseline of the first glyph.
// Resets any progress, like [Feed.Rewind]().
func (self *Feed) At(x, y float64) *Feed {
	self.originX, self.originY = x, y
	self.Rewind()
	return self
}

// Restarts the feed from the first token. The internal random
// source is re-seeded, so a rewound feed replays the exact same
// strokes it already emitted.
func (self *Feed) Rewind() {
	self.index = 0
	self.glyphOrdinal = 0
	self.penX, self.penY = self.originX, self.originY
	self.clock = 0
	self.rng = rand.New(rand.NewSource(self.seed))
	self.prev = ink.Stroke{}
	self.prevConnectable = false
	self.queued = nil
}

// Emits the next synthetic stroke. The second result is false once
// the feed is exhausted. Cancelling the context stops the stream
// between glyphs; the error is then the context's error and no
// stroke is returned.
func (self *Feed) Next(ctx context.Context) (ink.Stroke, bool, error) {
	if err := ctx.Err(); err != nil { return ink.Stroke{}, false, err }
	if self.queued != nil {
		stroke := *self.queued
		self.queued = nil
		return stroke, true, nil
	}

	synth := self.synthesizer
	for self.index < len(self.tokens) {
		tok := self.tokens[self.index]
		switch tok.kind {
		case tokenSpace:
			self.index += 1
			self.penX += synth.spaceAdvance()
			self.clock += 2*synth.profile.Speed.PointDeltaMillis()
			self.prevConnectable = false
		case tokenBreak:
			self.index += 1
			self.lineBreak()
		default:
			if synth.maxLineWidth > 0 && self.atWordStart() {
				width := self.measureWord()
				if self.penX > self.originX && self.penX + width - self.originX > synth.maxLineWidth {
					self.lineBreak()
				}
			}
			stroke, advance, clock := synth.glyphInstance(tok, self.glyphOrdinal, self.penX, self.penY, self.rng, self.clock)
			self.index += 1
			self.glyphOrdinal += 1
			self.penX += advance
			self.clock = clock + synth.profile.Speed.PointDeltaMillis()

			var bridge *ink.Stroke
			if self.prevConnectable && tok.trained && synth.profile.ConnectLetters {
				if connect.CanConnect(self.prev, stroke, synth.maxConnectDistance, synth.maxConnectAngleDelta) {
					points := connect.CreateConnector(self.prev, stroke)
					if len(points) > 0 {
						joint := ink.NewStroke(points, stroke.Color, stroke.Width, ink.Synthetic)
						bridge = &joint
					}
				}
			}
			self.prev = stroke
			self.prevConnectable = tok.trained
			if bridge != nil {
				self.queued = &stroke
				return *bridge, true, nil
			}
			return stroke, true, nil
		}
	}
	return ink.Stroke{}, false, nil
}

func (self *Feed) lineBreak() {
	self.penX = self.originX
	self.penY += self.synthesizer.getLineHeight()
	self.prevConnectable = false
}

// True when the current token begins a word (start of text or
// right after a space or line break). Word wrapping only breaks at
// these positions, never mid-word and never mid-glyph.
func (self *Feed) atWordStart() bool {
	if self.index == 0 { return true }
	return self.tokens[self.index - 1].kind != tokenGlyph
}

// Measures the advance of the word starting at the current token.
// Purely deterministic, so wrapping decisions come out the same on
// every synthesis of the same text.
func (self *Feed) measureWord() float64 {
	width := 0.0
	ordinal := self.glyphOrdinal
	for i := self.index; i < len(self.tokens) && self.tokens[i].kind == tokenGlyph; i++ {
		width += self.synthesizer.tokenAdvance(self.tokens[i], ordinal)
		ordinal += 1
	}
	return width
}
