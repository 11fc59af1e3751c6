package cursive

import "image/color"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/mask"
import "github.com/bilalghalib/Cursive-sub000/cache"
import "github.com/bilalghalib/Cursive-sub000/style"
import "github.com/bilalghalib/Cursive-sub000/train"
import "github.com/bilalghalib/Cursive-sub000/connect"

// This file contains the Synthesizer type definition and all the
// getter and setter methods. Actual operations are split in other
// files.

// The [Synthesizer] is the heart of cursive and the type around
// which everything else revolves.
//
// Synthesizers have three groups of functions:
//  - Simple functions to adjust basic properties like samples,
//    style profile, glyph height, color or mood.
//  - Simple functions to synthesize, measure and draw text.
//  - [Synthesizer.NewFeed](), the gateway to streaming synthesis
//    for progressive on-canvas rendering.
//
// The zero value is valid and will happily write with procedural
// fallback glyphs and a neutral style. In most practical scenarios,
// you will want to set a sample set, a profile derived from it and
// a cache.
//
// Synthesizers are not safe for concurrent use.
type Synthesizer struct {
	samples *train.SampleSet
	connections *connect.Table
	profile style.Profile
	mood style.Emotional

	inkColor color.RGBA
	baseWidth float64
	glyphHeight float64
	maxLineWidth float64 // zero means no wrapping
	lineHeight float64   // zero means derived from glyph height

	maxConnectDistance float64
	maxConnectAngleDelta float64

	outliner ink.Outliner
	rasterizer mask.Rasterizer
	cacheHandler cache.MaskCacheHandler

	seed int64
	seeded bool
	initialized bool
}

// Creates a new [Synthesizer].
//
// Without further configuration, the synthesizer writes every
// character with procedural fallback glyphs and the neutral
// [style.Default]() profile. Setting a trained sample set through
// [Synthesizer.SetSamples]() is what makes the output personal.
func NewSynthesizer() *Synthesizer {
	synthesizer := &Synthesizer{}
	synthesizer.initProps()
	return synthesizer
}

// Keeps the zero value usable without making every field access
// check for defaults.
func (self *Synthesizer) initProps() {
	if self.initialized { return }
	self.profile = style.Default()
	self.mood = style.Neutral()
	self.inkColor = color.RGBA{ 0, 0, 0, 255 }
	self.baseWidth = 3.0
	self.glyphHeight = 32.0
	self.maxConnectDistance = connect.DefaultMaxDistance
	self.maxConnectAngleDelta = connect.DefaultMaxAngleDelta
	self.initialized = true
}

// Sets the training sample set glyphs are taken from. A nil set is
// valid and means every glyph uses the procedural fallback.
//
// The sample set is read-only from the synthesizer's perspective.
// If you mutate it during training, derive a new profile and
// connection table and pass all three again; the synthesizer never
// observes half-updated styles.
func (self *Synthesizer) SetSamples(samples *train.SampleSet) {
	self.initProps()
	self.samples = samples
}

// Sets the connection point table used to decide when adjacent
// glyphs are joined with a bridging curve. A nil table disables
// joins (every glyph starts with a pen lift).
func (self *Synthesizer) SetConnections(connections *connect.Table) {
	self.initProps()
	self.connections = connections
}

// Sets the style profile applied during synthesis. See
// [style.DeriveProfile]().
func (self *Synthesizer) SetProfile(profile style.Profile) {
	self.initProps()
	self.profile = profile
}

// Returns the current style profile.
func (self *Synthesizer) GetProfile() style.Profile {
	self.initProps()
	return self.profile
}

// Sets the emotional perturbation applied on top of the profile.
// The value is clamped; see [style.Emotional.Clamped](). Use
// [style.Resolve]() to obtain one from a mood tag or response text,
// or [Synthesizer.ClearMood]() to go back to neutral.
func (self *Synthesizer) SetMood(mood style.Emotional) {
	self.initProps()
	self.mood = mood.Clamped()
}

// Restores the neutral mood (no perturbation over the profile).
func (self *Synthesizer) ClearMood() {
	self.initProps()
	self.mood = style.Neutral()
}

// Sets the ink color for synthesized strokes. Black by default.
func (self *Synthesizer) SetColor(inkColor color.RGBA) {
	self.initProps()
	self.inkColor = inkColor
}

// Sets the base stroke width for synthesized strokes, in canvas
// units. The effective ink width still varies with the pressure
// curve, like human strokes do. Non-positive widths panic.
func (self *Synthesizer) SetBaseWidth(width float64) {
	if width <= 0 { panic("stroke width must be positive") }
	self.initProps()
	self.baseWidth = width
}

// Sets the target glyph height in canvas units. Trained samples and
// fallback glyphs are both scaled to this height. Non-positive
// heights panic.
func (self *Synthesizer) SetGlyphHeight(height float64) {
	if height <= 0 { panic("glyph height must be positive") }
	self.initProps()
	self.glyphHeight = height
}

// Returns the target glyph height in canvas units.
func (self *Synthesizer) GetGlyphHeight() float64 {
	self.initProps()
	return self.glyphHeight
}

// Sets the maximum line width before word wrapping kicks in, in
// canvas units measured from the starting pen position. Zero
// disables wrapping, which is also the default.
func (self *Synthesizer) SetMaxLineWidth(width float64) {
	if width < 0 { panic("max line width can't be negative") }
	self.initProps()
	self.maxLineWidth = width
}

// Sets the vertical advance between lines, in canvas units. Zero
// restores the default, which is derived from the glyph height.
func (self *Synthesizer) SetLineHeight(height float64) {
	if height < 0 { panic("line height can't be negative") }
	self.initProps()
	self.lineHeight = height
}

func (self *Synthesizer) getLineHeight() float64 {
	if self.lineHeight > 0 { return self.lineHeight }
	return self.glyphHeight*1.6
}

// Adjusts the thresholds passed to [connect.CanConnect]() when
// deciding whether to join two adjacent glyphs.
func (self *Synthesizer) SetConnectThresholds(maxDistance, maxAngleDelta float64) {
	if maxDistance < 0 || maxAngleDelta < 0 { panic("connection thresholds can't be negative") }
	self.initProps()
	self.maxConnectDistance = maxDistance
	self.maxConnectAngleDelta = maxAngleDelta
}

// Fixes the random seed used for jitter, pressure perturbation and
// synthetic timestamps. With a fixed seed, synthesizing the same
// text twice produces identical strokes. Mostly useful for tests
// and reproducible exports.
func (self *Synthesizer) SetSeed(seed int64) {
	self.initProps()
	self.seed = seed
	self.seeded = true
}

// Removes any fixed seed set through [Synthesizer.SetSeed]().
// Glyph count and advances remain stable across calls, but jitter
// varies again.
func (self *Synthesizer) ClearSeed() {
	self.initProps()
	self.seeded = false
}

// Sets the rasterizer used by [Synthesizer.Draw](). You don't need
// to call this unless you want a custom rasterizer; the default one
// is created on demand.
func (self *Synthesizer) SetRasterizer(rasterizer mask.Rasterizer) {
	self.initProps()
	self.rasterizer = rasterizer
	if self.cacheHandler != nil {
		self.cacheHandler.NotifyRasterizerChange(rasterizer)
	}
}

func (self *Synthesizer) getRasterizer() mask.Rasterizer {
	if self.rasterizer == nil {
		self.rasterizer = &mask.DefaultRasterizer{}
		if self.cacheHandler != nil {
			self.cacheHandler.NotifyRasterizerChange(self.rasterizer)
		}
	}
	return self.rasterizer
}

// Sets the cache handler used by [Synthesizer.Draw](). See
// [cache.NewHandler](). A nil handler disables caching, which is
// also the default.
func (self *Synthesizer) SetCacheHandler(handler cache.MaskCacheHandler) {
	self.initProps()
	self.cacheHandler = handler
	if handler == nil { return }
	handler.NotifyRasterizerChange(self.getRasterizer())
	handler.NotifyScaleChange(1.0)
}

// Adjusts the outliner that converts synthesized stroke paths into
// fill polygons for drawing. See [ink.Outliner].
func (self *Synthesizer) SetOutliner(outliner ink.Outliner) {
	self.initProps()
	self.outliner = outliner
}

func (self *Synthesizer) getSamples() *train.SampleSet {
	if self.samples == nil { return train.NewSampleSet() }
	return self.samples
}
