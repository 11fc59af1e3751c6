package train

import "sort"

import "github.com/bilalghalib/Cursive-sub000/ink"

// A SampleSet maps training labels to their recorded stroke
// variations. Each variation is one continuous stroke: a sample for
// the ligature "th" drawn without lifting the pen is a single stroke
// labeled "th".
//
// The zero value is ready to use.
type SampleSet struct {
	samples map[string][]ink.Stroke
}

// Creates an empty [SampleSet].
func NewSampleSet() *SampleSet { return &SampleSet{} }

// Records a new variation for the given label. The stroke is stamped
// with the label, the next variation index and the curriculum phase
// the label belongs to (if any). Empty labels and empty strokes are
// ignored silently, consistent with how input anomalies are handled
// at capture time.
func (self *SampleSet) Add(label string, stroke ink.Stroke) {
	if label == "" || stroke.IsEmpty() { return }
	if self.samples == nil { self.samples = make(map[string][]ink.Stroke, 64) }
	stroke = stroke.Clone() // the set owns its strokes
	stroke.Character = label
	stroke.VariationIndex = len(self.samples[label]) + 1
	stroke.Phase = PhaseOf(label)
	self.samples[label] = append(self.samples[label], stroke)
}

// Returns the variations recorded for the given label, in recording
// order, or nil if the label has no samples. The returned slice is
// internal; treat it as read-only.
func (self *SampleSet) Samples(label string) []ink.Stroke {
	if self.samples == nil { return nil }
	return self.samples[label]
}

// Returns true if the label has at least one recorded variation.
func (self *SampleSet) HasLabel(label string) bool {
	return len(self.Samples(label)) > 0
}

// Returns all labels with at least one sample, sorted.
func (self *SampleSet) Labels() []string {
	labels := make([]string, 0, len(self.samples))
	for label := range self.samples { labels = append(labels, label) }
	sort.Strings(labels)
	return labels
}

// Returns the total number of recorded samples across all labels.
func (self *SampleSet) Count() int {
	total := 0
	for _, variations := range self.samples { total += len(variations) }
	return total
}

// Returns the length of the longest trained label, in runes. The
// synthesizer's greedy tokenizer uses this to bound its lookahead.
func (self *SampleSet) LongestLabelLen() int {
	longest := 0
	for label := range self.samples {
		length := len([]rune(label))
		if length > longest { longest = length }
	}
	return longest
}

// Exposes the underlying label-to-variations mapping for
// serialization. The map and its slices are internal; treat them
// as read-only.
func (self *SampleSet) Map() map[string][]ink.Stroke {
	if self.samples == nil { return map[string][]ink.Stroke{} }
	return self.samples
}

// Rebuilds a sample set from a previously serialized mapping, e.g.
// coming from the store package. Strokes are cloned in, and labeling
// metadata is re-stamped for consistency.
func FromMap(samples map[string][]ink.Stroke) *SampleSet {
	set := NewSampleSet()
	for label, variations := range samples {
		for _, stroke := range variations {
			set.Add(label, stroke)
		}
	}
	return set
}
