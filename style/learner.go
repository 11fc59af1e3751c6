package style

import "math"
import "time"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/train"

// The canonical per-character horizontal advance, in canvas units,
// that the training guide uses. Observed advances in multi-character
// samples are measured against this to obtain the spacing multiplier.
const canonicalAdvance = 32.0

// Profiles derived from fewer samples than this are flagged low
// confidence. See [Learner.SetMinSamples]().
const defaultMinSamples = 10

// Speed bucket thresholds over the average milliseconds between
// consecutive captured points.
const fastPointDelta = 9.0
const mediumPointDelta = 20.0

// A Learner derives style [Profile] values from training sample
// sets. The zero value is ready to use; the only configuration knob
// is the minimum sample count below which profiles get flagged as
// low confidence.
//
// Derivation is a pure function of the sample set: same samples in,
// same profile out (modulo the DerivedAt timestamp). There is no
// hidden incremental state, which is what allows profile rebuilds to
// be atomic replacements.
type Learner struct {
	minSamples int
}

// Sets the minimum number of labeled samples required for a profile
// to be considered trustworthy. Non-positive values restore the
// default (10).
func (self *Learner) SetMinSamples(minSamples int) {
	self.minSamples = minSamples
}

func (self *Learner) getMinSamples() int {
	if self.minSamples <= 0 { return defaultMinSamples }
	return self.minSamples
}

// Derives a style profile with a default [Learner].
func DeriveProfile(samples *train.SampleSet) Profile {
	var learner Learner
	return learner.Derive(samples)
}

// Derives the style profile for the given sample set. With no
// samples at all, the [Default]() profile is returned with the
// LowConfidence flag set.
func (self *Learner) Derive(samples *train.SampleSet) Profile {
	if samples == nil || samples.Count() == 0 {
		profile := Default()
		profile.LowConfidence = true
		profile.DerivedAt = time.Now().UnixMilli()
		return profile
	}

	var slants, baselines, messiness []float64
	var pressures []float64
	var pointDeltas []float64
	multiCharTotal, multiCharConnected := 0, 0
	var spacingRatios []float64

	for _, label := range samples.Labels() {
		labelRunes := len([]rune(label))
		for _, stroke := range samples.Samples(label) {
			if len(stroke.Points) < 2 { continue }
			slants = append(slants, strokeSlantDegrees(stroke.Points))
			baselines = append(baselines, stroke.Bounds().MaxY)
			messiness = append(messiness, strokeRoughness(stroke.Points))
			for _, point := range stroke.Points { pressures = append(pressures, point.Pressure) }
			for i := 1; i < len(stroke.Points); i++ {
				delta := float64(stroke.Points[i].Time - stroke.Points[i - 1].Time)
				if delta > 0 { pointDeltas = append(pointDeltas, delta) }
			}
			if labelRunes > 1 {
				multiCharTotal += 1
				if isContinuousPath(stroke) { multiCharConnected += 1 }
				advance := stroke.Bounds().Width()/float64(labelRunes)
				spacingRatios = append(spacingRatios, advance/canonicalAdvance)
			}
		}
	}

	profile := Profile{
		SlantDegrees: mean(slants),
		SpacingMultiplier: meanOr(spacingRatios, 1.0),
		Messiness: clamp01(mean(messiness)),
		BaselineVariance: stddev(baselines),
		Pressure: derivePressure(pressures),
		ConnectLetters: multiCharTotal > 0 && multiCharConnected*2 > multiCharTotal,
		Speed: deriveSpeed(pointDeltas),
		LowConfidence: samples.Count() < self.getMinSamples(),
		DerivedAt: time.Now().UnixMilli(),
	}
	return profile
}

// Dominant stroke direction as degrees of lean from the vertical
// axis, obtained from the principal axis of the point cloud.
// Positive values lean rightward, clamped to (-90, 90).
func strokeSlantDegrees(points []ink.Point) float64 {
	var meanX, meanY float64
	for _, point := range points {
		meanX += point.X
		meanY += point.Y
	}
	n := float64(len(points))
	meanX /= n
	meanY /= n

	var covXX, covYY, covXY float64
	for _, point := range points {
		dx, dy := point.X - meanX, point.Y - meanY
		covXX += dx*dx
		covYY += dy*dy
		covXY += dx*dy
	}

	// principal axis angle from the vertical; for mostly-horizontal
	// strokes (covXX dominates) the slant signal is meaningless and
	// treated as upright
	if covXX >= covYY { return 0 }
	if covYY == 0 { return 0 }
	// screen y grows downward: a rightward lean has the stroke top to
	// the right of its bottom, which makes covXY negative
	return -math.Atan(covXY/covYY)*180/math.Pi
}

// Normalized standard deviation of point-to-smoothed-path residuals.
// The smoothed path is a moving average over a 5 point window, and
// residuals are normalized by the stroke's bounding diagonal so the
// measure is size-invariant.
func strokeRoughness(points []ink.Point) float64 {
	if len(points) < 5 { return 0 }
	bounds := boundsOf(points)
	diagonal := math.Hypot(bounds.Width(), bounds.Height())
	if diagonal == 0 { return 0 }

	var residuals []float64
	for i := 2; i < len(points) - 2; i++ {
		var smoothX, smoothY float64
		for j := i - 2; j <= i + 2; j++ {
			smoothX += points[j].X
			smoothY += points[j].Y
		}
		smoothX /= 5
		smoothY /= 5
		residuals = append(residuals, math.Hypot(points[i].X - smoothX, points[i].Y - smoothY)/diagonal)
	}

	// scaled so that a visibly shaky hand lands around 0.5
	return stddev(residuals)*40
}

// Reports whether a multi-character sample was written without
// lifting the pen. Capture merges a lift-and-continue into a spatial
// jump, so any consecutive-point gap larger than a quarter of the
// sample width reads as a pen lift.
func isContinuousPath(stroke ink.Stroke) bool {
	width := stroke.Bounds().Width()
	if width == 0 { return true }
	threshold := width*0.25
	for i := 1; i < len(stroke.Points); i++ {
		if stroke.Points[i - 1].DistanceTo(stroke.Points[i]) > threshold { return false }
	}
	return true
}

func derivePressure(pressures []float64) PressureDynamics {
	if len(pressures) == 0 {
		return Default().Pressure
	}
	dynamics := PressureDynamics{ Min: pressures[0], Max: pressures[0] }
	for _, pressure := range pressures {
		if pressure < dynamics.Min { dynamics.Min = pressure }
		if pressure > dynamics.Max { dynamics.Max = pressure }
	}
	dynamics.Avg = mean(pressures)
	dynamics.Variance = variance(pressures)
	return dynamics
}

func deriveSpeed(pointDeltas []float64) SpeedClass {
	if len(pointDeltas) == 0 { return Medium }
	avg := mean(pointDeltas)
	switch {
	case avg <= fastPointDelta: return Fast
	case avg <= mediumPointDelta: return Medium
	default: return Slow
	}
}

func boundsOf(points []ink.Point) ink.Rect {
	stroke := ink.Stroke{ Points: points }
	return stroke.Bounds()
}

func mean(values []float64) float64 {
	if len(values) == 0 { return 0 }
	var sum float64
	for _, value := range values { sum += value }
	return sum/float64(len(values))
}

func meanOr(values []float64, fallback float64) float64 {
	if len(values) == 0 { return fallback }
	return mean(values)
}

func variance(values []float64) float64 {
	if len(values) < 2 { return 0 }
	avg := mean(values)
	var sum float64
	for _, value := range values {
		sum += (value - avg)*(value - avg)
	}
	return sum/float64(len(values))
}

func stddev(values []float64) float64 {
	return math.Sqrt(variance(values))
}

func clamp01(value float64) float64 {
	if value < 0 { return 0 }
	if value > 1 { return 1 }
	return value
}
