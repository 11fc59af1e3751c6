package style

// Buckets for writing speed, derived from the average time between
// captured points.
type SpeedClass uint8

const (
	Slow SpeedClass = iota
	Medium
	Fast
)

// Returns "slow", "medium" or "fast".
func (self SpeedClass) String() string {
	switch self {
	case Fast: return "fast"
	case Medium: return "medium"
	default: return "slow"
	}
}

// Returns the typical gap between consecutive ink points for this
// speed class, in milliseconds. Synthesis uses it as the base for
// its randomized synthetic timestamps.
func (self SpeedClass) PointDeltaMillis() int64 {
	switch self {
	case Fast: return 7
	case Medium: return 14
	default: return 26
	}
}

// Pooled pressure statistics across every point of every training
// sample.
type PressureDynamics struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	Variance float64 `json:"variance"`
}

// A Profile is the aggregated statistical description of one user's
// handwriting, derived from the training sample set. Exactly one
// profile is active per user at a time; it is always derived, never
// hand-edited, and rebuilt from scratch whenever the sample set
// changes (no incremental patching, no drift).
type Profile struct {
	// Dominant stroke slant, in degrees from vertical. Positive
	// values lean rightward (the common case).
	SlantDegrees float64 `json:"slantDegrees"`

	// Observed inter-character gap relative to the canonical gap.
	// 1.0 means the user spaces characters like the training guide.
	SpacingMultiplier float64 `json:"spacingMultiplier"`

	// Normalized deviation of the user's strokes from their own
	// smoothed path, in [0, 1]. Tidy writers sit near zero.
	Messiness float64 `json:"messiness"`

	// Standard deviation of each sample's vertical resting position
	// relative to the training guide baseline, in canvas units.
	BaselineVariance float64 `json:"baselineVarianceDeviation"`

	Pressure PressureDynamics `json:"pressureDynamics"`

	// True when the majority of multi-character samples were written
	// without lifting the pen.
	ConnectLetters bool `json:"connectLetters"`

	Speed SpeedClass `json:"speedClass"`

	// Set when the profile was derived from fewer samples than the
	// learner's minimum. Not an error: callers decide whether to use
	// the under-fit personal profile or fall back to [Default]().
	LowConfidence bool `json:"lowConfidence"`

	// Unix milliseconds at derivation time.
	DerivedAt int64 `json:"derivedAt"`
}

// Returns a generic, neutral profile: slight rightward slant, exact
// canonical spacing, moderate tidiness. Used as the fallback when no
// training data exists or when a derived profile is flagged low
// confidence and the caller prefers safety over personality.
func Default() Profile {
	return Profile{
		SlantDegrees: 4,
		SpacingMultiplier: 1,
		Messiness: 0.15,
		BaselineVariance: 1.2,
		Pressure: PressureDynamics{ Min: 0.3, Max: 0.8, Avg: 0.55, Variance: 0.02 },
		ConnectLetters: false,
		Speed: Medium,
	}
}
