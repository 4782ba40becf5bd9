package matchtree

const (
	// MaxDepth caps the level of any node below the root.
	MaxDepth = 10
	// DefaultLevelMultiplier scales a child's score relative to its parent
	// and rewards a kind-only match while scoring.
	DefaultLevelMultiplier = 2.0
	// DefaultExactMultiplier rewards a match whose literal text was seen at
	// the same path in training.
	DefaultExactMultiplier = 5.0
)

// Options holds the scoring multipliers. Zero fields fall back to the defaults.
type Options struct {
	LevelMultiplier float64
	ExactMultiplier float64
}

// DefaultOptions returns the multipliers used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		LevelMultiplier: DefaultLevelMultiplier,
		ExactMultiplier: DefaultExactMultiplier,
	}
}

// WithDefaults replaces non-positive multipliers with the defaults.
func (o Options) WithDefaults() Options {
	if o.LevelMultiplier <= 0 {
		o.LevelMultiplier = DefaultLevelMultiplier
	}
	if o.ExactMultiplier <= 0 {
		o.ExactMultiplier = DefaultExactMultiplier
	}
	return o
}
