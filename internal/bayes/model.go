package bayes

import (
	"errors"
	"math"
	"slices"

	"codeclass/internal/freq"
)

var (
	// ErrNoLanguages is returned when training data holds no language.
	ErrNoLanguages = errors.New("bayes: no languages to train")
	// ErrNoSamples is returned when a language has no frequency sample.
	ErrNoSamples = errors.New("bayes: language has no samples")
)

// Model is a trained frequency classifier.
type Model interface {
	// Languages returns the trained languages in sorted order.
	Languages() []string
	// Classify returns one score in [0,1] per language; the best is 1
	// unless every language scores 0.
	Classify(query freq.Table) map[string]float64
}

// normalizeByMax divides every score by the maximum; non-positive or
// non-finite maxima yield all zeros.
func normalizeByMax(raw map[string]float64) map[string]float64 {
	maxScore := 0.0
	for _, v := range raw {
		if finite(v) && v > maxScore {
			maxScore = v
		}
	}
	out := make(map[string]float64, len(raw))
	for lang, v := range raw {
		if maxScore <= 0 || !finite(v) || v < 0 {
			out[lang] = 0
			continue
		}
		out[lang] = v / maxScore
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
