package classifier

import (
	"io"

	"github.com/charmbracelet/log"

	"codeclass/internal/bayes"
	"codeclass/internal/freq"
	"codeclass/internal/matchtree"
	"codeclass/internal/modelcache"
	"codeclass/internal/observ"
	"codeclass/internal/progress"
)

// FrequencyModel selects the frequency classifier.
type FrequencyModel string

const (
	// FreqGaussian is the Gaussian naive Bayes model.
	FreqGaussian FrequencyModel = "gaussian"
	// FreqDifference is the frequency-difference scorer.
	FreqDifference FrequencyModel = "difference"
)

// ParseFrequencyModel accepts "gaussian" or "difference"; "" is gaussian.
func ParseFrequencyModel(s string) (FrequencyModel, bool) {
	switch FrequencyModel(s) {
	case "", FreqGaussian:
		return FreqGaussian, true
	case FreqDifference:
		return FreqDifference, true
	}
	return "", false
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMatchTree sets the match-tree multipliers.
func WithMatchTree(o matchtree.Options) Option {
	return func(c *Classifier) { c.mtOpts = o.WithDefaults() }
}

// WithFrequency sets the frequency extraction thresholds.
func WithFrequency(o freq.Options) Option {
	return func(c *Classifier) { c.freqOpts = o.WithDefaults() }
}

// WithBayes sets the Gaussian estimate parameters.
func WithBayes(o bayes.Options) Option {
	return func(c *Classifier) { c.bayesOpts = o.WithDefaults() }
}

// WithFrequencyModel selects the frequency classifier.
func WithFrequencyModel(m FrequencyModel) Option {
	return func(c *Classifier) {
		if m != "" {
			c.model = m
		}
	}
}

// WithCache stores and restores trained models keyed by corpus digest.
func WithCache(cache *modelcache.Cache) Option {
	return func(c *Classifier) { c.cache = cache }
}

// WithProgress receives training events.
func WithProgress(s progress.Sink) Option {
	return func(c *Classifier) {
		if s != nil {
			c.sink = s
		}
	}
}

// WithTimer records training and classification phases.
func WithTimer(t *observ.Timer) Option {
	return func(c *Classifier) { c.timer = t }
}

// WithWorkers bounds the number of languages trained at once; n <= 0
// means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Classifier) { c.workers = n }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
