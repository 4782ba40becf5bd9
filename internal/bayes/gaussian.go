package bayes

import (
	"fmt"
	"math"

	"codeclass/internal/freq"
)

const (
	// DefaultMinVariance floors every estimated variance. It applies when a
	// language has a single sample or a feature never varies.
	DefaultMinVariance = 1e-4
	// DefaultScale multiplies the density product of every language.
	DefaultScale = 0.5
)

// Options tunes the Gaussian estimate.
type Options struct {
	MinVariance float64
	Scale       float64
}

// DefaultOptions returns the values used when nothing is configured.
func DefaultOptions() Options {
	return Options{MinVariance: DefaultMinVariance, Scale: DefaultScale}
}

// WithDefaults replaces unset fields with the package defaults.
func (o Options) WithDefaults() Options {
	if o.MinVariance <= 0 {
		o.MinVariance = DefaultMinVariance
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// Feature is the normal distribution of one feature within one language.
type Feature struct {
	Mean     float64
	Variance float64
}

// Gaussian is a trained Gaussian naive Bayes classifier.
type Gaussian struct {
	opts      Options
	vocab     freq.Vocabulary
	languages []string
	features  map[string][]Feature // indexed like vocab
	samples   map[string]int
}

// TrainGaussian estimates mean and unbiased variance of every vocabulary
// feature from the per-file samples of each language.
func TrainGaussian(vocab freq.Vocabulary, samples map[string][]freq.Table, opts Options) (*Gaussian, error) {
	if len(samples) == 0 {
		return nil, ErrNoLanguages
	}
	opts = opts.WithDefaults()
	g := &Gaussian{
		opts:      opts,
		vocab:     vocab,
		languages: sortedKeys(samples),
		features:  make(map[string][]Feature, len(samples)),
		samples:   make(map[string]int, len(samples)),
	}
	for _, lang := range g.languages {
		tables := samples[lang]
		if len(tables) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoSamples, lang)
		}
		feats := make([]Feature, len(vocab))
		for i, value := range vocab {
			feats[i] = estimate(tables, value, opts.MinVariance)
		}
		g.features[lang] = feats
		g.samples[lang] = len(tables)
	}
	return g, nil
}

func estimate(tables []freq.Table, value string, minVariance float64) Feature {
	n := float64(len(tables))
	sum := 0.0
	for _, t := range tables {
		sum += t[value]
	}
	mean := sum / n

	variance := 0.0
	if len(tables) > 1 {
		for _, t := range tables {
			d := t[value] - mean
			variance += d * d
		}
		variance /= n - 1
	}
	if variance < minVariance || !finite(variance) {
		variance = minVariance
	}
	return Feature{Mean: mean, Variance: variance}
}

// Languages returns the trained languages in sorted order.
func (g *Gaussian) Languages() []string { return g.languages }

// Vocabulary returns the features the classifier was trained on.
func (g *Gaussian) Vocabulary() freq.Vocabulary { return g.vocab }

// Samples returns the number of per-file samples behind a language.
func (g *Gaussian) Samples(lang string) int { return g.samples[lang] }

// Feature returns the distribution of value within lang.
func (g *Gaussian) Feature(lang, value string) (Feature, bool) {
	feats, ok := g.features[lang]
	if !ok {
		return Feature{}, false
	}
	i := g.vocab.Index(value)
	if i < 0 {
		return Feature{}, false
	}
	return feats[i], true
}

// LogScores returns log(Scale × Π density) per language. Factors whose
// density is NaN, infinite or exactly zero are left out of the product.
func (g *Gaussian) LogScores(query freq.Table) map[string]float64 {
	x := g.vocab.Vector(query)
	logScale := math.Log(g.opts.Scale)
	out := make(map[string]float64, len(g.languages))
	for _, lang := range g.languages {
		total := logScale
		for i, f := range g.features[lang] {
			d := NormalDensity(x[i], f.Mean, math.Sqrt(f.Variance))
			if math.IsNaN(d) || math.IsInf(d, 0) || d == 0 {
				continue
			}
			total += math.Log(d)
		}
		out[lang] = total
	}
	return out
}

// Classify returns exp(log − maxLog) per language: the density products
// divided by the best one, computed without underflow.
func (g *Gaussian) Classify(query freq.Table) map[string]float64 {
	logs := g.LogScores(query)
	best := math.Inf(-1)
	for _, l := range logs {
		if finite(l) && l > best {
			best = l
		}
	}
	out := make(map[string]float64, len(logs))
	for lang, l := range logs {
		if !finite(l) || math.IsInf(best, -1) {
			out[lang] = 0
			continue
		}
		out[lang] = math.Exp(l - best)
	}
	return out
}

// NormalDensity is the probability density of N(mean, stdDev²) at x.
func NormalDensity(x, mean, stdDev float64) float64 {
	fact := stdDev * math.Sqrt(2*math.Pi)
	expo := (x - mean) * (x - mean) / (2 * stdDev * stdDev)
	return math.Exp(-expo) / fact
}
