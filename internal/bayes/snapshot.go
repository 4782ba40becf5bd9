package bayes

import (
	"fmt"

	"codeclass/internal/freq"
)

// GaussianSnapshot is the serializable form of a Gaussian classifier.
type GaussianSnapshot struct {
	Options    Options
	Vocabulary []string
	Languages  []GaussianLanguage
}

// GaussianLanguage holds the per-feature parameters of one language,
// indexed like the vocabulary.
type GaussianLanguage struct {
	Name      string
	Samples   int
	Means     []float64
	Variances []float64
}

// Snapshot exports the classifier.
func (g *Gaussian) Snapshot() GaussianSnapshot {
	s := GaussianSnapshot{
		Options:    g.opts,
		Vocabulary: append([]string(nil), g.vocab...),
		Languages:  make([]GaussianLanguage, 0, len(g.languages)),
	}
	for _, lang := range g.languages {
		feats := g.features[lang]
		gl := GaussianLanguage{
			Name:      lang,
			Samples:   g.samples[lang],
			Means:     make([]float64, len(feats)),
			Variances: make([]float64, len(feats)),
		}
		for i, f := range feats {
			gl.Means[i] = f.Mean
			gl.Variances[i] = f.Variance
		}
		s.Languages = append(s.Languages, gl)
	}
	return s
}

// GaussianFromSnapshot rebuilds a classifier exported by Snapshot.
func GaussianFromSnapshot(s GaussianSnapshot) (*Gaussian, error) {
	if len(s.Languages) == 0 {
		return nil, ErrNoLanguages
	}
	g := &Gaussian{
		opts:      s.Options.WithDefaults(),
		vocab:     freq.Vocabulary(s.Vocabulary),
		languages: make([]string, 0, len(s.Languages)),
		features:  make(map[string][]Feature, len(s.Languages)),
		samples:   make(map[string]int, len(s.Languages)),
	}
	for _, gl := range s.Languages {
		if len(gl.Means) != len(s.Vocabulary) || len(gl.Variances) != len(s.Vocabulary) {
			return nil, fmt.Errorf("bayes: %s: %d means, %d variances for %d features",
				gl.Name, len(gl.Means), len(gl.Variances), len(s.Vocabulary))
		}
		if _, dup := g.features[gl.Name]; dup {
			return nil, fmt.Errorf("bayes: duplicate language %q", gl.Name)
		}
		feats := make([]Feature, len(gl.Means))
		for i := range feats {
			feats[i] = Feature{Mean: gl.Means[i], Variance: gl.Variances[i]}
		}
		g.features[gl.Name] = feats
		g.samples[gl.Name] = gl.Samples
		g.languages = append(g.languages, gl.Name)
	}
	g.languages = sortedKeys(g.features)
	return g, nil
}

// DifferenceSnapshot is the serializable form of a Difference scorer.
type DifferenceSnapshot struct {
	Vocabulary []string
	Tables     map[string]map[string]float64
}

// Snapshot exports the scorer.
func (d *Difference) Snapshot() DifferenceSnapshot {
	tables := make(map[string]map[string]float64, len(d.tables))
	for lang, t := range d.tables {
		tables[lang] = t
	}
	return DifferenceSnapshot{
		Vocabulary: append([]string(nil), d.vocab...),
		Tables:     tables,
	}
}

// DifferenceFromSnapshot rebuilds a scorer exported by Snapshot.
func DifferenceFromSnapshot(s DifferenceSnapshot) (*Difference, error) {
	tables := make(map[string]freq.Table, len(s.Tables))
	for lang, t := range s.Tables {
		tables[lang] = freq.Table(t)
	}
	return TrainDifference(freq.Vocabulary(s.Vocabulary), tables)
}
