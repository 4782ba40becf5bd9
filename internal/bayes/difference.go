package bayes

import (
	"math"

	"codeclass/internal/freq"
)

// differenceWeight scales the reward for a feature present on both sides.
const differenceWeight = 20

// Difference scores a query by how closely each feature frequency matches
// a language's aggregated table.
type Difference struct {
	vocab     freq.Vocabulary
	languages []string
	tables    map[string]freq.Table
}

// TrainDifference keeps the aggregated table of every language.
func TrainDifference(vocab freq.Vocabulary, aggregated map[string]freq.Table) (*Difference, error) {
	if len(aggregated) == 0 {
		return nil, ErrNoLanguages
	}
	return &Difference{
		vocab:     vocab,
		languages: sortedKeys(aggregated),
		tables:    aggregated,
	}, nil
}

// Languages returns the trained languages in sorted order.
func (d *Difference) Languages() []string { return d.languages }

// Vocabulary returns the features the scorer iterates over.
func (d *Difference) Vocabulary() freq.Vocabulary { return d.vocab }

// RawScores sums, per vocabulary feature: 1 when absent from both tables,
// (1 − |train − query|) × 20 when present in both, 0 otherwise.
func (d *Difference) RawScores(query freq.Table) map[string]float64 {
	out := make(map[string]float64, len(d.languages))
	for _, lang := range d.languages {
		train := d.tables[lang]
		score := 0.0
		for _, value := range d.vocab {
			tv, inTrain := train[value]
			qv, inQuery := query[value]
			switch {
			case !inTrain && !inQuery:
				score++
			case inTrain && inQuery:
				score += (1 - math.Abs(tv-qv)) * differenceWeight
			}
		}
		out[lang] = score
	}
	return out
}

// Classify divides RawScores by the best language's score.
func (d *Difference) Classify(query freq.Table) map[string]float64 {
	return normalizeByMax(d.RawScores(query))
}
