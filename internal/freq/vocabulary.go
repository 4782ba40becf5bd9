package freq

import "slices"

// Vocabulary is the sorted set of feature values seen in training.
type Vocabulary []string

// NewVocabulary returns the union of the keys of tables.
func NewVocabulary(tables ...Table) Vocabulary {
	seen := make(map[string]struct{})
	for _, t := range tables {
		for k := range t {
			seen[k] = struct{}{}
		}
	}
	v := make(Vocabulary, 0, len(seen))
	for k := range seen {
		v = append(v, k)
	}
	slices.Sort(v)
	return v
}

// Index returns the position of value, or -1.
func (v Vocabulary) Index(value string) int {
	i, ok := slices.BinarySearch(v, value)
	if !ok {
		return -1
	}
	return i
}

// Vector projects t onto the vocabulary; absent features are 0.
// Values of t outside the vocabulary are ignored.
func (v Vocabulary) Vector(t Table) []float64 {
	out := make([]float64, len(v))
	for i, k := range v {
		out[i] = t[k]
	}
	return out
}
