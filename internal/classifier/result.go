package classifier

import (
	"cmp"
	"slices"
)

// Undetermined is reported when a snippet carries nothing to score.
const Undetermined = "undetermined"

// Breakdown is the contribution of one model to a result.
type Breakdown struct {
	Best      string             `json:"best"`
	Certainty float64            `json:"certainty"`
	Scores    map[string]float64 `json:"scores"`
	Abstained bool               `json:"abstained,omitempty"`
}

// Result is the outcome of classifying one snippet.
type Result struct {
	Language  string             `json:"language"`
	Certainty float64            `json:"certainty"`
	Scores    map[string]float64 `json:"scores"`
	MatchTree Breakdown          `json:"matchtree"`
	Frequency Breakdown          `json:"frequency"`
	Tokens    int                `json:"tokens"`
}

// Ranked is one language with its blended score.
type Ranked struct {
	Language string  `json:"language"`
	Score    float64 `json:"score"`
}

// Ranked returns the blended scores from best to worst, ties by name.
func (r Result) Ranked() []Ranked {
	return rank(r.Scores)
}

// Ranked returns the model's scores from best to worst, ties by name.
func (b Breakdown) Ranked() []Ranked {
	return rank(b.Scores)
}

func rank(scores map[string]float64) []Ranked {
	out := make([]Ranked, 0, len(scores))
	for lang, s := range scores {
		out = append(out, Ranked{Language: lang, Score: s})
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Language, b.Language)
	})
	return out
}

// LanguageStats describes the models trained for one language.
type LanguageStats struct {
	Language           string  `json:"language"`
	Documents          int     `json:"documents"`
	Tokens             int     `json:"tokens"`
	Nodes              int     `json:"nodes"`
	TotalPossibleScore float64 `json:"total_possible_score"`
}

// Stats describes a trained classifier.
type Stats struct {
	Model      FrequencyModel  `json:"model"`
	Vocabulary int             `json:"vocabulary"`
	FromCache  bool            `json:"from_cache"`
	Languages  []LanguageStats `json:"languages"`
}
