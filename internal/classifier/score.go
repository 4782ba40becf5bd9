package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"

	"codeclass/internal/freq"
	"codeclass/internal/lexer"
	"codeclass/internal/token"
)

// ErrSnippetTooLarge is returned for snippets beyond the tokenizer's 4 GiB
// offset range.
var ErrSnippetTooLarge = errors.New("classifier: snippet too large")

// Stats returns what was trained, training first if needed.
func (c *Classifier) Stats() (Stats, error) {
	if err := c.Train(context.Background()); err != nil {
		return Stats{}, err
	}
	s := c.stats
	s.Languages = append([]LanguageStats(nil), c.stats.Languages...)
	return s, nil
}

// Classify names the language of snippet. It trains on first use.
func (c *Classifier) Classify(snippet string) (Result, error) {
	if uint64(len(snippet)) > math.MaxUint32 {
		return Result{}, fmt.Errorf("%w: %d bytes", ErrSnippetTooLarge, len(snippet))
	}
	if err := c.Train(context.Background()); err != nil {
		return Result{}, err
	}
	end := c.timer.Track("classify")
	tokens := lexer.Tokenize(snippet)
	res := c.score(tokens)
	end(fmt.Sprintf("%d tokens -> %s", len(tokens), res.Language))
	return res, nil
}

// ClassifyTokens scores an already tokenized snippet ending in EOF.
func (c *Classifier) ClassifyTokens(tokens []token.Token) (Result, error) {
	if err := c.Train(context.Background()); err != nil {
		return Result{}, err
	}
	return c.score(tokens), nil
}

func (c *Classifier) score(tokens []token.Token) Result {
	if onlyEOF(tokens) {
		return Result{
			Language:  Undetermined,
			Scores:    c.zeros(),
			MatchTree: Breakdown{Scores: c.zeros(), Abstained: true},
			Frequency: Breakdown{Scores: c.zeros(), Abstained: true},
			Tokens:    len(tokens),
		}
	}

	mt := c.matchTreeScores(tokens)
	fq := c.frequencyScores(tokens)

	final := make(map[string]float64, len(c.languages))
	for _, lang := range c.languages {
		v := fq.Scores[lang]*fq.Certainty + mt.Scores[lang]*mt.Certainty
		final[lang] = sanitize(v)
	}
	best, top, runnerUp := argmax(c.languages, final)
	res := Result{
		Language:  best,
		Certainty: certainty(top, runnerUp),
		Scores:    final,
		MatchTree: mt,
		Frequency: fq,
		Tokens:    len(tokens),
	}
	if top <= 0 {
		res.Language = Undetermined
		res.Certainty = 0
	}
	return res
}

func (c *Classifier) matchTreeScores(tokens []token.Token) Breakdown {
	raw := make(map[string]float64, len(c.trees))
	matched := false
	for _, t := range c.trees {
		s := t.Score(tokens)
		raw[t.Language()] = sanitize(s.Normalized)
		if s.Matched > 0 {
			matched = true
		}
	}
	if !matched {
		return Breakdown{Scores: c.zeros(), Abstained: true}
	}
	return breakdown(c.languages, divideByMax(raw))
}

func (c *Classifier) frequencyScores(tokens []token.Token) Breakdown {
	query := freq.Extract(tokens, c.freqOpts)
	if len(query) == 0 {
		return Breakdown{Scores: c.zeros(), Abstained: true}
	}
	scores := c.freqModel.Classify(query)
	for lang, v := range scores {
		scores[lang] = sanitize(v)
	}
	return breakdown(c.languages, scores)
}

func breakdown(languages []string, scores map[string]float64) Breakdown {
	best, top, runnerUp := argmax(languages, scores)
	b := Breakdown{Scores: scores, Certainty: certainty(top, runnerUp)}
	if top > 0 {
		b.Best = best
	}
	return b
}

// argmax walks languages in sorted order so ties go to the lowest name.
// runnerUp is the best score of any other language, 0 when there is none.
func argmax(languages []string, scores map[string]float64) (best string, top, runnerUp float64) {
	if len(languages) == 0 {
		return "", 0, 0
	}
	bestIdx := 0
	for i, lang := range languages {
		if scores[lang] > scores[languages[bestIdx]] {
			bestIdx = i
		}
	}
	best, top = languages[bestIdx], scores[languages[bestIdx]]
	for i, lang := range languages {
		if i != bestIdx {
			runnerUp = max(runnerUp, scores[lang])
		}
	}
	return best, top, runnerUp
}

// certainty is (top − runnerUp)/top, 0 when top is not a positive number.
func certainty(top, runnerUp float64) float64 {
	if top <= 0 || math.IsNaN(top) || math.IsInf(top, 0) {
		return 0
	}
	return sanitize((top - runnerUp) / top)
}

func divideByMax(raw map[string]float64) map[string]float64 {
	maxScore := 0.0
	for _, v := range raw {
		maxScore = max(maxScore, v)
	}
	out := make(map[string]float64, len(raw))
	for lang, v := range raw {
		if maxScore > 0 {
			out[lang] = v / maxScore
		} else {
			out[lang] = 0
		}
	}
	return out
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (c *Classifier) zeros() map[string]float64 {
	out := make(map[string]float64, len(c.languages))
	for _, lang := range c.languages {
		out[lang] = 0
	}
	return out
}

func onlyEOF(tokens []token.Token) bool {
	for _, t := range tokens {
		if t.Kind != token.EOF {
			return false
		}
	}
	return true
}
