package matchtree

import (
	"math"

	"codeclass/internal/token"
)

// Score is the result of matching a token sequence against a tree.
type Score struct {
	// Raw is the sum of the per-start scores.
	Raw float64
	// Normalized is Raw / (tokens × TotalPossibleScore); 0 when undefined.
	Normalized float64
	// Matched counts the start positions that matched at least one token.
	Matched int
	// Tokens is the length of the scored sequence.
	Tokens int
}

// Score walks the tree from every start index of tokens. A matched child
// multiplies the running score by the exact multiplier when the token text
// is among its examples, by the level multiplier otherwise; the walk stops
// at the first kind with no child. Exact multi-token matches compound.
func (t *Tree) Score(tokens []token.Token) Score {
	s := Score{Tokens: len(tokens)}
	for start := range tokens {
		v, depth := t.walk(tokens, start)
		s.Raw += v
		if depth > 0 {
			s.Matched++
		}
	}
	denom := float64(len(tokens)) * t.totalPossibleScore
	if denom > 0 {
		s.Normalized = s.Raw / denom
	}
	if math.IsNaN(s.Normalized) || math.IsInf(s.Normalized, 0) {
		s.Normalized = 0
	}
	return s
}

// walk итеративно: глубина ограничена MaxDepth, стек не нужен.
func (t *Tree) walk(tokens []token.Token, start int) (score float64, depth int) {
	score = 1
	node := t.root
	for i := start; i < len(tokens); i++ {
		tok := tokens[i]
		next := node.children[tok.Kind]
		if next == nil {
			break
		}
		if next.HasExample(tok.Text) {
			score *= t.opts.ExactMultiplier
		} else {
			score *= t.opts.LevelMultiplier
		}
		node = next
		depth++
	}
	return score, depth
}
