// Package freq extracts normalized token-value frequency tables.
//
// Frequencies are raw counts divided by the total token count of the
// sequence (EOF included). The same convention is used for training files
// and for queries.
package freq

import (
	"slices"
	"unicode/utf8"

	"codeclass/internal/token"
)

const (
	// DefaultMinCount drops values seen fewer times than this.
	DefaultMinCount = 2
	// DefaultMaxTextLen drops values whose length (in runes) reaches this.
	DefaultMaxTextLen = 10
)

// Options controls which token values become features.
type Options struct {
	MinCount   int
	MaxTextLen int
}

// DefaultOptions returns the extraction thresholds used when nothing is configured.
func DefaultOptions() Options {
	return Options{MinCount: DefaultMinCount, MaxTextLen: DefaultMaxTextLen}
}

// WithDefaults replaces unset thresholds with the defaults.
func (o Options) WithDefaults() Options {
	if o.MinCount <= 0 {
		o.MinCount = DefaultMinCount
	}
	if o.MaxTextLen <= 0 {
		o.MaxTextLen = DefaultMaxTextLen
	}
	return o
}

// Table maps a token value to its normalized frequency in [0,1].
type Table map[string]float64

// Keys returns the feature values in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Extract counts token values, skipping quoted strings and long values,
// keeps values seen at least MinCount times and divides each count by
// len(tokens).
func Extract(tokens []token.Token, opts Options) Table {
	opts = opts.WithDefaults()
	if len(tokens) == 0 {
		return Table{}
	}
	counts := make(map[string]int, len(tokens)/2)
	for _, tok := range tokens {
		if tok.IsQuotedString() {
			continue
		}
		if utf8.RuneCountInString(tok.Text) >= opts.MaxTextLen {
			continue
		}
		counts[tok.Text]++
	}

	total := float64(len(tokens))
	table := make(Table, len(counts))
	for text, n := range counts {
		if n < opts.MinCount {
			continue
		}
		table[text] = float64(n) / total
	}
	return table
}
