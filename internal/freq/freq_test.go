package freq_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"codeclass/internal/freq"
	"codeclass/internal/lexer"
)

func TestExtract(t *testing.T) {
	// x ( y ) ; x ( z ) ; EOF → 11 tokens
	table := freq.Extract(lexer.Tokenize("x(y);x(z);"), freq.Options{})
	want := freq.Table{
		"x": 2.0 / 11,
		"(": 2.0 / 11,
		")": 2.0 / 11,
		";": 2.0 / 11,
	}
	if !reflect.DeepEqual(table, want) {
		t.Fatalf("Extract = %v, want %v", table, want)
	}
}

func TestExtractSkipsQuotedAndLong(t *testing.T) {
	src := `"a" "a" 'b' 'b' verylongidentifier verylongidentifier short short`
	table := freq.Extract(lexer.Tokenize(src), freq.Options{})
	for _, k := range []string{`"a"`, `'b'`, "verylongidentifier"} {
		if _, ok := table[k]; ok {
			t.Errorf("%q should have been dropped", k)
		}
	}
	if _, ok := table["short"]; !ok {
		t.Errorf("short should be kept: %v", table)
	}
	if _, ok := table[" "]; !ok {
		t.Errorf("whitespace runs are ordinary values: %v", table)
	}
}

func TestExtractMaxTextLenCountsRunes(t *testing.T) {
	// девять кириллических букв: 18 байт, но 9 рун
	word := "ёжикёжик" + "ё"
	table := freq.Extract(lexer.Tokenize(word+" "+word), freq.Options{})
	if _, ok := table[word]; !ok {
		t.Fatalf("9-rune word must be kept: %v", table)
	}
}

func TestExtractThresholds(t *testing.T) {
	tokens := lexer.Tokenize("a a a b b c")
	table := freq.Extract(tokens, freq.Options{MinCount: 3})
	if len(table) != 2 || table["a"] == 0 || table[" "] == 0 {
		t.Fatalf("MinCount 3 should keep only a and the space: %v", table)
	}
	table = freq.Extract(tokens, freq.Options{MaxTextLen: 1})
	if len(table) != 0 {
		t.Fatalf("MaxTextLen 1 drops everything non-empty: %v", table)
	}
}

func TestExtractRangeAndEmpty(t *testing.T) {
	if got := freq.Extract(nil, freq.Options{}); len(got) != 0 {
		t.Fatalf("nil tokens gave %v", got)
	}
	if got := freq.Extract(lexer.Tokenize(""), freq.Options{}); len(got) != 0 {
		t.Fatalf("empty snippet gave %v", got)
	}
	inputs := []string{
		"     ",
		"\n\n\n",
		strings.Repeat("{}", 50),
		"if (x) { y(); } else { z(); }",
	}
	for _, in := range inputs {
		table := freq.Extract(lexer.Tokenize(in), freq.Options{})
		sum := 0.0
		for k, v := range table {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%q: %q has frequency %v", in, k, v)
			}
			sum += v
		}
		if sum > 1+1e-9 {
			t.Fatalf("%q: frequencies sum to %v", in, sum)
		}
	}
}

func TestTableKeysSorted(t *testing.T) {
	table := freq.Table{"b": 0.1, "a": 0.2, "{": 0.3}
	if got := table.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "{"}) {
		t.Fatalf("Keys = %v", got)
	}
}

func TestVocabulary(t *testing.T) {
	v := freq.NewVocabulary(freq.Table{"b": 0.5, "a": 0.1}, freq.Table{"c": 0.2, "a": 0.3})
	if !reflect.DeepEqual(v, freq.Vocabulary{"a", "b", "c"}) {
		t.Fatalf("vocabulary = %v", v)
	}
	if v.Index("b") != 1 || v.Index("z") != -1 {
		t.Fatalf("Index mismatch")
	}
	vec := v.Vector(freq.Table{"c": 0.25, "zzz": 1})
	if !reflect.DeepEqual(vec, []float64{0, 0, 0.25}) {
		t.Fatalf("Vector = %v", vec)
	}
}
