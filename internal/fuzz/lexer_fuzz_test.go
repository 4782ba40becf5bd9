package fuzztests

import (
	"testing"

	"codeclass/internal/lexer"
	"codeclass/internal/testkit"
	"codeclass/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		tokens := lexer.Tokenize(src)
		if err := testkit.CheckTokenInvariants(src, tokens); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzLexerSkipWhitespace(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		all := lexer.Tokenize(src)
		skipped := lexer.New(src, lexer.Options{SkipWhitespace: true}).Collect()

		var want []token.Token
		for _, tok := range all {
			if tok.Kind != token.WhiteSpace {
				want = append(want, tok)
			}
		}
		if len(want) != len(skipped) {
			t.Fatalf("%d tokens without whitespace, want %d", len(skipped), len(want))
		}
		for i := range want {
			if want[i] != skipped[i] {
				t.Fatalf("token %d = %+v, want %+v", i, skipped[i], want[i])
			}
		}
	})
}
