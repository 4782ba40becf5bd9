package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"codeclass/internal/lexer"
	"codeclass/internal/token"
)

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность видов токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	tokens := collectAllTokens(lexer.New(input, lexer.Options{}))
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx := lexer.New(input, lexer.Options{})
	tok := lx.Next()
	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("Expected EOF after %q, got %v", input, next)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func concat(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

var roundTripInputs = []string{
	"",
	" ",
	"\n",
	"\r\n\r\n",
	"\r",
	"if (x) { y(); }",
	"def foo(a, b):\n    return a + b\n",
	"x := 1.5.6",
	"s = \"he said \"\"hi\"\"\"",
	"'it''s'",
	"\"unterminated\nstring",
	"'unterminated",
	"переменная = 42;",
	"λx → x²",
	"a_b_c __init__ x123",
	"\xff\xfe invalid utf8 \xc3",
	"tabs\t\tand  spaces",
	"#include <stdio.h>\r\nint main() { return 0; }\r\n",
	"`backtick` ~tilde ^caret $dollar %percent &amp |pipe \\back",
	"1. 2.. 3.14",
}

func TestRoundTrip(t *testing.T) {
	for _, input := range roundTripInputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			tokens := lexer.Tokenize(input)
			if got := concat(tokens); got != input {
				t.Fatalf("round trip mismatch:\n got %q\nwant %q\ntokens %s", got, input, tokensToString(tokens))
			}
			eofs := 0
			for i, tok := range tokens {
				if tok.Kind == token.EOF {
					eofs++
					if i != len(tokens)-1 {
						t.Fatalf("EOF at %d of %d", i, len(tokens))
					}
					continue
				}
				if tok.Text == "" {
					t.Fatalf("empty non-EOF token at %d: %v", i, tok)
				}
			}
			if eofs != 1 {
				t.Fatalf("expected exactly one EOF, got %d", eofs)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := lexer.Tokenize("")
	if len(tokens) != 1 {
		t.Fatalf("expected single EOF, got %s", tokensToString(tokens))
	}
	if tokens[0].Kind != token.EOF || tokens[0].Text != "" {
		t.Fatalf("unexpected token %v", tokens[0])
	}
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Fatalf("EOF position = %d:%d", tokens[0].Line, tokens[0].Column)
	}
}

func TestDeterminism(t *testing.T) {
	for _, input := range roundTripInputs {
		a := lexer.Tokenize(input)
		b := lexer.Tokenize(input)
		if len(a) != len(b) {
			t.Fatalf("%q: length differs %d vs %d", input, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%q: token %d differs: %v vs %v", input, i, a[i], b[i])
			}
		}
	}
}

func TestNextAfterEOF(t *testing.T) {
	lx := lexer.New("a", lexer.Options{})
	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end: got %v", i, tok)
		}
	}
}

// ====== Правила ======

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"snake_case", "snake_case"},
		{"UPPER", "UPPER"},
		{"идентификатор", "идентификатор"},
		{"函数", "函数"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Word, tt.text)
		})
	}
}

func TestWordsStopAtDigits(t *testing.T) {
	expectTokens(t, "x123", []token.Kind{token.Word, token.Number})
	expectTokens(t, "_init", []token.Kind{token.Underscore, token.Word})
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"0", []string{"0"}},
		{"123", []string{"123"}},
		{"3.14", []string{"3.14"}},
		{"1.", []string{"1."}},
		{"1.2.3", []string{"1.2", ".", "3"}},
		{"1..2", []string{"1.", ".", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lexer.Tokenize(tt.input)
			tokens = tokens[:len(tokens)-1]
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %s", tokensToString(tokens))
			}
			if tokens[0].Kind != token.Number {
				t.Fatalf("first token %v is not a number", tokens[0])
			}
			for i, text := range tt.want {
				if tokens[i].Text != text {
					t.Errorf("token %d: got %q want %q", i, tokens[i].Text, text)
				}
			}
		})
	}
}

func TestWhitespace(t *testing.T) {
	expectSingleToken(t, " \t \t", token.WhiteSpace, " \t \t")
	expectTokens(t, "a  b", []token.Kind{token.Word, token.WhiteSpace, token.Word})
	expectTokens(t, " \n ", []token.Kind{token.WhiteSpace, token.Eol, token.WhiteSpace})
}

func TestSkipWhitespace(t *testing.T) {
	lx := lexer.New("a \t b\n  c", lexer.Options{SkipWhitespace: true})
	tokens := collectAllTokens(lx)
	want := []token.Kind{token.Word, token.Word, token.Eol, token.Word, token.EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, tokens[i].Kind, k)
		}
	}
	// позиции считаются по исходному тексту
	if tokens[1].Column != 5 {
		t.Errorf("b column = %d, want 5", tokens[1].Column)
	}
	// whitespace inside strings survives
	lx = lexer.New(`" a "`, lexer.Options{SkipWhitespace: true})
	if tok := lx.Next(); tok.Text != `" a "` {
		t.Errorf("string lost whitespace: %q", tok.Text)
	}
}

func TestLineEndings(t *testing.T) {
	tests := []struct {
		input string
		texts []string
	}{
		{"\n", []string{"\n"}},
		{"\r", []string{"\r"}},
		{"\r\n", []string{"\r\n"}},
		{"\n\r", []string{"\n", "\r"}},
		{"\r\n\n", []string{"\r\n", "\n"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			tokens := lexer.Tokenize(tt.input)
			tokens = tokens[:len(tokens)-1]
			if len(tokens) != len(tt.texts) {
				t.Fatalf("got %s", tokensToString(tokens))
			}
			for i, tok := range tokens {
				if tok.Kind != token.Eol || tok.Text != tt.texts[i] {
					t.Errorf("token %d: got %v", i, tok)
				}
			}
		})
	}
}

func TestQuotedStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"double", `"hello"`, token.DoubleQuotedString},
		{"single", `'hello'`, token.SingleQuotedString},
		{"double escaped", `"a""b"`, token.DoubleQuotedString},
		{"single escaped", `'it''s'`, token.SingleQuotedString},
		{"empty double", `""`, token.DoubleQuotedString},
		{"empty single", `''`, token.SingleQuotedString},
		{"other quote inside", `"it's"`, token.DoubleQuotedString},
		{"unterminated", `"abc`, token.DoubleQuotedString},
		{"multiline", "'a\nb'", token.SingleQuotedString},
		{"unicode content", `"привет"`, token.DoubleQuotedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestQuotedStringEndsAtUnescapedQuote(t *testing.T) {
	expectTokens(t, `"a" "b"`, []token.Kind{
		token.DoubleQuotedString, token.WhiteSpace, token.DoubleQuotedString,
	})
	// "" сразу после открывающей кавычки: это пустая строка, а не escape
	expectTokens(t, `""x`, []token.Kind{token.DoubleQuotedString, token.Word})
}

func TestSymbols(t *testing.T) {
	input := "=+-/,.*~!@#$%^&(){}[]:;<>?|\\`_"
	want := []token.Kind{
		token.EqualsSign, token.PlusSign, token.Hyphen, token.Slash, token.Comma,
		token.FullStop, token.Asterisk, token.Tilde, token.ExclamationMark, token.AtSign,
		token.Hash, token.Dollar, token.Percent, token.CircumflexAccent, token.Ampersand,
		token.LeftParenthesis, token.RightParenthesis, token.LeftCurlyBracket,
		token.RightCurlyBracket, token.LeftBracket, token.RightBracket, token.Colon,
		token.SemiColon, token.LessThanSign, token.GreaterThanSign, token.QuestionMark,
		token.VerticalLine, token.Backslash, token.GraveAccent, token.Underscore,
	}
	expectTokens(t, input, want)
}

func TestUnknown(t *testing.T) {
	tests := []string{"→", "²", "\x00", "\xff", "€"}
	for _, input := range tests {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			expectSingleToken(t, input, token.Unknown, input)
		})
	}
}

func TestPositions(t *testing.T) {
	input := "ab cd\n\"x\ny\" z\r\nλ q"
	tokens := lexer.Tokenize(input)
	want := []struct {
		kind      token.Kind
		line, col int
	}{
		{token.Word, 1, 1},
		{token.WhiteSpace, 1, 3},
		{token.Word, 1, 4},
		{token.Eol, 1, 6},
		{token.DoubleQuotedString, 2, 1},
		{token.WhiteSpace, 3, 3},
		{token.Word, 3, 4},
		{token.Eol, 3, 5},
		{token.Word, 4, 1},
		{token.WhiteSpace, 4, 2},
		{token.Word, 4, 3},
		{token.EOF, 4, 4},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %s", tokensToString(tokens))
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Kind != w.kind || tok.Line != w.line || tok.Column != w.col {
			t.Errorf("token %d: got %v, want %v@%d:%d", i, tok, w.kind, w.line, w.col)
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	lx := lexer.New("a b c", lexer.Options{})
	first := lx.Collect()
	second := lx.Collect()
	if len(first) != 6 || len(first) != len(second) {
		t.Fatalf("lengths %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs", i)
		}
	}
}

func TestAllEarlyBreak(t *testing.T) {
	lx := lexer.New("a b c d", lexer.Options{})
	n := 0
	for range lx.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("n = %d", n)
	}
	if got := len(lx.Collect()); got != 8 {
		t.Fatalf("after break, Collect returned %d tokens", got)
	}
}

func TestNewReader(t *testing.T) {
	lx, err := lexer.NewReader(strings.NewReader("x = 1"), lexer.Options{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if got := concat(lx.Collect()); got != "x = 1" {
		t.Fatalf("got %q", got)
	}
	if _, err := lexer.NewReader(nil, lexer.Options{}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat("public static void Main(string[] args) { Console.WriteLine(\"hi\"); }\n", 200)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lexer.Tokenize(src)
	}
}
