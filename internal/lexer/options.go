package lexer

// Options tune the tokenizer. The zero value keeps every byte of the input
// in the token stream.
type Options struct {
	// SkipWhitespace drops space/tab runs instead of emitting WhiteSpace
	// tokens. Newlines and whitespace inside strings are still tokenized.
	SkipWhitespace bool
}
