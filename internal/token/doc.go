// Package token defines lexical token kinds for the snippet classifier.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Concatenating Text of every token in order reproduces the source.
//   - Only EOF may carry an empty Text.
//   - Kinds are a closed set; one kind per recognized punctuation byte.
package token
