// Package matchtree implements the per-language trie over token-kind
// sequences used to score structural similarity of a snippet.
//
// A tree is built once from a language's corpus by folding every token
// subsequence of at most MaxDepth tokens into it from the root; afterwards
// it is read-only and safe for concurrent scoring.
package matchtree
