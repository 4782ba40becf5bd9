// Package classifier names the programming language of a source snippet.
//
// A Classifier trains once, lazily, from a corpus.Loader: one match tree
// and one set of frequency samples per language, then one frequency model
// over all of them. Each query is tokenized once and scored by both
// models; the per-model scores are weighted by that model's certainty and
// summed.
package classifier
