package corpus

import (
	"context"
	"fmt"
)

// MemLoader serves a corpus held in memory: language name → snippets.
type MemLoader map[string][]string

// Load builds the corpus; document paths are "<language>/<index>".
func (m MemLoader) Load(ctx context.Context) (*Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := make(map[string][]Document, len(m))
	for name, texts := range m {
		ds := make([]Document, len(texts))
		for i, text := range texts {
			ds[i] = Document{Path: fmt.Sprintf("%s/%04d", name, i), Text: text}
		}
		docs[name] = ds
	}
	return group(docs)
}
