// Package corpus loads the labelled training snippets the classifier is
// trained on.
package corpus

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoLanguages is returned when a corpus holds no language at all.
	ErrNoLanguages = errors.New("corpus: no languages")
	// ErrEmptyLanguage is returned when a language has no document.
	ErrEmptyLanguage = errors.New("corpus: language has no documents")
)

// Digest - sha256 of everything a trained model depends on.
type Digest [32]byte

// Document is one training file.
type Document struct {
	Path string // relative to the corpus root, slash separated
	Text string
}

// Language groups the documents of one language.
type Language struct {
	Name      string
	Documents []Document
}

// Corpus is the complete training set, languages sorted by name.
type Corpus struct {
	Languages []Language
}

// Loader produces a corpus. Implementations must be safe to call once from
// any goroutine.
type Loader interface {
	Load(ctx context.Context) (*Corpus, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) (*Corpus, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) (*Corpus, error) { return f(ctx) }

// Names returns the language names in order.
func (c *Corpus) Names() []string {
	names := make([]string, len(c.Languages))
	for i, l := range c.Languages {
		names[i] = l.Name
	}
	return names
}

// Lookup returns the language called name.
func (c *Corpus) Lookup(name string) (Language, bool) {
	i, ok := slices.BinarySearchFunc(c.Languages, name, func(l Language, n string) int {
		return cmp.Compare(l.Name, n)
	})
	if !ok {
		return Language{}, false
	}
	return c.Languages[i], true
}

// DocumentCount returns the number of documents over all languages.
func (c *Corpus) DocumentCount() int {
	n := 0
	for _, l := range c.Languages {
		n += len(l.Documents)
	}
	return n
}

// Validate checks the invariants every loader guarantees.
func (c *Corpus) Validate() error {
	if c == nil || len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	for _, l := range c.Languages {
		if len(l.Documents) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyLanguage, l.Name)
		}
	}
	return nil
}

// Digest hashes names, paths and texts in order. Every field is length
// prefixed so that concatenations cannot collide.
func (c *Corpus) Digest() Digest {
	h := sha256.New()
	var n [8]byte
	write := func(s string) {
		binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(s))
	}
	for _, l := range c.Languages {
		write(l.Name)
		binary.LittleEndian.PutUint64(n[:], uint64(len(l.Documents)))
		_, _ = h.Write(n[:])
		for _, d := range l.Documents {
			write(d.Path)
			write(d.Text)
		}
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// group builds a sorted corpus from per-language documents.
func group(docs map[string][]Document) (*Corpus, error) {
	if len(docs) == 0 {
		return nil, ErrNoLanguages
	}
	c := &Corpus{Languages: make([]Language, 0, len(docs))}
	for name, ds := range docs {
		slices.SortFunc(ds, func(a, b Document) int { return cmp.Compare(a.Path, b.Path) })
		c.Languages = append(c.Languages, Language{Name: name, Documents: ds})
	}
	slices.SortFunc(c.Languages, func(a, b Language) int { return cmp.Compare(a.Name, b.Name) })
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
