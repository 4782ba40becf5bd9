package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// FlatLoader reads a flat directory of files such as "csharp.cs" or
// "script.py". The language of a file comes from its extension; files
// with an unknown extension are named by their base name.
type FlatLoader struct {
	Root    string
	Workers int // 0 = GOMAXPROCS
}

// Load reads every regular, non-hidden file directly under Root.
func (l FlatLoader) Load(ctx context.Context) (*Corpus, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	var jobs []fileJob
	for _, e := range entries {
		if !e.Type().IsRegular() || hidden(e.Name()) {
			continue
		}
		jobs = append(jobs, fileJob{
			lang: LanguageOf(e.Name()),
			rel:  e.Name(),
			abs:  filepath.Join(l.Root, e.Name()),
		})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoLanguages, l.Root)
	}
	docs, err := readAll(ctx, jobs, l.Workers)
	if err != nil {
		return nil, err
	}
	return group(docs)
}

// LanguageOf names the language of a flat corpus file, lower-cased.
func LanguageOf(filename string) string {
	if lang, _ := enry.GetLanguageByExtension(filename); lang != "" {
		return strings.ToLower(lang)
	}
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.ToLower(base)
}
