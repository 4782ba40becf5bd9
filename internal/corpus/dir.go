package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader reads a corpus laid out as one sub-directory per language.
// Every regular file below a language directory is one document; files
// directly under Root and hidden entries are ignored.
type DirLoader struct {
	Root    string
	Workers int // 0 = GOMAXPROCS
}

// Load walks Root and reads all documents in parallel.
func (l DirLoader) Load(ctx context.Context) (*Corpus, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	var (
		jobs  []fileJob
		langs = make(map[string]bool)
	)
	for _, e := range entries {
		if !e.IsDir() || hidden(e.Name()) {
			continue
		}
		name := e.Name()
		langs[name] = true
		top := filepath.Join(l.Root, name)
		err := filepath.WalkDir(top, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if hidden(d.Name()) && path != top {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(l.Root, path)
			if err != nil {
				return err
			}
			jobs = append(jobs, fileJob{lang: name, rel: filepath.ToSlash(rel), abs: path})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("corpus: walk %s: %w", name, err)
		}
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoLanguages, l.Root)
	}

	docs, err := readAll(ctx, jobs, l.Workers)
	if err != nil {
		return nil, err
	}
	for name := range langs {
		if len(docs[name]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyLanguage, name)
		}
	}
	return group(docs)
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
