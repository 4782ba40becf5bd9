package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// fileJob is one file to read into a language.
type fileJob struct {
	lang string
	rel  string
	abs  string
}

// readAll reads every job in parallel. Results are indexed per job so no
// locking is needed.
func readAll(ctx context.Context, jobs []fileJob, workers int) (map[string][]Document, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	texts := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(jobs))))
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := readText(job.abs)
			if err != nil {
				return fmt.Errorf("corpus: read %s: %w", job.rel, err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make(map[string][]Document)
	for i, job := range jobs {
		docs[job.lang] = append(docs[job.lang], Document{Path: job.rel, Text: texts[i]})
	}
	return docs, nil
}

// readText returns the file decoded as UTF-8. A UTF-8 or UTF-16 byte order
// mark selects the encoding and is dropped.
func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
