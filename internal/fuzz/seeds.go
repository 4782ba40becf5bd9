package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// trainingSet is the sample corpus shipped with the repository.
var trainingSet = filepath.Join("..", "..", "testdata", "training-set")

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	f.Add([]byte{})
	f.Add([]byte("   "))
	f.Add([]byte("\r\n\r"))
	f.Add([]byte("\"unterminated"))
	f.Add([]byte("'it''s'"))
	f.Add([]byte("1.2.3 .5 7."))
	f.Add([]byte{0xff, 0xfe, 'x', 0xe2, 0x82})
}

func addTestdataSeeds(f *testing.F) {
	if _, err := os.Stat(trainingSet); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все файлы
	_ = filepath.WalkDir(trainingSet, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
