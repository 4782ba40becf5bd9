package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeclass/internal/config"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[corpus]\npath = \"samples\"\nlayout = \"flat\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Corpus.Layout != config.LayoutFlat {
		t.Fatalf("layout = %q", cfg.Corpus.Layout)
	}
	want := filepath.Join(root, "samples")
	if abs, _ := filepath.Abs(want); cfg.Corpus.Path != abs && cfg.Corpus.Path != want {
		t.Fatalf("corpus path = %q, want %q", cfg.Corpus.Path, want)
	}
	// untouched tables keep their defaults
	if cfg.Frequency.MinCount != 2 || cfg.MatchTree.ExactMultiplier != 5 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	cfg, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" && !strings.HasSuffix(cfg.Path, config.FileName) {
		t.Fatalf("path = %q", cfg.Path)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad layout", "[corpus]\nlayout = \"tree\"\n", "layout"},
		{"bad model", "[frequency]\nmodel = \"knn\"\n", "model"},
		{"unknown key", "[corpus]\npaht = \"x\"\n", "unknown keys"},
		{"negative multiplier", "[matchtree]\nlevel_multiplier = -1.0\n", "multipliers"},
		{"syntax", "[corpus\n", "parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestOptionsConversion(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[matchtree]
level_multiplier = 3.0
[frequency]
model = "difference"
min_count = 1
min_variance = 0.01
[cache]
enabled = true
dir = "cache"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MatchTreeOptions().LevelMultiplier != 3 || cfg.FrequencyOptions().MinCount != 1 || cfg.BayesOptions().MinVariance != 0.01 {
		t.Fatalf("options = %+v", cfg)
	}
	if !cfg.Cache.Enabled || !filepath.IsAbs(cfg.Cache.Dir) {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
}
