// Package config finds and decodes codeclass.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"codeclass/internal/bayes"
	"codeclass/internal/freq"
	"codeclass/internal/matchtree"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "codeclass.toml"

// Corpus layouts.
const (
	LayoutDirs = "dirs"
	LayoutFlat = "flat"
)

// Config is the decoded manifest with defaults applied.
type Config struct {
	// Path of the manifest, empty when none was found.
	Path string `toml:"-"`

	Corpus    CorpusConfig    `toml:"corpus"`
	MatchTree MatchTreeConfig `toml:"matchtree"`
	Frequency FrequencyConfig `toml:"frequency"`
	Cache     CacheConfig     `toml:"cache"`
}

type CorpusConfig struct {
	Path    string `toml:"path"`
	Layout  string `toml:"layout"`
	Workers int    `toml:"workers"`
}

type MatchTreeConfig struct {
	LevelMultiplier float64 `toml:"level_multiplier"`
	ExactMultiplier float64 `toml:"exact_multiplier"`
}

type FrequencyConfig struct {
	Model       string  `toml:"model"`
	MinCount    int     `toml:"min_count"`
	MaxTextLen  int     `toml:"max_text_len"`
	MinVariance float64 `toml:"min_variance"`
	Scale       float64 `toml:"scale"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used without a manifest.
func Default() Config {
	mt := matchtree.DefaultOptions()
	fo := freq.DefaultOptions()
	bo := bayes.DefaultOptions()
	return Config{
		Corpus: CorpusConfig{Path: "training-set", Layout: LayoutDirs},
		MatchTree: MatchTreeConfig{
			LevelMultiplier: mt.LevelMultiplier,
			ExactMultiplier: mt.ExactMultiplier,
		},
		Frequency: FrequencyConfig{
			Model:       "gaussian",
			MinCount:    fo.MinCount,
			MaxTextLen:  fo.MaxTextLen,
			MinVariance: bo.MinVariance,
			Scale:       bo.Scale,
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the manifest found from startDir, or Default when there
// is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path over Default. Relative corpus and cache paths are
// resolved against the manifest's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	root := filepath.Dir(path)

	if meta.IsDefined("corpus", "path") && strings.TrimSpace(cfg.Corpus.Path) == "" {
		return Config{}, fmt.Errorf("%s: [corpus].path is empty", path)
	}
	if !filepath.IsAbs(cfg.Corpus.Path) {
		cfg.Corpus.Path = filepath.Join(root, filepath.FromSlash(cfg.Corpus.Path))
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(root, filepath.FromSlash(cfg.Cache.Dir))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values no component accepts.
func (c Config) Validate() error {
	switch c.Corpus.Layout {
	case LayoutDirs, LayoutFlat:
	default:
		return fmt.Errorf("[corpus].layout must be %q or %q, got %q", LayoutDirs, LayoutFlat, c.Corpus.Layout)
	}
	switch c.Frequency.Model {
	case "gaussian", "difference":
	default:
		return fmt.Errorf("[frequency].model must be \"gaussian\" or \"difference\", got %q", c.Frequency.Model)
	}
	if c.Corpus.Workers < 0 {
		return fmt.Errorf("[corpus].workers must not be negative")
	}
	if c.MatchTree.LevelMultiplier <= 0 || c.MatchTree.ExactMultiplier <= 0 {
		return fmt.Errorf("[matchtree] multipliers must be positive")
	}
	if c.Frequency.MinCount <= 0 || c.Frequency.MaxTextLen <= 0 {
		return fmt.Errorf("[frequency].min_count and max_text_len must be positive")
	}
	if c.Frequency.MinVariance <= 0 || c.Frequency.Scale <= 0 {
		return fmt.Errorf("[frequency].min_variance and scale must be positive")
	}
	return nil
}

// MatchTreeOptions converts the [matchtree] table.
func (c Config) MatchTreeOptions() matchtree.Options {
	return matchtree.Options{
		LevelMultiplier: c.MatchTree.LevelMultiplier,
		ExactMultiplier: c.MatchTree.ExactMultiplier,
	}
}

// FrequencyOptions converts the extraction part of [frequency].
func (c Config) FrequencyOptions() freq.Options {
	return freq.Options{MinCount: c.Frequency.MinCount, MaxTextLen: c.Frequency.MaxTextLen}
}

// BayesOptions converts the Gaussian part of [frequency].
func (c Config) BayesOptions() bayes.Options {
	return bayes.Options{MinVariance: c.Frequency.MinVariance, Scale: c.Frequency.Scale}
}
