package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeclass/internal/classifier"
	"codeclass/internal/config"
	"codeclass/internal/corpus"
	"codeclass/internal/modelcache"
	"codeclass/internal/observ"
	"codeclass/internal/progress"
)

// session is everything a command needs to classify.
type session struct {
	cfg        config.Config
	logger     *log.Logger
	timer      *observ.Timer
	classifier *classifier.Classifier
}

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(flag) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", flag)
	}
}

func setColor(on bool) { color.NoColor = !on }

func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return os.Stdout
}

func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := log.ParseLevel(levelFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "codeclass",
	}), nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("config")
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := flags.GetString("corpus"); v != "" {
		cfg.Corpus.Path = v
	}
	if v, _ := flags.GetString("layout"); v != "" {
		cfg.Corpus.Layout = strings.ToLower(v)
	}
	if v, _ := flags.GetString("model"); v != "" {
		cfg.Frequency.Model = strings.ToLower(v)
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLoader(cfg config.Config) corpus.Loader {
	if cfg.Corpus.Layout == config.LayoutFlat {
		return corpus.FlatLoader{Root: cfg.Corpus.Path, Workers: cfg.Corpus.Workers}
	}
	return corpus.DirLoader{Root: cfg.Corpus.Path, Workers: cfg.Corpus.Workers}
}

// newSession wires config, logging, cache and timer into a classifier.
// sink may be nil.
func newSession(cmd *cobra.Command, sink progress.Sink) (*session, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	colorOn, err := useColor(cmd, stdoutFile(cmd))
	if err != nil {
		return nil, err
	}
	setColor(colorOn)

	var timer *observ.Timer
	if on, _ := cmd.Root().PersistentFlags().GetBool("timings"); on {
		timer = observ.NewTimer()
	}

	model, _ := classifier.ParseFrequencyModel(cfg.Frequency.Model)
	opts := []classifier.Option{
		classifier.WithLogger(logger),
		classifier.WithMatchTree(cfg.MatchTreeOptions()),
		classifier.WithFrequency(cfg.FrequencyOptions()),
		classifier.WithBayes(cfg.BayesOptions()),
		classifier.WithFrequencyModel(model),
		classifier.WithWorkers(cfg.Corpus.Workers),
		classifier.WithTimer(timer),
		classifier.WithProgress(sink),
	}
	if cfg.Cache.Enabled {
		cache, err := modelcache.Open(cfg.Cache.Dir)
		if err != nil {
			logger.Warn("model cache disabled", "err", err)
		} else {
			opts = append(opts, classifier.WithCache(cache))
		}
	}
	logger.Debug("configuration", "manifest", cfg.Path, "corpus", cfg.Corpus.Path, "layout", cfg.Corpus.Layout, "model", model)

	return &session{
		cfg:        cfg,
		logger:     logger,
		timer:      timer,
		classifier: classifier.New(newLoader(cfg), opts...),
	}, nil
}
