package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"codeclass/internal/classifier"
	"codeclass/internal/progress"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the models and print what was learned",
	Long:  `Train reads the corpus, builds every model, writes the model cache when enabled and prints per-language statistics`,
	Args:  cobra.NoArgs,
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runTrain(cmd *cobra.Command, _ []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	withUI := shouldUseTUI(mode)

	var (
		events chan progress.Event
		sink   progress.Sink
	)
	if withUI {
		events = make(chan progress.Event, 256)
		sink = progress.ChannelSink{Ch: events}
	}
	s, err := newSession(cmd, sink)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if withUI {
		err = trainWithUI(ctx, "training "+s.cfg.Corpus.Path, s.classifier, events)
	} else {
		err = s.classifier.Train(ctx)
	}
	if err != nil {
		return err
	}

	stats, err := s.classifier.Stats()
	if err != nil {
		return err
	}
	if err := renderStats(cmd.OutOrStdout(), stats); err != nil {
		return err
	}
	printTimings(os.Stderr, s.timer)
	return nil
}

func renderStats(out io.Writer, st classifier.Stats) error {
	width := len("language")
	for _, l := range st.Languages {
		width = max(width, runewidth.StringWidth(l.Language))
	}
	source := "trained"
	if st.FromCache {
		source = "cached"
	}
	if _, err := fmt.Fprintf(out, "%d languages, %d features, %s model (%s)\n\n",
		len(st.Languages), st.Vocabulary, st.Model, source); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "%s  %9s  %9s  %7s  %12s\n",
		runewidth.FillRight("language", width), "documents", "tokens", "nodes", "total"); err != nil {
		return err
	}
	for _, l := range st.Languages {
		if _, err := fmt.Fprintf(out, "%s  %9d  %9d  %7d  %12.4g\n",
			runewidth.FillRight(l.Language, width), l.Documents, l.Tokens, l.Nodes, l.TotalPossibleScore); err != nil {
			return err
		}
	}
	return nil
}
