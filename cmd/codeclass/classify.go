package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"codeclass/internal/classifier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] [file|-]",
	Short: "Name the language of a snippet",
	Long:  `Classify reads a snippet from a file or stdin and prints the most likely language`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	classifyCmd.Flags().Bool("explain", false, "show the per-model breakdown")
	classifyCmd.Flags().Int("top", 0, "list the N best languages (0 = winner only)")
}

type classifyOptions struct {
	explain bool
	top     int
}

func runClassify(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	explain, _ := cmd.Flags().GetBool("explain")
	top, _ := cmd.Flags().GetInt("top")
	if top < 0 {
		return fmt.Errorf("--top must not be negative")
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	_, text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	s, err := newSession(cmd, nil)
	if err != nil {
		return err
	}
	res, err := s.classifier.Classify(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := classifyOptions{explain: explain, top: top}
	if format == "json" {
		err = renderResultJSON(out, res, opts)
	} else {
		err = renderResultPretty(out, res, opts)
	}
	if err != nil {
		return err
	}
	printTimings(os.Stderr, s.timer)
	return nil
}

type resultPayload struct {
	Language  string                `json:"language"`
	Certainty float64               `json:"certainty"`
	Tokens    int                   `json:"tokens"`
	Ranked    []classifier.Ranked   `json:"ranked,omitempty"`
	MatchTree *classifier.Breakdown `json:"matchtree,omitempty"`
	Frequency *classifier.Breakdown `json:"frequency,omitempty"`
}

func renderResultJSON(out io.Writer, res classifier.Result, opts classifyOptions) error {
	payload := resultPayload{
		Language:  res.Language,
		Certainty: res.Certainty,
		Tokens:    res.Tokens,
	}
	if opts.top > 0 {
		payload.Ranked = topN(res.Ranked(), opts.top)
	}
	if opts.explain {
		payload.MatchTree = &res.MatchTree
		payload.Frequency = &res.Frequency
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

var (
	winnerColor = color.New(color.FgGreen, color.Bold)
	dimColor    = color.New(color.Faint)
)

func renderResultPretty(out io.Writer, res classifier.Result, opts classifyOptions) error {
	if _, err := fmt.Fprintf(out, "%s  %s\n",
		winnerColor.Sprint(res.Language),
		dimColor.Sprintf("certainty %.3f, %d tokens", res.Certainty, res.Tokens)); err != nil {
		return err
	}
	if opts.top > 0 {
		if err := writeRanked(out, "", topN(res.Ranked(), opts.top)); err != nil {
			return err
		}
	}
	if opts.explain {
		for _, part := range []struct {
			name string
			b    classifier.Breakdown
		}{{"matchtree", res.MatchTree}, {"frequency", res.Frequency}} {
			best := part.b.Best
			if part.b.Abstained || best == "" {
				best = "abstained"
			}
			if _, err := fmt.Fprintf(out, "\n%s: %s (certainty %.3f)\n", part.name, best, part.b.Certainty); err != nil {
				return err
			}
			limit := opts.top
			if limit == 0 {
				limit = len(part.b.Scores)
			}
			if err := writeRanked(out, "  ", topN(part.b.Ranked(), limit)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRanked prints one language per line, names padded to the widest.
func writeRanked(out io.Writer, indent string, ranked []classifier.Ranked) error {
	width := 0
	for _, r := range ranked {
		width = max(width, runewidth.StringWidth(r.Language))
	}
	for _, r := range ranked {
		if _, err := fmt.Fprintf(out, "%s  %s  %.4f\n", indent, runewidth.FillRight(r.Language, width), r.Score); err != nil {
			return err
		}
	}
	return nil
}

func topN(ranked []classifier.Ranked, n int) []classifier.Ranked {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
