package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"codeclass/internal/lexer"
	"codeclass/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file|-]",
	Short: "Print the tokens of a snippet",
	Long:  `Tokenize breaks a snippet into the typed tokens the classifier scores`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("skip-ws", false, "drop whitespace tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	skipWS, _ := cmd.Flags().GetBool("skip-ws")

	_, text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	tokens := lexer.New(text, lexer.Options{SkipWhitespace: skipWS}).Collect()

	switch format {
	case "pretty":
		return formatTokensPretty(cmd.OutOrStdout(), tokens)
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatTokensPretty(out io.Writer, tokens []token.Token) error {
	const kindWidth = 12
	for _, t := range tokens {
		pos := fmt.Sprintf("%d:%d", t.Line, t.Column)
		if _, err := fmt.Fprintf(out, "%-8s %s %s\n", pos, runewidth.FillRight(t.Kind.String(), kindWidth), strconv.Quote(t.Text)); err != nil {
			return err
		}
	}
	return nil
}

type tokenPayload struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func formatTokensJSON(out io.Writer, tokens []token.Token) error {
	payload := make([]tokenPayload, len(tokens))
	for i, t := range tokens {
		payload[i] = tokenPayload{Kind: t.Kind.String(), Text: t.Text, Line: t.Line, Column: t.Column}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
