package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"codeclass/internal/classifier"
	"codeclass/internal/lexer"
)

func sampleResult() classifier.Result {
	return classifier.Result{
		Language:  "go",
		Certainty: 0.5,
		Scores:    map[string]float64{"go": 1, "python": 0.5, "c": 0.25},
		MatchTree: classifier.Breakdown{Best: "go", Certainty: 0.4, Scores: map[string]float64{"go": 1, "python": 0.6, "c": 0}},
		Frequency: classifier.Breakdown{Abstained: true, Scores: map[string]float64{"go": 0, "python": 0, "c": 0}},
		Tokens:    12,
	}
}

func TestRenderResultPretty(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var buf bytes.Buffer
	if err := renderResultPretty(&buf, sampleResult(), classifyOptions{explain: true, top: 2}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"go  certainty 0.500, 12 tokens", "python  0.5000", "matchtree: go", "frequency: abstained"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "  c       0.2500") {
		t.Errorf("--top 2 printed a third language:\n%s", out)
	}
}

func TestRenderResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderResultJSON(&buf, sampleResult(), classifyOptions{top: 1}); err != nil {
		t.Fatal(err)
	}
	var got resultPayload
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Language != "go" || len(got.Ranked) != 1 || got.MatchTree != nil {
		t.Fatalf("payload = %+v", got)
	}
}

func TestFormatTokens(t *testing.T) {
	tokens := lexer.Tokenize("x = 1\n")
	var buf bytes.Buffer
	if err := formatTokensPretty(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(tokens) {
		t.Fatalf("%d lines for %d tokens", len(lines), len(tokens))
	}
	if !strings.HasPrefix(lines[0], "1:1") || !strings.Contains(lines[0], `"x"`) {
		t.Fatalf("first line = %q", lines[0])
	}

	buf.Reset()
	if err := formatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var payload []tokenPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload[len(payload)-1].Kind != "eof" {
		t.Fatalf("last token = %+v", payload[len(payload)-1])
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	err := renderStats(&buf, classifier.Stats{
		Model:      classifier.FreqGaussian,
		Vocabulary: 42,
		Languages:  []classifier.LanguageStats{{Language: "typescript", Documents: 3, Tokens: 100, Nodes: 50, TotalPossibleScore: 1024}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1 languages, 42 features, gaussian model (trained)") || !strings.Contains(buf.String(), "typescript") {
		t.Fatalf("stats output:\n%s", buf.String())
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("expected error")
	}
}

func TestReadInputStdin(t *testing.T) {
	name, text, err := readInput([]string{"-"}, strings.NewReader("print(1)"))
	if err != nil || name != "<stdin>" || text != "print(1)" {
		t.Fatalf("readInput = %q %q %v", name, text, err)
	}
}

func TestTopN(t *testing.T) {
	r := []classifier.Ranked{{Language: "a"}, {Language: "b"}}
	if len(topN(r, 0)) != 2 || len(topN(r, 1)) != 1 || len(topN(r, 5)) != 2 {
		t.Fatal("topN bounds")
	}
}
