package ui

import (
	"strings"
	"testing"

	trainprogress "codeclass/internal/progress"
)

func TestApplyEvent(t *testing.T) {
	m := NewProgressModel("training", []string{"go"}, nil).(*progressModel)
	m.applyEvent(trainprogress.Event{Language: "go", Stage: trainprogress.StageMatchTree, Status: trainprogress.StatusWorking})
	if m.items[0].status != "tree" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	m.applyEvent(trainprogress.Event{Language: "python", Stage: trainprogress.StageTokenize, Status: trainprogress.StatusWorking})
	if len(m.items) != 2 || m.items[1].name != "python" {
		t.Fatalf("late language not added: %+v", m.items)
	}
	m.applyEvent(trainprogress.Event{Language: "go", Stage: trainprogress.StageBayes, Status: trainprogress.StatusDone})
	if m.items[0].status != "done" {
		t.Fatalf("status = %q, want done", m.items[0].status)
	}
	if p := m.percent(); p <= 0.5 || p >= 1 {
		t.Fatalf("percent = %v", p)
	}
	if v := m.View(); !strings.Contains(v, "python") || !strings.Contains(v, "training") {
		t.Fatalf("view = %q", v)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 5); got != "ab..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Fatalf("truncate = %q", got)
	}
}
