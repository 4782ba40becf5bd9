package progress_test

import (
	"testing"

	"codeclass/internal/progress"
)

func TestChannelSink(t *testing.T) {
	ch := make(chan progress.Event, 1)
	progress.ChannelSink{Ch: ch}.OnEvent(progress.Event{Language: "go", Stage: progress.StageLoad})
	if ev := <-ch; ev.Language != "go" {
		t.Fatalf("event = %+v", ev)
	}
	progress.ChannelSink{}.OnEvent(progress.Event{}) // nil channel must not block
	progress.Nop.OnEvent(progress.Event{})
}

func TestFraction(t *testing.T) {
	prev := -1.0
	for _, st := range progress.Stages {
		f := progress.Fraction(st, progress.StatusWorking)
		if f <= prev || f >= 1 {
			t.Fatalf("%s: fraction %v not increasing within (0,1)", st, f)
		}
		prev = f
	}
	if progress.Fraction(progress.StageBayes, progress.StatusDone) != 1 {
		t.Fatalf("finished language must be complete")
	}
	if progress.Fraction(progress.StageTokenize, progress.StatusError) != 1 {
		t.Fatalf("failed language counts as complete")
	}
	if progress.Fraction(progress.StageMatchTree, progress.StatusQueued) != 0 {
		t.Fatalf("queued language must be at 0")
	}
}
