package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"codeclass/internal/classifier"
	"codeclass/internal/progress"
	"codeclass/internal/ui"
)

// trainWithUI trains while a progress view consumes the classifier's
// events. events must be the channel the session's sink writes to.
func trainWithUI(ctx context.Context, title string, c *classifier.Classifier, events chan progress.Event) error {
	outcome := make(chan error, 1)
	go func() {
		err := c.Train(ctx)
		close(events)
		outcome <- err
	}()

	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early; keep the trainer unblocked
	go func() {
		for range events {
		}
	}()
	err := <-outcome
	if uiErr != nil {
		return uiErr
	}
	return err
}
