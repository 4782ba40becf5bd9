package main

import (
	"fmt"
	"io"

	"codeclass/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	if len(timer.Report().Phases) == 0 {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
