// Package progress carries training progress events from the classifier to
// whatever renders them.
package progress

import "time"

// Stage describes a training phase of one language.
type Stage string

const (
	// StageLoad is reading the corpus.
	StageLoad Stage = "load"
	// StageTokenize is tokenizing a language's documents.
	StageTokenize Stage = "tokenize"
	// StageMatchTree is building the match tree.
	StageMatchTree Stage = "matchtree"
	// StageFrequency is extracting frequency tables.
	StageFrequency Stage = "frequency"
	// StageBayes is estimating the frequency model.
	StageBayes Stage = "bayes"
)

// Stages lists the stages in execution order.
var Stages = []Stage{StageLoad, StageTokenize, StageMatchTree, StageFrequency, StageBayes}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the task is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the task is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the task is done.
	StatusDone Status = "done"
	// StatusError indicates the task encountered an error.
	StatusError Status = "error"
)

// Event reports progress for a language (or for the whole training run when
// Language is empty).
type Event struct {
	Language string
	Stage    Stage
	Status   Status
	Err      error
	Elapsed  time.Duration
}

// Sink consumes progress events. OnEvent may be called from several
// goroutines at once.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent sends evt; a nil channel drops it.
func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Func adapts a function to Sink.
type Func func(Event)

// OnEvent calls f.
func (f Func) OnEvent(evt Event) { f(evt) }

type nop struct{}

func (nop) OnEvent(Event) {}

// Nop discards every event.
var Nop Sink = nop{}

// Fraction estimates how far a language is into training once it has
// reached stage with status.
func Fraction(stage Stage, status Status) float64 {
	switch status {
	case StatusDone, StatusError:
		if stage == StageBayes || status == StatusError {
			return 1
		}
	case StatusQueued:
		return 0
	}
	switch stage {
	case StageLoad:
		return 0.05
	case StageTokenize:
		return 0.2
	case StageMatchTree:
		return 0.5
	case StageFrequency:
		return 0.7
	case StageBayes:
		return 0.9
	default:
		return 0
	}
}
