package install

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/pkgmgr"
	"github.com/conn-castle/devsetup/internal/progress"
)

// EventKind identifies a point in a tool's install lifecycle.
type EventKind int

const (
	// EventStart fires when a worker picks up the tool.
	EventStart EventKind = iota + 1
	// EventProbe fires after the presence probe; see Event.Present and Event.Err.
	EventProbe
	// EventSucceeded fires when the tool is installed or already present.
	EventSucceeded
	// EventFailed fires when the install failed; see Event.Outcome.
	EventFailed
	// EventProgress fires after the tracker advanced; see Event.Progress.
	EventProgress
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventProbe:
		return "probe"
	case EventSucceeded:
		return "succeeded"
	case EventFailed:
		return "failed"
	case EventProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// Event describes one lifecycle step of one tool in a batch.
type Event struct {
	Kind     EventKind
	Index    int
	Tool     string
	Present  bool
	Err      error
	Outcome  pkgmgr.Outcome
	Progress progress.State
}

// Printer writes a status line without corrupting the progress display.
// *progress.Tracker implements it.
type Printer interface {
	Println(line string)
}

// Reporter receives batch events. Report is called from worker goroutines
// and must be safe for concurrent use.
type Reporter interface {
	Report(out Printer, ev Event)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(out Printer, ev Event)

// Report calls f.
func (f ReporterFunc) Report(out Printer, ev Event) {
	f(out, ev)
}

// NopReporter ignores every event.
var NopReporter Reporter = ReporterFunc(func(Printer, Event) {})

// ConsoleReporter prints one colored status line per finished tool.
type ConsoleReporter struct {
	logger  log.Logger
	success *color.Color
	failure *color.Color
	warning *color.Color
}

// NewConsoleReporter returns a ConsoleReporter. Probe and progress details go to logger at debug.
func NewConsoleReporter(logger log.Logger) *ConsoleReporter {
	if logger == nil {
		logger = log.Noop
	}
	return &ConsoleReporter{
		logger:  logger,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
	}
}

// Report renders ev.
func (r *ConsoleReporter) Report(out Printer, ev Event) {
	switch ev.Kind {
	case EventStart:
		r.logger.Debugf(messages.ToolCheckingFmt, ev.Tool)
	case EventProbe:
		if ev.Err != nil {
			out.Println(r.warning.Sprintf(messages.ToolProbeWarningFmt, ev.Tool))
			r.logger.Debugf("probe %s: %v", ev.Tool, ev.Err)
			return
		}
		if ev.Present {
			r.logger.Debugf(messages.ToolAlreadyInstalledFmt, ev.Tool)
		}
	case EventSucceeded:
		out.Println(r.success.Sprintf(messages.ToolSucceededFmt, ev.Tool, messages.MarkSuccess))
	case EventFailed:
		out.Println(r.failure.Sprintf(messages.ToolFailedFmt, ev.Tool, messages.MarkFailure))
		out.Println(fmt.Sprintf(messages.ToolErrorFmt, ev.Outcome.Diagnostic))
	case EventProgress:
		r.logger.Debugf("progress %d/%d", ev.Progress.Completed, ev.Progress.Total)
	}
}
