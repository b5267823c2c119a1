package install

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/conn-castle/devsetup/internal/pkgmgr"
)

// fakeInstaller returns scripted outcomes and records every call.
type fakeInstaller struct {
	mu       sync.Mutex
	outcomes map[string]pkgmgr.Outcome
	delays   map[string]time.Duration
	panics   map[string]bool
	calls    []string
}

func newFakeInstaller() *fakeInstaller {
	return &fakeInstaller{
		outcomes: map[string]pkgmgr.Outcome{},
		delays:   map[string]time.Duration{},
		panics:   map[string]bool{},
	}
}

func (f *fakeInstaller) Install(ctx context.Context, tool string) pkgmgr.Outcome {
	f.mu.Lock()
	f.calls = append(f.calls, tool)
	delay := f.delays[tool]
	shouldPanic := f.panics[tool]
	outcome, ok := f.outcomes[tool]
	f.mu.Unlock()

	if trace := pkgmgr.ContextTrace(ctx); trace != nil && trace.ProbeDone != nil {
		trace.ProbeDone(ok && outcome.Status == pkgmgr.StatusAlreadyPresent, nil)
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if shouldPanic {
		panic("installer exploded")
	}
	if !ok {
		return pkgmgr.Installed()
	}
	return outcome
}

func (f *fakeInstaller) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// eventLog records reporter events and printed lines.
type eventLog struct {
	mu     sync.Mutex
	events []Event
	lines  []string
}

func (l *eventLog) Report(out Printer, ev Event) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *eventLog) Println(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *eventLog) count(kind EventKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, ev := range l.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (l *eventLog) text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
