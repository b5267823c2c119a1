package pkgmgr

import (
	"context"
	"strings"
	"sync"
)

type fakeCall struct {
	Name string
	Args []string
}

type fakeResponse struct {
	Result Result
	Err    error
}

// fakeRunner answers commands by their joined command line. Unknown commands
// exit 0 with no output.
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []fakeCall
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{responses: map[string]fakeResponse{}}
}

func (f *fakeRunner) on(cmdline string, res Result, err error) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = fakeResponse{Result: res, Err: err}
	return f
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{Name: name, Args: append([]string(nil), args...)})
	key := strings.Join(append([]string{name}, args...), " ")
	resp, ok := f.responses[key]
	if !ok {
		return Result{}, nil
	}
	return resp.Result, resp.Err
}

func (f *fakeRunner) count(cmdline string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.Join(append([]string{c.Name}, c.Args...), " ") == cmdline {
			n++
		}
	}
	return n
}

func (f *fakeRunner) countPrefix(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(strings.Join(append([]string{c.Name}, c.Args...), " "), prefix) {
			n++
		}
	}
	return n
}

func testCommands() Commands {
	return Commands{
		Binary:    "brew",
		Version:   []string{"--version"},
		Query:     []string{"list", ToolPlaceholder},
		Install:   []string{"install", ToolPlaceholder},
		Bootstrap: []string{"/bin/bash", "-c", "bootstrap"},
	}
}
