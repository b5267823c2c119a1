package main

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/devsetup/internal/pkgmgr"
	"github.com/conn-castle/devsetup/internal/sysinfo"
	"github.com/conn-castle/devsetup/internal/wizard"
)

// brewFake answers brew commands: version succeeds, `list` succeeds only
// for tools in present, and `install` succeeds unless the tool is in broken.
type brewFake struct {
	mu      sync.Mutex
	present map[string]bool
	broken  map[string]bool
	calls   []string
}

func (f *brewFake) Run(_ context.Context, name string, args ...string) (pkgmgr.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if len(args) == 0 {
		return pkgmgr.Result{ExitCode: 1}, nil
	}
	switch args[0] {
	case "--version":
		return pkgmgr.Result{Stdout: []byte("Homebrew 4.3.0\n")}, nil
	case "list":
		if f.present[args[len(args)-1]] {
			return pkgmgr.Result{}, nil
		}
		return pkgmgr.Result{ExitCode: 1}, nil
	case "install":
		tool := args[len(args)-1]
		if f.broken[tool] {
			return pkgmgr.Result{ExitCode: 1, Stderr: []byte("Error: No available formula with the name \"" + tool + "\"")}, nil
		}
		return pkgmgr.Result{}, nil
	}
	return pkgmgr.Result{ExitCode: 1}, nil
}

func (f *brewFake) installed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, "brew install ") {
			out = append(out, strings.TrimPrefix(c, "brew install "))
		}
	}
	return out
}

// scriptedUI answers prompts from fixed values.
type scriptedUI struct {
	choice    string
	selectErr error
	confirm   bool
	inputs    []string
}

func (u *scriptedUI) Select(_ string, _ []string, current *string) error {
	if u.selectErr != nil {
		return u.selectErr
	}
	*current = u.choice
	return nil
}

func (u *scriptedUI) MultiSelect(string, []string, *[]int) error { return nil }

func (u *scriptedUI) Confirm(_ string, value *bool) error {
	*value = u.confirm
	return nil
}

func (u *scriptedUI) Input(_ string, value *string) error {
	if len(u.inputs) == 0 {
		*value = ""
		return nil
	}
	*value = u.inputs[0]
	u.inputs = u.inputs[1:]
	return nil
}

func (u *scriptedUI) Note(string, string) error { return nil }

// withFakes installs brew and ui behind the package seams and returns a
// config path inside a temp dir.
func withFakes(t *testing.T, brew *brewFake, ui wizard.UI) string {
	t.Helper()
	origRunner := commandRunner
	origUI := newUI
	origDetect := detectHost
	origInteractive := isInteractiveFunc
	origNoColor := color.NoColor
	t.Cleanup(func() {
		commandRunner = origRunner
		newUI = origUI
		detectHost = origDetect
		isInteractiveFunc = origInteractive
		color.NoColor = origNoColor
	})

	color.NoColor = true
	commandRunner = brew
	newUI = func() wizard.UI { return ui }
	detectHost = func(context.Context) (sysinfo.Info, error) {
		return sysinfo.Info{OSType: "Darwin", OSRelease: "23.1.0", Arch: "arm64"}, nil
	}
	isInteractiveFunc = func() bool { return true }
	t.Setenv("DEVSETUP_CONFIG", "")
	return filepath.Join(t.TempDir(), "config.toml")
}
