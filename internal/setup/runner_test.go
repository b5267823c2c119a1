package setup

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/devsetup/internal/config"
	"github.com/conn-castle/devsetup/internal/fault"
	"github.com/conn-castle/devsetup/internal/install"
	"github.com/conn-castle/devsetup/internal/pkgmgr"
	"github.com/conn-castle/devsetup/internal/progress"
	"github.com/conn-castle/devsetup/internal/sysinfo"
	"github.com/conn-castle/devsetup/internal/wizard"
)

// brewFake answers brew commands: tools in installed are present, everything
// else installs successfully unless listed in broken.
type brewFake struct {
	mu        sync.Mutex
	installed map[string]bool
	broken    map[string]bool
	calls     []string
}

func newBrewFake(installed ...string) *brewFake {
	f := &brewFake{installed: map[string]bool{}, broken: map[string]bool{}}
	for _, tool := range installed {
		f.installed[tool] = true
	}
	return f
}

func (f *brewFake) Run(_ context.Context, name string, args ...string) (pkgmgr.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if len(args) == 1 && args[0] == "--version" {
		return pkgmgr.Result{Stdout: []byte("Homebrew 4.3.0\n")}, nil
	}
	if len(args) == 2 && args[0] == "list" {
		if f.installed[args[1]] {
			return pkgmgr.Result{}, nil
		}
		return pkgmgr.Result{ExitCode: 1}, nil
	}
	if len(args) == 2 && args[0] == "install" {
		if f.broken[args[1]] {
			return pkgmgr.Result{ExitCode: 1, Stderr: []byte("Error: No available formula with the name \"" + args[1] + "\".")}, nil
		}
		f.installed[args[1]] = true
		return pkgmgr.Result{}, nil
	}
	return pkgmgr.Result{}, nil
}

func (f *brewFake) commands(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

type fakePrompter struct {
	confirms  []bool
	inputs    []string
	selection []int
	cancel    bool
	err       error
	noteErr   error
	titles    []string
	notes     []string
}

func (p *fakePrompter) Confirm(title string) (bool, error) {
	p.titles = append(p.titles, title)
	if p.err != nil {
		return false, p.err
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *fakePrompter) Input(title string) (string, error) {
	p.titles = append(p.titles, title)
	if p.err != nil {
		return "", p.err
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *fakePrompter) Note(title string, body string) error {
	p.titles = append(p.titles, title)
	p.notes = append(p.notes, body)
	return p.noteErr
}

func (p *fakePrompter) SelectTools(stage install.Stage) ([]int, bool, error) {
	p.titles = append(p.titles, "select "+stage.Name)
	if p.cancel {
		return nil, false, nil
	}
	return p.selection, true, nil
}

type fakeSaver struct {
	saved []*config.Config
	err   error
}

func (s *fakeSaver) Save(cfg *config.Config) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, cfg)
	return "--- diff", nil
}

type stateRenderer struct {
	progress.NopRenderer
	mu     sync.Mutex
	states []progress.State
}

func (r *stateRenderer) Finish(state progress.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

type harness struct {
	brew     *brewFake
	prompter *fakePrompter
	saver    *fakeSaver
	renderer *stateRenderer
	out      *bytes.Buffer
	runner   *Runner
}

func newHarness(t *testing.T, cfg *config.Config, brew *brewFake, prompter *fakePrompter) *harness {
	t.Helper()
	h := &harness{brew: brew, prompter: prompter, saver: &fakeSaver{}, renderer: &stateRenderer{}, out: &bytes.Buffer{}}

	manager, err := pkgmgr.NewManager(pkgmgr.ManagerConfig{Commands: pkgmgr.Homebrew(), Runner: brew, Out: h.out})
	require.NoError(t, err)
	orchestrator, err := install.NewOrchestrator(install.OrchestratorConfig{
		Installer: pkgmgr.NewInstaller(manager, nil),
		Workers:   4,
		Renderer:  func() progress.Renderer { return h.renderer },
	})
	require.NoError(t, err)
	stages, err := install.NewStageRunner(install.StageRunnerConfig{Orchestrator: orchestrator, Out: h.out})
	require.NoError(t, err)

	var p Prompter
	if prompter != nil {
		p = prompter
	}
	h.runner, err = NewRunner(RunnerConfig{
		Config:   cfg,
		Store:    h.saver,
		Manager:  manager,
		Stages:   stages,
		Prompter: p,
		Detect: func(context.Context) (sysinfo.Info, error) {
			return sysinfo.Info{OSType: "Darwin", OSRelease: "23.1.0"}, nil
		},
		Out: h.out,
	})
	require.NoError(t, err)
	return h
}

func TestNewRunnerValidatesConfig(t *testing.T) {
	_, err := NewRunner(RunnerConfig{})
	require.Error(t, err)
}

func TestRunBasicInstallsMissingTools(t *testing.T) {
	cfg := &config.Config{Basic: []string{"git", "curl"}}
	h := newHarness(t, cfg, newBrewFake(), nil)

	reports, err := h.runner.Run(context.Background(), ProfileBasic)
	require.NoError(t, err)

	require.Len(t, reports, 1)
	require.Len(t, reports[0].Items, 2)
	assert.Equal(t, "git", reports[0].Items[0].Tool)
	assert.Equal(t, pkgmgr.Installed(), reports[0].Items[0].Outcome)
	assert.Equal(t, "curl", reports[0].Items[1].Tool)
	assert.Equal(t, pkgmgr.Installed(), reports[0].Items[1].Outcome)
	assert.Equal(t, []progress.State{{Completed: 2, Total: 2}}, h.renderer.states)

	out := h.out.String()
	assert.Contains(t, out, "OS Type: Darwin, OS Release: 23.1.0\n")
	assert.Contains(t, out, "brew is already installed.\n")
	assert.Contains(t, out, "Basic: installed 2, already present 0, failed 0\n")
}

func TestRunBasicSkipsPresentTools(t *testing.T) {
	cfg := &config.Config{Basic: []string{"git", "curl"}}
	h := newHarness(t, cfg, newBrewFake("git"), nil)

	reports, err := h.runner.Run(context.Background(), ProfileBasic)
	require.NoError(t, err)

	assert.Equal(t, pkgmgr.AlreadyPresent(), reports[0].Items[0].Outcome)
	assert.Equal(t, []string{"brew install curl"}, h.brew.commands("brew install"))
}

func TestRunFullCustomizedStageSelectsSubset(t *testing.T) {
	cfg := &config.Config{Stages: []config.StageConfig{{Name: "Languages", Tools: []string{"rust", "python"}}}}
	prompter := &fakePrompter{confirms: []bool{true}, selection: []int{0}}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	reports, err := h.runner.Run(context.Background(), ProfileFull)
	require.NoError(t, err)

	require.Len(t, reports, 1)
	require.Len(t, reports[0].Items, 1)
	assert.Equal(t, "rust", reports[0].Items[0].Tool)
	assert.Equal(t, []string{"brew list rust"}, h.brew.commands("brew list"))
	assert.Equal(t, []string{"brew install rust"}, h.brew.commands("brew install"))
	assert.Equal(t, []string{
		"Do you want to customize the tools in this stage for Languages?",
		"select Languages",
	}, prompter.titles)
}

func TestRunFullWalksStagesInOrder(t *testing.T) {
	cfg := &config.Config{Stages: []config.StageConfig{
		{Name: "Languages", Tools: []string{"go"}},
		{Name: "Empty"},
		{Name: "Extras", Tools: []string{"cowsay", "fortune"}},
	}}
	prompter := &fakePrompter{confirms: []bool{false, true}, cancel: true}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	reports, err := h.runner.Run(context.Background(), ProfileFull)
	require.NoError(t, err)

	require.Len(t, reports, 3)
	assert.Equal(t, "Languages", reports[0].Stage)
	assert.Len(t, reports[0].Items, 1)
	assert.Equal(t, "Empty", reports[1].Stage)
	assert.True(t, reports[1].Empty())
	assert.Equal(t, "Extras", reports[2].Stage)
	assert.True(t, reports[2].Empty())
	assert.Empty(t, h.brew.commands("brew list cowsay"))
	assert.Contains(t, h.out.String(), "Cancelled installation.\n")
	// The empty stage never prompts.
	assert.Len(t, prompter.titles, 3)
}

func TestRunFullPromptAbort(t *testing.T) {
	cfg := &config.Config{Stages: []config.StageConfig{{Name: "Languages", Tools: []string{"go"}}}}
	prompter := &fakePrompter{err: wizard.ErrCancelled}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	_, err := h.runner.Run(context.Background(), ProfileFull)
	require.ErrorIs(t, err, wizard.ErrCancelled)
	assert.Empty(t, h.brew.commands("brew install"))
}

func TestRunCustomizedSavesAndInstalls(t *testing.T) {
	cfg := &config.Config{Basic: []string{"git"}}
	prompter := &fakePrompter{inputs: []string{" jq ", ""}}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	reports, err := h.runner.Run(context.Background(), ProfileCustomized)
	require.NoError(t, err)

	require.Len(t, h.saver.saved, 1)
	assert.Equal(t, []string{"jq"}, h.saver.saved[0].Customized)
	assert.Equal(t, []string{"git"}, h.saver.saved[0].Basic)
	assert.Equal(t, []string{"jq"}, cfg.Customized)

	require.Len(t, reports, 1)
	assert.Equal(t, "Customized", reports[0].Stage)
	require.Len(t, reports[0].Items, 1)
	assert.Equal(t, "jq", reports[0].Items[0].Tool)
	assert.Contains(t, h.out.String(), "Updating customized tools: [jq]\n")
	assert.Equal(t, []string{"jq"}, prompter.notes)
}

func TestRunCustomizedReviewsListBeforeSaving(t *testing.T) {
	cfg := &config.Config{}
	prompter := &fakePrompter{inputs: []string{"jq", "tree", ""}}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	_, err := h.runner.Run(context.Background(), ProfileCustomized)
	require.NoError(t, err)
	assert.Equal(t, []string{"jq\ntree"}, prompter.notes)
	assert.Contains(t, prompter.titles, "Tools to install")
}

func TestRunCustomizedReviewCancelledSavesNothing(t *testing.T) {
	cfg := &config.Config{Customized: []string{"htop"}}
	prompter := &fakePrompter{inputs: []string{"jq", ""}, noteErr: wizard.ErrCancelled}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	reports, err := h.runner.Run(context.Background(), ProfileCustomized)
	require.ErrorIs(t, err, wizard.ErrCancelled)
	assert.Nil(t, reports)
	assert.Empty(t, h.saver.saved)
	assert.Empty(t, h.brew.commands("brew install"))
	assert.Equal(t, []string{"htop"}, cfg.Customized)
}

func TestRunCustomizedEmptyListKeepsSavedList(t *testing.T) {
	cfg := &config.Config{Customized: []string{"htop"}}
	prompter := &fakePrompter{inputs: []string{""}}
	h := newHarness(t, cfg, newBrewFake(), prompter)

	reports, err := h.runner.Run(context.Background(), ProfileCustomized)
	require.NoError(t, err)
	assert.Empty(t, h.saver.saved)
	assert.Empty(t, prompter.notes)
	assert.Empty(t, h.brew.commands("brew install"))
	assert.Equal(t, []string{"htop"}, cfg.Customized)

	require.Len(t, reports, 1)
	assert.Equal(t, "Customized", reports[0].Stage)
	assert.Empty(t, reports[0].Items)
	assert.Contains(t, h.out.String(), "keeping the saved customized list")
}

func TestRunCustomizedSaveFailureStillInstalls(t *testing.T) {
	cfg := &config.Config{}
	prompter := &fakePrompter{inputs: []string{"jq", "tree", ""}}
	h := newHarness(t, cfg, newBrewFake(), prompter)
	h.saver.err = errors.New("read-only file system")

	reports, err := h.runner.Run(context.Background(), ProfileCustomized)
	require.Error(t, err)
	assert.True(t, fault.IsFatal(err))
	assert.Equal(t, fault.KindConfigIO, fault.KindOf(err))
	assert.Contains(t, err.Error(), "read-only file system")

	require.Len(t, reports, 1)
	assert.Len(t, reports[0].Items, 2)
	assert.Empty(t, cfg.Customized)
}

func TestRunBootstrapFailureIsFatal(t *testing.T) {
	cfg := &config.Config{Basic: []string{"git"}}
	brew := &failingBrew{}
	h := newHarness(t, cfg, newBrewFake(), nil)
	manager, err := pkgmgr.NewManager(pkgmgr.ManagerConfig{Commands: pkgmgr.Homebrew(), Runner: brew})
	require.NoError(t, err)
	h.runner.manager = manager

	reports, err := h.runner.Run(context.Background(), ProfileBasic)
	require.Error(t, err)
	assert.Nil(t, reports)
	assert.True(t, fault.IsFatal(err))
	assert.Equal(t, fault.KindBootstrap, fault.KindOf(err))
	assert.Empty(t, h.brew.calls)
}

func TestRunDetectFailureDoesNotBlock(t *testing.T) {
	cfg := &config.Config{Basic: []string{"git"}}
	h := newHarness(t, cfg, newBrewFake(), nil)
	h.runner.detect = func(context.Context) (sysinfo.Info, error) { return sysinfo.Info{}, errors.New("no host info") }

	reports, err := h.runner.Run(context.Background(), ProfileBasic)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.NotContains(t, h.out.String(), "OS Type")
}

func TestRunRequiresPrompterForInteractiveProfiles(t *testing.T) {
	h := newHarness(t, &config.Config{}, newBrewFake(), nil)
	_, err := h.runner.Run(context.Background(), ProfileFull)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompter is required")
}

// failingBrew simulates a host where brew is missing and the installer script fails.
type failingBrew struct{}

func (failingBrew) Run(_ context.Context, name string, _ ...string) (pkgmgr.Result, error) {
	if name == "brew" {
		return pkgmgr.Result{ExitCode: 127}, errors.New("executable file not found in $PATH")
	}
	return pkgmgr.Result{ExitCode: 1, Stderr: []byte("curl: (6) Could not resolve host")}, nil
}
