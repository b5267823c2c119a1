// Package setup runs a setup profile end to end: the preflight checks, the
// stage prompts, and the installs.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/devsetup/internal/config"
	"github.com/conn-castle/devsetup/internal/fault"
	"github.com/conn-castle/devsetup/internal/install"
	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/sysinfo"
)

// Prompter asks the interactive questions of the full and customized profiles.
type Prompter interface {
	Confirm(title string) (bool, error)
	Input(title string) (string, error)
	Note(title string, body string) error
	SelectTools(stage install.Stage) ([]int, bool, error)
}

// Bootstrapper makes sure the package manager is usable.
type Bootstrapper interface {
	EnsureInstalled(ctx context.Context) error
}

// StageRunner installs one stage.
type StageRunner interface {
	RunStage(ctx context.Context, stage install.Stage, customize bool, selector install.SelectionFunc) (install.BatchReport, error)
}

// ConfigSaver persists the config.
type ConfigSaver interface {
	Save(cfg *config.Config) (string, error)
}

// DetectFunc reports the host OS.
type DetectFunc func(ctx context.Context) (sysinfo.Info, error)

// RunnerConfig is the configuration for NewRunner.
type RunnerConfig struct {
	Config   *config.Config
	Store    ConfigSaver
	Manager  Bootstrapper
	Stages   StageRunner
	Prompter Prompter
	Detect   DetectFunc
	Out      io.Writer
	Logger   log.Logger
}

func (c *RunnerConfig) defaults() error {
	if c.Config == nil {
		return errors.New(messages.SetupConfigRequired)
	}
	if c.Store == nil {
		return errors.New(messages.SetupStoreRequired)
	}
	if c.Manager == nil {
		return errors.New(messages.SetupManagerRequired)
	}
	if c.Stages == nil {
		return errors.New(messages.SetupStageRunnerRequired)
	}
	if c.Detect == nil {
		c.Detect = sysinfo.Detect
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Runner runs setup profiles.
type Runner struct {
	cfg      *config.Config
	store    ConfigSaver
	manager  Bootstrapper
	stages   StageRunner
	prompter Prompter
	detect   DetectFunc
	out      io.Writer
	logger   log.Logger
}

// NewRunner returns a Runner for cfg. The prompter may be nil when only the
// basic profile will run.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Runner{
		cfg:      cfg.Config,
		store:    cfg.Store,
		manager:  cfg.Manager,
		stages:   cfg.Stages,
		prompter: cfg.Prompter,
		detect:   cfg.Detect,
		out:      cfg.Out,
		logger:   cfg.Logger.WithValues(log.Kv{"svc": "setup.Runner"}),
	}, nil
}

// Run executes the preflight checks and then profile. It returns one report
// per stage run. A fatal error from the preflight stops the run before any
// install.
func (r *Runner) Run(ctx context.Context, profile Profile) ([]install.BatchReport, error) {
	logger := r.logger.WithValues(log.Kv{"profile": string(profile)})
	if profile != ProfileBasic && r.prompter == nil {
		return nil, errors.New(messages.SetupPrompterRequired)
	}

	r.checkEnvironment(ctx, logger)
	if err := r.manager.EnsureInstalled(ctx); err != nil {
		return nil, err
	}

	switch profile {
	case ProfileBasic:
		return r.runBasic(ctx)
	case ProfileFull:
		return r.runFull(ctx, logger)
	case ProfileCustomized:
		return r.runCustomized(ctx, logger)
	default:
		return nil, fmt.Errorf(messages.SetupUnknownProfileFmt, string(profile))
	}
}

// checkEnvironment prints the host OS. Detection failures never block setup.
func (r *Runner) checkEnvironment(ctx context.Context, logger log.Logger) {
	info, err := r.detect(ctx)
	if err != nil {
		logger.Warningf(messages.SetupOSDetectFailedFmt, err)
		return
	}
	_, _ = fmt.Fprintf(r.out, messages.SetupOSInfoFmt, info.OSType, info.OSRelease)
	logger.Debugf("host: %s %s (%s)", info.Platform, info.PlatformVersion, info.Arch)
}

func (r *Runner) runBasic(ctx context.Context) ([]install.BatchReport, error) {
	stage := install.Stage{Name: messages.SetupBasicStage, Tools: r.cfg.Basic}
	report, err := r.stages.RunStage(ctx, stage, false, nil)
	if err != nil {
		return nil, err
	}
	return []install.BatchReport{report}, nil
}

func (r *Runner) runFull(ctx context.Context, logger log.Logger) ([]install.BatchReport, error) {
	reports := make([]install.BatchReport, 0, len(r.cfg.Stages))
	for _, sc := range r.cfg.Stages {
		stage := install.Stage{Name: sc.Name, Tools: sc.Tools}
		if len(stage.Tools) == 0 {
			logger.Infof(messages.SetupEmptyStageSkippedFmt, stage.Name)
			reports = append(reports, install.BatchReport{Stage: stage.Name})
			continue
		}

		customize, err := r.prompter.Confirm(fmt.Sprintf(messages.StageCustomizePromptFmt, stage.Name))
		if err != nil {
			return reports, fmt.Errorf(messages.StageCustomizeFailedFmt, stage.Name, err)
		}
		report, err := r.stages.RunStage(ctx, stage, customize, r.prompter.SelectTools)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *Runner) runCustomized(ctx context.Context, logger log.Logger) ([]install.BatchReport, error) {
	tools, err := r.collectTools()
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		_, _ = fmt.Fprintln(r.out, messages.SetupNoCustomTools)
		return []install.BatchReport{{Stage: messages.SetupCustomizedStage}}, nil
	}
	if err := r.prompter.Note(messages.SetupReviewTitle, strings.Join(tools, "\n")); err != nil {
		return nil, fmt.Errorf(messages.SetupReviewFailedFmt, err)
	}

	saveErr := r.saveCustomized(tools, logger)

	stage := install.Stage{Name: messages.SetupCustomizedStage, Tools: tools}
	report, err := r.stages.RunStage(ctx, stage, false, nil)
	if err != nil {
		return nil, errors.Join(err, saveErr)
	}
	return []install.BatchReport{report}, saveErr
}

// collectTools reads tool names until an empty entry.
func (r *Runner) collectTools() ([]string, error) {
	var tools []string
	for {
		entry, err := r.prompter.Input(messages.SetupCustomToolPrompt)
		if err != nil {
			return nil, fmt.Errorf(messages.SetupCollectToolFailedFmt, err)
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return tools, nil
		}
		tools = append(tools, entry)
	}
}

// saveCustomized persists tools as the customized list. A failure is logged
// and returned as a fatal config fault; the caller still installs the list.
func (r *Runner) saveCustomized(tools []string, logger log.Logger) error {
	_, _ = fmt.Fprintf(r.out, messages.ConfigUpdatingCustomizedFmt, tools)

	next := r.cfg.Clone()
	next.Customized = append([]string{}, tools...)
	diff, err := r.store.Save(next)
	if err != nil {
		logger.Errorf("saving customized tools failed: %v", err)
		return fault.NewFatal(fault.KindConfigIO, fmt.Errorf(messages.ConfigCustomizedSaveFailedFmt, err))
	}
	r.cfg.Customized = next.Customized
	if diff != "" {
		logger.Debugf("config updated:\n%s", diff)
	}
	return nil
}
