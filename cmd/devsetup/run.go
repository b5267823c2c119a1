package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/devsetup/internal/config"
	"github.com/conn-castle/devsetup/internal/fault"
	"github.com/conn-castle/devsetup/internal/install"
	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/pkgmgr"
	"github.com/conn-castle/devsetup/internal/progress"
	"github.com/conn-castle/devsetup/internal/setup"
	"github.com/conn-castle/devsetup/internal/sysinfo"
	"github.com/conn-castle/devsetup/internal/terminal"
	"github.com/conn-castle/devsetup/internal/wizard"
)

var newUI = func() wizard.UI { return wizard.NewHuhUI() }
var commandRunner pkgmgr.CommandRunner = pkgmgr.ExecRunner{}
var detectHost = sysinfo.Detect
var isInteractiveFunc = terminal.IsInteractive

// loadConfig resolves the config path from the flags and loads it, writing
// the default catalog on first use. Failures are fatal config faults.
func loadConfig(opts *rootOptions, logger log.Logger) (*config.Store, *config.Config, error) {
	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return nil, nil, fault.NewFatal(fault.KindConfigIO, err)
	}
	store := config.NewStore(path)
	cfg, created, err := store.LoadOrInit()
	if err != nil {
		return nil, nil, fault.NewFatal(fault.KindConfigIO, err)
	}
	if created {
		logger.Infof(messages.RootConfigNewFmt, path)
	}
	return store, cfg, nil
}

func newManager(cfg *config.Config, stdout io.Writer, logger log.Logger) (*pkgmgr.Manager, error) {
	return pkgmgr.NewManager(pkgmgr.ManagerConfig{
		Commands: cfg.PackageManager.Commands(),
		Runner:   commandRunner,
		Logger:   logger,
		Out:      stdout,
	})
}

// runSetup wires the config, package manager, orchestrator, and prompts
// together and runs the chosen profile.
func runSetup(ctx context.Context, opts *rootOptions, stdout io.Writer, stderr io.Writer) error {
	logger, err := getLogger(opts, stderr)
	if err != nil {
		return err
	}
	store, cfg, err := loadConfig(opts, logger)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(stdout, color.New(color.Bold).Sprint(messages.WelcomeHeader))

	prompter := wizard.NewPrompter(newUI())
	profile, err := resolveProfile(opts.profile, prompter)
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(stdout, messages.ExitWithoutChanges)
		return nil
	}
	if err != nil {
		return err
	}

	runner, err := buildRunner(opts, cfg, store, prompter, stdout, logger)
	if err != nil {
		return err
	}
	_, err = runner.Run(ctx, profile)
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(stdout, messages.ExitWithoutChanges)
		return nil
	}
	return err
}

// resolveProfile returns the --profile value, or asks for one when it is empty.
func resolveProfile(flagValue string, prompter *wizard.Prompter) (setup.Profile, error) {
	if flagValue != "" {
		profile, err := setup.ParseProfile(flagValue)
		if err != nil {
			return "", fmt.Errorf(messages.ProfileUnknownFmt, flagValue)
		}
		return profile, nil
	}

	profiles := setup.Profiles()
	labels := make([]string, 0, len(profiles))
	for _, p := range profiles {
		labels = append(labels, p.Label())
	}
	choice, err := prompter.Choose(messages.ProfilePrompt, labels, labels[0])
	if err != nil {
		return "", err
	}
	return setup.ParseProfile(choice)
}

func buildRunner(opts *rootOptions, cfg *config.Config, store *config.Store, prompter setup.Prompter, stdout io.Writer, logger log.Logger) (*setup.Runner, error) {
	manager, err := newManager(cfg, stdout, logger)
	if err != nil {
		return nil, err
	}

	workers := cfg.Install.Workers
	if opts.workersSet {
		workers = opts.workers
	}
	orchestrator, err := install.NewOrchestrator(install.OrchestratorConfig{
		Installer: pkgmgr.NewInstaller(manager, logger),
		Workers:   workers,
		Renderer:  func() progress.Renderer { return progress.NewRenderer(stdout) },
		Reporter:  install.NewConsoleReporter(logger),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	stages, err := install.NewStageRunner(install.StageRunnerConfig{
		Orchestrator: orchestrator,
		Out:          stdout,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	return setup.NewRunner(setup.RunnerConfig{
		Config:   cfg,
		Store:    store,
		Manager:  manager,
		Stages:   stages,
		Prompter: prompter,
		Detect:   detectHost,
		Out:      stdout,
		Logger:   logger,
	})
}
