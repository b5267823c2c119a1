// Package pkgmgr drives the system package manager: it probes for installed
// packages, installs missing ones, and bootstraps the manager itself.
package pkgmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/devsetup/internal/fault"
	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
)

// ToolPlaceholder is replaced with the tool name in query and install arguments.
const ToolPlaceholder = messages.ManagerToolPlaceholder

// Commands describes the three command shapes devsetup issues against a
// package manager plus the one-time bootstrap command for the manager itself.
type Commands struct {
	Binary    string
	Version   []string
	Query     []string
	Install   []string
	Bootstrap []string
}

// Homebrew returns the Homebrew command set.
func Homebrew() Commands {
	return Commands{
		Binary:  "brew",
		Version: []string{"--version"},
		Query:   []string{"list", ToolPlaceholder},
		Install: []string{"install", ToolPlaceholder},
		Bootstrap: []string{
			"/bin/bash",
			"-c",
			`NONINTERACTIVE=1 /bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`,
		},
	}
}

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	Commands Commands
	Runner   CommandRunner
	Logger   log.Logger
	// Out receives the human-readable bootstrap status lines.
	Out io.Writer
}

func (c *ManagerConfig) defaults() error {
	if strings.TrimSpace(c.Commands.Binary) == "" {
		return errors.New(messages.ManagerBinaryRequired)
	}
	if c.Runner == nil {
		c.Runner = ExecRunner{}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	return nil
}

// Manager issues version, query, and install commands against one package manager.
type Manager struct {
	cmds   Commands
	runner CommandRunner
	logger log.Logger
	out    io.Writer
}

// NewManager returns a Manager for cfg.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Manager{
		cmds:   cfg.Commands,
		runner: cfg.Runner,
		logger: cfg.Logger.WithValues(log.Kv{"svc": "pkgmgr", "manager": cfg.Commands.Binary}),
		out:    cfg.Out,
	}, nil
}

// Name returns the package manager executable name.
func (m *Manager) Name() string {
	return m.cmds.Binary
}

// Version runs the version probe and returns its trimmed stdout.
func (m *Manager) Version(ctx context.Context) (string, error) {
	res, err := m.runner.Run(ctx, m.cmds.Binary, m.cmds.Version...)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf(messages.ManagerVersionExitFmt, m.cmds.Binary, res.ExitCode)
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}

// IsPresent queries the package manager for an exact-name match.
// A non-zero query exit is a normal "absent" answer; only failures to run
// the query at all are returned, as recoverable probe faults.
func (m *Manager) IsPresent(ctx context.Context, tool string) (bool, error) {
	res, err := m.runner.Run(ctx, m.cmds.Binary, withTool(m.cmds.Query, tool)...)
	if err != nil {
		return false, fault.NewRecoverable(fault.KindProbe, fmt.Errorf(messages.ManagerProbeFailedFmt, m.cmds.Binary, tool, err))
	}
	return res.ExitCode == 0, nil
}

// RunInstall invokes the install command for tool and returns the raw result.
func (m *Manager) RunInstall(ctx context.Context, tool string) (Result, error) {
	return m.runner.Run(ctx, m.cmds.Binary, withTool(m.cmds.Install, tool)...)
}

// EnsureInstalled makes sure the package manager itself is usable, running
// the bootstrap command once when the version probe fails. Bootstrap
// failures are fatal.
func (m *Manager) EnsureInstalled(ctx context.Context) error {
	res, err := m.runner.Run(ctx, m.cmds.Binary, m.cmds.Version...)
	if err == nil && res.ExitCode == 0 {
		m.logger.Debugf("package manager version: %s", firstLine(strings.TrimSpace(string(res.Stdout))))
		_, _ = fmt.Fprintf(m.out, messages.ManagerAlreadyInstalledFmt+"\n", m.cmds.Binary)
		return nil
	}
	if err != nil {
		_, _ = fmt.Fprintf(m.out, messages.ManagerProbeErrorFmt+"\n", m.cmds.Binary)
	} else {
		err = fmt.Errorf(messages.ManagerVersionExitFmt, m.cmds.Binary, res.ExitCode)
		_, _ = fmt.Fprintf(m.out, messages.ManagerNotInstalledFmt+"\n", m.cmds.Binary)
	}
	m.logger.Warningf("version probe failed: %v", err)

	if len(m.cmds.Bootstrap) == 0 {
		return fault.NewFatal(fault.KindBootstrap, fmt.Errorf(messages.ManagerBootstrapFailedFmt, m.cmds.Binary, err))
	}
	res, err = m.runner.Run(ctx, m.cmds.Bootstrap[0], m.cmds.Bootstrap[1:]...)
	if err != nil {
		return fault.NewFatal(fault.KindBootstrap, fmt.Errorf(messages.ManagerBootstrapFailedFmt, m.cmds.Binary, err))
	}
	if res.ExitCode != 0 {
		detail := fmt.Errorf(messages.ManagerBootstrapExitFmt, res.ExitCode, SanitizeDiagnostic(string(res.Stderr)))
		return fault.NewFatal(fault.KindBootstrap, fmt.Errorf(messages.ManagerBootstrapFailedFmt, m.cmds.Binary, detail))
	}

	if _, err := m.Version(ctx); err != nil {
		return fault.NewFatal(fault.KindBootstrap, fmt.Errorf(messages.ManagerStillMissingFmt, m.cmds.Binary, err))
	}
	m.logger.Infof("package manager bootstrapped")
	return nil
}

func withTool(args []string, tool string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.ReplaceAll(arg, ToolPlaceholder, tool)
	}
	return out
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
