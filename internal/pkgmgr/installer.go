package pkgmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
)

// Installer installs one tool at a time through a Manager. It is safe for
// concurrent use as long as the underlying CommandRunner is.
type Installer struct {
	manager *Manager
	logger  log.Logger
}

// NewInstaller returns an Installer backed by manager.
func NewInstaller(manager *Manager, logger log.Logger) *Installer {
	if logger == nil {
		logger = log.Noop
	}
	return &Installer{manager: manager, logger: logger}
}

// Install makes sure tool is present. An already-installed tool is never
// reinstalled. A probe that cannot run is treated as "absent" and the install
// is attempted anyway. Install never returns an error; failures are carried
// in the Outcome.
func (i *Installer) Install(ctx context.Context, tool string) Outcome {
	trace := ContextTrace(ctx)
	logger := i.logger.WithValues(log.Kv{"tool": tool})

	present, err := i.manager.IsPresent(ctx, tool)
	trace.probeDone(present, err)
	if err != nil {
		logger.Debugf("probe failed, attempting install: %v", err)
	}
	if present {
		logger.Debugf("already present")
		return AlreadyPresent()
	}

	trace.installStart()
	res, err := i.manager.RunInstall(ctx, tool)
	if err != nil {
		logger.Debugf("install could not start: %v", err)
		return Failed(SanitizeDiagnostic(fmt.Sprintf(messages.ManagerStartFailedFmt, i.manager.Name(), err)))
	}
	if res.ExitCode == 0 {
		logger.Debugf("installed")
		return Installed()
	}

	diag := SanitizeDiagnostic(string(res.Stderr))
	if strings.TrimSpace(diag) == "" {
		diag = fmt.Sprintf(messages.ManagerExitStatusFmt, res.ExitCode)
	}
	logger.Debugf("install exited with status %d", res.ExitCode)
	return Failed(diag)
}
