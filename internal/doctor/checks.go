package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/devsetup/internal/config"
	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/sysinfo"
)

var (
	statFunc              = os.Stat
	readFileFunc          = os.ReadFile
	detectFunc            = sysinfo.Detect
	loadConfigLenientFunc = config.ParseConfigLenient
)

// VersionProber is the part of the package manager the doctor needs.
type VersionProber interface {
	Name() string
	Version(ctx context.Context) (string, error)
}

// CheckConfig loads the config at path. When strict validation fails but the
// TOML still parses, the leniently loaded config is returned with a failing
// result so later checks can run.
func CheckConfig(path string) ([]Result, *config.Config) {
	if _, err := statFunc(path); errors.Is(err, fs.ErrNotExist) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, path),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, len(cfg.Basic), len(cfg.Stages)),
		}}, cfg
	}

	failed := Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
		Recommendation: messages.DoctorConfigLoadRecommend,
	}
	if !errors.Is(err, config.ErrConfigValidation) {
		return []Result{failed}, nil
	}
	data, readErr := readFileFunc(path)
	if readErr != nil {
		return []Result{failed}, nil
	}
	lenient, lenientErr := loadConfigLenientFunc(data, path)
	if lenientErr != nil {
		return []Result{failed}, nil
	}
	return []Result{failed}, lenient
}

// CheckPackageManager runs the package manager's version probe.
func CheckPackageManager(ctx context.Context, prober VersionProber) Result {
	version, err := prober.Version(ctx)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameManager,
			Message:        fmt.Sprintf(messages.DoctorManagerMissingFmt, prober.Name(), err),
			Recommendation: messages.DoctorManagerMissingRecommend,
		}
	}
	msg := fmt.Sprintf(messages.DoctorManagerReadyFmt, prober.Name())
	if version != "" {
		msg += " (" + firstLine(version) + ")"
	}
	return Result{Status: StatusOK, CheckName: messages.DoctorCheckNameManager, Message: msg}
}

// CheckSystem reports the detected host OS.
func CheckSystem(ctx context.Context) Result {
	info, err := detectFunc(ctx)
	if err != nil {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameSystem,
			Message:   fmt.Sprintf(messages.DoctorSystemFailedFmt, err),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSystem,
		Message:   fmt.Sprintf(messages.DoctorSystemInfoFmt, info.OSType, info.OSRelease, info.Platform, info.Arch),
	}
}

// CheckTerminal reports whether interactive prompts are available.
func CheckTerminal(interactive bool) Result {
	if interactive {
		return Result{Status: StatusOK, CheckName: messages.DoctorCheckNameTerminal, Message: messages.DoctorTerminalInteractive}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNameTerminal,
		Message:        messages.DoctorTerminalNotInteractive,
		Recommendation: messages.DoctorTerminalRecommend,
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
