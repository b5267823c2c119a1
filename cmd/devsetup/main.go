package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/devsetup/internal/fault"
	"github.com/conn-castle/devsetup/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with the status reportError picks.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	if code := reportError(stderr, err); code != 0 {
		exit(code)
	}
}

// reportError prints err according to its fault category and returns the
// exit status. A recoverable fault is only a warning. Fatal faults and
// uncategorized errors (bad flags, unknown commands) exit 1.
func reportError(stderr io.Writer, err error) int {
	kind := fault.KindOf(err)
	if kind != fault.KindUnknown && !fault.IsFatal(err) {
		_, _ = fmt.Fprintln(stderr, color.YellowString(messages.WarningPrefix+err.Error()))
		return 0
	}

	_, _ = fmt.Fprintln(stderr, color.RedString(messages.FatalErrorPrefix+err.Error()))
	switch kind {
	case fault.KindBootstrap:
		_, _ = fmt.Fprintln(stderr, messages.FatalBootstrapHint)
	case fault.KindConfigIO:
		_, _ = fmt.Fprintln(stderr, messages.FatalConfigHint)
	}
	return 1
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
