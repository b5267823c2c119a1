// Package launchers puts the running devsetup binary on the user's PATH.
package launchers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/conn-castle/devsetup/internal/messages"
)

const (
	// DefaultDir is where the command symlink is placed.
	DefaultDir = "/usr/local/bin"
	// DefaultName is the command name of the symlink.
	DefaultName = "devsetup"
)

// System is the minimal interface needed for self-installation.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Symlink(oldname string, newname string) error
	Executable() (string, error)
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// Lstat returns a FileInfo describing the named file without following symlinks.
func (RealSystem) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// MkdirAll creates a directory and all parent directories.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Symlink creates newname as a symbolic link to oldname.
func (RealSystem) Symlink(oldname string, newname string) error {
	return os.Symlink(oldname, newname)
}

// Executable returns the resolved path of the running binary.
func (RealSystem) Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// Options controls where the command link goes.
type Options struct {
	Dir  string
	Name string
	// Arch defaults to runtime.GOARCH.
	Arch string
	Out  io.Writer
}

func (o *Options) defaults() {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Arch == "" {
		o.Arch = runtime.GOARCH
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
}

// InstallSelf symlinks the running executable to Dir/Name. An existing entry
// at that path is left untouched. It returns the link path.
func InstallSelf(sys System, opts Options) (string, error) {
	opts.defaults()

	_, _ = fmt.Fprintf(opts.Out, messages.InitDetectedArchFmt, opts.Arch)
	if !supportedArch(opts.Arch) {
		return "", fmt.Errorf(messages.InitUnsupportedArchFmt, opts.Arch)
	}

	link := filepath.Join(opts.Dir, opts.Name)
	_, err := sys.Lstat(link)
	if err == nil {
		_, _ = fmt.Fprintf(opts.Out, messages.InitAlreadyInstalledFmt, opts.Name)
		return link, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf(messages.InitSymlinkFailedFmt, link, err)
	}

	exe, err := sys.Executable()
	if err != nil {
		return "", fmt.Errorf(messages.InitResolveExeFmt, err)
	}

	_, _ = fmt.Fprintln(opts.Out, messages.InitAttemptSymlink)
	_, _ = fmt.Fprintln(opts.Out, messages.InitMayNeedPrivileges)
	if err := sys.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", linkError(link, err)
	}
	if err := sys.Symlink(exe, link); err != nil {
		return "", linkError(link, err)
	}
	_, _ = fmt.Fprintf(opts.Out, messages.InitInstalledFmt, opts.Name)
	return link, nil
}

func linkError(link string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf(messages.InitPermissionDeniedFmt, link)
	}
	return fmt.Errorf(messages.InitSymlinkFailedFmt, link, err)
}

func supportedArch(arch string) bool {
	return arch == "amd64" || arch == "arm64"
}
