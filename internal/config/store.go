package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/templates"
)

// Store reads and writes the config file at Path.
type Store struct {
	Path string
}

// NewStore returns a Store for path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads and validates the config.
func (s *Store) Load() (*Config, error) {
	return LoadConfig(s.Path)
}

// LoadOrInit loads the config, first writing the default catalog when the
// file does not exist. An existing file or directory is never removed, so
// saved customized lists survive. created reports whether the default was written.
func (s *Store) LoadOrInit() (cfg *Config, created bool, err error) {
	_, statErr := os.Stat(s.Path)
	switch {
	case statErr == nil:
	case errors.Is(statErr, fs.ErrNotExist):
		if err := s.writeDefault(); err != nil {
			return nil, false, err
		}
		created = true
	default:
		return nil, false, fmt.Errorf(messages.ConfigStatFailedFmt, s.Path, statErr)
	}

	cfg, err = s.Load()
	if err != nil {
		return nil, created, err
	}
	return cfg, created, nil
}

func (s *Store) writeDefault() error {
	data, err := templates.Read("config.toml")
	if err != nil {
		return fmt.Errorf(messages.ConfigFailedReadTemplateFmt, err)
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.ConfigCreateDirFailedFmt, dir, err)
	}
	return withFileLock(s.lockPath(), func() error {
		// Another process may have written it while we waited for the lock.
		if _, err := os.Stat(s.Path); err == nil {
			return nil
		}
		if err := writeFileAtomic(s.Path, data, 0o644); err != nil {
			return fmt.Errorf(messages.ConfigWriteDefaultFailedFmt, s.Path, err)
		}
		return nil
	})
}

// Save validates cfg and atomically replaces the config file while holding
// the config lock. It returns a unified diff of the change, empty when the
// content is unchanged.
func (s *Store) Save(cfg *Config) (string, error) {
	if err := cfg.Validate(s.Path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	next, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf(messages.ConfigCreateDirFailedFmt, dir, err)
	}

	var diff string
	err = withFileLock(s.lockPath(), func() error {
		current, err := os.ReadFile(s.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.ConfigWriteFailedFmt, s.Path, err)
		}
		diff = strings.TrimSpace(udiff.Unified(
			s.Path+" (current)",
			s.Path+" (saved)",
			string(current),
			string(next),
		))
		if err := writeFileAtomic(s.Path, next, 0o644); err != nil {
			return fmt.Errorf(messages.ConfigWriteFailedFmt, s.Path, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return diff, nil
}

func (s *Store) lockPath() string {
	return s.Path + ".lock"
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}
	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
