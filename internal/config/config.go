// Package config loads, validates, and persists the devsetup tool catalog.
package config

import (
	"github.com/conn-castle/devsetup/internal/pkgmgr"
)

// Config is the devsetup config file.
type Config struct {
	Basic          []string             `toml:"basic"`
	Customized     []string             `toml:"customized"`
	Stages         []StageConfig        `toml:"stages"`
	Install        InstallConfig        `toml:"install"`
	PackageManager PackageManagerConfig `toml:"package_manager"`
}

// StageConfig is one named group of tools offered by the full profile.
type StageConfig struct {
	Name  string   `toml:"name"`
	Tools []string `toml:"tools"`
}

// InstallConfig tunes the install orchestrator.
type InstallConfig struct {
	// Workers bounds concurrent installs; 0 uses the available CPUs.
	Workers int `toml:"workers"`
}

// PackageManagerConfig overrides the package manager commands.
// Leaving binary empty selects Homebrew.
type PackageManagerConfig struct {
	Binary    string   `toml:"binary,omitempty"`
	Version   []string `toml:"version,omitempty"`
	Query     []string `toml:"query,omitempty"`
	Install   []string `toml:"install,omitempty"`
	Bootstrap []string `toml:"bootstrap,omitempty"`
}

// Commands returns the package manager command set with defaults applied.
func (p PackageManagerConfig) Commands() pkgmgr.Commands {
	if p.Binary == "" {
		return pkgmgr.Homebrew()
	}
	cmds := pkgmgr.Commands{
		Binary:    p.Binary,
		Version:   cloneStrings(p.Version),
		Query:     cloneStrings(p.Query),
		Install:   cloneStrings(p.Install),
		Bootstrap: cloneStrings(p.Bootstrap),
	}
	if len(cmds.Version) == 0 {
		cmds.Version = []string{"--version"}
	}
	return cmds
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		Basic:      cloneStrings(c.Basic),
		Customized: cloneStrings(c.Customized),
		Install:    c.Install,
		PackageManager: PackageManagerConfig{
			Binary:    c.PackageManager.Binary,
			Version:   cloneStrings(c.PackageManager.Version),
			Query:     cloneStrings(c.PackageManager.Query),
			Install:   cloneStrings(c.PackageManager.Install),
			Bootstrap: cloneStrings(c.PackageManager.Bootstrap),
		},
	}
	if c.Stages != nil {
		out.Stages = make([]StageConfig, len(c.Stages))
		for i, stage := range c.Stages {
			out.Stages[i] = StageConfig{Name: stage.Name, Tools: cloneStrings(stage.Tools)}
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}
