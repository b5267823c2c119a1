package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/pkgmgr"
)

// Validate ensures the config is complete and consistent. path is used in error messages.
func (c *Config) Validate(path string) error {
	if err := validateTools(path, "basic", c.Basic); err != nil {
		return err
	}
	if err := validateTools(path, "customized", c.Customized); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Stages))
	for i, stage := range c.Stages {
		name := strings.TrimSpace(stage.Name)
		if name == "" {
			return fmt.Errorf(messages.ConfigStageNameRequiredFmt, path, i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf(messages.ConfigStageNameDuplicateFmt, path, name)
		}
		seen[name] = struct{}{}
		if err := validateTools(path, fmt.Sprintf("stages[%d].tools", i), stage.Tools); err != nil {
			return err
		}
	}

	if c.Install.Workers < 0 {
		return fmt.Errorf(messages.ConfigWorkersNegativeFmt, path, c.Install.Workers)
	}
	return c.PackageManager.validate(path)
}

func (p PackageManagerConfig) validate(path string) error {
	if p.Binary == "" {
		if len(p.Version)+len(p.Query)+len(p.Install)+len(p.Bootstrap) > 0 {
			return fmt.Errorf(messages.ConfigBinaryRequiredFmt, path)
		}
		return nil
	}
	if strings.TrimSpace(p.Binary) == "" {
		return fmt.Errorf(messages.ConfigBinaryRequiredFmt, path)
	}
	if !containsPlaceholder(p.Query) {
		return fmt.Errorf(messages.ConfigCommandPlaceholderFmt, path, "query", pkgmgr.ToolPlaceholder)
	}
	if !containsPlaceholder(p.Install) {
		return fmt.Errorf(messages.ConfigCommandPlaceholderFmt, path, "install", pkgmgr.ToolPlaceholder)
	}
	if len(p.Bootstrap) > 0 && strings.TrimSpace(p.Bootstrap[0]) == "" {
		return fmt.Errorf(messages.ConfigBootstrapRequiredFmt, path)
	}
	return nil
}

func validateTools(path string, field string, tools []string) error {
	for i, tool := range tools {
		if strings.TrimSpace(tool) == "" {
			return fmt.Errorf(messages.ConfigToolNameRequiredFmt, path, field, i)
		}
	}
	return nil
}

func containsPlaceholder(args []string) bool {
	for _, arg := range args {
		if strings.Contains(arg, pkgmgr.ToolPlaceholder) {
			return true
		}
	}
	return false
}
