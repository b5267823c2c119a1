package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/devsetup/internal/messages"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "DEVSETUP_CONFIG"

const (
	configDirName  = ".devsetup"
	configFileName = "config.toml"
)

var homeDir = homedir.Dir

// DefaultPath returns ~/.devsetup/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// ResolvePath picks the config path: an explicit flag value wins, then
// $DEVSETUP_CONFIG, then DefaultPath. A leading ~ is expanded.
func ResolvePath(flagValue string) (string, error) {
	candidate := strings.TrimSpace(flagValue)
	if candidate == "" {
		candidate = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if candidate == "" {
		return DefaultPath()
	}
	expanded, err := homedir.Expand(candidate)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Clean(expanded), nil
}
