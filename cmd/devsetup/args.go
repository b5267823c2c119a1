package main

const (
	flagConfig  = "config"
	flagProfile = "profile"
	flagWorkers = "workers"
	flagDebug   = "debug"
	flagNoColor = "no-color"
	flagLogger  = "logger"
	flagDir     = "dir"
	flagName    = "name"

	loggerDefault = "default"
	loggerJSON    = "json"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	profile    string
	workers    int
	// workersSet is true when --workers was given, so it overrides the config.
	workersSet bool
	debug      bool
	noColor    bool
	logger     string
}
