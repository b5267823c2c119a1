package messages

// Config loading, validation, and persistence messages.
const (
	ConfigMissingFileFmt          = "missing config file %s: %w"
	ConfigInvalidConfigFmt        = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt     = "config %s contains unrecognized keys: %v."
	ConfigValidationGuidance      = "Fix the config file or delete it and run 'devsetup init' to restore the defaults."
	ConfigStageNameRequiredFmt    = "%s: stages[%d].name is required"
	ConfigStageNameDuplicateFmt   = "%s: duplicate stage name %q"
	ConfigToolNameRequiredFmt     = "%s: %s[%d] must be a non-empty tool name"
	ConfigWorkersNegativeFmt      = "%s: install.workers must be >= 0 (got %d)"
	ConfigBinaryRequiredFmt       = "%s: package_manager.binary is required"
	ConfigCommandPlaceholderFmt   = "%s: package_manager.%s must contain the %s placeholder"
	ConfigBootstrapRequiredFmt    = "%s: package_manager.bootstrap[0] must name a program"
	ConfigFailedReadTemplateFmt   = "failed to read default config template: %w"
	ConfigCreateDirFailedFmt      = "failed to create config directory %s: %w"
	ConfigWriteDefaultFailedFmt   = "failed to write default config %s: %w"
	ConfigMarshalFailedFmt        = "failed to encode config: %w"
	ConfigWriteFailedFmt          = "failed to write config %s: %w"
	ConfigStatFailedFmt           = "failed to stat config %s: %w"
	ConfigResolveHomeFmt          = "resolve home directory: %w"
	ConfigOpenLockFmt             = "open lock %s: %w"
	ConfigLockFmt                 = "lock %s: %w"
	ConfigLockTimeoutFmt          = "timed out waiting for config lock after %s"
	ConfigUpdatingCustomizedFmt   = "Updating customized tools: %v\n"
	ConfigCustomizedSaveFailedFmt = "failed to save customized tools: %w"
)
