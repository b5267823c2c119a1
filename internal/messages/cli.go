package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "devsetup"
	// RootShort is the short description for the root command.
	RootShort = "Bootstrap a development environment"
	RootLong  = "devsetup installs a curated set of development tools through the system package manager.\n" +
		"Pick a basic, full, or customized profile and watch the installs run in parallel."

	RootFlagConfig    = "Path to the devsetup config file"
	RootFlagProfile   = "Setup profile to run (basic, full, customized); prompts when empty"
	RootFlagWorkers   = "Maximum number of concurrent installs (0 uses available CPUs)"
	RootFlagDebug     = "Enable debug logging"
	RootFlagNoColor   = "Disable colored output"
	RootFlagLogger    = "Logger format (default, json)"
	RootUnknownLogFmt = "unknown logger type %q (supported: default, json)"
	RootWorkersFmt    = "--workers must be >= 0 (got %d)"
	RootConfigNewFmt  = "wrote default config to %s"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	WelcomeHeader      = "Welcome to devsetup"
	ProfilePrompt      = "Choose your setup type"
	ProfileUnknownFmt  = "unknown setup profile %q (supported: basic, full, customized)"
	ExitWithoutChanges = "Exited without changes."

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Install devsetup on your PATH and write the default config"
	InitLong  = "Create the default config (if missing) and symlink the running executable into the install directory."

	InitFlagDir  = "Directory to place the devsetup symlink in"
	InitFlagName = "Command name for the symlink"

	InitDetectedArchFmt     = "Detected CPU architecture: %s\n"
	InitUnsupportedArchFmt  = "unsupported architecture %q"
	InitAlreadyInstalledFmt = "%s is already installed.\n"
	InitAttemptSymlink      = "Attempting to create a symlink for devsetup."
	InitMayNeedPrivileges   = "This operation might require elevated privileges."
	InitInstalledFmt        = "%s command installed successfully. You might need to restart your terminal.\n"
	InitPermissionDeniedFmt = "permission denied creating %s; rerun with sudo"
	InitSymlinkFailedFmt    = "create symlink %s: %w"
	InitResolveExeFmt       = "resolve executable path: %w"
	InitConfigReadyFmt      = "Config ready at %s\n"

	FatalErrorPrefix   = "Error: "
	WarningPrefix      = "Warning: "
	FatalBootstrapHint = "The package manager could not be installed. Install it manually, or point package_manager in the config at another one, then rerun devsetup."
	FatalConfigHint    = "Run 'devsetup doctor' to inspect the config file."
)
