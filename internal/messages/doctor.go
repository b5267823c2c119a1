package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the config, package manager, and terminal used by devsetup"

	DoctorHealthCheckFmt = "Checking devsetup health (config %s)...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameManager  = "PackageManager"
	DoctorCheckNameSystem   = "System"
	DoctorCheckNameTerminal = "Terminal"

	DoctorConfigLoadFailedFmt    = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend    = "Fix the reported problem or delete the file and run `devsetup init` to restore the defaults."
	DoctorConfigMissingFmt       = "Config file not found: %s"
	DoctorConfigMissingRecommend = "Run `devsetup init` to write the default config."
	DoctorConfigLoadedFmt        = "Configuration loaded successfully (%d basic tools, %d stages)"

	DoctorManagerMissingFmt       = "%s is not available: %v"
	DoctorManagerMissingRecommend = "devsetup will try to bootstrap it on the next run; or install it manually."
	DoctorManagerReadyFmt         = "%s responds to its version probe"

	DoctorSystemFailedFmt = "System detection failed: %v"
	DoctorSystemInfoFmt   = "%s %s (%s, %s)"

	DoctorTerminalInteractive    = "Interactive terminal detected"
	DoctorTerminalNotInteractive = "No interactive terminal; prompts are unavailable"
	DoctorTerminalRecommend      = "Run with --profile basic for a prompt-free install."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-15s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "
	DoctorFailureSummary       = "❌ Some checks failed. Please address the issues above."
	DoctorSuccessSummary       = "✅ All systems go! devsetup is ready."
	DoctorFailedErr            = "doctor checks failed"
)
