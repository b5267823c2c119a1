package messages

// Package manager messages.
const (
	ManagerAlreadyInstalledFmt = "%s is already installed."
	ManagerNotInstalledFmt     = "%s is not installed, attempting to install..."
	ManagerProbeErrorFmt       = "Error checking %s, attempting to install..."
	ManagerBootstrapFailedFmt  = "failed to install %s: %w"
	ManagerBootstrapExitFmt    = "bootstrap exited with status %d: %s"
	ManagerStillMissingFmt     = "%s is still unavailable after bootstrap: %w"
	ManagerProbeFailedFmt      = "query %s for %s: %w"
	ManagerVersionExitFmt      = "%s version probe exited with status %d"
	ManagerBinaryRequired      = "package manager binary is required"
	ManagerToolPlaceholder     = "{tool}"
	ManagerExitStatusFmt       = "exit status %d"
	ManagerStartFailedFmt      = "start %s: %v"

	// SysinfoDetectFailedFmt wraps host detection errors.
	SysinfoDetectFailedFmt = "detect host: %w"
	SysinfoUnknown         = "unknown"

	WorkerPoolTaskRejected = "worker pool rejected task"
)
