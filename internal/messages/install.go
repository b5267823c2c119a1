package messages

// Install orchestration and stage messages.
const (
	StageHeaderFmt           = "\n%s:"
	StageCustomizePromptFmt  = "Do you want to customize the tools in this stage for %s?"
	StageSelectPromptFmt     = "Select the tools to install for %s"
	StageCancelled           = "Cancelled installation."
	StageSummaryFmt          = "%s: installed %d, already present %d, failed %d\n"
	StageSelectionFailedFmt  = "select tools for %s: %w"
	StageInvalidSelectionFmt = "selection index %d out of range for stage %s (%d tools)"
	StageCustomizeFailedFmt  = "customize prompt for %s: %w"

	ToolSucceededFmt        = "%s %s"
	ToolFailedFmt           = "%s %s"
	ToolErrorFmt            = "Error: %s"
	ToolAlreadyInstalledFmt = "%s is already installed."
	ToolCheckingFmt         = "Checking if %s is already installed..."
	ToolProbeWarningFmt     = "Could not check whether %s is installed; installing anyway."
	ToolPanicFmt            = "panic: %v"
	MarkSuccess             = "✓"
	MarkFailure             = "✗"

	ProgressCompleteFmt = "Installation complete (%d/%d)"
	ProgressDescription = "Installing"

	OrchestratorInstallerRequired   = "installer is required"
	StageRunnerOrchestratorRequired = "orchestrator is required"
)

// Setup profile messages.
const (
	SetupCustomToolPrompt     = "Enter a tool to install (leave empty to finish)"
	SetupCustomizedStage      = "Customized"
	SetupBasicStage           = "Basic"
	SetupOSInfoFmt            = "OS Type: %s, OS Release: %s\n"
	SetupOSDetectFailedFmt    = "system detection failed: %v"
	SetupCollectToolFailedFmt = "collect tool names: %w"
	SetupReviewTitle          = "Tools to install"
	SetupReviewFailedFmt      = "review tools: %w"
	SetupNoCustomTools        = "No tools entered; keeping the saved customized list."
	SetupUnknownProfileFmt    = "unknown setup profile %q"
	SetupManagerRequired      = "package manager is required"
	SetupStageRunnerRequired  = "stage runner is required"
	SetupPrompterRequired     = "prompter is required"
	SetupConfigRequired       = "config is required"
	SetupStoreRequired        = "config store is required"
	SetupEmptyStageSkippedFmt = "stage %s has no tools; skipping"
)
