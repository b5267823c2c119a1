package messages

// Interactive prompt messages.
const (
	WizardRequiresTerminal = "devsetup requires an interactive terminal for prompts; pass --profile basic to run without prompts"
	WizardCancelled        = "prompt cancelled"
	WizardEscRequested     = "prompt dismissed with esc"
	WizardHelpEsc          = "cancel"
	WizardHelpExit         = "exit"
)
