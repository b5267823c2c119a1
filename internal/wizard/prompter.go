// Package wizard renders the interactive prompts devsetup asks during setup.
package wizard

import (
	"errors"
	"fmt"

	"github.com/conn-castle/devsetup/internal/install"
	"github.com/conn-castle/devsetup/internal/messages"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C, or
// with Esc outside a tool selection.
var ErrCancelled = errors.New(messages.WizardCancelled)

// errEsc marks a form dismissed with Esc.
var errEsc = errors.New(messages.WizardEscRequested)

// Prompter answers the setup runner's questions through a UI.
type Prompter struct {
	ui UI
}

// NewPrompter returns a Prompter backed by ui.
func NewPrompter(ui UI) *Prompter {
	return &Prompter{ui: ui}
}

// Confirm asks a yes/no question. The default answer is no.
func (p *Prompter) Confirm(title string) (bool, error) {
	var answer bool
	if err := p.ui.Confirm(title, &answer); err != nil {
		return false, normalizeAbort(err)
	}
	return answer, nil
}

// Input asks for free text.
func (p *Prompter) Input(title string) (string, error) {
	var value string
	if err := p.ui.Input(title, &value); err != nil {
		return "", normalizeAbort(err)
	}
	return value, nil
}

// Note shows body for review. Esc cancels.
func (p *Prompter) Note(title string, body string) error {
	return normalizeAbort(p.ui.Note(title, body))
}

// Choose asks for one of options and returns it. current is preselected.
func (p *Prompter) Choose(title string, options []string, current string) (string, error) {
	value := current
	if err := p.ui.Select(title, options, &value); err != nil {
		return "", normalizeAbort(err)
	}
	return value, nil
}

// SelectTools lets the user narrow stage to a subset of its tools. Every
// tool starts selected. Esc cancels the stage: ok is false and err is nil.
func (p *Prompter) SelectTools(stage install.Stage) ([]int, bool, error) {
	selected := make([]int, len(stage.Tools))
	for i := range stage.Tools {
		selected[i] = i
	}
	err := p.ui.MultiSelect(fmt.Sprintf(messages.StageSelectPromptFmt, stage.Name), stage.Tools, &selected)
	if errors.Is(err, errEsc) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return selected, true, nil
}

func normalizeAbort(err error) error {
	if errors.Is(err, errEsc) {
		return ErrCancelled
	}
	return err
}
