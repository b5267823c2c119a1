package install

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
)

// ErrInvalidSelection is returned when a selection names a tool index outside the stage.
var ErrInvalidSelection = errors.New("invalid tool selection")

// SelectionFunc narrows a stage to a subset of tool indices. Returning
// ok == false with a nil error means the user cancelled.
type SelectionFunc func(stage Stage) (indices []int, ok bool, err error)

// BatchRunner runs one batch of tools.
type BatchRunner interface {
	RunBatch(ctx context.Context, label string, tools []string) BatchReport
}

// StageRunnerConfig is the configuration for NewStageRunner.
type StageRunnerConfig struct {
	Orchestrator BatchRunner
	Out          io.Writer
	Logger       log.Logger
}

func (c *StageRunnerConfig) defaults() error {
	if c.Orchestrator == nil {
		return errors.New(messages.StageRunnerOrchestratorRequired)
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// StageRunner resolves a stage's tool selection and hands it to the orchestrator.
type StageRunner struct {
	orchestrator BatchRunner
	out          io.Writer
	header       *color.Color
	logger       log.Logger
}

// NewStageRunner returns a StageRunner for cfg.
func NewStageRunner(cfg StageRunnerConfig) (*StageRunner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &StageRunner{
		orchestrator: cfg.Orchestrator,
		out:          cfg.Out,
		header:       color.New(color.FgGreen),
		logger:       cfg.Logger.WithValues(log.Kv{"svc": "install.StageRunner"}),
	}, nil
}

// RunStage installs the stage's tools. When customize is true, selector picks
// the subset to install; a cancelled selection returns an empty report and
// nothing is installed.
func (s *StageRunner) RunStage(ctx context.Context, stage Stage, customize bool, selector SelectionFunc) (BatchReport, error) {
	_, _ = s.header.Fprintln(s.out, fmt.Sprintf(messages.StageHeaderFmt, stage.Name))

	tools := stage.Tools
	if customize && selector != nil {
		indices, ok, err := selector(stage)
		if err != nil {
			return BatchReport{Stage: stage.Name}, fmt.Errorf(messages.StageSelectionFailedFmt, stage.Name, err)
		}
		if !ok {
			_, _ = fmt.Fprintln(s.out, messages.StageCancelled)
			s.logger.Debugf("selection cancelled for %s", stage.Name)
			return BatchReport{Stage: stage.Name}, nil
		}
		tools, err = selectTools(stage, indices)
		if err != nil {
			return BatchReport{Stage: stage.Name}, err
		}
	}

	report := s.orchestrator.RunBatch(ctx, stage.Name, tools)
	_, _ = fmt.Fprintf(s.out, messages.StageSummaryFmt, stage.Name, report.Installed, report.AlreadyPresent, report.Failed)
	return report, nil
}

// selectTools maps indices to tool names in the order given. Duplicate
// indices stay duplicates.
func selectTools(stage Stage, indices []int) ([]string, error) {
	tools := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(stage.Tools) {
			return nil, fmt.Errorf("%w: "+messages.StageInvalidSelectionFmt, ErrInvalidSelection, idx, stage.Name, len(stage.Tools))
		}
		tools = append(tools, stage.Tools[idx])
	}
	return tools, nil
}
