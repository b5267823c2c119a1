// Package install fans tool installs out across a worker pool, aggregates
// their progress, and drives per-stage tool selection.
package install

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/conn-castle/devsetup/internal/log"
	"github.com/conn-castle/devsetup/internal/messages"
	"github.com/conn-castle/devsetup/internal/pkgmgr"
	"github.com/conn-castle/devsetup/internal/progress"
	"github.com/conn-castle/devsetup/internal/workerpool"
)

// Installer installs a single tool. Implementations must be safe for concurrent use.
type Installer interface {
	Install(ctx context.Context, tool string) pkgmgr.Outcome
}

// RendererFactory returns a fresh renderer for each batch.
type RendererFactory func() progress.Renderer

// OrchestratorConfig is the configuration for NewOrchestrator.
type OrchestratorConfig struct {
	Installer Installer
	// Workers bounds concurrent installs. Zero or less uses runtime.GOMAXPROCS(0).
	Workers  int
	Renderer RendererFactory
	Reporter Reporter
	Logger   log.Logger
}

func (c *OrchestratorConfig) defaults() error {
	if c.Installer == nil {
		return errors.New(messages.OrchestratorInstallerRequired)
	}
	if c.Renderer == nil {
		c.Renderer = func() progress.Renderer { return progress.NopRenderer{} }
	}
	if c.Reporter == nil {
		c.Reporter = NopReporter
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return nil
}

// Orchestrator installs batches of tools concurrently.
type Orchestrator struct {
	installer Installer
	workers   int
	renderer  RendererFactory
	reporter  Reporter
	logger    log.Logger
}

// NewOrchestrator returns an Orchestrator for cfg.
func NewOrchestrator(cfg OrchestratorConfig) (*Orchestrator, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Orchestrator{
		installer: cfg.Installer,
		workers:   cfg.Workers,
		renderer:  cfg.Renderer,
		reporter:  cfg.Reporter,
		logger:    cfg.Logger.WithValues(log.Kv{"svc": "install.Orchestrator"}),
	}, nil
}

// RunBatch installs every tool once and returns one outcome per tool, in
// input order. Work is never cancelled once dispatched, and each tool gets a
// single attempt.
func (o *Orchestrator) RunBatch(ctx context.Context, label string, tools []string) BatchReport {
	ctx = context.WithoutCancel(ctx)
	logger := o.logger.WithValues(log.Kv{"stage": label})
	tracker := progress.Start(len(tools), o.renderer())
	results := make([]ToolOutcome, len(tools))

	if len(tools) > 0 {
		workers := o.workerCount(len(tools))
		logger.Debugf("dispatching %d tools on %d workers", len(tools), workers)

		pool := workerpool.New(workers, len(tools), logger)
		for i, tool := range tools {
			submitted := pool.Submit(func() {
				o.emit(tracker, Event{Kind: EventStart, Index: i, Tool: tool})
				o.finish(tracker, results, i, tool, o.install(ctx, tracker, i, tool))
			})
			if !submitted {
				o.finish(tracker, results, i, tool, pkgmgr.Failed(messages.WorkerPoolTaskRejected))
			}
		}
		pool.Close()
	}

	tracker.Finish()
	report := newBatchReport(label, results)
	logger.Infof("batch finished: installed=%d present=%d failed=%d", report.Installed, report.AlreadyPresent, report.Failed)
	return report
}

func (o *Orchestrator) install(ctx context.Context, tracker *progress.Tracker, i int, tool string) (outcome pkgmgr.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Errorf("installer panicked for %s: %v", tool, r)
			outcome = pkgmgr.Failed(fmt.Sprintf(messages.ToolPanicFmt, r))
		}
	}()

	trace := &pkgmgr.Trace{
		ProbeDone: func(present bool, err error) {
			o.emit(tracker, Event{Kind: EventProbe, Index: i, Tool: tool, Present: present, Err: err})
		},
		InstallStart: func() {
			o.logger.Debugf("running install command for %s", tool)
		},
	}
	return o.installer.Install(pkgmgr.WithTrace(ctx, trace), tool)
}

func (o *Orchestrator) finish(tracker *progress.Tracker, results []ToolOutcome, i int, tool string, outcome pkgmgr.Outcome) {
	results[i] = ToolOutcome{Tool: tool, Outcome: outcome}
	if outcome.OK() {
		o.emit(tracker, Event{Kind: EventSucceeded, Index: i, Tool: tool, Outcome: outcome})
	} else {
		o.emit(tracker, Event{Kind: EventFailed, Index: i, Tool: tool, Outcome: outcome})
	}
	state := tracker.Advance()
	o.emit(tracker, Event{Kind: EventProgress, Index: i, Tool: tool, Progress: state})
}

// emit shields the batch from a misbehaving reporter.
func (o *Orchestrator) emit(tracker *progress.Tracker, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Errorf("reporter panicked on %s event for %s: %v", ev.Kind, ev.Tool, r)
		}
	}()
	o.reporter.Report(tracker, ev)
}

func (o *Orchestrator) workerCount(total int) int {
	n := o.workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}
