package install

import "github.com/conn-castle/devsetup/internal/pkgmgr"

// Stage is a named, ordered list of tools installed together.
type Stage struct {
	Name  string
	Tools []string
}

// ToolOutcome pairs a tool with its install outcome.
type ToolOutcome struct {
	Tool    string
	Outcome pkgmgr.Outcome
}

// BatchReport is the result of one stage run. Items are in dispatch order.
type BatchReport struct {
	Stage          string
	Items          []ToolOutcome
	Installed      int
	AlreadyPresent int
	Failed         int
}

// Empty reports whether nothing was dispatched.
func (r BatchReport) Empty() bool {
	return len(r.Items) == 0
}

// FailedTools returns the names of tools whose install failed, in dispatch order.
func (r BatchReport) FailedTools() []string {
	var failed []string
	for _, item := range r.Items {
		if item.Outcome.Status == pkgmgr.StatusFailed {
			failed = append(failed, item.Tool)
		}
	}
	return failed
}

func newBatchReport(stage string, items []ToolOutcome) BatchReport {
	report := BatchReport{Stage: stage, Items: items}
	for _, item := range items {
		switch item.Outcome.Status {
		case pkgmgr.StatusInstalled:
			report.Installed++
		case pkgmgr.StatusAlreadyPresent:
			report.AlreadyPresent++
		case pkgmgr.StatusFailed:
			report.Failed++
		}
	}
	return report
}
