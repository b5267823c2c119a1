package pkgmgr

import "context"

// Trace holds optional hooks fired while an Installer works on one tool.
// Any hook may be nil.
type Trace struct {
	// ProbeDone is called after the presence probe with its answer.
	ProbeDone func(present bool, err error)
	// InstallStart is called right before the install command runs.
	InstallStart func()
}

type traceKey struct{}

// WithTrace returns a context that carries trace for the Installer.
func WithTrace(ctx context.Context, trace *Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, trace)
}

// ContextTrace returns the Trace carried by ctx, or nil.
func ContextTrace(ctx context.Context) *Trace {
	trace, _ := ctx.Value(traceKey{}).(*Trace)
	return trace
}

func (t *Trace) probeDone(present bool, err error) {
	if t != nil && t.ProbeDone != nil {
		t.ProbeDone(present, err)
	}
}

func (t *Trace) installStart() {
	if t != nil && t.InstallStart != nil {
		t.InstallStart()
	}
}
