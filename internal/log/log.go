// Package log defines the logger used across devsetup.
//
// Components accept a Logger and default to Noop, so library code never
// writes to the terminal unless the CLI wires a real backend.
package log

import "context"

// Kv is a helper type for structured logging key-value pairs.
type Kv map[string]any

// Logger is the structured logger devsetup components depend on.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
	WithValues(values Kv) Logger
	WithCtxValues(ctx context.Context) Logger
}

type contextKey struct{}

// CtxWithValues returns a copy of ctx carrying values merged with any values
// already stored on it.
func CtxWithValues(ctx context.Context, values Kv) context.Context {
	merged := Kv{}
	for k, v := range ValuesFromCtx(ctx) {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	return context.WithValue(ctx, contextKey{}, merged)
}

// ValuesFromCtx returns the logging values stored on ctx.
func ValuesFromCtx(ctx context.Context) Kv {
	if ctx == nil {
		return Kv{}
	}
	v, ok := ctx.Value(contextKey{}).(Kv)
	if !ok {
		return Kv{}
	}
	return v
}

// Noop is a logger that discards everything.
var Noop Logger = noop(0)

type noop int

func (noop) Infof(string, ...any) {}
func (noop) Warningf(string, ...any) {}
func (noop) Errorf(string, ...any) {}
func (noop) Debugf(string, ...any) {}
func (n noop) WithValues(Kv) Logger { return n }
func (n noop) WithCtxValues(context.Context) Logger { return n }
