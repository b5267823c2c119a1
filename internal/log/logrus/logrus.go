// Package logrus adapts a logrus entry to the devsetup Logger interface.
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/devsetup/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus returns a Logger backed by entry.
func NewLogrus(entry *logrus.Entry) log.Logger {
	return logger{Entry: entry}
}

func (l logger) WithValues(values log.Kv) log.Logger {
	return NewLogrus(l.Entry.WithFields(logrus.Fields(values)))
}

func (l logger) WithCtxValues(ctx context.Context) log.Logger {
	return l.WithValues(log.ValuesFromCtx(ctx))
}
