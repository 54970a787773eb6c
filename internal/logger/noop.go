package logger

import (
	"context"

	"github.com/alexisbeaulieu97/workflowdeck/internal/ports"
)

// NoOp discards all log entries.
type NoOp struct{}

// Debug implements ports.Logger.
func (n *NoOp) Debug(context.Context, string, ...interface{}) {}

// Info implements ports.Logger.
func (n *NoOp) Info(context.Context, string, ...interface{}) {}

// Warn implements ports.Logger.
func (n *NoOp) Warn(context.Context, string, ...interface{}) {}

// Error implements ports.Logger.
func (n *NoOp) Error(context.Context, string, ...interface{}) {}

// With implements ports.Logger.
func (n *NoOp) With(...interface{}) ports.Logger { return n }

// NewNoOp returns a ports.Logger that discards all log entries.
func NewNoOp() ports.Logger {
	return &NoOp{}
}
