// Package telemetry provides telemetry adapters that discard what they record.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/lode/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noOpVertex struct{}

func (noOpVertex) Stdout() io.Writer { return io.Discard }
func (noOpVertex) Complete(error)    {}
func (noOpVertex) Cached()           {}
