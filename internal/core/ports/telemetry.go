package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex represents a recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for progress output of the vertex.
	Stdout() io.Writer
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as satisfied by previous work.
	Cached()
}
