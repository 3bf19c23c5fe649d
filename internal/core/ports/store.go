package ports

import "go.trai.ch/lode/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving index snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the last snapshot for the given manifest path.
	// Returns nil, nil if not found.
	Get(manifestPath string) (*domain.IndexSnapshot, error)

	// Put stores the snapshot, replacing any previous one for the same manifest.
	Put(snapshot domain.IndexSnapshot) error
}
