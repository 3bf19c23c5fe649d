package ports

import "go.trai.ch/lode/internal/core/domain"

// ManifestLoader defines the interface for loading a dependency manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. A directory is searched for a default manifest file.
	Load(path string) (*domain.Manifest, error)
}
