// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/lode/internal/core/domain"

// Manifest enumerates the target definitions of a parsed manifest.
type Manifest[T TargetDefinition] interface {
	// TargetDefinitionList returns every target definition in the manifest's own order.
	TargetDefinitionList() ([]T, error)
}

// TargetDefinition is the key type of a dependency cache.
// Implementations must be comparable; pointer types are the usual choice.
type TargetDefinition interface {
	comparable

	// Dependencies returns the ordered declarations that apply to the target,
	// inheritance already resolved.
	Dependencies() ([]domain.Dependency, error)

	// Label identifies the target in errors and output.
	Label() string
}
