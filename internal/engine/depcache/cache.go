// Package depcache indexes the dependency declarations of a manifest once and
// serves them to every consumer of a resolution run.
package depcache

import (
	"iter"
	"slices"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache is an immutable index over the dependency declarations of one manifest.
// It is safe for concurrent use without locking: nothing is written after Build
// returns, and every accessor hands out copies.
type Cache[T ports.TargetDefinition] struct {
	all     []domain.Dependency
	byTD    map[T][]domain.Dependency
	targets []T
}

// AllDependencies returns every declaration in the manifest without duplicates,
// in the order each was first seen while walking the targets.
func (c *Cache[T]) AllDependencies() []domain.Dependency {
	return slices.Clone(c.all)
}

// DependenciesFor returns the declarations recorded for td, exactly as the
// target reported them. A target without declarations yields an empty slice.
// A target that was not part of the manifest yields ErrTargetDefinitionNotIndexed.
func (c *Cache[T]) DependenciesFor(td T) ([]domain.Dependency, error) {
	deps, ok := c.byTD[td]
	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrTargetDefinitionNotIndexed, ""),
			"target_definition", td.Label(),
		)
	}
	return append(make([]domain.Dependency, 0, len(deps)), deps...), nil
}

// TargetDefinitions returns every indexed target definition.
// The order is stable for a given cache but carries no meaning.
func (c *Cache[T]) TargetDefinitions() []T {
	return slices.Clone(c.targets)
}

// Has reports whether td was indexed.
func (c *Cache[T]) Has(td T) bool {
	_, ok := c.byTD[td]
	return ok
}

// Len returns the number of indexed target definitions.
func (c *Cache[T]) Len() int {
	return len(c.targets)
}

// All iterates over the indexed target definitions and their declarations.
func (c *Cache[T]) All() iter.Seq2[T, []domain.Dependency] {
	return func(yield func(T, []domain.Dependency) bool) {
		for _, td := range c.targets {
			if !yield(td, slices.Clone(c.byTD[td])) {
				return
			}
		}
	}
}
