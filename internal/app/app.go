// Package app implements the application layer for lode.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/depcache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	store     ports.SnapshotStore
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// IndexOptions configures a single index run.
type IndexOptions struct {
	// Path is the manifest file or the directory containing it.
	Path string
	// Concurrency is how many target definitions are read in parallel.
	Concurrency int
}

// Index is the result of indexing a manifest.
type Index struct {
	Manifest    *domain.Manifest
	Cache       *depcache.Cache[*domain.TargetDefinition]
	Fingerprint string
	// Changed reports whether the fingerprint differs from the last stored snapshot.
	Changed bool
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	store ports.SnapshotStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to timestamp snapshots.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Logger returns the application logger.
func (a *App) Logger() ports.Logger {
	return a.logger
}

// Build loads the manifest and builds its dependency cache without touching
// the snapshot store. The returned Index never reports Changed.
func (a *App) Build(ctx context.Context, opts IndexOptions) (idx *Index, err error) {
	ctx, vertex := a.telemetry.Record(ctx, "build "+opts.Path)
	defer func() {
		vertex.Complete(err)
	}()

	return a.build(ctx, opts, vertex)
}

// Index builds the dependency cache like Build, compares its fingerprint with
// the stored snapshot and records a new one.
func (a *App) Index(ctx context.Context, opts IndexOptions) (idx *Index, err error) {
	ctx, vertex := a.telemetry.Record(ctx, "index "+opts.Path)
	defer func() {
		vertex.Complete(err)
	}()

	idx, err = a.build(ctx, opts, vertex)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifestPath := idx.Manifest.Path()
	previous, err := a.store.Get(manifestPath)
	if err != nil {
		// A broken snapshot only costs the change detection.
		a.logger.Warn(fmt.Sprintf("ignoring unreadable snapshot for %s: %v", manifestPath, err))
		previous = nil
	}

	idx.Changed = previous == nil || previous.Fingerprint != idx.Fingerprint
	if !idx.Changed {
		vertex.Cached()
	}

	snapshot := domain.IndexSnapshot{
		ManifestPath:    manifestPath,
		Fingerprint:     idx.Fingerprint,
		TargetCount:     idx.Cache.Len(),
		DependencyCount: len(idx.Cache.AllDependencies()),
		IndexedAt:       a.now(),
	}
	if err := a.store.Put(snapshot); err != nil {
		return nil, zerr.Wrap(err, "failed to store index snapshot")
	}

	return idx, nil
}

func (a *App) build(ctx context.Context, opts IndexOptions, vertex ports.Vertex) (*Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifest, err := a.loader.Load(opts.Path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	cache, err := depcache.BuildWith(depcache.NewBuilder(depcache.WithConcurrency(opts.Concurrency)), manifest)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrIndexFailed, err), "path", opts.Path)
	}

	_, _ = fmt.Fprintf(vertex.Stdout(), "%d targets, %d dependencies\n", cache.Len(), len(cache.AllDependencies()))

	return &Index{
		Manifest:    manifest,
		Cache:       cache,
		Fingerprint: cache.Fingerprint(),
	}, nil
}

// Lookup resolves a target definition by name or label and returns its dependencies.
func (a *App) Lookup(idx *Index, targetName string) (*domain.TargetDefinition, []domain.Dependency, error) {
	td, ok := idx.Manifest.FindTargetDefinition(targetName)
	if !ok {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, ""), "target", targetName)
	}

	deps, err := idx.Cache.DependenciesFor(td)
	if err != nil {
		return nil, nil, err
	}
	return td, deps, nil
}
