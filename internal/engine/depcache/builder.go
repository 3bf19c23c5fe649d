package depcache

import (
	"reflect"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Builder builds dependency caches.
type Builder struct {
	concurrency int
}

// Option configures a Builder.
type Option func(*Builder)

// WithConcurrency sets how many targets are asked for their dependencies at once.
// Values below 2 build sequentially.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		b.concurrency = n
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{concurrency: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build indexes m sequentially. See BuildWith.
func Build[T ports.TargetDefinition](m ports.Manifest[T]) (*Cache[T], error) {
	return BuildWith(NewBuilder(), m)
}

// BuildWith indexes every target definition of m using b.
//
// Targets are visited in the manifest's order; each target's declarations are
// recorded as reported, and the concatenation of all of them, with later
// duplicates dropped, becomes the global list. Either a complete cache is
// returned or an error, never both.
func BuildWith[T ports.TargetDefinition](b *Builder, m ports.Manifest[T]) (*Cache[T], error) {
	if isNil(m) {
		return nil, zerr.Wrap(domain.ErrNilManifest, "")
	}

	targets, err := m.TargetDefinitionList()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list target definitions")
	}

	perTarget, err := collect(b, targets)
	if err != nil {
		return nil, err
	}

	byTD := make(map[T][]domain.Dependency, len(targets))
	order := make([]T, 0, len(targets))
	total := 0
	for i, td := range targets {
		if _, seen := byTD[td]; !seen {
			order = append(order, td)
		}
		byTD[td] = perTarget[i]
		total += len(perTarget[i])
	}

	return &Cache[T]{
		all:     dedupe(perTarget, total),
		byTD:    byTD,
		targets: order,
	}, nil
}

// collect asks every target for its declarations. Results are slotted by
// position so the merge order does not depend on scheduling.
func collect[T ports.TargetDefinition](b *Builder, targets []T) ([][]domain.Dependency, error) {
	perTarget := make([][]domain.Dependency, len(targets))

	fetch := func(i int) error {
		deps, err := targets[i].Dependencies()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read target dependencies"), "target_definition", targets[i].Label())
		}
		perTarget[i] = append(make([]domain.Dependency, 0, len(deps)), deps...)
		return nil
	}

	if b.concurrency < 2 || len(targets) < 2 {
		for i := range targets {
			if err := fetch(i); err != nil {
				return nil, err
			}
		}
		return perTarget, nil
	}

	var g errgroup.Group
	g.SetLimit(b.concurrency)
	for i := range targets {
		g.Go(func() error { return fetch(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return perTarget, nil
}

func dedupe(perTarget [][]domain.Dependency, total int) []domain.Dependency {
	seen := make(map[domain.Dependency]struct{}, total)
	all := make([]domain.Dependency, 0, total)
	for _, deps := range perTarget {
		for _, dep := range deps {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			all = append(all, dep)
		}
	}
	return all
}

// isNil catches both a nil interface and a typed nil pointer inside one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
