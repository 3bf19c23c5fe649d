package depcache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lode/internal/core/domain"
)

// Fingerprint returns a digest of the indexed data. Two caches built from
// manifests with the same targets and declarations, in the same order, share a
// fingerprint.
func (c *Cache[T]) Fingerprint() string {
	hasher := xxhash.New()

	for _, td := range c.targets {
		writeField(hasher, "target", td.Label())
		for _, dep := range c.byTD[td] {
			writeDependency(hasher, dep)
		}
	}
	for _, dep := range c.all {
		writeDependency(hasher, dep)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func writeDependency(hasher *xxhash.Digest, dep domain.Dependency) {
	writeField(hasher, "name", dep.Name.String())
	writeField(hasher, "requirement", dep.Requirement.String())
	writeField(hasher, "source", dep.Source.String())
}

// writeField writes a tagged, NUL-terminated field so adjacent values cannot
// run together.
func writeField(hasher *xxhash.Digest, tag, value string) {
	_, _ = hasher.WriteString(tag)
	_, _ = hasher.WriteString("=")
	_, _ = hasher.WriteString(value)
	_, _ = hasher.Write([]byte{0})
}
