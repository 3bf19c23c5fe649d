package domain

import "time"

// IndexSnapshot records the outcome of the last index run for a manifest.
type IndexSnapshot struct {
	ManifestPath    string    `cbor:"manifest_path"`
	Fingerprint     string    `cbor:"fingerprint"`
	TargetCount     int       `cbor:"target_count"`
	DependencyCount int       `cbor:"dependency_count"`
	IndexedAt       time.Time `cbor:"indexed_at"`
}
