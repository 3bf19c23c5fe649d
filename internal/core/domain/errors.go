package domain

import "go.trai.ch/zerr"

var (
	// ErrNilManifest is returned when a dependency cache is built without a manifest.
	ErrNilManifest = zerr.New("must be initialized with a manifest")

	// ErrTargetDefinitionNotIndexed is returned when the cache is queried with a target
	// definition that was not part of the manifest it was built from.
	ErrTargetDefinitionNotIndexed = zerr.New("dependencies for target definition do not exist in the cache")

	// ErrTargetNotFound is returned when no target in the manifest matches a requested name.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrDuplicateTargetName is returned when two targets in one manifest share a name.
	ErrDuplicateTargetName = zerr.New("duplicate target name")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrInvalidInheritance is returned when a target's inherit value is unknown.
	ErrInvalidInheritance = zerr.New("invalid inheritance, expected 'complete', 'none' or 'search_paths'")

	// ErrMissingDependencyName is returned when a dependency declaration has no name.
	ErrMissingDependencyName = zerr.New("dependency is missing a name")

	// ErrConfigReadFailed is returned when the manifest file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read manifest file")

	// ErrConfigParseFailed is returned when the manifest file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse manifest file")

	// ErrConfigNotFound is returned when no manifest file can be found in a directory.
	ErrConfigNotFound = zerr.New("could not find a lode manifest")

	// ErrUnsupportedConfigFormat is returned when the manifest file extension is not recognized.
	ErrUnsupportedConfigFormat = zerr.New("unsupported manifest format")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when the snapshot store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot store")

	// ErrStoreWriteFailed is returned when the snapshot store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot store")

	// ErrStoreDecodeFailed is returned when the snapshot store contents cannot be decoded.
	ErrStoreDecodeFailed = zerr.New("failed to decode snapshot store")

	// ErrStoreEncodeFailed is returned when snapshots cannot be encoded.
	ErrStoreEncodeFailed = zerr.New("failed to encode snapshot store")

	// ErrIndexFailed is returned when building the dependency index fails.
	ErrIndexFailed = zerr.New("failed to index manifest")
)
