// Package config provides the manifest loader for lode.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultRootName names the implicit root target when the manifest does not.
const DefaultRootName = "Root"

// ManifestFileNames are searched, in order, when Load is given a directory.
var ManifestFileNames = []string{"lode.yaml", "lode.yml", "lode.jsonc", "lode.json"}

var validTargetNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader for YAML and JSONC manifests.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the manifest at path and assembles its target tree.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	manifestPath, err := findManifest(path)
	if err != nil {
		return nil, err
	}

	lodefile, err := readLodefile(manifestPath)
	if err != nil {
		return nil, err
	}

	return l.assemble(manifestPath, lodefile)
}

// findManifest returns the absolute path of the manifest, so every spelling of
// the same file resolves to one name.
func findManifest(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}
	path = abs

	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range ManifestFileNames {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), "dir", path)
}

func readLodefile(path string) (*Lodefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	var lodefile Lodefile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &lodefile)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &lodefile)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, ""), "path", path)
	}
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}

	return &lodefile, nil
}

func (l *Loader) assemble(path string, lodefile *Lodefile) (*domain.Manifest, error) {
	rootName := lodefile.Name
	if rootName == "" {
		rootName = DefaultRootName
	}
	if lodefile.Inherit != "" {
		l.Logger.Warn("'inherit' on the root target has no effect in " + filepath.Base(path))
	}

	names := make(map[string]bool)
	root, err := buildTarget(TargetDTO{
		Name:         rootName,
		Abstract:     true,
		Dependencies: lodefile.Dependencies,
		Targets:      lodefile.Targets,
	}, names)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return domain.NewManifest(path, root), nil
}

func buildTarget(dto TargetDTO, names map[string]bool) (*domain.TargetDefinition, error) {
	if err := validateTargetName(dto.Name); err != nil {
		return nil, err
	}
	if names[dto.Name] {
		return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateTargetName, ""), "target", dto.Name)
	}
	names[dto.Name] = true

	inheritance, err := domain.ParseInheritance(dto.Inherit)
	if err != nil {
		return nil, zerr.With(err, "target", dto.Name)
	}

	td := domain.NewTargetDefinition(dto.Name, dto.Abstract, inheritance)
	for i, dep := range dto.Dependencies {
		name := strings.TrimSpace(dep.Name)
		if name == "" {
			err := zerr.With(zerr.Wrap(domain.ErrMissingDependencyName, ""), "target", dto.Name)
			return nil, zerr.With(err, "index", i)
		}
		td.AddDependency(domain.NewDependency(name, strings.TrimSpace(dep.Version), strings.TrimSpace(dep.Source)))
	}

	for _, childDTO := range dto.Targets {
		child, err := buildTarget(childDTO, names)
		if err != nil {
			return nil, err
		}
		td.AddChild(child)
	}

	return td, nil
}

func validateTargetName(name string) error {
	if !validTargetNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTargetName, ""), "target", name)
	}
	return nil
}
