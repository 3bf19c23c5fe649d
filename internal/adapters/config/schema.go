package config

// Lodefile represents the structure of a lode manifest (lode.yaml or lode.jsonc).
type Lodefile struct {
	Version      string          `yaml:"version" json:"version"`
	Name         string          `yaml:"name" json:"name"`
	Inherit      string          `yaml:"inherit" json:"inherit"`
	Dependencies []DependencyDTO `yaml:"dependencies" json:"dependencies"`
	Targets      []TargetDTO     `yaml:"targets" json:"targets"`
}

// TargetDTO represents a target definition in the manifest.
type TargetDTO struct {
	Name         string          `yaml:"name" json:"name"`
	Abstract     bool            `yaml:"abstract" json:"abstract"`
	Inherit      string          `yaml:"inherit" json:"inherit"`
	Dependencies []DependencyDTO `yaml:"dependencies" json:"dependencies"`
	Targets      []TargetDTO     `yaml:"targets" json:"targets"`
}

// DependencyDTO represents a dependency declaration in the manifest.
type DependencyDTO struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Source  string `yaml:"source" json:"source"`
}
