package domain

import "strings"

// Dependency is a single dependency declaration from a manifest.
// Two declarations are the same dependency when all three fields are equal,
// which makes Dependency usable directly as a map key.
type Dependency struct {
	// Name is the requested package name (e.g., "Alamofire", "Firebase/Analytics").
	Name InternedString

	// Requirement is the version constraint as written (e.g., "~> 5.0").
	// Empty means any version.
	Requirement InternedString

	// Source is where the package is fetched from, such as a git URL.
	Source InternedString
}

// NewDependency interns the given fields into a Dependency.
func NewDependency(name, requirement, source string) Dependency {
	return Dependency{
		Name:        NewInternedString(name),
		Requirement: NewInternedString(requirement),
		Source:      NewInternedString(source),
	}
}

// String renders the declaration the way it is shown to users,
// e.g. "Alamofire (~> 5.0)" or "Kit (= 1.0) from https://example.com/specs".
func (d Dependency) String() string {
	var b strings.Builder
	b.WriteString(d.Name.String())
	if req := d.Requirement.String(); req != "" {
		b.WriteString(" (")
		b.WriteString(req)
		b.WriteString(")")
	}
	if src := d.Source.String(); src != "" {
		b.WriteString(" from ")
		b.WriteString(src)
	}
	return b.String()
}
