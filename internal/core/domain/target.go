package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Inheritance controls which parts of the parent target a child target picks up.
type Inheritance string

const (
	// InheritanceComplete inherits everything from the parent, including its dependencies.
	InheritanceComplete Inheritance = "complete"
	// InheritanceNone inherits nothing from the parent.
	InheritanceNone Inheritance = "none"
	// InheritanceSearchPaths inherits only search paths; dependencies are not inherited.
	InheritanceSearchPaths Inheritance = "search_paths"
)

// ParseInheritance converts a manifest value into an Inheritance.
// The empty string selects InheritanceComplete.
func ParseInheritance(s string) (Inheritance, error) {
	switch Inheritance(strings.ToLower(strings.TrimSpace(s))) {
	case "", InheritanceComplete:
		return InheritanceComplete, nil
	case InheritanceNone:
		return InheritanceNone, nil
	case InheritanceSearchPaths:
		return InheritanceSearchPaths, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidInheritance, ""), "inherit", s)
	}
}

// TargetDefinition is a node in a manifest's target tree.
// Target definitions are compared by identity; two targets with the same name
// in different manifests are different keys.
type TargetDefinition struct {
	name        InternedString
	parent      *TargetDefinition
	children    []*TargetDefinition
	abstract    bool
	inheritance Inheritance
	ownDeps     []Dependency
}

// NewTargetDefinition creates a detached target definition.
// Attach it to a parent with AddChild.
func NewTargetDefinition(name string, abstract bool, inheritance Inheritance) *TargetDefinition {
	if inheritance == "" {
		inheritance = InheritanceComplete
	}
	return &TargetDefinition{
		name:        NewInternedString(name),
		abstract:    abstract,
		inheritance: inheritance,
	}
}

// AddChild appends child to the target's children and sets its parent.
func (t *TargetDefinition) AddChild(child *TargetDefinition) {
	child.parent = t
	t.children = append(t.children, child)
}

// AddDependency appends a declaration owned by this target.
func (t *TargetDefinition) AddDependency(dep Dependency) {
	t.ownDeps = append(t.ownDeps, dep)
}

// Name returns the target's own name.
func (t *TargetDefinition) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name.String()
}

// Label returns the slash-separated path of names from the root to this target.
func (t *TargetDefinition) Label() string {
	if t == nil || t.parent == nil {
		return t.Name()
	}
	return t.parent.Label() + "/" + t.Name()
}

// Parent returns the enclosing target, or nil for the root.
func (t *TargetDefinition) Parent() *TargetDefinition {
	return t.parent
}

// Children returns the nested targets in declaration order.
func (t *TargetDefinition) Children() []*TargetDefinition {
	return slices.Clone(t.children)
}

// IsRoot reports whether the target has no parent.
func (t *TargetDefinition) IsRoot() bool {
	return t.parent == nil
}

// IsAbstract reports whether the target only groups other targets.
func (t *TargetDefinition) IsAbstract() bool {
	return t.abstract
}

// Inheritance returns the target's inheritance mode.
func (t *TargetDefinition) Inheritance() Inheritance {
	return t.inheritance
}

// IsExclusive reports whether the target ignores its parent's dependencies.
func (t *TargetDefinition) IsExclusive() bool {
	return t.IsRoot() || t.inheritance != InheritanceComplete
}

// NonInheritedDependencies returns the declarations written directly on this target.
func (t *TargetDefinition) NonInheritedDependencies() []Dependency {
	return slices.Clone(t.ownDeps)
}

// Dependencies returns the declarations that apply to this target: its own,
// followed by the parent's applicable declarations unless the target is exclusive.
// Duplicates between the two are kept.
func (t *TargetDefinition) Dependencies() ([]Dependency, error) {
	deps := t.NonInheritedDependencies()
	if t.IsExclusive() {
		return deps, nil
	}
	inherited, err := t.parent.Dependencies()
	if err != nil {
		return nil, err
	}
	return append(deps, inherited...), nil
}
