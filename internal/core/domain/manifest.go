package domain

// Manifest is a parsed dependency manifest: a tree of target definitions
// rooted at a single (usually abstract) target.
type Manifest struct {
	path string
	root *TargetDefinition
}

// NewManifest creates a manifest read from path with the given root target.
func NewManifest(path string, root *TargetDefinition) *Manifest {
	return &Manifest{path: path, root: root}
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Root returns the root target definition.
func (m *Manifest) Root() *TargetDefinition {
	return m.root
}

// TargetDefinitionList returns every target definition in depth-first
// pre-order, starting with the root. This is the manifest's canonical order.
func (m *Manifest) TargetDefinitionList() ([]*TargetDefinition, error) {
	if m == nil || m.root == nil {
		return nil, ErrNilManifest
	}

	var list []*TargetDefinition
	var visit func(t *TargetDefinition)
	visit = func(t *TargetDefinition) {
		list = append(list, t)
		for _, child := range t.children {
			visit(child)
		}
	}
	visit(m.root)

	return list, nil
}

// FindTargetDefinition returns the target whose name or label equals name.
func (m *Manifest) FindTargetDefinition(name string) (*TargetDefinition, bool) {
	list, err := m.TargetDefinitionList()
	if err != nil {
		return nil, false
	}
	for _, t := range list {
		if t.Name() == name || t.Label() == name {
			return t, true
		}
	}
	return nil, false
}
