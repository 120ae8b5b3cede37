package options

import "errors"

// ErrAmbiguousModelSelection rejects declarations that set both or neither of
// model.name and model.path.
var ErrAmbiguousModelSelection = errors.New("exactly one of model.name or model.path must be set")

// SelectionKind tags the two model selection variants.
type SelectionKind string

const (
	// SelectionCatalog selects a symbolic model resolved through the catalog.
	SelectionCatalog SelectionKind = "catalog"
	// SelectionExplicit selects a user-supplied model file on disk.
	SelectionExplicit SelectionKind = "explicit"
)

// Selection is the model choice as a tagged union: exactly one of Name or Path
// is meaningful, discriminated by Kind.
type Selection struct {
	Kind SelectionKind
	Name string
	Path string
}

// Selection converts the raw name/path pair into the tagged union, enforcing
// mutual exclusivity at the boundary before any resolution side effect.
func (m ModelOptions) Selection() (Selection, error) {
	hasName := m.Name != ""
	hasPath := m.Path != ""

	switch {
	case hasName && hasPath:
		return Selection{}, ErrAmbiguousModelSelection
	case hasName:
		return Selection{Kind: SelectionCatalog, Name: m.Name}, nil
	case hasPath:
		return Selection{Kind: SelectionExplicit, Path: m.Path}, nil
	default:
		return Selection{}, ErrAmbiguousModelSelection
	}
}
