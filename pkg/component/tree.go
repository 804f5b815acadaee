package component

import (
	"fmt"
	"strings"
)

// Tree is the ordered, parent-linked collection of components defining one
// form's structure. Treat it as immutable after construction; sessions share
// a single Tree but never mutate it.
type Tree struct {
	components []Component
	byID       map[string]int
	children   map[string][]string
}

// NewTree validates the component list and builds lookup indexes. IDs must be
// unique and non-empty, and no component may reference itself as parent. A
// ParentID pointing at a missing id or at a node that cannot host children is
// not fatal: the node is demoted to the root level, mirroring how the engine
// tolerates authoring-tool integrity slips at runtime.
func NewTree(components []Component) (*Tree, error) {
	tree := &Tree{
		components: append([]Component(nil), components...),
		byID:       make(map[string]int, len(components)),
		children:   make(map[string][]string),
	}

	for idx, comp := range tree.components {
		id := strings.TrimSpace(comp.ID)
		if id == "" {
			return nil, fmt.Errorf("component: node at index %d has an empty id", idx)
		}
		if _, exists := tree.byID[id]; exists {
			return nil, fmt.Errorf("component: duplicate id %q", id)
		}
		if comp.ParentID == id {
			return nil, fmt.Errorf("component: node %q references itself as parent", id)
		}
		tree.byID[id] = idx
	}

	for idx := range tree.components {
		comp := &tree.components[idx]
		if comp.ParentID == "" {
			continue
		}
		parentIdx, ok := tree.byID[comp.ParentID]
		if !ok || !tree.components[parentIdx].Type.Container() {
			// Dangling or non-container parent reference: render as
			// root-level so the node stays reachable.
			comp.ParentID = ""
			continue
		}
		tree.children[comp.ParentID] = append(tree.children[comp.ParentID], comp.ID)
	}

	return tree, nil
}

// MustNewTree panics on validation failure. Useful for fixtures and tests.
func MustNewTree(components []Component) *Tree {
	tree, err := NewTree(components)
	if err != nil {
		panic(err)
	}
	return tree
}

// Len returns the number of components in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.components)
}

// ByID returns the component with the given id.
func (t *Tree) ByID(id string) (Component, bool) {
	if t == nil {
		return Component{}, false
	}
	idx, ok := t.byID[id]
	if !ok {
		return Component{}, false
	}
	return t.components[idx], true
}

// Walk visits every component in document order. Returning false stops the
// walk early.
func (t *Tree) Walk(visit func(Component) bool) {
	if t == nil || visit == nil {
		return
	}
	for _, comp := range t.components {
		if !visit(comp) {
			return
		}
	}
}

// Roots returns the components without a parent, in document order.
func (t *Tree) Roots() []Component {
	if t == nil {
		return nil
	}
	var roots []Component
	for _, comp := range t.components {
		if comp.ParentID == "" {
			roots = append(roots, comp)
		}
	}
	return roots
}

// Children returns the direct children of the given id, in document order.
func (t *Tree) Children(id string) []Component {
	if t == nil {
		return nil
	}
	ids := t.children[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Component, 0, len(ids))
	for _, childID := range ids {
		out = append(out, t.components[t.byID[childID]])
	}
	return out
}

// ValueComponents returns the components that participate in the value store
// and placeholder generation, excluding structural types, in document order.
func (t *Tree) ValueComponents() []Component {
	if t == nil {
		return nil
	}
	var out []Component
	for _, comp := range t.components {
		if comp.Type.Structural() {
			continue
		}
		out = append(out, comp)
	}
	return out
}
