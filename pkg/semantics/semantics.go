// Package semantics describes the accessibility nodes emitted by views.
//
// Views append (NodeID, Node) entries to a caller-owned slice during the
// access traversal; the platform's accessibility bridge consumes the list.
package semantics

import (
	"fmt"

	"github.com/go-drift/loom/pkg/graphics"
)

// Role identifies what kind of control a node represents.
type Role int

const (
	RoleUnknown Role = iota
	RoleLabel
	RoleButton
	RoleSlider
	RoleImage
	RoleGroup
	RoleTextField
	RoleWindow
)

var roleNames = []string{
	"unknown", "label", "button", "slider", "image", "group", "text_field", "window",
}

// String returns a human-readable representation of the role.
func (r Role) String() string {
	if int(r) >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// NodeID identifies an accessibility node. It is derived from the owning
// view's identity and is therefore stable across frames.
type NodeID uint64

// Node is the descriptor of one accessibility node.
type Node struct {
	Role     Role
	Name     string
	Value    string
	Bounds   graphics.Rect
	Children []NodeID
}

// Entry pairs a node with its id.
type Entry struct {
	ID   NodeID
	Node Node
}

// Find returns the entry with the given id.
func Find(entries []Entry, id NodeID) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
