package taxonomy

import "strings"

// Node is a named entry in the activity tree. A node without children is a leaf:
// the loggable activity itself. A node with children is a category.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	ParentID string   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) clone() Node {
	c := *n
	if n.Children != nil {
		c.Children = append([]string(nil), n.Children...)
	}
	return c
}

// Match is the result of a tree lookup.
type Match struct {
	Name   string   `json:"name"`
	ID     string   `json:"id"`
	IsLeaf bool     `json:"is_leaf"`
	Path   []string `json:"path"`
}

// FullName joins the ancestor path and the name with slashes.
func (m Match) FullName() string {
	if len(m.Path) == 0 {
		return m.Name
	}
	return strings.Join(m.Path, "/") + "/" + m.Name
}

// Selector picks nodes by exactly one of name or id.
type Selector struct {
	Name string
	ID   string
}

// ByName selects nodes by case-insensitive name.
func ByName(name string) Selector {
	return Selector{Name: name}
}

// ByID selects the node with the given id.
func ByID(id string) Selector {
	return Selector{ID: id}
}

func (s Selector) matcher() (func(*Node) bool, error) {
	hasName := strings.TrimSpace(s.Name) != ""
	hasID := s.ID != ""
	if hasName == hasID {
		return nil, ErrInvalidSelector
	}
	if hasName {
		name := canonicalName(s.Name)
		return func(n *Node) bool { return n.Name == name }, nil
	}
	return func(n *Node) bool { return n.ID == s.ID }, nil
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeName(name string) (string, error) {
	name = canonicalName(name)
	if name == "" || strings.Contains(name, "/") {
		return "", ErrInvalidName
	}
	return name, nil
}

// splitPath lowercases a typed activity name and splits it into path segments.
func splitPath(raw string) ([]string, error) {
	parts := strings.Split(strings.ToLower(raw), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		seg, err := normalizeName(part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
