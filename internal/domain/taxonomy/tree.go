package taxonomy

import "fmt"

// Tree is the activity taxonomy. Nodes live in a flat table keyed by id and
// each level is an ordered list of child ids, so siblings keep insertion order.
type Tree struct {
	nodes map[string]*Node
	roots []string
	newID func() string
}

// Option configures a Tree.
type Option func(*Tree)

// WithIDGenerator overrides the identifier generator used for new nodes.
func WithIDGenerator(gen func() string) Option {
	return func(t *Tree) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// NewTree creates an empty tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{
		nodes: make(map[string]*Node),
		newID: NewID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build restores a tree from stored nodes. Siblings keep the order in which
// they appear in nodes; a parent may appear after its children.
func Build(nodes []Node, opts ...Option) (*Tree, error) {
	t := NewTree(opts...)
	byParent := make(map[string][]Node)
	for _, n := range nodes {
		byParent[n.ParentID] = append(byParent[n.ParentID], n)
	}

	queue := []string{""}
	for len(queue) > 0 {
		parentID := queue[0]
		queue = queue[1:]
		for _, n := range byParent[parentID] {
			if err := t.Attach(n.ID, n.ParentID, n.Name); err != nil {
				return nil, err
			}
			queue = append(queue, n.ID)
		}
		delete(byParent, parentID)
	}

	for _, n := range nodes {
		if _, ok := byParent[n.ParentID]; ok {
			return nil, fmt.Errorf("activity %q: parent %q: %w", n.Name, n.ParentID, ErrNotFound)
		}
	}
	return t, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns a copy of the node with the given id.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Level returns the ordered children of parentID, or the top-level nodes
// when parentID is empty.
func (t *Tree) Level(parentID string) ([]Node, error) {
	ids, err := t.level(parentID)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.nodes[id].clone())
	}
	return out, nil
}

// Child returns the child of parentID with the given name.
func (t *Tree) Child(parentID, name string) (Node, bool) {
	ids, err := t.level(parentID)
	if err != nil {
		return Node{}, false
	}
	name = canonicalName(name)
	for _, id := range ids {
		if n := t.nodes[id]; n.Name == name {
			return n.clone(), true
		}
	}
	return Node{}, false
}

// Insert adds a new leaf named name under parentID (the root level when
// parentID is empty). A leaf parent becomes a branch and keeps its id.
func (t *Tree) Insert(parentID, name string) (Node, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Node{}, err
	}
	if err := t.attach(t.mintID(), parentID, name); err != nil {
		return Node{}, err
	}
	return t.lastChild(parentID), nil
}

// InsertPath adds a chain of nodes under parentID, one per name, and returns
// the final node, which is a leaf. Every name is validated before the tree
// is touched.
func (t *Tree) InsertPath(parentID string, names []string) (Node, error) {
	if len(names) == 0 {
		return Node{}, ErrInvalidName
	}
	clean := make([]string, len(names))
	for i, name := range names {
		n, err := normalizeName(name)
		if err != nil {
			return Node{}, err
		}
		clean[i] = n
	}
	if _, err := t.level(parentID); err != nil {
		return Node{}, err
	}
	if _, ok := t.Child(parentID, clean[0]); ok {
		return Node{}, fmt.Errorf("%q: %w", clean[0], ErrDuplicateName)
	}

	var last Node
	for _, name := range clean {
		n, err := t.Insert(parentID, name)
		if err != nil {
			return Node{}, err
		}
		parentID = n.ID
		last = n
	}
	return last, nil
}

// Attach adds a node with a known id, as read back from storage.
func (t *Tree) Attach(id, parentID, name string) error {
	if id == "" {
		return fmt.Errorf("activity %q has no id: %w", name, ErrInvalidName)
	}
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if _, ok := t.nodes[id]; ok {
		return fmt.Errorf("%q: %w", id, ErrDuplicateID)
	}
	return t.attach(id, parentID, name)
}

// Walk visits every node depth-first, pre-order, siblings in insertion order.
// path holds the ancestor names of the visited node. Walking stops when fn
// returns false.
func (t *Tree) Walk(fn func(n Node, path []string) bool) {
	type frame struct {
		id   string
		path []string
	}
	stack := make([]frame, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: t.roots[i]})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.id]
		if !fn(n.clone(), top.path) {
			return
		}
		childPath := append(top.path[:len(top.path):len(top.path)], n.Name)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: n.Children[i], path: childPath})
		}
	}
}

func (t *Tree) level(parentID string) ([]string, error) {
	if parentID == "" {
		return t.roots, nil
	}
	parent, ok := t.nodes[parentID]
	if !ok {
		return nil, fmt.Errorf("parent %q: %w", parentID, ErrNotFound)
	}
	return parent.Children, nil
}

func (t *Tree) attach(id, parentID, name string) error {
	if _, err := t.level(parentID); err != nil {
		return err
	}
	if _, ok := t.Child(parentID, name); ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}

	t.nodes[id] = &Node{ID: id, Name: name, ParentID: parentID}
	if parentID == "" {
		t.roots = append(t.roots, id)
		return nil
	}
	parent := t.nodes[parentID]
	parent.Children = append(parent.Children, id)
	return nil
}

func (t *Tree) lastChild(parentID string) Node {
	ids, _ := t.level(parentID)
	return t.nodes[ids[len(ids)-1]].clone()
}

func (t *Tree) mintID() string {
	for {
		id := t.newID()
		if _, taken := t.nodes[id]; !taken && id != "" {
			return id
		}
	}
}
