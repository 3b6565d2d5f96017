package taxonomy

// Find returns the first node matching sel in depth-first, pre-order
// traversal. When several nodes share a name, the first one visited wins.
func (t *Tree) Find(sel Selector) (*Match, error) {
	match, err := sel.matcher()
	if err != nil {
		return nil, err
	}

	var found *Match
	t.Walk(func(n Node, path []string) bool {
		if !match(&n) {
			return true
		}
		found = &Match{
			Name:   n.Name,
			ID:     n.ID,
			IsLeaf: n.IsLeaf(),
			Path:   append([]string{}, path...),
		}
		return false
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}
