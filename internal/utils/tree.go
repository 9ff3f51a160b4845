package utils

// BuildTree links flat nodes into a forest. Nodes whose parent is missing become roots.
// Input order is preserved among siblings.
func BuildTree[N any](nodes []N, id func(N) int64, parentID func(N) *int64, addChild func(parent, child N)) []N {
	byID := make(map[int64]N, len(nodes))
	for _, n := range nodes {
		byID[id(n)] = n
	}

	roots := make([]N, 0)
	for _, n := range nodes {
		pid := parentID(n)
		if pid == nil || *pid == id(n) {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[*pid]
		if !ok {
			roots = append(roots, n)
			continue
		}
		addChild(parent, n)
	}
	return roots
}

// CreatesCycle reports whether making newParent the parent of id would form a loop.
// parents maps every node id to its current parent id (nil for roots).
func CreatesCycle(parents map[int64]*int64, id, newParent int64) bool {
	seen := make(map[int64]bool)
	for cur := newParent; ; {
		if cur == id {
			return true
		}
		if seen[cur] {
			// existing data already loops
			return true
		}
		seen[cur] = true

		p, ok := parents[cur]
		if !ok || p == nil {
			return false
		}
		cur = *p
	}
}
