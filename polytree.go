package polyclipping

// PolyPath is a node in a PolyTree. Each node holds one closed solution path
// and the paths it directly contains. Whether a node is an outer boundary or
// a hole alternates with its depth: the root's direct children are outers,
// their children are holes, and so on.
type PolyPath struct {
	parent *PolyPath
	path   Path
	childs []*PolyPath
}

func (pp *PolyPath) addChild(path Path) *PolyPath {
	child := &PolyPath{parent: pp, path: path}
	pp.childs = append(pp.childs, child)
	return child
}

// ChildCount returns the number of paths directly contained by this node.
func (pp *PolyPath) ChildCount() int {
	return len(pp.childs)
}

// Child returns the i-th contained node. It panics when i is out of range.
func (pp *PolyPath) Child(i int) *PolyPath {
	if i < 0 || len(pp.childs) <= i {
		panic("polyclipping: child index out of range")
	}
	return pp.childs[i]
}

// Parent returns the containing node, or nil for the root.
func (pp *PolyPath) Parent() *PolyPath {
	return pp.parent
}

// Path returns the node's path. The root of a PolyTree has an empty path.
func (pp *PolyPath) Path() Path {
	return pp.path
}

// IsHole returns true when the node is at an even depth from the root, ie.
// when its path bounds a hole of its parent.
func (pp *PolyPath) IsHole() bool {
	hole := true
	for p := pp.parent; p != nil; p = p.parent {
		hole = !hole
	}
	return hole
}

// PolyTree is the hierarchical form of a clipping solution, recording which
// rings are contained by which. Its root is an empty ring.
type PolyTree struct {
	PolyPath
}

// Clear removes all nodes from the tree.
func (pt *PolyTree) Clear() {
	pt.childs = nil
}

// Paths flattens the tree into a list of paths in depth-first order.
func (pt *PolyTree) Paths() Paths {
	paths := make(Paths, 0, len(pt.childs))
	var add func(pp *PolyPath)
	add = func(pp *PolyPath) {
		if len(pp.path) != 0 {
			paths = append(paths, pp.path)
		}
		for _, child := range pp.childs {
			add(child)
		}
	}
	add(&pt.PolyPath)
	return paths
}
