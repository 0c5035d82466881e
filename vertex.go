package polyclipping

// The vertex graph is built once per input path: a circular doubly-linked
// ring of vertices allocated as a single contiguous block, with each vertex
// tagged where the path changes vertical direction. Local minima (downward
// to upward flips on the inverted Y-axis) seed the sweep; local maxima end
// the bounds that started there.

type vertexFlags int

const (
	vertexOpenStart vertexFlags = 1 << iota
	vertexOpenEnd
	vertexLocalMax
	vertexLocalMin
)

type vertex struct {
	pt    Point64
	next  *vertex
	prev  *vertex
	flags vertexFlags
}

// localMinimum marks a vertex where two bounds start: one descending to the
// left and one ascending to the right. Open path endpoints may lack one side.
type localMinimum struct {
	vertex   *vertex
	polytype PathType
	isOpen   bool
}

// addLocMin registers v as a local minimum, at most once per vertex.
func (c *Clipper) addLocMin(v *vertex, polytype PathType, isOpen bool) {
	if v.flags&vertexLocalMin != 0 {
		return
	}
	v.flags |= vertexLocalMin
	c.minimaList = append(c.minimaList, &localMinimum{vertex: v, polytype: polytype, isOpen: isOpen})
}

// addPathToVertexList builds the vertex ring for path and registers its local
// minima. Consecutive duplicate points are skipped, trailing duplicates of the
// first point are trimmed, and closed paths whose points all lie on one
// horizontal line are dropped.
func (c *Clipper) addPathToVertexList(path Path, polytype PathType, isOpen bool) {
	pathLen := len(path)
	for pathLen > 1 && path[pathLen-1] == path[0] {
		pathLen--
	}
	if pathLen < 2 {
		return
	}

	i := 1
	p0IsMinima, p0IsMaxima, goingUp := false, false, false
	// find the first non-horizontal segment in the path
	for i < pathLen && path[i].Y == path[0].Y {
		i++
	}
	isFlat := i == pathLen
	if isFlat {
		if !isOpen {
			return // closed paths with zero area are ignored
		}
	} else {
		goingUp = path[i].Y < path[0].Y // smaller Y is higher up
		if goingUp {
			i = pathLen - 1
			for path[i].Y == path[0].Y {
				i--
			}
			p0IsMinima = path[i].Y < path[0].Y
		} else {
			i = pathLen - 1
			for path[i].Y == path[0].Y {
				i--
			}
			p0IsMaxima = path[i].Y > path[0].Y
		}
	}

	vertices := make([]vertex, pathLen)
	c.vertexList = append(c.vertexList, vertices)

	vertices[0].pt = path[0]
	if isOpen {
		vertices[0].flags |= vertexOpenStart
		if goingUp {
			c.addLocMin(&vertices[0], polytype, isOpen)
		} else {
			vertices[0].flags |= vertexLocalMax
		}
	}

	// polygon orientation is determined later, when the bounds enter the AEL
	i = 0
	for j := 1; j < pathLen; j++ {
		if path[j] == vertices[i].pt {
			continue // skip duplicates
		}
		vertices[j].pt = path[j]
		vertices[i].next = &vertices[j]
		vertices[j].prev = &vertices[i]
		if path[j].Y > vertices[i].pt.Y && goingUp {
			vertices[i].flags |= vertexLocalMax
			goingUp = false
		} else if path[j].Y < vertices[i].pt.Y && !goingUp {
			goingUp = true
			c.addLocMin(&vertices[i], polytype, isOpen)
		}
		i = j
	}
	// i is now the index of the last distinct vertex
	vertices[i].next = &vertices[0]
	vertices[0].prev = &vertices[i]

	if isOpen {
		vertices[i].flags |= vertexOpenEnd
		if goingUp {
			vertices[i].flags |= vertexLocalMax
		} else {
			c.addLocMin(&vertices[i], polytype, isOpen)
		}
	} else if goingUp {
		// still going up at the wrap-around, so find the local maximum
		v := &vertices[i]
		for v.next.pt.Y <= v.pt.Y {
			v = v.next
		}
		v.flags |= vertexLocalMax
		if p0IsMinima {
			c.addLocMin(&vertices[0], polytype, isOpen)
		}
	} else {
		// going down at the wrap-around, so find the local minimum
		v := &vertices[i]
		for v.next.pt.Y >= v.pt.Y {
			v = v.next
		}
		c.addLocMin(v, polytype, isOpen)
		if p0IsMaxima {
			vertices[0].flags |= vertexLocalMax
		}
	}
}
