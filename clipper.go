package polyclipping

import (
	"cmp"
	"errors"
	"math"
	"slices"
)

// Clipper performs boolean clipping operations (intersection, union,
// difference, xor) on closed polygons and open polylines with integer
// coordinates, using a single-pass sweep over scanbeams. Add input paths with
// AddPath or AddPaths, then call Execute or ExecuteTree. The inputs are
// retained afterwards, so the same inputs can be executed again under a
// different clip type or fill rule. A Clipper is not safe for concurrent use;
// overlapping Execute calls on the same instance are rejected.
type Clipper struct {
	cliptype ClipType
	fillrule FillRule

	scanlines  scanlineQueue
	minimaList []*localMinimum
	currentLM  int
	vertexList [][]vertex
	outrecList []*outRec
	actives    *active
	sel        *active
	intersects []*intersectNode

	minimaSorted bool
	hasOpenPaths bool
	locked       bool
}

// outPt is a node in the circular doubly-linked vertex list of an outRec.
type outPt struct {
	pt   Point64
	next *outPt
	prev *outPt
}

// outRec holds a path of the clipping solution while it is being built.
// Edges in the AEL carry a pointer to an outRec when they contribute to the
// solution. pts points at the head of the ring, associated with startEdge;
// pts.prev is the tail, associated with endEdge.
type outRec struct {
	idx       int
	owner     *outRec
	pts       *outPt
	startEdge *active
	endEdge   *active
	open      bool
	outer     bool
	polypath  *PolyPath
}

// active is an edge currently crossed by the sweep line.
type active struct {
	bot  Point64
	curr Point64 // updated at every new scanline
	top  Point64
	dx   float64

	windDx   int // 1 or -1 for the ascending resp. descending bound
	windCnt  int
	windCnt2 int // winding count of the opposite polytype

	outrec *outRec

	nextInAEL *active
	prevInAEL *active
	nextInSEL *active
	prevInSEL *active
	mergeJump *active

	vertexTop *vertex
	localMin  *localMinimum // bottom of the bound
}

type intersectNode struct {
	pt    Point64
	edge1 *active
	edge2 *active
}

// scanlineQueue is a max-heap of scanline Y values still to be swept; the
// largest Y (the lowest scanline on the inverted axis) is popped first.
// Duplicates are tolerated and drained on pop.
type scanlineQueue []int64

func (q *scanlineQueue) Push(y int64) {
	*q = append(*q, y)
	q.up(len(*q) - 1)
}

func (q *scanlineQueue) Pop() (int64, bool) {
	if len(*q) == 0 {
		return 0, false
	}
	y := (*q)[0]
	for len(*q) != 0 && (*q)[0] == y {
		n := len(*q) - 1
		(*q)[0] = (*q)[n]
		*q = (*q)[:n]
		q.down(0)
	}
	return y, true
}

// from container/heap
func (q scanlineQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || q[j] <= q[i] {
			break
		}
		q[i], q[j] = q[j], q[i]
		j = i
	}
}

func (q scanlineQueue) down(i int) {
	n := len(q)
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q[j1] < q[j2] {
			j = j2
		}
		if q[j] <= q[i] {
			break
		}
		q[i], q[j] = q[j], q[i]
		i = j
	}
}

////////////////////////////////////////////////////////////////

func isHotEdge(e *active) bool {
	return e.outrec != nil
}

func isStartSide(e *active) bool {
	return e == e.outrec.startEdge
}

func isHorizontal(e *active) bool {
	return e.dx == horizontal
}

func isOpen(e *active) bool {
	return e.localMin.isOpen
}

// topX returns the X of the edge at the given scanline.
func topX(e *active, currentY int64) int64 {
	if currentY == e.top.Y {
		return e.top.X
	}
	return e.bot.X + round(e.dx*float64(currentY-e.bot.Y))
}

// topDeltaX returns the horizontal distance between the two edges measured at
// the lower of their top Y values.
func topDeltaX(e1, e2 *active) int64 {
	if e1.top.Y > e2.top.Y {
		return topX(e2, e1.top.Y) - e1.top.X
	}
	return e2.top.X - topX(e1, e2.top.Y)
}

func e2InsertsBeforeE1(e1, e2 *active, preferLeft bool) bool {
	if e2.curr.X == e1.curr.X {
		if preferLeft {
			return topDeltaX(e1, e2) <= 0
		}
		return topDeltaX(e1, e2) < 0
	}
	return e2.curr.X < e1.curr.X
}

func polyType(e *active) PathType {
	return e.localMin.polytype
}

func isSamePolyType(e1, e2 *active) bool {
	return e1.localMin.polytype == e2.localMin.polytype
}

// intersectPoint returns the crossing point of two edges. Equal slopes never
// truly cross; the current scanline position is returned for those. The more
// vertical edge's line equation is used to derive X, which minimizes the
// magnification of any slope error.
func intersectPoint(e1, e2 *active) Point64 {
	if e1.dx == e2.dx {
		return Point64{topX(e1, e1.curr.Y), e1.curr.Y}
	}

	if e1.dx == 0.0 {
		if isHorizontal(e2) {
			return Point64{e1.bot.X, e2.bot.Y}
		}
		b2 := float64(e2.bot.Y) - float64(e2.bot.X)/e2.dx
		return Point64{e1.bot.X, round(float64(e1.bot.X)/e2.dx + b2)}
	} else if e2.dx == 0.0 {
		if isHorizontal(e1) {
			return Point64{e2.bot.X, e1.bot.Y}
		}
		b1 := float64(e1.bot.Y) - float64(e1.bot.X)/e1.dx
		return Point64{e2.bot.X, round(float64(e2.bot.X)/e1.dx + b1)}
	}
	b1 := float64(e1.bot.X) - float64(e1.bot.Y)*e1.dx
	b2 := float64(e2.bot.X) - float64(e2.bot.Y)*e2.dx
	q := (b2 - b1) / (e1.dx - e2.dx)
	if absFloat(e1.dx) < absFloat(e2.dx) {
		return Point64{round(e1.dx*q + b1), round(q)}
	}
	return Point64{round(e2.dx*q + b2), round(q)}
}

func absFloat(v float64) float64 {
	if v < 0.0 {
		return -v
	}
	return v
}

func setDx(e *active) {
	dy := e.top.Y - e.bot.Y
	if dy == 0 {
		e.dx = horizontal
	} else {
		e.dx = float64(e.top.X-e.bot.X) / float64(dy)
	}
}

// nextVertex returns the next vertex along the edge's bound.
func nextVertex(e *active) *vertex {
	if e.windDx > 0 {
		return e.vertexTop.next
	}
	return e.vertexTop.prev
}

func isMaxima(e *active) bool {
	return e.vertexTop.flags&vertexLocalMax != 0
}

// maximaPair finds the edge that shares e's top vertex. For horizontal edges
// the pair can be on either side, so both directions are scanned with
// positional guards; otherwise only nextInAEL is scanned.
func maximaPair(e *active) *active {
	if isHorizontal(e) {
		e2 := e.prevInAEL
		for e2 != nil && e2.curr.X >= e.top.X {
			if e2.vertexTop == e.vertexTop {
				return e2
			}
			e2 = e2.prevInAEL
		}
		e2 = e.nextInAEL
		for e2 != nil && topX(e2, e.top.Y) <= e.top.X {
			if e2.vertexTop == e.vertexTop {
				return e2
			}
			e2 = e2.nextInAEL
		}
		return nil
	}
	e2 := e.nextInAEL
	for e2 != nil {
		if e2.vertexTop == e.vertexTop {
			return e2
		}
		e2 = e2.nextInAEL
	}
	return nil
}

func reversePolyPtLinks(pp *outPt) {
	pp1 := pp
	for {
		pp2 := pp1.next
		pp1.next = pp1.prev
		pp1.prev = pp2
		pp1 = pp2
		if pp1 == pp {
			break
		}
	}
}

// endOutrec releases both edges of a completed ring.
func endOutrec(outrec *outRec) {
	outrec.startEdge.outrec = nil
	if outrec.endEdge != nil {
		outrec.endEdge.outrec = nil
	}
	outrec.startEdge = nil
	outrec.endEdge = nil
}

func setOutrecClockwise(outrec *outRec, e1, e2 *active) {
	outrec.startEdge = e1
	outrec.endEdge = e2
	e1.outrec = outrec
	e2.outrec = outrec
}

func setOutrecCounterClockwise(outrec *outRec, e1, e2 *active) {
	outrec.startEdge = e2
	outrec.endEdge = e1
	e1.outrec = outrec
	e2.outrec = outrec
}

func pointCount(op *outPt) int {
	if op == nil {
		return 0
	}
	p := op
	cnt := 0
	for {
		cnt++
		p = p.next
		if p == op {
			break
		}
	}
	return cnt
}

// swapOutrecs exchanges the output rings of two edges and updates each ring's
// side references; when both edges share a ring only its sides are swapped.
func swapOutrecs(e1, e2 *active) {
	or1 := e1.outrec
	or2 := e2.outrec
	if or1 == or2 {
		or1.startEdge, or1.endEdge = or1.endEdge, or1.startEdge
		return
	}
	if or1 != nil {
		if e1 == or1.startEdge {
			or1.startEdge = e2
		} else {
			or1.endEdge = e2
		}
	}
	if or2 != nil {
		if e2 == or2.startEdge {
			or2.startEdge = e1
		} else {
			or2.endEdge = e1
		}
	}
	e1.outrec = or2
	e2.outrec = or1
}

func edgesAdjacentInSEL(node *intersectNode) bool {
	return node.edge1.nextInSEL == node.edge2 || node.edge1.prevInSEL == node.edge2
}

////////////////////////////////////////////////////////////////

// AddPath adds a polygon contour or, when isOpen is set, a polyline to be
// clipped. Only subject paths may be open. Degenerate paths (closed paths with
// fewer than two distinct points or with all points on one horizontal line,
// open paths with fewer than two points) are silently ignored.
func (c *Clipper) AddPath(path Path, polytype PathType, isOpen bool) error {
	if isOpen {
		if polytype == Clip {
			return errors.New("only subject paths may be open")
		}
		c.hasOpenPaths = true
	}
	c.minimaSorted = false
	c.addPathToVertexList(path, polytype, isOpen)
	return nil
}

// AddPaths adds multiple paths, see AddPath.
func (c *Clipper) AddPaths(paths Paths, polytype PathType, isOpen bool) error {
	for _, path := range paths {
		if err := c.AddPath(path, polytype, isOpen); err != nil {
			return err
		}
	}
	return nil
}

// Clear drops all input paths.
func (c *Clipper) Clear() {
	c.minimaList = c.minimaList[:0]
	c.vertexList = c.vertexList[:0]
	c.currentLM = 0
	c.minimaSorted = false
	c.hasOpenPaths = false
}

// Execute clips the subject paths against the clip paths and returns the
// closed and open solution paths. It returns ok false when the engine is
// re-entered while already executing, or when there is nothing to sweep.
func (c *Clipper) Execute(ct ClipType, fr FillRule) (closed, open Paths, ok bool) {
	if !c.executeInternal(ct, fr) {
		return nil, nil, false
	}
	closed, open = c.buildResult()
	c.cleanUp()
	return closed, open, true
}

// ExecuteTree is like Execute but returns the closed solution paths as a
// hierarchical tree recording which rings are holes of which.
func (c *Clipper) ExecuteTree(ct ClipType, fr FillRule) (tree *PolyTree, open Paths, ok bool) {
	if !c.executeInternal(ct, fr) {
		return nil, nil, false
	}
	tree, open = c.buildTree()
	c.cleanUp()
	return tree, open, true
}

// Bounds returns the bounding rectangle of all input paths.
func (c *Clipper) Bounds() Rect64 {
	if len(c.minimaList) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: math.MaxInt64, Top: math.MaxInt64, Right: math.MinInt64, Bottom: math.MinInt64}
	for _, lm := range c.minimaList {
		v := lm.vertex
		v2 := v
		for {
			if v2.pt.X < r.Left {
				r.Left = v2.pt.X
			}
			if v2.pt.X > r.Right {
				r.Right = v2.pt.X
			}
			if v2.pt.Y < r.Top {
				r.Top = v2.pt.Y
			}
			if v2.pt.Y > r.Bottom {
				r.Bottom = v2.pt.Y
			}
			v2 = v2.next
			if v2 == v {
				break
			}
		}
	}
	return r
}

////////////////////////////////////////////////////////////////

// cleanUp releases the transient sweep state but keeps the input vertex rings
// and local minima, so the same inputs can be executed again.
func (c *Clipper) cleanUp() {
	for c.actives != nil {
		c.deleteFromAEL(c.actives)
	}
	c.scanlines = c.scanlines[:0]
	c.outrecList = c.outrecList[:0]
	c.sel = nil
}

func (c *Clipper) reset() {
	if !c.minimaSorted {
		// lowest scanline first: the largest Y under the inverted axis
		slices.SortFunc(c.minimaList, func(a, b *localMinimum) int {
			return cmp.Compare(b.vertex.pt.Y, a.vertex.pt.Y)
		})
		c.minimaSorted = true
	}
	for _, lm := range c.minimaList {
		c.scanlines.Push(lm.vertex.pt.Y)
	}
	c.currentLM = 0
	c.actives = nil
	c.sel = nil
}

// popLocalMinima consumes the next local minimum when its vertex lies on the
// given scanline.
func (c *Clipper) popLocalMinima(y int64) (*localMinimum, bool) {
	if c.currentLM == len(c.minimaList) || c.minimaList[c.currentLM].vertex.pt.Y != y {
		return nil, false
	}
	lm := c.minimaList[c.currentLM]
	c.currentLM++
	return lm, true
}

func (c *Clipper) executeInternal(ct ClipType, fr FillRule) bool {
	if c.locked {
		return false
	}
	c.locked = true
	defer func() { c.locked = false }()
	c.cliptype = ct
	c.fillrule = fr
	c.reset()

	y, ok := c.scanlines.Pop()
	if !ok {
		return false
	}
	for {
		c.insertLocalMinimaIntoAEL(y)
		for e, ok := c.popHorz(); ok; e, ok = c.popHorz() {
			c.processHorizontal(e)
		}
		if y, ok = c.scanlines.Pop(); !ok {
			break // y is now at the top of the scanbeam
		}
		c.processIntersections(y)
		c.sel = nil // the SEL is reused to flag horizontals
		c.doTopOfScanbeam(y)
	}
	return true
}

////////////////////////////////////////////////////////////////

// isContributingClosed reports whether a closed edge, with its winding counts
// just computed, starts a boundary of the solution under the current clip
// type and fill rule.
func (c *Clipper) isContributingClosed(e *active) bool {
	switch c.fillrule {
	case NonZero:
		if abs(e.windCnt) != 1 {
			return false
		}
	case Positive:
		if e.windCnt != 1 {
			return false
		}
	case Negative:
		if e.windCnt != -1 {
			return false
		}
	}

	switch c.cliptype {
	case Intersection:
		switch c.fillrule {
		case Positive:
			return e.windCnt2 > 0
		case Negative:
			return e.windCnt2 < 0
		default:
			return e.windCnt2 != 0
		}
	case Union:
		switch c.fillrule {
		case Positive:
			return e.windCnt2 <= 0
		case Negative:
			return e.windCnt2 >= 0
		default:
			return e.windCnt2 == 0
		}
	case Difference:
		if polyType(e) == Subject {
			switch c.fillrule {
			case Positive:
				return e.windCnt2 <= 0
			case Negative:
				return e.windCnt2 >= 0
			default:
				return e.windCnt2 == 0
			}
		}
		switch c.fillrule {
		case Positive:
			return e.windCnt2 > 0
		case Negative:
			return e.windCnt2 < 0
		default:
			return e.windCnt2 != 0
		}
	case Xor:
		return true // XOR is always contributing unless open
	}
	return false
}

func (c *Clipper) isContributingOpen(e *active) bool {
	switch c.cliptype {
	case Intersection:
		return e.windCnt2 != 0
	case Union:
		return e.windCnt == 0 && e.windCnt2 == 0
	case Difference:
		return e.windCnt2 == 0
	case Xor:
		return (e.windCnt != 0) != (e.windCnt2 != 0)
	}
	return false
}

// setWindingLeftEdgeClosed computes the winding counts for a newly inserted
// closed left bound. Winding counts refer to polygon regions not edges, so an
// edge's windCnt indicates the higher of the two counts of the regions
// touching it. Adjacent region counts only ever differ by one.
func (c *Clipper) setWindingLeftEdgeClosed(e *active) {
	// find the nearest closed edge of the same polytype in the AEL, heading left
	e2 := e.prevInAEL
	pt := polyType(e)
	for e2 != nil && (polyType(e2) != pt || isOpen(e2)) {
		e2 = e2.prevInAEL
	}

	if e2 == nil {
		e.windCnt = e.windDx
		e2 = c.actives
	} else if c.fillrule == EvenOdd {
		e.windCnt = e.windDx
		e.windCnt2 = e2.windCnt2
		e2 = e2.nextInAEL
	} else {
		// NonZero, Positive or Negative filling here.
		// When e2's windCnt is in the same direction as its windDx, e must be
		// inside e2.
		if e2.windCnt*e2.windDx < 0 {
			// opposite directions, so e is outside e2
			if abs(e2.windCnt) > 1 {
				// outside the previous polygon but still inside another
				if e2.windDx*e.windDx < 0 {
					// reversing direction, keep the same count
					e.windCnt = e2.windCnt
				} else {
					e.windCnt = e2.windCnt + e.windDx
				}
			} else if isOpen(e) {
				// now outside all polygons of the same polytype
				e.windCnt = 1
			} else {
				e.windCnt = e.windDx
			}
		} else {
			// e must be inside e2
			if e2.windDx*e.windDx < 0 {
				// reversing direction, keep the same count
				e.windCnt = e2.windCnt
			} else {
				e.windCnt = e2.windCnt + e.windDx
			}
		}
		e.windCnt2 = e2.windCnt2
		e2 = e2.nextInAEL
	}

	// update windCnt2 from the edges of the opposite polytype in between
	if c.fillrule == EvenOdd {
		for e2 != e {
			if polyType(e2) != pt && !isOpen(e2) {
				if e.windCnt2 == 0 {
					e.windCnt2 = 1
				} else {
					e.windCnt2 = 0
				}
			}
			e2 = e2.nextInAEL
		}
	} else {
		for e2 != e {
			if polyType(e2) != pt && !isOpen(e2) {
				e.windCnt2 += e2.windDx
			}
			e2 = e2.nextInAEL
		}
	}
}

func (c *Clipper) setWindingLeftEdgeOpen(e *active) {
	e2 := c.actives
	if c.fillrule == EvenOdd {
		cnt1, cnt2 := 0, 0
		for e2 != e {
			if polyType(e2) == Clip {
				cnt2++
			} else if !isOpen(e2) {
				cnt1++
			}
			e2 = e2.nextInAEL
		}
		if isOdd(cnt1) {
			e.windCnt = 1
		} else {
			e.windCnt = 0
		}
		if isOdd(cnt2) {
			e.windCnt2 = 1
		} else {
			e.windCnt2 = 0
		}
	} else {
		for e2 != e {
			if polyType(e2) == Clip {
				e.windCnt2 += e2.windDx
			} else if !isOpen(e2) {
				e.windCnt += e2.windDx
			}
			e2 = e2.nextInAEL
		}
	}
}

// insertEdgeIntoAEL inserts edge at its ordered position, scanning from
// edgeStart when given. preferLeft keeps a right bound tight against its left
// bound; it relaxes as soon as one edge has been skipped.
func (c *Clipper) insertEdgeIntoAEL(edge, edgeStart *active, preferLeft bool) {
	if c.actives == nil {
		edge.prevInAEL = nil
		edge.nextInAEL = nil
		c.actives = edge
		return
	}
	if edgeStart == nil && e2InsertsBeforeE1(c.actives, edge, preferLeft) {
		edge.prevInAEL = nil
		edge.nextInAEL = c.actives
		c.actives.prevInAEL = edge
		c.actives = edge
		return
	}
	if edgeStart == nil {
		edgeStart = c.actives
	}
	for edgeStart.nextInAEL != nil && !e2InsertsBeforeE1(edgeStart.nextInAEL, edge, preferLeft) {
		edgeStart = edgeStart.nextInAEL
		preferLeft = false // if there's one intervening then allow all
	}
	edge.nextInAEL = edgeStart.nextInAEL
	if edgeStart.nextInAEL != nil {
		edgeStart.nextInAEL.prevInAEL = edge
	}
	edge.prevInAEL = edgeStart
	edgeStart.nextInAEL = edge
}

// insertLocalMinimaIntoAEL drains all local minima at the given scanline and
// inserts their bounds into the AEL, opening output rings for the
// contributing ones.
func (c *Clipper) insertLocalMinimaIntoAEL(botY int64) {
	for {
		localMinima, ok := c.popLocalMinima(botY)
		if !ok {
			break
		}

		var leftBound, rightBound *active
		if localMinima.vertex.flags&vertexOpenStart == 0 {
			leftBound = &active{
				bot:       localMinima.vertex.pt,
				curr:      localMinima.vertex.pt,
				vertexTop: localMinima.vertex.prev, // descending
				windDx:    -1,
				localMin:  localMinima,
			}
			leftBound.top = leftBound.vertexTop.pt
			setDx(leftBound)
		}
		if localMinima.vertex.flags&vertexOpenEnd == 0 {
			rightBound = &active{
				bot:       localMinima.vertex.pt,
				curr:      localMinima.vertex.pt,
				vertexTop: localMinima.vertex.next, // ascending
				windDx:    1,
				localMin:  localMinima,
			}
			rightBound.top = rightBound.vertexTop.pt
			setDx(rightBound)
		}

		// leftBound is so far just the descending bound and rightBound the
		// ascending one; swap them whenever the descending bound isn't on the left
		if leftBound != nil && rightBound != nil {
			if isHorizontal(leftBound) && leftBound.top.X > leftBound.bot.X ||
				!isHorizontal(leftBound) && leftBound.dx < rightBound.dx {
				leftBound, rightBound = rightBound, leftBound
			}
		} else if leftBound == nil {
			leftBound = rightBound
			rightBound = nil
		}

		var contributing bool
		c.insertEdgeIntoAEL(leftBound, nil, false)
		if isOpen(leftBound) {
			c.setWindingLeftEdgeOpen(leftBound)
			contributing = c.isContributingOpen(leftBound)
		} else {
			c.setWindingLeftEdgeClosed(leftBound)
			contributing = c.isContributingClosed(leftBound)
		}

		if rightBound != nil {
			rightBound.windCnt = leftBound.windCnt
			rightBound.windCnt2 = leftBound.windCnt2
			c.insertEdgeIntoAEL(rightBound, leftBound, false)
			if contributing {
				c.addLocalMinPoly(leftBound, rightBound, leftBound.bot)
			}
			if isHorizontal(rightBound) {
				c.pushHorz(rightBound)
			} else {
				c.scanlines.Push(rightBound.top.Y)
			}
		} else if contributing {
			c.startOpenPath(leftBound, leftBound.bot)
		}

		if isHorizontal(leftBound) {
			c.pushHorz(leftBound)
		} else {
			c.scanlines.Push(leftBound.top.Y)
		}

		if rightBound != nil && leftBound.nextInAEL != rightBound {
			// intersect any edges that sit between the left and right bounds;
			// intersectEdges assumes rightBound is to the right of e above the
			// intersection, which holds for winding-count purposes here
			e := leftBound.nextInAEL
			for e != rightBound {
				c.intersectEdges(rightBound, e, rightBound.bot)
				e = e.nextInAEL
			}
		}
	}
}

func (c *Clipper) pushHorz(e *active) {
	e.nextInSEL = c.sel
	c.sel = e
}

func (c *Clipper) popHorz() (*active, bool) {
	e := c.sel
	if e == nil {
		return nil, false
	}
	c.sel = c.sel.nextInSEL
	return e, true
}

// getOwner finds the output ring enclosing a ring created at e, by scanning
// the AEL for the nearest hot closed edge. Whether that edge's own ring or
// its owner encloses us depends on which side of its ring the edge is.
func (c *Clipper) getOwner(e *active) *outRec {
	if isHorizontal(e) && e.top.X < e.bot.X {
		e = e.nextInAEL
		for e != nil && (!isHotEdge(e) || isOpen(e)) {
			e = e.nextInAEL
		}
		if e == nil {
			return nil
		}
		if e.outrec.outer == (e.outrec.startEdge == e) {
			return e.outrec.owner
		}
		return e.outrec
	}
	e = e.prevInAEL
	for e != nil && (!isHotEdge(e) || isOpen(e)) {
		e = e.prevInAEL
	}
	if e == nil {
		return nil
	}
	if e.outrec.outer == (e.outrec.endEdge == e) {
		return e.outrec.owner
	}
	return e.outrec
}

// addLocalMinPoly opens a new output ring where two edges meet at a local
// minimum.
func (c *Clipper) addLocalMinPoly(e1, e2 *active, pt Point64) {
	outrec := &outRec{idx: len(c.outrecList)}
	c.outrecList = append(c.outrecList, outrec)
	outrec.owner = c.getOwner(e1)
	outrec.outer = outrec.owner == nil || !outrec.owner.outer
	if isOpen(e1) {
		outrec.open = true
	}

	// now set the orientation: the side assignment must match whether the ring
	// wraps clockwise in world coordinates
	if isHorizontal(e1) {
		if isHorizontal(e2) {
			if outrec.outer == (e1.bot.X > e2.bot.X) {
				setOutrecClockwise(outrec, e1, e2)
			} else {
				setOutrecCounterClockwise(outrec, e1, e2)
			}
		} else if outrec.outer == (e1.top.X < e1.bot.X) {
			setOutrecClockwise(outrec, e1, e2)
		} else {
			setOutrecCounterClockwise(outrec, e1, e2)
		}
	} else if isHorizontal(e2) {
		if outrec.outer == (e2.top.X > e2.bot.X) {
			setOutrecClockwise(outrec, e1, e2)
		} else {
			setOutrecCounterClockwise(outrec, e1, e2)
		}
	} else if outrec.outer == (e1.dx >= e2.dx) {
		setOutrecClockwise(outrec, e1, e2)
	} else {
		setOutrecCounterClockwise(outrec, e1, e2)
	}

	op := &outPt{pt: pt}
	op.next = op
	op.prev = op
	outrec.pts = op
}

// addLocalMaxPoly closes an output ring where two edges meet at a local
// maximum, or joins two rings when the edges belong to different ones.
func (c *Clipper) addLocalMaxPoly(e1, e2 *active, pt Point64) {
	if !isHotEdge(e2) {
		panic("bug: addLocalMaxPoly with a cold edge")
	}
	c.addOutPt(e1, pt)
	if e1.outrec == e2.outrec {
		endOutrec(e1.outrec)
	} else if e1.outrec.idx < e2.outrec.idx {
		// join into the lower index to preserve the winding orientation
		c.joinOutrecPaths(e1, e2)
	} else {
		c.joinOutrecPaths(e2, e1)
	}
}

// joinOutrecPaths splices e2's ring onto e1's and empties e2's ring. Only very
// rarely do the joining ends share the same coordinates.
func (c *Clipper) joinOutrecPaths(e1, e2 *active) {
	p1St := e1.outrec.pts
	p2St := e2.outrec.pts
	p1End := p1St.prev
	p2End := p2St.prev
	if isStartSide(e1) {
		if isStartSide(e2) {
			reversePolyPtLinks(p2St)
			p2St.next = p1St
			p1St.prev = p2St
			p1End.next = p2End // p2 is now reversed
			p2End.prev = p1End
			e1.outrec.pts = p2End
			e1.outrec.startEdge = e2.outrec.endEdge
		} else {
			p2End.next = p1St
			p1St.prev = p2End
			p2St.prev = p1End
			p1End.next = p2St
			e1.outrec.pts = p2St
			e1.outrec.startEdge = e2.outrec.startEdge
		}
		if e1.outrec.startEdge != nil { // ie a closed path
			e1.outrec.startEdge.outrec = e1.outrec
		}
	} else {
		if isStartSide(e2) {
			p1End.next = p2St
			p2St.prev = p1End
			p1St.prev = p2End
			p2End.next = p1St
			e1.outrec.endEdge = e2.outrec.endEdge
		} else {
			reversePolyPtLinks(p2St)
			p1End.next = p2End // p2 is now reversed
			p2End.prev = p1End
			p2St.next = p1St
			p1St.prev = p2St
			e1.outrec.endEdge = e2.outrec.startEdge
		}
		if e1.outrec.endEdge != nil { // ie a closed path
			e1.outrec.endEdge.outrec = e1.outrec
		}
	}

	if e1.outrec.owner == e2.outrec {
		panic("bug: ring ownership cycle in joinOutrecPaths")
	}

	// after joining, e2's ring contains no vertices
	e2.outrec.startEdge = nil
	e2.outrec.endEdge = nil
	e2.outrec.pts = nil
	e2.outrec.owner = e1.outrec

	// e1 and e2 are maxima and are about to be dropped from the AEL
	e1.outrec = nil
	e2.outrec = nil
}

// terminateHotOpen releases the edge from its single-sided open ring.
func (c *Clipper) terminateHotOpen(e *active) {
	if e.outrec.startEdge == e {
		e.outrec.startEdge = nil
	} else {
		e.outrec.endEdge = nil
	}
	e.outrec = nil
}

// addOutPt appends pt to the ring on the side that corresponds to e: before
// the head for the start edge, after the tail for the end edge. A duplicate of
// the point already at that side is suppressed.
func (c *Clipper) addOutPt(e *active, pt Point64) {
	toStart := isStartSide(e)
	startOp := e.outrec.pts
	endOp := startOp.prev
	if toStart {
		if pt == startOp.pt {
			return
		}
	} else if pt == endOp.pt {
		return
	}

	newOp := &outPt{pt: pt, next: startOp, prev: endOp}
	endOp.next = newOp
	startOp.prev = newOp
	if toStart {
		e.outrec.pts = newOp
	}
}

// startOpenPath opens a single-sided ring for an open path edge.
func (c *Clipper) startOpenPath(e *active, pt Point64) {
	outrec := &outRec{idx: len(c.outrecList), open: true}
	c.outrecList = append(c.outrecList, outrec)
	e.outrec = outrec

	op := &outPt{pt: pt}
	op.next = op
	op.prev = op
	outrec.pts = op
}

// updateEdgeIntoAEL promotes an edge to the next segment of its bound.
func (c *Clipper) updateEdgeIntoAEL(e *active) {
	e.bot = e.top
	e.vertexTop = nextVertex(e)
	e.top = e.vertexTop.pt
	e.curr = e.bot
	setDx(e)
	if !isHorizontal(e) {
		c.scanlines.Push(e.top.Y)
	}
}

// intersectEdges is called for every pair of edges crossing at pt, with e1
// assumed to be to the right of e2 above the intersection. It transfers the
// winding counts across the crossing and starts, extends, swaps, joins or
// closes output rings according to the contribution of each edge.
func (c *Clipper) intersectEdges(e1, e2 *active, pt Point64) {
	e1.curr = pt
	e2.curr = pt

	// if either edge is an open path
	if c.hasOpenPaths && (isOpen(e1) || isOpen(e2)) {
		if isOpen(e1) && isOpen(e2) {
			return // ignore lines that intersect
		}
		if isOpen(e2) {
			e1, e2 = e2, e1
		}
		switch c.cliptype {
		case Intersection, Difference:
			if isSamePolyType(e1, e2) || abs(e2.windCnt) != 1 {
				return
			}
		case Union:
			if isHotEdge(e1) != (abs(e2.windCnt) != 1 || isHotEdge(e1) != (e2.windCnt != 0)) {
				return // just works!
			}
		case Xor:
			if abs(e2.windCnt) != 1 {
				return
			}
		}
		// toggle the contribution
		if isHotEdge(e1) {
			c.addOutPt(e1, pt)
			c.terminateHotOpen(e1)
		} else {
			c.startOpenPath(e1, pt)
		}
		return
	}

	// update the winding counts; adjacent counts differ by at most one
	var oldE1WindCnt, oldE2WindCnt int
	if e1.localMin.polytype == e2.localMin.polytype {
		if c.fillrule == EvenOdd {
			e1.windCnt, e2.windCnt = e2.windCnt, e1.windCnt
		} else {
			if e1.windCnt+e2.windDx == 0 {
				e1.windCnt = -e1.windCnt
			} else {
				e1.windCnt += e2.windDx
			}
			if e2.windCnt-e1.windDx == 0 {
				e2.windCnt = -e2.windCnt
			} else {
				e2.windCnt -= e1.windDx
			}
		}
	} else {
		if c.fillrule != EvenOdd {
			e1.windCnt2 += e2.windDx
		} else if e1.windCnt2 == 0 {
			e1.windCnt2 = 1
		} else {
			e1.windCnt2 = 0
		}
		if c.fillrule != EvenOdd {
			e2.windCnt2 -= e1.windDx
		} else if e2.windCnt2 == 0 {
			e2.windCnt2 = 1
		} else {
			e2.windCnt2 = 0
		}
	}

	switch c.fillrule {
	case Positive:
		oldE1WindCnt = e1.windCnt
		oldE2WindCnt = e2.windCnt
	case Negative:
		oldE1WindCnt = -e1.windCnt
		oldE2WindCnt = -e2.windCnt
	default:
		oldE1WindCnt = abs(e1.windCnt)
		oldE2WindCnt = abs(e2.windCnt)
	}

	if isHotEdge(e1) && isHotEdge(e2) {
		if oldE1WindCnt != 0 && oldE1WindCnt != 1 || oldE2WindCnt != 0 && oldE2WindCnt != 1 ||
			e1.localMin.polytype != e2.localMin.polytype && c.cliptype != Xor {
			c.addLocalMaxPoly(e1, e2, pt)
		} else if e1.outrec == e2.outrec {
			// the ring touches itself, split it and reopen
			c.addLocalMaxPoly(e1, e2, pt)
			c.addLocalMinPoly(e1, e2, pt)
		} else {
			c.addOutPt(e1, pt)
			c.addOutPt(e2, pt)
			swapOutrecs(e1, e2)
		}
	} else if isHotEdge(e1) {
		if oldE2WindCnt == 0 || oldE2WindCnt == 1 {
			c.addOutPt(e1, pt)
			swapOutrecs(e1, e2)
		}
	} else if isHotEdge(e2) {
		if oldE1WindCnt == 0 || oldE1WindCnt == 1 {
			c.addOutPt(e2, pt)
			swapOutrecs(e1, e2)
		}
	} else if (oldE1WindCnt == 0 || oldE1WindCnt == 1) && (oldE2WindCnt == 0 || oldE2WindCnt == 1) {
		// neither edge is currently contributing
		var e1Wc2, e2Wc2 int
		switch c.fillrule {
		case Positive:
			e1Wc2 = e1.windCnt2
			e2Wc2 = e2.windCnt2
		case Negative:
			e1Wc2 = -e1.windCnt2
			e2Wc2 = -e2.windCnt2
		default:
			e1Wc2 = abs(e1.windCnt2)
			e2Wc2 = abs(e2.windCnt2)
		}

		if e1.localMin.polytype != e2.localMin.polytype {
			c.addLocalMinPoly(e1, e2, pt)
		} else if oldE1WindCnt == 1 && oldE2WindCnt == 1 {
			switch c.cliptype {
			case Intersection:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Union:
				if e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Difference:
				if polyType(e1) == Clip && e1Wc2 > 0 && e2Wc2 > 0 ||
					polyType(e1) == Subject && e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Xor:
				c.addLocalMinPoly(e1, e2, pt)
			}
		}
	}
}

func (c *Clipper) deleteFromAEL(e *active) {
	prev := e.prevInAEL
	next := e.nextInAEL
	if prev == nil && next == nil && e != c.actives {
		return // already deleted
	}
	if prev != nil {
		prev.nextInAEL = next
	} else {
		c.actives = next
	}
	if next != nil {
		next.prevInAEL = prev
	}
	e.prevInAEL = nil
	e.nextInAEL = nil
}

func (c *Clipper) copyAELToSEL() {
	e := c.actives
	c.sel = e
	for e != nil {
		e.prevInSEL = e.prevInAEL
		e.nextInSEL = e.nextInAEL
		e = e.nextInAEL
	}
}

////////////////////////////////////////////////////////////////

func (c *Clipper) processIntersections(topY int64) {
	c.buildIntersectList(topY)
	if len(c.intersects) == 0 {
		return
	}
	c.fixupIntersectionOrder()
	c.processIntersectList()
}

// insertNewIntersectNode records the crossing of e1 and e2. Rounding can
// occasionally place the calculated intersection point below or above the
// scanbeam, so the point is clamped back in and its X rederived.
func (c *Clipper) insertNewIntersectNode(e1, e2 *active, topY int64) {
	pt := intersectPoint(e1, e2)

	if pt.Y > e1.curr.Y {
		pt.Y = e1.curr.Y // e1.curr.Y is still the bottom of the scanbeam
		// use the more vertical of the two edges to derive X
		if absFloat(e1.dx) < absFloat(e2.dx) {
			pt.X = topX(e1, pt.Y)
		} else {
			pt.X = topX(e2, pt.Y)
		}
	} else if pt.Y < topY {
		pt.Y = topY // topY is the top of the scanbeam
		if e1.top.Y == topY {
			pt.X = e1.top.X
		} else if e2.top.Y == topY {
			pt.X = e2.top.X
		} else if absFloat(e1.dx) < absFloat(e2.dx) {
			pt.X = e1.curr.X
		} else {
			pt.X = e2.curr.X
		}
	}

	c.intersects = append(c.intersects, &intersectNode{pt: pt, edge1: e1, edge2: e2})
}

// buildIntersectList snapshots the AEL into the SEL with each edge's X
// advanced to the top of the scanbeam, then merge sorts the SEL into its new
// order, emitting an intersection node for every pair of edges that swaps.
func (c *Clipper) buildIntersectList(topY int64) {
	if c.actives == nil || c.actives.nextInAEL == nil {
		return
	}

	// copy the AEL to the SEL while adjusting curr.X
	c.sel = c.actives
	e := c.actives
	for e != nil {
		e.prevInSEL = e.prevInAEL
		e.nextInSEL = e.nextInAEL
		e.curr.X = topX(e, topY)
		e = e.nextInAEL
	}

	// bottom-up merge sort, with mergeJump striding over the sorted sublists;
	// each out-of-place edge emits one intersection node per edge it jumps over
	mul := 1
	for {
		first, second := c.sel, (*active)(nil)
		var prevBase *active
		for first != nil {
			if mul == 1 {
				second = first.nextInSEL
				if second == nil {
					break
				}
				first.mergeJump = second.nextInSEL
			} else {
				second = first.mergeJump
				if second == nil {
					break
				}
				first.mergeJump = second.mergeJump
			}

			// sort the first and second groups
			baseE := first
			lCnt, rCnt := mul, mul
			for lCnt > 0 && rCnt > 0 {
				if second.curr.X < first.curr.X {
					tmp := second.prevInSEL
					for i := 0; i < lCnt; i++ {
						c.insertNewIntersectNode(tmp, second, topY)
						tmp = tmp.prevInSEL
					}

					if first == baseE {
						if prevBase != nil {
							prevBase.mergeJump = second
						}
						baseE = second
						baseE.mergeJump = first.mergeJump
						if first.prevInSEL == nil {
							c.sel = second
						}
					}
					tmp = second.nextInSEL
					// move the out of place edge to its new position in the SEL
					insert2Before1InSEL(first, second)
					second = tmp
					if second == nil {
						break
					}
					rCnt--
				} else {
					first = first.nextInSEL
					lCnt--
				}
			}
			first = baseE.mergeJump
			prevBase = baseE
		}
		if c.sel.mergeJump == nil {
			break
		}
		mul <<= 1
	}
}

func (c *Clipper) processIntersectList() {
	for _, node := range c.intersects {
		c.intersectEdges(node.edge1, node.edge2, node.pt)
		c.swapPositionsInAEL(node.edge1, node.edge2)
	}
	c.intersects = c.intersects[:0]
}

// fixupIntersectionOrder sorts the intersections bottom-up, and then ensures
// each one is applied between AEL-adjacent edges by swapping nodes forward
// until the adjacency holds in the SEL snapshot. Fewer than three
// intersections are left in the order buildIntersectList emitted them.
func (c *Clipper) fixupIntersectionOrder() {
	if len(c.intersects) < 3 {
		return
	}
	c.copyAELToSEL()
	slices.SortFunc(c.intersects, func(a, b *intersectNode) int {
		return cmp.Compare(b.pt.Y, a.pt.Y)
	})
	for i := range c.intersects {
		if !edgesAdjacentInSEL(c.intersects[i]) {
			j := i + 1
			for !edgesAdjacentInSEL(c.intersects[j]) {
				j++
			}
			c.intersects[i], c.intersects[j] = c.intersects[j], c.intersects[i]
		}
		swapPositionsInSEL(c.intersects[i].edge1, c.intersects[i].edge2)
	}
}

// swapPositionsInAEL exchanges the positions of two edges, covering the
// adjacent-forward, adjacent-reverse and non-adjacent cases.
func (c *Clipper) swapPositionsInAEL(e1, e2 *active) {
	// check that neither edge has already been removed from the AEL
	if e1.nextInAEL == e1.prevInAEL || e2.nextInAEL == e2.prevInAEL {
		return
	}

	if e1.nextInAEL == e2 {
		next := e2.nextInAEL
		if next != nil {
			next.prevInAEL = e1
		}
		prev := e1.prevInAEL
		if prev != nil {
			prev.nextInAEL = e2
		}
		e2.prevInAEL = prev
		e2.nextInAEL = e1
		e1.prevInAEL = e2
		e1.nextInAEL = next
	} else if e2.nextInAEL == e1 {
		next := e1.nextInAEL
		if next != nil {
			next.prevInAEL = e2
		}
		prev := e2.prevInAEL
		if prev != nil {
			prev.nextInAEL = e1
		}
		e1.prevInAEL = prev
		e1.nextInAEL = e2
		e2.prevInAEL = e1
		e2.nextInAEL = next
	} else {
		next := e1.nextInAEL
		prev := e1.prevInAEL
		e1.nextInAEL = e2.nextInAEL
		if e1.nextInAEL != nil {
			e1.nextInAEL.prevInAEL = e1
		}
		e1.prevInAEL = e2.prevInAEL
		if e1.prevInAEL != nil {
			e1.prevInAEL.nextInAEL = e1
		}
		e2.nextInAEL = next
		if e2.nextInAEL != nil {
			e2.nextInAEL.prevInAEL = e2
		}
		e2.prevInAEL = prev
		if e2.prevInAEL != nil {
			e2.prevInAEL.nextInAEL = e2
		}
	}

	if e1.prevInAEL == nil {
		c.actives = e1
	} else if e2.prevInAEL == nil {
		c.actives = e2
	}
}

func swapPositionsInSEL(e1, e2 *active) {
	if e1.nextInSEL == nil && e1.prevInSEL == nil {
		return
	}
	if e2.nextInSEL == nil && e2.prevInSEL == nil {
		return
	}

	if e1.nextInSEL == e2 {
		next := e2.nextInSEL
		if next != nil {
			next.prevInSEL = e1
		}
		prev := e1.prevInSEL
		if prev != nil {
			prev.nextInSEL = e2
		}
		e2.prevInSEL = prev
		e2.nextInSEL = e1
		e1.prevInSEL = e2
		e1.nextInSEL = next
	} else if e2.nextInSEL == e1 {
		next := e1.nextInSEL
		if next != nil {
			next.prevInSEL = e2
		}
		prev := e2.prevInSEL
		if prev != nil {
			prev.nextInSEL = e1
		}
		e1.prevInSEL = prev
		e1.nextInSEL = e2
		e2.prevInSEL = e1
		e2.nextInSEL = next
	} else {
		next := e1.nextInSEL
		prev := e1.prevInSEL
		e1.nextInSEL = e2.nextInSEL
		if e1.nextInSEL != nil {
			e1.nextInSEL.prevInSEL = e1
		}
		e1.prevInSEL = e2.prevInSEL
		if e1.prevInSEL != nil {
			e1.prevInSEL.nextInSEL = e1
		}
		e2.nextInSEL = next
		if e2.nextInSEL != nil {
			e2.nextInSEL.prevInSEL = e2
		}
		e2.prevInSEL = prev
		if e2.prevInSEL != nil {
			e2.prevInSEL.nextInSEL = e2
		}
	}
}

func insert2Before1InSEL(first, second *active) {
	// remove second from the list; there is always a prev since we move from
	// right to left
	prev := second.prevInSEL
	next := second.nextInSEL
	prev.nextInSEL = next
	if next != nil {
		next.prevInSEL = prev
	}
	// insert it back in front of first
	prev = first.prevInSEL
	if prev != nil {
		prev.nextInSEL = second
	}
	first.prevInSEL = second
	second.prevInSEL = prev
	second.nextInSEL = first
}

////////////////////////////////////////////////////////////////

// resetHorzDirection computes the X range of a horizontal edge and reports
// whether the sweep along it proceeds left to right.
func resetHorzDirection(horz, maxPair *active) (horzLeft, horzRight int64, leftToRight bool) {
	if horz.bot.X == horz.top.X {
		// the horizontal edge is going nowhere
		horzLeft = horz.curr.X
		horzRight = horz.curr.X
		e := horz.nextInAEL
		for e != nil && e != maxPair {
			e = e.nextInAEL
		}
		return horzLeft, horzRight, e != nil
	} else if horz.curr.X < horz.top.X {
		return horz.curr.X, horz.top.X, true
	}
	return horz.top.X, horz.curr.X, false
}

// processHorizontal sweeps a horizontal edge through the AEL. Horizontal
// edges at a scanline are processed as if layered, so the order in which they
// are processed doesn't matter. They intersect the bottom vertices of other
// horizontals and any non-horizontal edges in their X range; intermediate
// horizontals are then promoted to the next edge of their bound.
func (c *Clipper) processHorizontal(horz *active) {
	var pt Point64
	// with closed paths, simplify consecutive horizontals into a single edge
	if !isOpen(horz) {
		pt = horz.bot
		for !isMaxima(horz) && nextVertex(horz).pt.Y == pt.Y {
			c.updateEdgeIntoAEL(horz)
		}
		horz.bot = pt
		horz.curr = pt
	}

	var maxPair *active
	if isMaxima(horz) && (!isOpen(horz) || horz.vertexTop.flags&(vertexOpenStart|vertexOpenEnd) == 0) {
		maxPair = maximaPair(horz)
	}

	horzLeft, horzRight, leftToRight := resetHorzDirection(horz, maxPair)
	if isHotEdge(horz) {
		c.addOutPt(horz, horz.curr)
	}

	for { // loop through consecutive horizontal edges (if open)
		var e *active
		isMax := isMaxima(horz)
		if leftToRight {
			e = horz.nextInAEL
		} else {
			e = horz.prevInAEL
		}

		for e != nil {
			// break when we've gone past the end of the horizontal,
			if leftToRight && e.curr.X > horzRight || !leftToRight && e.curr.X < horzLeft {
				break
			}
			// or when we've reached the end of an intermediate horizontal edge
			// and the next segment of the bound blocks this direction
			if e.curr.X == horz.top.X && !isMax && !isHorizontal(e) {
				pt = nextVertex(horz).pt
				if leftToRight && topX(e, pt.Y) >= pt.X || !leftToRight && topX(e, pt.Y) <= pt.X {
					break
				}
			}

			if e == maxPair {
				if isHotEdge(horz) {
					c.addLocalMaxPoly(horz, e, horz.top)
				}
				c.deleteFromAEL(e)
				c.deleteFromAEL(horz)
				return
			}

			pt = Point64{e.curr.X, horz.curr.Y}
			if leftToRight {
				c.intersectEdges(horz, e, pt)
			} else {
				c.intersectEdges(e, horz, pt)
			}

			var nextE *active
			if leftToRight {
				nextE = e.nextInAEL
			} else {
				nextE = e.prevInAEL
			}
			c.swapPositionsInAEL(horz, e)
			e = nextE
		}

		// check whether we've finished with (consecutive) horizontals
		if isMax || nextVertex(horz).pt.Y != horz.top.Y {
			break
		}

		// still more horizontals in this bound to process
		c.updateEdgeIntoAEL(horz)
		horzLeft, horzRight, leftToRight = resetHorzDirection(horz, maxPair)

		if isOpen(horz) {
			if isMaxima(horz) {
				maxPair = maximaPair(horz)
			}
			if isHotEdge(horz) {
				c.addOutPt(horz, horz.bot)
			}
		}
	}

	if isHotEdge(horz) {
		c.addOutPt(horz, horz.top)
	}
	if !isOpen(horz) {
		c.updateEdgeIntoAEL(horz) // this is the end of an intermediate horizontal
	} else if !isMaxima(horz) {
		c.updateEdgeIntoAEL(horz)
	} else if maxPair == nil { // ie open at top
		c.deleteFromAEL(horz)
	} else if isHotEdge(horz) {
		c.addLocalMaxPoly(horz, maxPair, horz.top)
	} else {
		c.deleteFromAEL(maxPair)
		c.deleteFromAEL(horz)
	}
}

// doTopOfScanbeam advances every edge to the new scanline: maxima close their
// bounds, intermediate vertices promote their edges, and all other edges just
// update their current position.
func (c *Clipper) doTopOfScanbeam(y int64) {
	e := c.actives
	for e != nil {
		// nb: e will never be horizontal here
		if e.top.Y == y {
			e.curr = e.top // needed for horizontal processing
			if isMaxima(e) {
				e = c.doMaxima(e) // top of bound (maxima)
				continue
			}
			// intermediate vertex
			c.updateEdgeIntoAEL(e)
			if isHotEdge(e) {
				c.addOutPt(e, e.bot)
			}
			if isHorizontal(e) {
				c.pushHorz(e) // horizontals are processed later
			}
		} else {
			e.curr.Y = y
			e.curr.X = topX(e, y)
		}
		e = e.nextInAEL
	}
}

// doMaxima closes the two bounds meeting at e's top vertex, first resolving
// any edges that sit between the maxima pair. It returns the edge at which to
// resume the AEL walk, stable under the deletions.
func (c *Clipper) doMaxima(e *active) *active {
	prevE := e.prevInAEL
	nextE := e.nextInAEL
	if isOpen(e) && e.vertexTop.flags&(vertexOpenStart|vertexOpenEnd) != 0 {
		if isHotEdge(e) {
			c.addOutPt(e, e.top)
		}
		if !isHorizontal(e) {
			if isHotEdge(e) {
				c.terminateHotOpen(e)
			}
			c.deleteFromAEL(e)
		}
		return nextE
	}
	maxPair := maximaPair(e)
	if maxPair == nil {
		return nextE // the maxima pair is horizontal
	}

	// only non-horizontal maxima here; process any edges between the pair
	for nextE != maxPair {
		c.intersectEdges(e, nextE, e.top)
		c.swapPositionsInAEL(e, nextE)
		nextE = e.nextInAEL
	}

	if isOpen(e) {
		if isHotEdge(e) {
			if maxPair != nil {
				c.addLocalMaxPoly(e, maxPair, e.top)
			} else {
				c.addOutPt(e, e.top)
			}
		}
		if maxPair != nil {
			c.deleteFromAEL(maxPair)
		}
		c.deleteFromAEL(e)
		if prevE != nil {
			return prevE.nextInAEL
		}
		return c.actives
	}

	// here e.nextInAEL == maxPair
	if isHotEdge(e) {
		c.addLocalMaxPoly(e, maxPair, e.top)
	}
	c.deleteFromAEL(e)
	c.deleteFromAEL(maxPair)
	if prevE != nil {
		return prevE.nextInAEL
	}
	return c.actives
}

////////////////////////////////////////////////////////////////

// buildResult extracts the solution paths from the output rings. The ring
// lists are traversed backwards; the duplicate point between tail and head is
// dropped, as are rings that are too small to be meaningful.
func (c *Clipper) buildResult() (closed, open Paths) {
	closed = make(Paths, 0, len(c.outrecList))
	open = Paths{}
	for _, outrec := range c.outrecList {
		if outrec.pts == nil {
			continue
		}
		op := outrec.pts.prev
		cnt := pointCount(op)
		// fixup for duplicate start and end points
		if op.pt == outrec.pts.pt {
			cnt--
		}
		if cnt < 2 || !outrec.open && cnt == 2 {
			continue
		}
		p := make(Path, 0, cnt)
		for i := 0; i < cnt; i++ {
			p = append(p, op.pt)
			op = op.prev
		}
		if outrec.open {
			open = append(open, p)
		} else {
			closed = append(closed, p)
		}
	}
	return closed, open
}

// buildTree is like buildResult but attaches each closed ring to the tree
// node of its owner, recording the outer/hole hierarchy.
func (c *Clipper) buildTree() (*PolyTree, Paths) {
	tree := &PolyTree{}
	open := Paths{}
	for _, outrec := range c.outrecList {
		if outrec.pts == nil {
			continue
		}
		op := outrec.pts.prev
		cnt := pointCount(op)
		// fixup for duplicate start and end points
		if op.pt == outrec.pts.pt {
			cnt--
		}
		if cnt < 2 || !outrec.open && cnt == 2 {
			continue
		}
		p := make(Path, 0, cnt)
		for i := 0; i < cnt; i++ {
			p = append(p, op.pt)
			op = op.prev
		}
		if outrec.open {
			open = append(open, p)
		} else if outrec.owner != nil && outrec.owner.polypath != nil {
			outrec.polypath = outrec.owner.polypath.addChild(p)
		} else {
			outrec.polypath = tree.addChild(p)
		}
	}
	return tree, open
}
