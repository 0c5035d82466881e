package polyclipping

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

// ringArea returns the signed area of a ring via the shoelace formula. Holes
// have the opposite orientation of their outer ring, so signed areas cancel.
func ringArea(p Path) float64 {
	var a2 int64
	for i, pt := range p {
		q := p[(i+1)%len(p)]
		a2 += pt.X*q.Y - q.X*pt.Y
	}
	return float64(a2) / 2.0
}

// totalArea returns the net filled area of a solution.
func totalArea(ps Paths) float64 {
	var a float64
	for _, p := range ps {
		a += ringArea(p)
	}
	if a < 0.0 {
		a = -a
	}
	return a
}

func pathLess(a, b Path) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].X < b[i].X || a[i].X == b[i].X && a[i].Y < b[i].Y
		}
	}
	return len(a) < len(b)
}

func rotateMin(p Path) Path {
	k := 0
	for i, pt := range p {
		if pt.X < p[k].X || pt.X == p[k].X && pt.Y < p[k].Y {
			k = i
		}
	}
	q := make(Path, 0, len(p))
	q = append(q, p[k:]...)
	q = append(q, p[:k]...)
	return q
}

// canonicalRing normalizes a closed ring so that rotation and orientation
// don't matter when comparing.
func canonicalRing(p Path) Path {
	if len(p) == 0 {
		return p
	}
	rev := make(Path, len(p))
	for i, pt := range p {
		rev[len(p)-1-i] = pt
	}
	fwd := rotateMin(p)
	rev = rotateMin(rev)
	if pathLess(rev, fwd) {
		return rev
	}
	return fwd
}

// canonicalOpen normalizes an open path so that direction doesn't matter.
func canonicalOpen(p Path) Path {
	if len(p) == 0 {
		return p
	}
	rev := make(Path, len(p))
	for i, pt := range p {
		rev[len(p)-1-i] = pt
	}
	if pathLess(rev, p) {
		return rev
	}
	return p
}

func canonicalPaths(ps Paths, open bool) string {
	qs := make([]string, 0, len(ps))
	for _, p := range ps {
		if open {
			qs = append(qs, canonicalOpen(p).String())
		} else {
			qs = append(qs, canonicalRing(p).String())
		}
	}
	slices.Sort(qs)
	return strings.Join(qs, "\n")
}

// checkRings asserts the structural output invariants: closed rings have at
// least three distinct vertices, open paths at least two, and consecutive
// vertices are never equal.
func checkRings(t *testing.T, closed, open Paths) {
	t.Helper()
	for _, p := range closed {
		test.That(t, 3 <= len(p), "closed ring has at least 3 vertices:", p)
		for i, pt := range p {
			test.That(t, pt != p[(i+1)%len(p)], "consecutive vertices differ:", p)
		}
	}
	for _, p := range open {
		test.That(t, 2 <= len(p), "open path has at least 2 vertices:", p)
		for i := 1; i < len(p); i++ {
			test.That(t, p[i] != p[i-1], "consecutive vertices differ:", p)
		}
	}
}

var testSubject = Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
var testClip = Path{{5, 5}, {15, 5}, {15, 15}, {5, 15}}

func TestClipTwoSquares(t *testing.T) {
	var tts = []struct {
		ct   ClipType
		want Paths
	}{
		{Intersection, Paths{{{5, 5}, {10, 5}, {10, 10}, {5, 10}}}},
		{Union, Paths{{{0, 0}, {10, 0}, {10, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 10}, {0, 10}}}},
		{Difference, Paths{{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.ct), func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPath(testSubject, Subject, false))
			test.Error(t, c.AddPath(testClip, Clip, false))
			closed, open, ok := c.Execute(tt.ct, EvenOdd)
			test.That(t, ok)
			test.T(t, len(open), 0)
			checkRings(t, closed, open)
			test.T(t, canonicalPaths(closed, false), canonicalPaths(tt.want, false))
		})
	}
}

func TestClipTwoSquaresXor(t *testing.T) {
	c := &Clipper{}
	test.Error(t, c.AddPath(testSubject, Subject, false))
	test.Error(t, c.AddPath(testClip, Clip, false))
	closed, open, ok := c.Execute(Xor, EvenOdd)
	test.That(t, ok)
	test.T(t, len(open), 0)
	test.T(t, len(closed), 2)
	// the xor covers the union minus the intersection
	test.Float(t, totalArea(closed), 150.0)
}

func TestClipSelf(t *testing.T) {
	var tts = []struct {
		ct   ClipType
		area float64
	}{
		{Intersection, 100.0},
		{Union, 100.0},
		{Difference, 0.0},
		{Xor, 0.0},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.ct), func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPath(testSubject, Subject, false))
			test.Error(t, c.AddPath(testSubject, Clip, false))
			closed, _, ok := c.Execute(tt.ct, EvenOdd)
			test.That(t, ok)
			test.Float(t, totalArea(closed), tt.area)
		})
	}
}

func TestClipUnionIdempotent(t *testing.T) {
	c := &Clipper{}
	test.Error(t, c.AddPath(testSubject, Subject, false))
	test.Error(t, c.AddPath(testClip, Clip, false))
	closed, _, ok := c.Execute(Union, EvenOdd)
	test.That(t, ok)
	test.Float(t, totalArea(closed), 175.0)

	// the union of a union with itself must not change it
	c2 := &Clipper{}
	test.Error(t, c2.AddPaths(closed, Subject, false))
	closed2, _, ok := c2.Execute(Union, EvenOdd)
	test.That(t, ok)
	test.T(t, canonicalPaths(closed2, false), canonicalPaths(closed, false))
}

func TestClipReExecute(t *testing.T) {
	// the inputs survive Execute, so the same Clipper can run again under
	// another clip type
	c := &Clipper{}
	test.Error(t, c.AddPath(testSubject, Subject, false))
	test.Error(t, c.AddPath(testClip, Clip, false))
	closed, _, ok := c.Execute(Intersection, EvenOdd)
	test.That(t, ok)
	test.Float(t, totalArea(closed), 25.0)
	closed, _, ok = c.Execute(Union, EvenOdd)
	test.That(t, ok)
	test.Float(t, totalArea(closed), 175.0)
}

func TestClipDistributive(t *testing.T) {
	// A ∩ (B ∪ C) = (A ∩ B) ∪ (A ∩ C) for disjoint B and C
	A := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	B := Path{{-2, -2}, {4, -2}, {4, 4}, {-2, 4}}
	C := Path{{6, 6}, {12, 6}, {12, 12}, {6, 12}}

	c := &Clipper{}
	test.Error(t, c.AddPaths(Paths{B, C}, Subject, false))
	bc, _, ok := c.Execute(Union, NonZero)
	test.That(t, ok)

	c = &Clipper{}
	test.Error(t, c.AddPath(A, Subject, false))
	test.Error(t, c.AddPaths(bc, Clip, false))
	lhs, _, ok := c.Execute(Intersection, NonZero)
	test.That(t, ok)

	c = &Clipper{}
	test.Error(t, c.AddPath(A, Subject, false))
	test.Error(t, c.AddPath(B, Clip, false))
	ab, _, ok := c.Execute(Intersection, NonZero)
	test.That(t, ok)

	c = &Clipper{}
	test.Error(t, c.AddPath(A, Subject, false))
	test.Error(t, c.AddPath(C, Clip, false))
	ac, _, ok := c.Execute(Intersection, NonZero)
	test.That(t, ok)

	rhs := append(append(Paths{}, ab...), ac...)
	test.Float(t, totalArea(lhs), 32.0)
	test.T(t, canonicalPaths(lhs, false), canonicalPaths(rhs, false))
}

func TestClipConcurrentVertices(t *testing.T) {
	// every corner of the square lies exactly on the diamond's boundary, so
	// three edges meet at each of those points
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	diamond := Path{{5, -5}, {15, 5}, {5, 15}, {-5, 5}}
	var tts = []struct {
		ct   ClipType
		area float64
	}{
		{Intersection, 100.0},
		{Union, 200.0},
		{Difference, 0.0},
		{Xor, 100.0},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.ct), func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPath(square, Subject, false))
			test.Error(t, c.AddPath(diamond, Clip, false))
			closed, _, ok := c.Execute(tt.ct, EvenOdd)
			test.That(t, ok)
			test.Float(t, totalArea(closed), tt.area)
		})
	}
}

func TestClipHole(t *testing.T) {
	outer := Path{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	inner := Path{{25, 25}, {25, 75}, {75, 75}, {75, 25}} // opposite orientation
	c := &Clipper{}
	test.Error(t, c.AddPaths(Paths{outer, inner}, Subject, false))
	closed, open, ok := c.Execute(Union, NonZero)
	test.That(t, ok)
	test.T(t, len(open), 0)
	test.T(t, len(closed), 2)
	checkRings(t, closed, open)
	test.Float(t, totalArea(closed), 100.0*100.0-50.0*50.0) // the hole is not filled
}

func TestClipOpenPaths(t *testing.T) {
	square := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	var tts = []struct {
		subject Path
		want    Paths
	}{
		{Path{{-5, 5}, {15, 5}}, Paths{{{0, 5}, {10, 5}}}},
		{Path{{2, 2}, {8, 8}}, Paths{{{2, 2}, {8, 8}}}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPath(tt.subject, Subject, true))
			test.Error(t, c.AddPath(square, Clip, false))
			closed, open, ok := c.Execute(Intersection, EvenOdd)
			test.That(t, ok)
			test.T(t, len(closed), 0)
			checkRings(t, closed, open)
			test.T(t, canonicalPaths(open, true), canonicalPaths(tt.want, true))
		})
	}
}

func TestClipOpenClipPath(t *testing.T) {
	c := &Clipper{}
	err := c.AddPath(Path{{0, 0}, {10, 10}}, Clip, true)
	test.That(t, err != nil)
}

func TestClipDegenerate(t *testing.T) {
	var tts = []struct {
		name string
		path Path
		open bool
	}{
		{"empty", Path{}, false},
		{"single point", Path{{5, 5}}, false},
		{"duplicate points", Path{{5, 5}, {5, 5}, {5, 5}}, false},
		{"flat closed", Path{{0, 0}, {5, 0}, {10, 0}}, false},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPath(tt.path, Subject, tt.open))
			_, _, ok := c.Execute(Union, EvenOdd)
			test.That(t, !ok) // nothing to sweep
		})
	}
}

func TestClipEmpty(t *testing.T) {
	c := &Clipper{}
	closed, open, ok := c.Execute(Union, EvenOdd)
	test.That(t, !ok)
	test.T(t, len(closed), 0)
	test.T(t, len(open), 0)
}

func TestClipClear(t *testing.T) {
	c := &Clipper{}
	test.Error(t, c.AddPath(testSubject, Subject, false))
	c.Clear()
	_, _, ok := c.Execute(Union, EvenOdd)
	test.That(t, !ok)
	test.T(t, c.Bounds(), Rect64{})
}

func TestClipFillRules(t *testing.T) {
	// two overlapping same-orientation subject squares
	a := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := Path{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	var tts = []struct {
		fr   FillRule
		area float64
	}{
		{EvenOdd, 150.0}, // the overlap is a hole
		{NonZero, 175.0},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.fr), func(t *testing.T) {
			c := &Clipper{}
			test.Error(t, c.AddPaths(Paths{a, b}, Subject, false))
			closed, _, ok := c.Execute(Union, tt.fr)
			test.That(t, ok)
			test.Float(t, totalArea(closed), tt.area)
		})
	}
}

func TestClipBounds(t *testing.T) {
	c := &Clipper{}
	test.Error(t, c.AddPath(testSubject, Subject, false))
	test.Error(t, c.AddPath(testClip, Clip, false))
	test.T(t, c.Bounds(), Rect64{0, 0, 15, 15})
}

func TestClipperString(t *testing.T) {
	test.String(t, Point64{1, -2}.String(), "(1,-2)")
	test.String(t, Path{{0, 0}, {10, 0}}.String(), "(0,0), (10,0)")
	test.String(t, Paths{{{0, 0}}}.String(), "(0,0)\n")
}
