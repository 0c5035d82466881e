package polyclipping

import (
	"testing"

	"github.com/tdewolff/test"
)

// ringLen walks the circular vertex list and counts its vertices.
func ringLen(v *vertex) int {
	n := 0
	v2 := v
	for {
		n++
		v2 = v2.next
		if v2 == v {
			break
		}
	}
	return n
}

func TestVertexSquare(t *testing.T) {
	c := &Clipper{}
	c.addPathToVertexList(Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Subject, false)
	test.T(t, len(c.minimaList), 1)
	test.T(t, c.minimaList[0].vertex.pt, Point64{0, 10})
	test.T(t, ringLen(c.minimaList[0].vertex), 4)

	// the vertex opposite the minimum is the maximum
	test.That(t, c.vertexList[0][0].flags&vertexLocalMax != 0)
}

func TestVertexDoubleMinimum(t *testing.T) {
	// an M-like ring with two bottom vertices and an interior maximum
	c := &Clipper{}
	c.addPathToVertexList(Path{{0, 0}, {20, 0}, {20, 10}, {10, 5}, {0, 10}}, Subject, false)
	test.T(t, len(c.minimaList), 2)
	test.T(t, c.minimaList[0].vertex.pt, Point64{20, 10})
	test.T(t, c.minimaList[1].vertex.pt, Point64{0, 10})
	test.That(t, c.vertexList[0][3].flags&vertexLocalMax != 0)
}

func TestVertexOpenPath(t *testing.T) {
	c := &Clipper{}
	c.addPathToVertexList(Path{{0, 0}, {5, 5}, {0, 10}}, Subject, true)
	test.T(t, len(c.minimaList), 1)
	test.That(t, c.minimaList[0].isOpen)

	v0 := &c.vertexList[0][0]
	vEnd := &c.vertexList[0][2]
	test.That(t, v0.flags&vertexOpenStart != 0)
	test.That(t, v0.flags&vertexLocalMax != 0)
	test.That(t, vEnd.flags&vertexOpenEnd != 0)
	test.That(t, vEnd.flags&vertexLocalMin != 0)
}

func TestVertexDuplicates(t *testing.T) {
	c := &Clipper{}
	c.addPathToVertexList(Path{{0, 0}, {0, 0}, {10, 0}, {10, 10}, {10, 10}, {0, 10}, {0, 0}}, Subject, false)
	test.T(t, len(c.minimaList), 1)
	test.T(t, ringLen(c.minimaList[0].vertex), 4)
}

func TestVertexDegenerate(t *testing.T) {
	var tts = []struct {
		name string
		path Path
		open bool
	}{
		{"flat closed", Path{{0, 0}, {5, 0}, {10, 0}}, false},
		{"single point", Path{{1, 1}}, false},
		{"two points closed", Path{{1, 1}, {1, 1}}, false},
		{"single point open", Path{{1, 1}}, true},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			c := &Clipper{}
			c.addPathToVertexList(tt.path, Subject, tt.open)
			test.T(t, len(c.minimaList), 0)
		})
	}
}

func TestVertexFlatOpen(t *testing.T) {
	// a horizontal polyline is kept, unlike a flat closed path
	c := &Clipper{}
	c.addPathToVertexList(Path{{0, 5}, {10, 5}}, Subject, true)
	test.T(t, len(c.minimaList), 1)
	test.T(t, c.minimaList[0].vertex.pt, Point64{10, 5})
}
