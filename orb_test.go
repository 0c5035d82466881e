package polyclipping

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestOrbRing(t *testing.T) {
	ring := orb.Ring{{0.0, 0.0}, {1.5, 0.0}, {1.5, 1.5}, {0.0, 1.5}, {0.0, 0.0}}
	p := FromOrbRing(ring, 10.0)
	test.T(t, p, Path{{0, 0}, {15, 0}, {15, 15}, {0, 15}})

	ring2 := ToOrbRing(p, 10.0)
	test.T(t, ring2, ring)
}

func TestOrbLineString(t *testing.T) {
	ls := orb.LineString{{-0.5, 0.5}, {1.5, 0.5}}
	p := FromOrbLineString(ls, 10.0)
	test.T(t, p, Path{{-5, 5}, {15, 5}})
	test.T(t, ToOrbLineString(p, 10.0), ls)
}

func TestOrbPolygon(t *testing.T) {
	poly := orb.Polygon{
		{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}},
		{{2.5, 2.5}, {2.5, 7.5}, {7.5, 7.5}, {7.5, 2.5}, {2.5, 2.5}},
	}
	ps := FromOrbPolygon(poly, 10.0)
	test.T(t, len(ps), 2)
	test.T(t, ps[0], Path{{0, 0}, {100, 0}, {100, 100}, {0, 100}})
	test.T(t, ps[1], Path{{25, 25}, {25, 75}, {75, 75}, {75, 25}})
}

func TestOrbClip(t *testing.T) {
	// clip two orb polygons and convert the solution tree back
	subject := orb.Polygon{{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}}}
	clip := orb.Polygon{{{5.0, 5.0}, {15.0, 5.0}, {15.0, 15.0}, {5.0, 15.0}, {5.0, 5.0}}}

	c := &Clipper{}
	test.Error(t, c.AddPaths(FromOrbPolygon(subject, 10.0), Subject, false))
	test.Error(t, c.AddPaths(FromOrbPolygon(clip, 10.0), Clip, false))
	tree, _, ok := c.ExecuteTree(Intersection, NonZero)
	test.That(t, ok)

	mp := ToOrbMultiPolygon(tree, 10.0)
	test.T(t, len(mp), 1)
	test.T(t, len(mp[0]), 1)
	ring := mp[0][0]
	test.T(t, len(ring), 5)
	test.T(t, ring[0], ring[len(ring)-1])
}
