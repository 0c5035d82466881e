package polyclipping

import "github.com/paulmach/orb"

// Conversions between this package's integer paths and the orb geometry
// types. orb uses float64 coordinates, so every conversion takes a scale: a
// coordinate is multiplied by it going in and divided by it going out. Pick a
// scale large enough to retain the precision you need.

// FromOrbRing converts an orb ring to a closed path, scaling and rounding
// each coordinate. The ring's closing point is dropped, as paths are
// implicitly closed.
func FromOrbRing(ring orb.Ring, scale float64) Path {
	n := len(ring)
	if 1 < n && ring[n-1] == ring[0] {
		n--
	}
	p := make(Path, 0, n)
	for _, pt := range ring[:n] {
		p = append(p, Point64{round(pt[0] * scale), round(pt[1] * scale)})
	}
	return p
}

// FromOrbLineString converts an orb line string to an open path.
func FromOrbLineString(ls orb.LineString, scale float64) Path {
	p := make(Path, 0, len(ls))
	for _, pt := range ls {
		p = append(p, Point64{round(pt[0] * scale), round(pt[1] * scale)})
	}
	return p
}

// FromOrbPolygon converts an orb polygon (outer ring plus holes) to paths.
func FromOrbPolygon(poly orb.Polygon, scale float64) Paths {
	ps := make(Paths, 0, len(poly))
	for _, ring := range poly {
		ps = append(ps, FromOrbRing(ring, scale))
	}
	return ps
}

// FromOrbMultiPolygon converts an orb multi polygon to paths.
func FromOrbMultiPolygon(mp orb.MultiPolygon, scale float64) Paths {
	ps := Paths{}
	for _, poly := range mp {
		ps = append(ps, FromOrbPolygon(poly, scale)...)
	}
	return ps
}

// ToOrbRing converts a closed path to an orb ring, appending the closing
// point orb expects.
func ToOrbRing(p Path, scale float64) orb.Ring {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, pt := range p {
		ring = append(ring, orb.Point{float64(pt.X) / scale, float64(pt.Y) / scale})
	}
	if 0 < len(ring) {
		ring = append(ring, ring[0])
	}
	return ring
}

// ToOrbLineString converts an open path to an orb line string.
func ToOrbLineString(p Path, scale float64) orb.LineString {
	ls := make(orb.LineString, 0, len(p))
	for _, pt := range p {
		ls = append(ls, orb.Point{float64(pt.X) / scale, float64(pt.Y) / scale})
	}
	return ls
}

// ToOrbMultiPolygon converts a clipping solution tree to an orb multi
// polygon: every outer node becomes a polygon with its holes as interior
// rings, and outer nodes nested inside holes become separate polygons.
func ToOrbMultiPolygon(tree *PolyTree, scale float64) orb.MultiPolygon {
	mp := orb.MultiPolygon{}
	var add func(pp *PolyPath)
	add = func(pp *PolyPath) {
		poly := orb.Polygon{ToOrbRing(pp.Path(), scale)}
		for i := 0; i < pp.ChildCount(); i++ {
			hole := pp.Child(i)
			poly = append(poly, ToOrbRing(hole.Path(), scale))
			for j := 0; j < hole.ChildCount(); j++ {
				add(hole.Child(j))
			}
		}
		mp = append(mp, poly)
	}
	for i := 0; i < tree.ChildCount(); i++ {
		add(tree.Child(i))
	}
	return mp
}
