package topo

import "sync"

// Point is a (lng, lat) coordinate pair, matching the document's axis order.
type Point [2]float64

func (p Point) Lng() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Rect is an axis-aligned bounding box in (lng, lat) space.
type Rect struct {
	MinLng, MinLat float64
	MaxLng, MaxLat float64
}

func (r Rect) Contains(p Point) bool {
	return p[0] >= r.MinLng && p[0] <= r.MaxLng && p[1] >= r.MinLat && p[1] <= r.MaxLat
}

// Ring is a closed polygon boundary. The closing edge back to Points[0] is
// implicit. Rings are read-only after decoding; the bounding box is computed
// on first use and cached for the life of the ring.
type Ring struct {
	Points []Point

	boundsOnce sync.Once
	bounds     Rect
}

// Bounds returns the ring's axis-aligned bounding box.
func (r *Ring) Bounds() Rect {
	r.boundsOnce.Do(func() {
		if len(r.Points) == 0 {
			return
		}
		b := Rect{r.Points[0][0], r.Points[0][1], r.Points[0][0], r.Points[0][1]}
		for _, p := range r.Points {
			if p[0] < b.MinLng {
				b.MinLng = p[0]
			}
			if p[0] > b.MaxLng {
				b.MaxLng = p[0]
			}
			if p[1] < b.MinLat {
				b.MinLat = p[1]
			}
			if p[1] > b.MaxLat {
				b.MaxLat = p[1]
			}
		}
		r.bounds = b
	})
	return r.bounds
}

// Contains reports whether p lies inside the ring. Points outside the cached
// bounding box are rejected without running the ray cast.
func (r *Ring) Contains(p Point) bool {
	if len(r.Points) < 3 {
		return false
	}
	if !r.Bounds().Contains(p) {
		return false
	}
	return raycast(p, r.Points)
}

// raycast is the standard even-odd test: count edges crossed by a horizontal
// ray from p; odd means inside. Edges are treated as semi-open intervals so a
// shared vertex is counted once.
func raycast(p Point, pts []Point) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		xi, yi := pts[i][0], pts[i][1]
		xj, yj := pts[j][0], pts[j][1]
		if (yi > p[1]) != (yj > p[1]) &&
			p[0] < (xj-xi)*(p[1]-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInRings reports whether p lies inside any of the rings.
func PointInRings(p Point, rings []*Ring) bool {
	for _, r := range rings {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Meta is the derived center and extent of a ring set, used to place and
// bound a highlight when the caller does not supply them explicitly.
type Meta struct {
	Center Point
	Bounds Rect
}

// MetaOf computes the arithmetic-mean centroid and min/max extent across all
// vertices of the ring set. Deterministic: identical input yields identical
// output.
func MetaOf(rings []*Ring) (Meta, bool) {
	var sumLng, sumLat float64
	n := 0
	var b Rect
	first := true
	for _, r := range rings {
		for _, p := range r.Points {
			if first {
				b = Rect{p[0], p[1], p[0], p[1]}
				first = false
			}
			if p[0] < b.MinLng {
				b.MinLng = p[0]
			}
			if p[0] > b.MaxLng {
				b.MaxLng = p[0]
			}
			if p[1] < b.MinLat {
				b.MinLat = p[1]
			}
			if p[1] > b.MaxLat {
				b.MaxLat = p[1]
			}
			sumLng += p[0]
			sumLat += p[1]
			n++
		}
	}
	if n == 0 {
		return Meta{}, false
	}
	return Meta{
		Center: Point{sumLng / float64(n), sumLat / float64(n)},
		Bounds: b,
	}, true
}
