package topo

import "testing"

func squareRing() *Ring {
	return &Ring{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
}

func TestRingContains(t *testing.T) {
	r := squareRing()
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{5, 5}, true},
		{Point{0.1, 0.1}, true},
		{Point{9.9, 9.9}, true},
		{Point{15, 5}, false},
		{Point{5, -1}, false},
		{Point{-120, 45}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRingContainsConcave(t *testing.T) {
	// U-shaped ring; the notch between the prongs is outside.
	r := &Ring{Points: []Point{
		{0, 0}, {10, 0}, {10, 10}, {7, 10}, {7, 3}, {3, 3}, {3, 10}, {0, 10},
	}}
	if !r.Contains(Point{1, 5}) {
		t.Error("(1,5) should be inside the left prong")
	}
	if r.Contains(Point{5, 7}) {
		t.Error("(5,7) is in the notch and should be outside")
	}
	if !r.Contains(Point{5, 1}) {
		t.Error("(5,1) should be inside the base")
	}
}

func TestBoundsRejectIsFastPath(t *testing.T) {
	// Pre-seed a bounding box that excludes the square's interior. If the
	// classifier consulted the ray cast for an out-of-bounds point it would
	// report true here; the bbox reject must short-circuit first.
	r := squareRing()
	r.boundsOnce.Do(func() {
		r.bounds = Rect{MinLng: 100, MinLat: 100, MaxLng: 101, MaxLat: 101}
	})
	if r.Contains(Point{5, 5}) {
		t.Error("point outside the cached bounds reached the ray cast")
	}
}

func TestBoundsCached(t *testing.T) {
	r := squareRing()
	b1 := r.Bounds()
	b2 := r.Bounds()
	if b1 != b2 {
		t.Errorf("Bounds not stable: %v then %v", b1, b2)
	}
	want := Rect{MinLng: 0, MinLat: 0, MaxLng: 10, MaxLat: 10}
	if b1 != want {
		t.Errorf("Bounds = %v, want %v", b1, want)
	}
}

func TestPointInRingsEmpty(t *testing.T) {
	if PointInRings(Point{5, 5}, nil) {
		t.Error("empty ring set matched a point")
	}
}

func TestMetaOf(t *testing.T) {
	rings := []*Ring{squareRing()}
	m1, ok := MetaOf(rings)
	if !ok {
		t.Fatal("MetaOf returned no meta for a non-empty ring set")
	}
	m2, _ := MetaOf(rings)
	if m1 != m2 {
		t.Errorf("MetaOf not idempotent: %v then %v", m1, m2)
	}
	if m1.Bounds != (Rect{MinLng: 0, MinLat: 0, MaxLng: 10, MaxLat: 10}) {
		t.Errorf("Bounds = %v", m1.Bounds)
	}
	// The closing vertex repeats (0,0), pulling the mean toward the origin.
	if m1.Center.Lng() != 4 || m1.Center.Lat() != 4 {
		t.Errorf("Center = %v, want (4,4)", m1.Center)
	}
}

func TestMetaOfEmpty(t *testing.T) {
	if _, ok := MetaOf(nil); ok {
		t.Error("MetaOf(nil) reported a meta")
	}
}
