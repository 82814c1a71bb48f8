package globeengine

import (
	"math"
	"testing"
)

func TestProjectRadiusInvariant(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 15 {
		for lng := -180.0; lng <= 180.0; lng += 15 {
			for _, r := range []float64{1.0, 2.5, 100.0} {
				p := Project(lat, lng, r)
				if math.Abs(p.Len()-r) > 1e-9 {
					t.Fatalf("Project(%v,%v,%v) at distance %v from origin", lat, lng, r, p.Len())
				}
			}
		}
	}
}

func TestProjectPoles(t *testing.T) {
	top := Project(90, 0, 1)
	if math.Abs(top.Y()-1) > 1e-12 || math.Abs(top.X()) > 1e-12 || math.Abs(top.Z()) > 1e-12 {
		t.Errorf("lat 90 = %v, want (0,1,0)", top)
	}
	bottom := Project(-90, 0, 1)
	if math.Abs(bottom.Y()+1) > 1e-12 {
		t.Errorf("lat -90 = %v, want Y=-1", bottom)
	}
}

func TestProjectPrimeMeridian(t *testing.T) {
	// The 180-degree longitude offset puts (0,0) on the +X axis.
	p := Project(0, 0, 1)
	if math.Abs(p.X()-1) > 1e-12 || math.Abs(p.Y()) > 1e-12 || math.Abs(p.Z()) > 1e-9 {
		t.Errorf("Project(0,0,1) = %v, want (1,0,0)", p)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	p := Project(35, -120, 1)
	q := rotate(p, 0.4, -1.1)
	if math.Abs(q.Len()-1) > 1e-9 {
		t.Errorf("rotation changed vector length: %v", q.Len())
	}
}

func TestFocusAnglesCenterFocus(t *testing.T) {
	// Rotating the focus point by its focus angles must land it on the +Z
	// axis, facing the camera.
	for _, f := range []LatLng{{0, 0}, {20.5937, 78.9629}, {-33, 151}, {51, -0.1}} {
		rx, ry := focusAngles(f)
		v := rotate(Project(f.Lat, f.Lng, 1), rx, ry)
		if math.Abs(v.Z()-1) > 1e-9 {
			t.Errorf("focus %v rotated to %v, want Z=1", f, v)
		}
	}
}
