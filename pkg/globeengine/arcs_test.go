package globeengine

import (
	"image/color"
	"math"
	"testing"
)

func TestBuildArcShape(t *testing.T) {
	start := Project(0, 0, 1)
	end := Project(0, 90, 1)
	arc := BuildArc(start, end, color.RGBA{255, 255, 255, 255}, 1)

	if len(arc.Points) != 51 {
		t.Fatalf("arc has %d points, want 51", len(arc.Points))
	}
	if arc.Points[0] != start {
		t.Errorf("first point %v, want %v", arc.Points[0], start)
	}
	if arc.Points[50] != end {
		t.Errorf("last point %v, want %v", arc.Points[50], end)
	}
	mid := arc.Points[25]
	if mid.Len() <= 1 {
		t.Errorf("midpoint at radius %v, want strictly above the surface", mid.Len())
	}
}

func TestArcHeightCap(t *testing.T) {
	const radius = 1.0
	// Large separations saturate at 0.4x the radius.
	a := Project(0, 0, radius)
	b := Project(0, 179, radius)
	if h := arcHeight(a, b, radius); math.Abs(h-0.4*radius) > 1e-12 {
		t.Errorf("near-antipodal height %v, want cap %v", h, 0.4*radius)
	}
	// Short hops scale with the chord.
	c := Project(0, 0, radius)
	d := Project(0, 3, radius)
	chord := c.Sub(d).Len()
	if h := arcHeight(c, d, radius); math.Abs(h-0.3*chord) > 1e-12 {
		t.Errorf("short-hop height %v, want %v", h, 0.3*chord)
	}
}

func TestArcNeverExceedsHeightCap(t *testing.T) {
	const radius = 2.0
	for lng := 5.0; lng < 180; lng += 20 {
		arc := BuildArc(Project(0, 0, radius), Project(0, lng, radius), color.RGBA{}, radius)
		for _, p := range arc.Points {
			if p.Len() > radius+0.4*radius+1e-9 {
				t.Fatalf("sample at radius %v exceeds cap for lng span %v", p.Len(), lng)
			}
		}
	}
}

func TestPulseVisibility(t *testing.T) {
	a := &Arc{}
	tests := []struct {
		progress float64
		want     bool
	}{
		{-0.3, false},
		{0, false},
		{0.001, true},
		{0.5, true},
		{0.999, true},
		{1, false},
		{1.1, false},
	}
	for _, tt := range tests {
		a.Progress = tt.progress
		if got := a.PulseVisible(); got != tt.want {
			t.Errorf("PulseVisible at %v = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestAdvancePulseLoops(t *testing.T) {
	arc := BuildArc(Project(0, 0, 1), Project(0, 90, 1), color.RGBA{}, 1)
	arc.Progress = pulseLoopEnd - pulseIncrement/2
	arc.advancePulse(3)
	want := -pulseStagger * 3
	if math.Abs(arc.Progress-want) > 1e-12 {
		t.Errorf("progress after loop = %v, want %v", arc.Progress, want)
	}
}

func TestPulsePosClampsToCurve(t *testing.T) {
	arc := BuildArc(Project(0, 0, 1), Project(0, 90, 1), color.RGBA{}, 1)
	arc.Progress = -0.5
	if arc.PulsePos() != arc.Points[0] {
		t.Error("negative progress should clamp to the first sample")
	}
	arc.Progress = 1.15
	if arc.PulsePos() != arc.Points[50] {
		t.Error("overrun progress should clamp to the last sample")
	}
}
