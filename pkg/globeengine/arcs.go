package globeengine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// arcSegments is fixed: every arc is sampled at 51 points.
const arcSegments = 50

// Arc is one animated connection curve plus its traveling pulse state and the
// fixed endpoint marker at the destination.
type Arc struct {
	Points []mgl64.Vec3
	Color  color.RGBA

	// Pulse progress in curve-parameter space. Starts at a negative stagger
	// offset and loops back once it passes pulseLoopEnd; the pulse
	// is visible only while progress is strictly inside (0, 1).
	Progress float64

	// End is the destination marker, billboarded toward the globe origin.
	End      mgl64.Vec3
	EndPhase float64
}

const (
	pulseLoopEnd   = 1.2
	pulseIncrement = 0.006
	pulseStagger   = 0.18
)

// BuildArc samples a curve between two sphere points. Each sample is a linear
// interpolation renormalized back to the sphere and pushed outward by
// height*sin(pi*t), so the curve bulges at its midpoint. The peak height is
// 0.3x the chord distance, capped at 0.4x the radius: short hops bulge less
// than long hops but never more than the cap.
func BuildArc(start, end mgl64.Vec3, c color.RGBA, radius float64) *Arc {
	height := arcHeight(start, end, radius)
	pts := make([]mgl64.Vec3, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		t := float64(i) / arcSegments
		p := start.Mul(1 - t).Add(end.Mul(t))
		if l := p.Len(); l > 0 {
			p = p.Mul((radius + height*math.Sin(math.Pi*t)) / l)
		}
		pts[i] = p
	}
	// Sample endpoints stay exact.
	pts[0] = start
	pts[arcSegments] = end
	return &Arc{
		Points:   pts,
		Color:    c,
		End:      end,
		EndPhase: rand.Float64() * 2 * math.Pi,
	}
}

func arcHeight(start, end mgl64.Vec3, radius float64) float64 {
	return math.Min(0.4*radius, 0.3*start.Sub(end).Len())
}

// PulseVisible reports whether the traveling pulse should draw this frame.
func (a *Arc) PulseVisible() bool {
	return a.Progress > 0 && a.Progress < 1
}

// PulsePos returns the curve sample nearest the current progress value.
func (a *Arc) PulsePos() mgl64.Vec3 {
	i := int(a.Progress * arcSegments)
	if i < 0 {
		i = 0
	}
	if i > arcSegments {
		i = arcSegments
	}
	return a.Points[i]
}

// advancePulse moves the pulse forward one frame, looping it back behind zero
// by the per-index stagger once it runs off the end of the curve.
func (a *Arc) advancePulse(index int) {
	a.Progress += pulseIncrement
	if a.Progress > pulseLoopEnd {
		a.Progress = -pulseStagger * float64(index)
	}
}
