package globeengine

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sudorandom/dot-globe/pkg/topo"
)

// Dot is one point of a dot layer: a position on (or above) the sphere, a
// jittered color and a random phase for the shimmer animation. Dots are
// immutable once generated; a whole layer is swapped in at once.
type Dot struct {
	Pos   mgl64.Vec3
	Color color.RGBA
	Phase float64
}

// highlightElevation lifts highlight dots above the base surface so they draw
// in front of base dots sharing the same screen position.
const highlightElevation = 1.08

// WorldDots scans the latitude band [-85, 85] and longitude [-180, 180) at
// the given step, emitting one dot per grid point that classifies as land.
// Brightness jitter is ±5% per dot; phase is random. Not bit-reproducible
// across runs.
func WorldDots(land []*topo.Ring, step float64, c color.RGBA, radius float64) []Dot {
	var dots []Dot
	for lat := -85.0; lat <= 85.0; lat += step {
		for lng := -180.0; lng < 180.0; lng += step {
			if !topo.PointInRings(topo.Point{lng, lat}, land) {
				continue
			}
			dots = append(dots, Dot{
				Pos:   Project(lat, lng, radius),
				Color: jitterColor(c, 0.05),
				Phase: rand.Float64() * 2 * math.Pi,
			})
		}
	}
	return dots
}

// HighlightDots scans only the highlight's bounding box at its own step and
// magnifies each matching point radially about the highlight's 3D center:
// the offset from center is scaled, the result renormalized to unit length
// and placed at 1.08x the base radius. Brightness jitter is ±10%. Returns
// nil when nothing matches, which suppresses the highlight layer.
func HighlightDots(rings []*topo.Ring, spec *HighlightSpec, bounds LatLngBounds, center LatLng, radius float64) []Dot {
	center3D := Project(center.Lat, center.Lng, radius)
	var dots []Dot
	for lat := bounds.MinLat; lat <= bounds.MaxLat; lat += spec.DotDensity {
		for lng := bounds.MinLng; lng <= bounds.MaxLng; lng += spec.DotDensity {
			if !topo.PointInRings(topo.Point{lng, lat}, rings) {
				continue
			}
			p := Project(lat, lng, radius)
			offset := p.Sub(center3D).Mul(spec.Scale)
			pos := center3D.Add(offset)
			if l := pos.Len(); l > 0 {
				pos = pos.Mul(radius * highlightElevation / l)
			}
			dots = append(dots, Dot{
				Pos:   pos,
				Color: jitterColor(spec.Color, 0.10),
				Phase: rand.Float64() * 2 * math.Pi,
			})
		}
	}
	return dots
}

func jitterColor(c color.RGBA, amount float64) color.RGBA {
	f := 1 + (rand.Float64()*2-1)*amount
	return color.RGBA{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
		A: c.A,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
