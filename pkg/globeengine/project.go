package globeengine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Project maps a geographic coordinate onto a sphere of the given radius.
// Latitude 90 lands on the +Y pole; longitude is offset by 180 degrees before
// conversion so the focus-point convention used by the engine puts the prime
// meridian at a fixed screen-facing orientation.
func Project(lat, lng, radius float64) mgl64.Vec3 {
	phi := (90 - lat) * math.Pi / 180
	theta := (lng + 180) * math.Pi / 180
	return mgl64.Vec3{
		-radius * math.Sin(phi) * math.Cos(theta),
		radius * math.Cos(phi),
		radius * math.Sin(phi) * math.Sin(theta),
	}
}

// rotate applies the view rotation: rx about the X axis, then ry about Y.
func rotate(v mgl64.Vec3, rx, ry float64) mgl64.Vec3 {
	sinY, cosY := math.Sin(ry), math.Cos(ry)
	sinX, cosX := math.Sin(rx), math.Cos(rx)
	// Yaw.
	x := v.X()*cosY + v.Z()*sinY
	z := -v.X()*sinY + v.Z()*cosY
	y := v.Y()
	// Pitch.
	y2 := y*cosX - z*sinX
	z2 := y*sinX + z*cosX
	return mgl64.Vec3{x, y2, z2}
}

// wrapAngle folds an angle into [-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
