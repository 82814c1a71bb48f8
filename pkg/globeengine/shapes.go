package globeengine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// shapeRegistry holds the shared immutable textures referenced by every dot,
// pulse and endpoint marker. Created once at engine start; marker instances
// reference these images, they never copy them.
type shapeRegistry struct {
	dot  *ebiten.Image // soft-edged disc for dot layers
	glow *ebiten.Image // wide radial falloff for pulse glow and endpoints
	core *ebiten.Image // tight bright center for the traveling pulse
}

func newShapeRegistry() *shapeRegistry {
	return &shapeRegistry{
		dot:  radialTexture(16, 0.55, 2.0),
		glow: radialTexture(64, 0.0, 2.6),
		core: radialTexture(16, 0.0, 1.1),
	}
}

// radialTexture builds a white circle with a cosine falloff starting at
// solid*maxDist from the center. falloffPow shapes how quickly it fades.
func radialTexture(size int, solid, falloffPow float64) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	pixels := make([]byte, size*size*4)
	center := float64(size) / 2.0
	maxDist := center
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= maxDist {
				continue
			}
			val := 1.0
			if dist > maxDist*solid {
				t := (dist - maxDist*solid) / (maxDist * (1 - solid))
				val = math.Pow(math.Cos(t*math.Pi/2), falloffPow)
			}
			off := (y*size + x) * 4
			a := uint8(val * 255)
			pixels[off], pixels[off+1], pixels[off+2], pixels[off+3] = a, a, a, a
		}
	}
	img.WritePixels(pixels)
	return img
}
