package globeengine

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var backgroundColor = color.RGBA{8, 10, 15, 255}

// Draw renders one frame: base dots, arcs, highlight dots, traveling pulses
// and endpoint markers, in that order. Highlight dots draw after and slightly
// above the base layer; there is no depth buffer between dot layers.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	e.mu.Lock()
	baseDots, hlDots, arcs := e.baseDots, e.hlDots, e.arcs
	e.mu.Unlock()

	e.drawDotLayer(screen, baseDots, e.cfg.DotSize)
	e.drawArcs(screen, arcs)
	if hlDots != nil && e.cfg.Highlight != nil {
		e.drawDotLayer(screen, hlDots, e.cfg.Highlight.DotSize)
	}
	e.drawPulses(screen, arcs)
	e.drawEndpoints(screen, arcs)
	e.drawHUD(screen)

	if e.OnFrame != nil {
		e.OnFrame(screen)
	}
	if e.cfg.FrameCaptureDir != "" && e.captureRequested {
		e.captureRequested = false
		e.captureFrame(screen, time.Now())
	}
}

func (e *Engine) drawDotLayer(screen *ebiten.Image, dots []Dot, sizePx float64) {
	if e.shapes == nil || len(dots) == 0 {
		return
	}
	img := e.shapes.dot
	texW := float64(img.Bounds().Dx())
	half := texW / 2
	op := &ebiten.DrawImageOptions{}
	// Drag intensity brightens and speeds the shimmer while the user is
	// actively rotating.
	shimmerSpeed := 2.0 + 3.0*e.dragIntensity
	boost := 1.0 + 0.3*e.dragIntensity
	for i := range dots {
		d := &dots[i]
		sx, sy, z, persp := e.viewTransform(d.Pos)
		alpha := depthAlpha(z)
		if alpha <= 0 {
			continue
		}
		shimmer := 0.78 + 0.22*math.Sin(e.clock*shimmerSpeed+d.Phase)
		a := alpha * shimmer * boost
		if a > 1 {
			a = 1
		}
		scale := sizePx * 2 * persp / texW
		op.GeoM.Reset()
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy)
		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(float64(d.Color.R)/255*a),
			float32(float64(d.Color.G)/255*a),
			float32(float64(d.Color.B)/255*a),
			float32(a))
		screen.DrawImage(img, op)
	}
}

func (e *Engine) drawArcs(screen *ebiten.Image, arcs []*Arc) {
	for _, a := range arcs {
		for i := 0; i < len(a.Points)-1; i++ {
			x1, y1, z1, _ := e.viewTransform(a.Points[i])
			x2, y2, z2, _ := e.viewTransform(a.Points[i+1])
			alpha := depthAlpha((z1 + z2) / 2)
			if alpha <= 0.02 {
				continue
			}
			c := a.Color
			c.R = uint8(float64(c.R) * alpha)
			c.G = uint8(float64(c.G) * alpha)
			c.B = uint8(float64(c.B) * alpha)
			c.A = uint8(170 * alpha)
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1.5, c, true)
		}
	}
}

func (e *Engine) drawPulses(screen *ebiten.Image, arcs []*Arc) {
	if e.shapes == nil {
		return
	}
	// All traveling markers share one sinusoidal scale pulse.
	shared := 1 + 0.18*math.Sin(e.clock*6)
	for _, a := range arcs {
		if !a.PulseVisible() {
			continue
		}
		pos := a.PulsePos()
		sx, sy, z, persp := e.viewTransform(pos)
		alpha := depthAlpha(z)
		if alpha <= 0 {
			continue
		}
		e.drawMarker(screen, e.shapes.glow, sx, sy, 16*persp*shared, 1, a.Color, 0.55*alpha)
		e.drawMarker(screen, e.shapes.core, sx, sy, 5*persp*shared, 1, color.RGBA{255, 255, 255, 255}, alpha)
	}
}

func (e *Engine) drawEndpoints(screen *ebiten.Image, arcs []*Arc) {
	if e.shapes == nil {
		return
	}
	for _, a := range arcs {
		sx, sy, z, persp := e.viewTransform(a.End)
		alpha := depthAlpha(z)
		if alpha <= 0 {
			continue
		}
		// Independent per-endpoint oscillation, offset by the random phase.
		osc := 1 + 0.25*math.Sin(e.clock*3+a.EndPhase)
		// The disc faces the globe origin, so it foreshortens as its normal
		// turns away from the camera.
		n := rotate(a.End.Normalize(), e.curRX, e.curRY)
		squash := 0.35 + 0.65*math.Abs(n.Z())
		e.drawMarker(screen, e.shapes.glow, sx, sy, 9*persp*osc, squash, a.Color, 0.8*alpha)
	}
}

// drawMarker draws one shared shape instance at a screen position. sizePx is
// the target diameter; squash flattens the Y axis for billboarded discs.
func (e *Engine) drawMarker(screen *ebiten.Image, img *ebiten.Image, sx, sy, sizePx, squash float64, c color.RGBA, alpha float64) {
	texW := float64(img.Bounds().Dx())
	scale := sizePx / texW
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	op.GeoM.Translate(-texW/2, -texW/2)
	op.GeoM.Scale(scale, scale*squash)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.Scale(
		float32(float64(c.R)/255*alpha),
		float32(float64(c.G)/255*alpha),
		float32(float64(c.B)/255*alpha),
		float32(alpha))
	screen.DrawImage(img, op)
}
