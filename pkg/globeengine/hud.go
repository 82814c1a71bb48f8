package globeengine

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/biter777/countries"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// countryDisplayName resolves a highlight identifier to a human-readable
// name. World topology documents key countries by ISO 3166-1 numeric code;
// names and alpha codes are accepted as well.
func countryDisplayName(id string) string {
	if n, err := strconv.Atoi(id); err == nil {
		if c := countries.CountryCode(n); c.IsValid() {
			return c.String()
		}
	}
	if c := countries.ByName(id); c != countries.Unknown {
		return c.String()
	}
	return id
}

func (e *Engine) drawHUD(screen *ebiten.Image) {
	if e.fontSource == nil {
		return
	}
	e.mu.Lock()
	name := e.countryName
	ready := e.geomReady
	numArcs := len(e.arcs)
	e.mu.Unlock()

	margin, fontSize := 24.0, 16.0
	if e.Width > 2000 {
		margin, fontSize = 48.0, 32.0
	}
	face := &text.GoTextFace{Source: e.fontSource, Size: fontSize}

	label := "LOADING BOUNDARY DATA"
	if ready {
		if name != "" {
			label = name
		} else {
			label = "WORLD"
		}
		label = fmt.Sprintf("%s  ·  %d ROUTES", label, numArcs)
	}

	tw, _ := text.Measure(label, face, 0)
	boxX := margin
	boxY := float64(e.Height) - margin - fontSize*2
	boxW := tw + 30
	boxH := fontSize * 2

	vector.DrawFilledRect(screen, float32(boxX-10), float32(boxY-5), float32(boxW), float32(boxH), color.RGBA{0, 0, 0, 100}, false)
	vector.StrokeRect(screen, float32(boxX-10), float32(boxY-5), float32(boxW), float32(boxH), 1, color.RGBA{36, 42, 53, 255}, false)
	vector.DrawFilledRect(screen, float32(boxX-10), float32(boxY-5), 4, float32(boxH), e.cfg.DotColor, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(boxX+5, boxY+fontSize*0.4)
	op.ColorScale.Scale(1, 1, 1, 0.7)
	text.Draw(screen, label, face, op)
}
