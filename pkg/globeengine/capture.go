package globeengine

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RequestCapture asks the next Draw to write a PNG of the finished frame
// into the configured capture directory.
func (e *Engine) RequestCapture() {
	if e.cfg.FrameCaptureDir != "" {
		e.captureRequested = true
	}
}

func (e *Engine) captureFrame(img *ebiten.Image, timestamp time.Time) {
	if err := os.MkdirAll(e.cfg.FrameCaptureDir, 0o755); err != nil {
		log.Printf("Error creating capture directory: %v", err)
		return
	}

	filename := fmt.Sprintf("globe-%s.png", timestamp.Format("20060102-150405"))
	path := filepath.Join(e.cfg.FrameCaptureDir, filename)

	// Copy to a CPU image first so the encode can run off the frame loop.
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	img.ReadPixels(rgba.Pix)

	go func() {
		f, err := os.Create(path)
		if err != nil {
			log.Printf("Error creating capture file: %v", err)
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Error closing capture file: %v", err)
			}
		}()

		if err := png.Encode(f, rgba); err != nil {
			log.Printf("Error encoding capture: %v", err)
		}
		log.Printf("Captured frame: %s", path)
	}()
}
