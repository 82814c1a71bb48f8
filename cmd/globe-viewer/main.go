package main

import (
	"image/color"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/sudorandom/dot-globe/pkg/globeengine"
	"github.com/sudorandom/dot-globe/pkg/sources"
)

var cli struct {
	Width      int    `help:"Initial window width." default:"1280"`
	Height     int    `help:"Initial window height." default:"720"`
	TPS        int    `help:"Engine updates per second." default:"60"`
	Country    string `help:"Country id to highlight (ISO 3166-1 numeric or name)." default:"356"`
	NoMagnet   bool   `help:"Disable the magnetic return to the focus point."`
	CacheDir   string `help:"Directory for the on-disk topology cache." default:"data/topology"`
	CaptureDir string `help:"Directory for captured frames. Empty disables capture."`
}

// game is the host adapter: it translates window lifecycle and hotkeys onto
// the engine's entry points.
type game struct {
	*globeengine.Engine
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.RequestCapture()
	}
	return g.Engine.Update()
}

func main() {
	kong.Parse(&cli,
		kong.Name("globe-viewer"),
		kong.Description("Interactive dotted-globe viewer."))
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	repo := sources.NewRepository(cli.CacheDir)
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("Error closing topology cache: %v", err)
		}
	}()

	cfg := globeengine.Config{
		MagnetDisabled:  cli.NoMagnet,
		FrameCaptureDir: cli.CaptureDir,
	}
	if cli.Country != "" {
		cfg.Highlight = &globeengine.HighlightSpec{
			CountryID: cli.Country,
			Color:     color.RGBA{255, 153, 51, 255},
		}
	}

	engine := globeengine.NewEngine(cfg, repo)
	engine.InitTextures()
	engine.Start()
	defer engine.Close()

	ebiten.SetWindowSize(cli.Width, cli.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Dotted Globe")
	ebiten.SetTPS(cli.TPS)
	if err := ebiten.RunGame(&game{engine}); err != nil {
		log.Fatal(err)
	}
}
