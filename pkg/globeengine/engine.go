// Package globeengine renders an interactive dotted globe: per-pixel land
// dots derived from boundary topology, a magnified country highlight,
// animated connection arcs and drag-to-rotate interaction that magnetically
// returns to a focus point.
package globeengine

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sudorandom/dot-globe/pkg/topo"
	"golang.org/x/image/font/gofont/goregular"
)

// TopologyRepository is the injected boundary-data capability. GetOrFetch
// blocks on first use and is free afterwards; implementations cache for the
// process lifetime.
type TopologyRepository interface {
	GetOrFetch(name string) (*topo.Topology, error)
}

// Object names expected in the repository's documents.
const (
	ObjectLand      = "land"
	ObjectCountries = "countries"
)

const (
	globeRadius = 1.0

	dragSensitivity = 0.005
	magnetDelay     = 1.5  // seconds of stillness before magnet-return engages
	magnetRate      = 0.09 // fraction of remaining angle per frame
	displayRate     = 0.08 // displayed rotation easing toward target
	snapThreshold   = 0.01 // rad; snap to focus to avoid asymptotic creep

	dragRampStep  = 0.05 // per-frame drag intensity ramp while dragging
	dragDecayStep = 0.02 // per-frame linear decay after release

	cameraDistWide   = 2.6
	cameraDistNarrow = 3.3
)

// Engine owns the animation clock, the interaction state machine and all
// renderable layers. It implements ebiten.Game.
type Engine struct {
	Width, Height int

	cfg  Config
	repo TopologyRepository

	// Geometry layers; swapped in atomically once the async build finishes.
	mu          sync.Mutex
	closed      bool
	baseDots    []Dot
	hlDots      []Dot
	arcs        []*Arc
	countryName string
	geomReady   bool

	// Rotation: target tracks intent/magnet, display eases toward target.
	targetRX, targetRY float64
	curRX, curRY       float64
	focusRX, focusRY   float64

	dragging      bool
	pointerDown   bool
	lastPX, lastPY float64
	sinceRelease  float64
	magnetActive  bool

	dragIntensity float64
	dragVisual    bool

	clock    float64
	lastTick time.Time

	camDist float64
	narrow  bool

	shapes     *shapeRegistry
	fontSource *text.GoTextFaceSource

	captureRequested bool

	// OnFrame, when set, receives the finished frame each draw.
	OnFrame func(screen *ebiten.Image)
}

// NewEngine builds an engine for the given configuration. Textures are not
// allocated here; call InitTextures before the first Draw.
func NewEngine(cfg Config, repo TopologyRepository) *Engine {
	cfg.ApplyDefaults()
	e := &Engine{
		Width:   1280,
		Height:  720,
		cfg:     cfg,
		repo:    repo,
		camDist: cameraDistWide,
	}
	e.focusRX, e.focusRY = focusAngles(cfg.Focus)
	e.targetRX, e.targetRY = e.focusRX, e.focusRY
	e.curRX, e.curRY = e.focusRX, e.focusRY
	return e
}

// focusAngles converts a geographic focus point into the rotation pair that
// places it at the screen-facing center of the sphere.
func focusAngles(f LatLng) (rx, ry float64) {
	rx = f.Lat * math.Pi / 180
	ry = math.Pi/2 - (f.Lng+180)*math.Pi/180
	return rx, wrapAngle(ry)
}

// InitTextures creates the shared shape registry and the HUD font. Must run
// before the first Draw; kept out of NewEngine so headless tests never touch
// graphics resources.
func (e *Engine) InitTextures() {
	e.shapes = newShapeRegistry()
	if s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		e.fontSource = s
	}
}

// Start kicks off the one-time topology fetch and geometry build. The fetch
// is the single asynchronous boundary: on completion the layers are built
// and installed, guarded by a liveness check so a torn-down engine is never
// mutated. Failure leaves the scene without geometry but fully interactive.
func (e *Engine) Start() {
	go func() {
		layers, err := e.buildGeometry()
		if err != nil {
			log.Printf("Geometry setup failed: %v", err)
			return
		}
		e.installGeometry(layers)
	}()
}

type geometryLayers struct {
	base        []Dot
	highlight   []Dot
	arcs        []*Arc
	countryName string
}

func (e *Engine) buildGeometry() (*geometryLayers, error) {
	landDoc, err := e.repo.GetOrFetch(ObjectLand)
	if err != nil {
		return nil, fmt.Errorf("fetching land topology: %w", err)
	}
	land := topo.DecodeObject(landDoc, ObjectLand)

	layers := &geometryLayers{
		base: WorldDots(land, e.cfg.DotDensity, e.cfg.DotColor, globeRadius),
	}

	if hl := e.cfg.Highlight; hl != nil {
		countryDoc, err := e.repo.GetOrFetch(ObjectCountries)
		if err != nil {
			return nil, fmt.Errorf("fetching countries topology: %w", err)
		}
		rings := topo.DecodeCountry(countryDoc, ObjectCountries, hl.CountryID)
		bounds, center, ok := highlightMeta(hl, rings)
		if ok {
			layers.highlight = HighlightDots(rings, hl, bounds, center, globeRadius)
		}
		layers.countryName = countryDisplayName(hl.CountryID)
	}

	for _, conn := range e.cfg.Connection {
		start := Project(conn.Start.Lat, conn.Start.Lng, globeRadius)
		end := Project(conn.End.Lat, conn.End.Lng, globeRadius)
		layers.arcs = append(layers.arcs, BuildArc(start, end, conn.Color, globeRadius))
	}
	// Stagger pulses so they do not travel in lockstep.
	for i, a := range layers.arcs {
		a.Progress = -pulseStagger * float64(i)
	}
	return layers, nil
}

// highlightMeta resolves the highlight's bounding box and center, preferring
// explicit values on the highlight spec over the polygon-derived meta.
func highlightMeta(hl *HighlightSpec, rings []*topo.Ring) (LatLngBounds, LatLng, bool) {
	var bounds LatLngBounds
	var center LatLng
	meta, ok := topo.MetaOf(rings)
	if hl.Bounds != nil {
		bounds = *hl.Bounds
	} else if ok {
		bounds = LatLngBounds{
			MinLat: meta.Bounds.MinLat, MinLng: meta.Bounds.MinLng,
			MaxLat: meta.Bounds.MaxLat, MaxLng: meta.Bounds.MaxLng,
		}
	} else {
		return bounds, center, false
	}
	if hl.Center != nil {
		center = *hl.Center
	} else if ok {
		center = LatLng{Lat: meta.Center.Lat(), Lng: meta.Center.Lng()}
	} else {
		return bounds, center, false
	}
	return bounds, center, true
}

// installGeometry swaps the freshly built layers into the live scene. A nil
// highlight layer stays nil: an empty highlight must not create a layer.
func (e *Engine) installGeometry(layers *geometryLayers) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		// The view was torn down while the fetch was in flight.
		return
	}
	e.baseDots = layers.base
	e.hlDots = layers.highlight
	e.arcs = layers.arcs
	e.countryName = layers.countryName
	e.geomReady = true
}

// Close tears the engine down. The frame loop owner stops calling Update and
// Draw; any in-flight geometry build observes the closed flag and discards
// its result.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

// Resize recomputes the camera for a new viewport, choosing between the two
// fixed camera distances based on whether the aspect is narrow.
func (e *Engine) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.Width, e.Height = w, h
	e.narrow = float64(w) < float64(h)*0.9
	if e.narrow {
		e.camDist = cameraDistNarrow
	} else {
		e.camDist = cameraDistWide
	}
}

// HandlePointerDown begins a drag: record the pointer, disable magnet-return
// immediately.
func (e *Engine) HandlePointerDown(x, y float64) {
	e.dragging = true
	e.dragVisual = true
	e.magnetActive = false
	e.sinceRelease = 0
	e.lastPX, e.lastPY = x, y
}

// HandlePointerMove accumulates drag deltas into the target rotation. The
// displayed rotation is never moved directly.
func (e *Engine) HandlePointerMove(x, y float64) {
	if !e.dragging {
		return
	}
	dx, dy := x-e.lastPX, y-e.lastPY
	e.targetRY += dx * dragSensitivity
	e.targetRX += dy * dragSensitivity
	e.lastPX, e.lastPY = x, y
}

// HandlePointerUp ends the drag and starts the magnet cooldown.
func (e *Engine) HandlePointerUp() {
	e.dragging = false
	e.sinceRelease = 0
}

// Update polls input, measures the real inter-frame interval and advances
// the simulation. Part of the ebiten.Game contract.
func (e *Engine) Update() error {
	now := time.Now()
	dt := 0.0
	if !e.lastTick.IsZero() {
		dt = now.Sub(e.lastTick).Seconds()
	}
	e.lastTick = now
	e.pollInput()
	e.step(dt)
	return nil
}

// pollInput translates ebiten's polled mouse/touch state into the engine's
// pointer entry points. Any number of interim events coalesce into the
// latest position; the frame loop always reflects the newest target.
func (e *Engine) pollInput() {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		if !e.pointerDown {
			e.pointerDown = true
			e.HandlePointerDown(float64(x), float64(y))
		} else {
			e.HandlePointerMove(float64(x), float64(y))
		}
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !e.pointerDown {
			e.pointerDown = true
			e.HandlePointerDown(float64(x), float64(y))
		} else {
			e.HandlePointerMove(float64(x), float64(y))
		}
		return
	}
	if e.pointerDown {
		e.pointerDown = false
		e.HandlePointerUp()
	}
}

// step advances the clock, the interaction state machine and every animated
// quantity by one frame. dt is the measured wall-clock interval.
func (e *Engine) step(dt float64) {
	e.clock += dt

	if e.dragging {
		e.dragIntensity += dragRampStep
		if e.dragIntensity > 1 {
			e.dragIntensity = 1
		}
	} else if e.dragVisual {
		e.dragIntensity -= dragDecayStep
		if e.dragIntensity <= 0 {
			e.dragIntensity = 0
			e.dragVisual = false
		}
	}

	if !e.cfg.MagnetDisabled && !e.dragging {
		e.sinceRelease += dt
		if e.sinceRelease >= magnetDelay {
			e.magnetActive = true
		}
	}

	if e.magnetActive && !e.dragging {
		// Shortest angular path: wrap both axes before differencing, then
		// re-wrap the difference so the return never takes the long way.
		e.targetRY = wrapAngle(e.targetRY)
		e.targetRX = wrapAngle(e.targetRX)
		dy := wrapAngle(e.focusRY - e.targetRY)
		dx := wrapAngle(e.focusRX - e.targetRX)
		e.targetRY += dy * magnetRate
		e.targetRX += dx * magnetRate
		if math.Abs(wrapAngle(e.focusRY-e.targetRY)) < snapThreshold &&
			math.Abs(wrapAngle(e.focusRX-e.targetRX)) < snapThreshold {
			e.targetRX, e.targetRY = e.focusRX, e.focusRY
		}
	}

	e.curRX += (e.targetRX - e.curRX) * displayRate
	e.curRY += (e.targetRY - e.curRY) * displayRate

	e.mu.Lock()
	for i, a := range e.arcs {
		a.advancePulse(i)
	}
	e.mu.Unlock()
}

// Layout adapts the engine to the current outside size. Part of the
// ebiten.Game contract.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.Width || outsideHeight != e.Height {
		e.Resize(outsideWidth, outsideHeight)
	}
	return e.Width, e.Height
}

// viewTransform projects a rotated model-space point to screen pixels and
// reports its view depth (positive z faces the camera).
func (e *Engine) viewTransform(p mgl64.Vec3) (sx, sy, depth, scale float64) {
	v := rotate(p, e.curRX, e.curRY)
	minDim := float64(e.Width)
	if float64(e.Height) < minDim {
		minDim = float64(e.Height)
	}
	persp := 0.42 * minDim * e.camDist
	f := persp / (e.camDist - v.Z())
	sx = float64(e.Width)/2 + v.X()*f
	sy = float64(e.Height)/2 - v.Y()*f
	return sx, sy, v.Z(), f / (persp / e.camDist)
}

// depthAlpha fades geometry on the far hemisphere instead of culling it.
func depthAlpha(z float64) float64 {
	a := (z + 0.45) / 1.25
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
