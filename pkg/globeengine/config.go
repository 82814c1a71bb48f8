package globeengine

import "image/color"

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat, Lng float64
}

// Connection declares one animated arc from Start to End. Color falls back to
// the default color cycle when zero.
type Connection struct {
	Start LatLng
	End   LatLng
	Color color.RGBA
}

// HighlightSpec selects one country to render as a magnified dot layer.
// Center and Bounds override the auto-derived polygon meta when non-nil.
type HighlightSpec struct {
	CountryID  string
	Color      color.RGBA
	Center     *LatLng
	Bounds     *LatLngBounds
	Scale      float64 // radial magnification about the highlight center
	DotSize    float64 // px
	DotDensity float64 // scan step in degrees
}

// LatLngBounds is a geographic bounding box.
type LatLngBounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Config is the full option surface recognized by the engine.
type Config struct {
	DotColor   color.RGBA
	DotSize    float64 // px
	DotDensity float64 // world scan step in degrees
	Highlight  *HighlightSpec
	Connection []Connection
	Focus      LatLng

	// MagnetDisabled turns off the automatic return to the focus point.
	MagnetDisabled bool

	// FrameCaptureDir, when set, enables PNG capture of rendered frames.
	FrameCaptureDir string
}

var defaultColorCycle = []color.RGBA{
	{0, 191, 255, 255},  // sky blue
	{173, 255, 47, 255}, // lime green
	{255, 170, 0, 255},  // amber
	{255, 80, 180, 255}, // magenta
}

// DefaultConnections is the arc set used when the caller supplies none:
// ten destination cities fanning out from the default focus point.
var DefaultConnections = []Connection{
	{Start: defaultFocus, End: LatLng{51.5074, -0.1278}},   // London
	{Start: defaultFocus, End: LatLng{40.7128, -74.0060}},  // New York
	{Start: defaultFocus, End: LatLng{37.7749, -122.4194}}, // San Francisco
	{Start: defaultFocus, End: LatLng{35.6762, 139.6503}},  // Tokyo
	{Start: defaultFocus, End: LatLng{1.3521, 103.8198}},   // Singapore
	{Start: defaultFocus, End: LatLng{-33.8688, 151.2093}}, // Sydney
	{Start: defaultFocus, End: LatLng{25.2048, 55.2708}},   // Dubai
	{Start: defaultFocus, End: LatLng{52.5200, 13.4050}},   // Berlin
	{Start: defaultFocus, End: LatLng{-23.5505, -46.6333}}, // Sao Paulo
	{Start: defaultFocus, End: LatLng{43.6532, -79.3832}},  // Toronto
}

var defaultFocus = LatLng{Lat: 20.5937, Lng: 78.9629}

// ApplyDefaults fills in every zero-valued option.
func (c *Config) ApplyDefaults() {
	if c.DotColor == (color.RGBA{}) {
		c.DotColor = color.RGBA{140, 160, 250, 255}
	}
	if c.DotSize <= 0 {
		c.DotSize = 2.2
	}
	if c.DotDensity <= 0 {
		c.DotDensity = 1.2
	}
	if c.Focus == (LatLng{}) {
		c.Focus = defaultFocus
	}
	if len(c.Connection) == 0 {
		c.Connection = append([]Connection(nil), DefaultConnections...)
	}
	for i := range c.Connection {
		if c.Connection[i].Color == (color.RGBA{}) {
			c.Connection[i].Color = defaultColorCycle[i%len(defaultColorCycle)]
		}
	}
	if c.Highlight != nil {
		if c.Highlight.Color == (color.RGBA{}) {
			c.Highlight.Color = color.RGBA{255, 153, 51, 255}
		}
		if c.Highlight.Scale <= 0 {
			c.Highlight.Scale = 1.35
		}
		if c.Highlight.DotSize <= 0 {
			c.Highlight.DotSize = c.DotSize * 1.4
		}
		if c.Highlight.DotDensity <= 0 {
			c.Highlight.DotDensity = 0.35
		}
	}
}
