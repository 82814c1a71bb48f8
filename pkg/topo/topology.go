// Package topo decodes compressed boundary-topology documents into flat
// polygon ring lists and classifies points against them.
package topo

import (
	"encoding/json"
	"strings"
)

// Topology is the compressed boundary document: shared arcs are stored once as
// delta-encoded polylines and referenced (forward or reversed) from the rings
// of each named object.
type Topology struct {
	Type      string               `json:"type"`
	Transform *Transform           `json:"transform,omitempty"`
	Objects   map[string]*Geometry `json:"objects"`
	Arcs      [][][]float64        `json:"arcs"`
}

// Transform is the optional linear quantization transform applied to every
// decoded arc coordinate.
type Transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type Geometry struct {
	Type       string          `json:"type"`
	ID         json.RawMessage `json:"id,omitempty"`
	Arcs       json.RawMessage `json:"arcs,omitempty"`
	Geometries []*Geometry     `json:"geometries,omitempty"`
}

// IDString returns the geometry identifier as a plain string regardless of
// whether the document encoded it as a JSON number or a JSON string.
func (g *Geometry) IDString() string {
	if len(g.ID) == 0 {
		return ""
	}
	return strings.Trim(string(g.ID), `"`)
}

// DecodeArcs reconstructs the absolute coordinates referenced by a list of
// signed arc indices. A negative index is the one's-complement of the true
// index and means the arc is traversed in reverse. Consecutive arcs share
// their joint vertex, which is emitted only once.
func DecodeArcs(t *Topology, indices []int) []Point {
	var out []Point
	for _, idx := range indices {
		reversed := false
		if idx < 0 {
			idx = ^idx
			reversed = true
		}
		if idx >= len(t.Arcs) {
			continue
		}
		seg := decodeArc(t, t.Arcs[idx])
		if reversed {
			for i, j := 0, len(seg)-1; i < j; i, j = i+1, j-1 {
				seg[i], seg[j] = seg[j], seg[i]
			}
		}
		if len(out) > 0 && len(seg) > 0 {
			seg = seg[1:]
		}
		out = append(out, seg...)
	}
	return out
}

func decodeArc(t *Topology, arc [][]float64) []Point {
	pts := make([]Point, 0, len(arc))
	x, y := 0.0, 0.0
	for _, d := range arc {
		if len(d) < 2 {
			continue
		}
		if t.Transform != nil {
			// Quantized documents delta-encode each vertex.
			x += d[0]
			y += d[1]
			pts = append(pts, Point{
				x*t.Transform.Scale[0] + t.Transform.Translate[0],
				y*t.Transform.Scale[1] + t.Transform.Translate[1],
			})
		} else {
			pts = append(pts, Point{d[0], d[1]})
		}
	}
	return pts
}

// DecodeObject decodes the named object into a flat list of rings. Polygon,
// MultiPolygon and GeometryCollection shapes are all flattened; outer and
// inner rings are not distinguished. A missing object name yields an empty
// list.
func DecodeObject(t *Topology, name string) []*Ring {
	g, ok := t.Objects[name]
	if !ok {
		return nil
	}
	return decodeGeometry(t, g, nil)
}

// DecodeCountry decodes only the geometries inside the named object whose
// identifier matches countryID. Identifiers are compared as strings, so a
// numeric id in the document matches its decimal representation. An unmatched
// id yields an empty list.
func DecodeCountry(t *Topology, name, countryID string) []*Ring {
	g, ok := t.Objects[name]
	if !ok {
		return nil
	}
	var rings []*Ring
	var walk func(g *Geometry)
	walk = func(g *Geometry) {
		if g.Type == "GeometryCollection" {
			for _, child := range g.Geometries {
				walk(child)
			}
			return
		}
		if g.IDString() == countryID {
			rings = decodeGeometry(t, g, rings)
		}
	}
	walk(g)
	return rings
}

func decodeGeometry(t *Topology, g *Geometry, rings []*Ring) []*Ring {
	switch g.Type {
	case "Polygon":
		var arcRings [][]int
		if json.Unmarshal(g.Arcs, &arcRings) != nil {
			return rings
		}
		for _, indices := range arcRings {
			rings = appendRing(rings, DecodeArcs(t, indices))
		}
	case "MultiPolygon":
		var polys [][][]int
		if json.Unmarshal(g.Arcs, &polys) != nil {
			return rings
		}
		for _, poly := range polys {
			for _, indices := range poly {
				rings = appendRing(rings, DecodeArcs(t, indices))
			}
		}
	case "GeometryCollection":
		for _, child := range g.Geometries {
			rings = decodeGeometry(t, child, rings)
		}
	}
	return rings
}

func appendRing(rings []*Ring, pts []Point) []*Ring {
	// Degenerate rings cannot enclose anything.
	if len(pts) < 3 {
		return rings
	}
	return append(rings, &Ring{Points: pts})
}
