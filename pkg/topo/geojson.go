package topo

import (
	geojson "github.com/paulmach/go.geojson"
)

// ToFeatureCollection converts a decoded ring set back into plain GeoJSON,
// one Polygon feature per ring. Inner/outer distinctions were flattened at
// decode time, so each ring stands alone.
func ToFeatureCollection(rings []*Ring) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range rings {
		coords := make([][]float64, 0, len(r.Points)+1)
		for _, p := range r.Points {
			coords = append(coords, []float64{p[0], p[1]})
		}
		// GeoJSON rings are explicitly closed.
		if len(coords) > 0 && (coords[0][0] != coords[len(coords)-1][0] || coords[0][1] != coords[len(coords)-1][1]) {
			coords = append(coords, []float64{coords[0][0], coords[0][1]})
		}
		fc.AddFeature(geojson.NewPolygonFeature([][][]float64{coords}))
	}
	return fc
}
