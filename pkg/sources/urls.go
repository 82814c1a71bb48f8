package sources

const (
	LandTopologyURL      = "https://cdn.jsdelivr.net/npm/world-atlas@2/land-110m.json"
	CountriesTopologyURL = "https://cdn.jsdelivr.net/npm/world-atlas@2/countries-110m.json"
)
