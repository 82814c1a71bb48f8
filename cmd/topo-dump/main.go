// topo-dump fetches a boundary-topology document, decodes one object or
// country out of it and writes the rings back out as GeoJSON. Useful for
// eyeballing what the engine will classify against.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/sudorandom/dot-globe/pkg/sources"
	"github.com/sudorandom/dot-globe/pkg/topo"
)

var (
	urlFlag     = flag.String("url", sources.LandTopologyURL, "Topology document URL")
	objectFlag  = flag.String("object", "land", "Object name to decode")
	countryFlag = flag.String("country", "", "Restrict to this country id (requires a countries document)")
	outFlag     = flag.String("o", "", "Output file (default stdout)")
	cacheFlag   = flag.String("cache", "", "Optional on-disk cache directory")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	repo := sources.NewRepositoryWithURLs(map[string]string{"doc": *urlFlag}, *cacheFlag)
	defer repo.Close()

	doc, err := repo.GetOrFetch("doc")
	if err != nil {
		log.Fatalf("Failed to fetch topology: %v", err)
	}

	var rings []*topo.Ring
	if *countryFlag != "" {
		rings = topo.DecodeCountry(doc, *objectFlag, *countryFlag)
	} else {
		rings = topo.DecodeObject(doc, *objectFlag)
	}
	log.Printf("Decoded %d rings from %q", len(rings), *objectFlag)

	data, err := topo.ToFeatureCollection(rings).MarshalJSON()
	if err != nil {
		log.Fatalf("Failed to marshal GeoJSON: %v", err)
	}

	out := os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(data); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
