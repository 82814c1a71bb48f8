// Package sources fetches the remote boundary-topology documents and caches
// them for the lifetime of the process.
package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/sudorandom/dot-globe/pkg/topo"
)

// Repository implements the engine's TopologyRepository contract: the first
// GetOrFetch per document blocks on the network (or the disk cache), every
// later call is served from process memory. Documents are never invalidated
// within a process.
type Repository struct {
	urls map[string]string

	mu   sync.Mutex
	docs map[string]*topo.Topology

	disk *DocCache
}

// NewRepository builds a repository over the default world-atlas documents.
// cacheDir is optional; when non-empty, fetched documents are persisted there.
func NewRepository(cacheDir string) *Repository {
	r := &Repository{
		urls: map[string]string{
			"land":      LandTopologyURL,
			"countries": CountriesTopologyURL,
		},
		docs: make(map[string]*topo.Topology),
	}
	if cacheDir != "" {
		disk, err := OpenDocCache(cacheDir)
		if err != nil {
			log.Printf("Disk cache unavailable at %s: %v", cacheDir, err)
		} else {
			r.disk = disk
		}
	}
	return r
}

// NewRepositoryWithURLs builds a repository over explicit document URLs,
// keyed by document name.
func NewRepositoryWithURLs(urls map[string]string, cacheDir string) *Repository {
	r := NewRepository(cacheDir)
	r.urls = urls
	return r
}

// Close releases the disk cache, if any.
func (r *Repository) Close() error {
	if r.disk != nil {
		return r.disk.Close()
	}
	return nil
}

// GetOrFetch returns the named topology document, fetching and caching it on
// first use.
func (r *Repository) GetOrFetch(name string) (*topo.Topology, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.docs[name]; ok {
		return doc, nil
	}
	url, ok := r.urls[name]
	if !ok {
		return nil, fmt.Errorf("no source configured for document %q", name)
	}

	data, fromDisk := r.loadDisk(url)
	if !fromDisk {
		var err error
		data, err = fetch(url)
		if err != nil {
			return nil, err
		}
		r.storeDisk(url, data)
	}

	var doc topo.Topology
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding topology %q: %w", name, err)
	}
	r.docs[name] = &doc
	return &doc, nil
}

func (r *Repository) loadDisk(key string) ([]byte, bool) {
	if r.disk == nil {
		return nil, false
	}
	return r.disk.Get(key)
}

func (r *Repository) storeDisk(key string, data []byte) {
	if r.disk == nil {
		return
	}
	if err := r.disk.Put(key, data); err != nil {
		log.Printf("Failed to persist %s to disk cache: %v", key, err)
	}
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Error closing response body: %v", err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
