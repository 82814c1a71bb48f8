package sources

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const squareTopology = `{
	"type": "Topology",
	"transform": {"scale": [1, 1], "translate": [0, 0]},
	"objects": {"land": {"type": "Polygon", "arcs": [[0]]}},
	"arcs": [[[0,0],[10,0],[0,10],[-10,0],[0,-10]]]
}`

func TestGetOrFetchCachesInProcess(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(squareTopology))
	}))
	defer srv.Close()

	repo := NewRepositoryWithURLs(map[string]string{"land": srv.URL}, "")
	doc1, err := repo.GetOrFetch("land")
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	doc2, err := repo.GetOrFetch("land")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if doc1 != doc2 {
		t.Error("second fetch returned a different document instance")
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
	if len(doc1.Arcs) != 1 || doc1.Objects["land"] == nil {
		t.Errorf("document decoded incompletely: %+v", doc1)
	}
}

func TestGetOrFetchUnknownDocument(t *testing.T) {
	repo := NewRepositoryWithURLs(map[string]string{}, "")
	if _, err := repo.GetOrFetch("oceans"); err == nil {
		t.Error("expected error for unconfigured document name")
	}
}

func TestGetOrFetchMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	repo := NewRepositoryWithURLs(map[string]string{"land": srv.URL}, "")
	if _, err := repo.GetOrFetch("land"); err == nil {
		t.Error("expected error for malformed document body")
	}
}

func TestGetOrFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	repo := NewRepositoryWithURLs(map[string]string{"land": srv.URL}, "")
	if _, err := repo.GetOrFetch("land"); err == nil {
		t.Error("expected error for non-200 response")
	}
}
