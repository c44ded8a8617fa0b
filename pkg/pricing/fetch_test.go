package pricing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"gpu_model": "A10", "gpus": 1, "vram_per_gpu_gib": 24, "provider": "ALPHA", "price_per_hour": 0.90},
			{"gpu_model": "H100", "gpus": 2, "vram_per_gpu_gib": 80, "provider": "BETA", "price_per_hour": 4.58}
		]`))
	}))
	defer server.Close()

	catalog, err := Fetch(server.URL)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, 160.0, catalog[1].TotalVRAM)
	require.NoError(t, catalog.Validate())
}

func TestFetchRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"gpu_model": "A10", "gpus": 1, "vram_per_gpu_gib": 24, "provider": "ALPHA", "price_per_hour": 0.90}]`))
	}))
	defer server.Close()

	catalog, err := Fetch(server.URL)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, 3, attempts)
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Fetch(server.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestFetchEmptyCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := Fetch(server.URL)
	require.Error(t, err)
}

func TestFetchMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	_, err := Fetch(server.URL)
	require.Error(t, err)
}
