package pricing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const fetchMaxRetries = 3

// Fetch downloads a catalog as JSON from a remote URL, completes derived
// fields and validates. This is the remote-refresh path for catalog updates;
// the static tables remain the offline default.
func Fetch(url string) (Catalog, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = fetchMaxRetries
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch catalog from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Failed to fetch catalog from %s: status %d", url, resp.StatusCode)
	}

	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("Failed to read catalog response: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(contents, &catalog); err != nil {
		return nil, fmt.Errorf("Failed to parse catalog JSON: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("fetched catalog is empty")
	}

	catalog.complete()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
