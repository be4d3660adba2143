package modelhash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// byHashPath is the registry endpoint that resolves a file digest to a model version.
const byHashPath = "/api/v1/model-versions/by-hash/"

// registryClient handles HTTP communication with the model registry.
type registryClient struct {
	// baseURL is the base URL of the registry (e.g., "https://civitai.com").
	baseURL string

	// httpClient is used for HTTP requests.
	httpClient HTTPClient

	// logger receives diagnostic messages. May be nil.
	logger Logger
}

// newRegistryClient creates a new registry client.
// The baseURL is normalized by removing any trailing slashes.
func newRegistryClient(baseURL string, client HTTPClient, logger Logger) *registryClient {
	return &registryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

// versionURL returns the by-hash lookup URL for digest.
func (r *registryClient) versionURL(digest string) string {
	return r.baseURL + byHashPath + digest
}

// fetchVersionByHash performs one GET for digest.
// A 200 response yields its body compacted to a single line and found=true.
// Any other status yields NotFoundBody and found=false. Transport failures
// are returned as errors and never mapped to NotFoundBody.
func (r *registryClient) fetchVersionByHash(ctx context.Context, digest string) (body json.RawMessage, found bool, err error) {
	url := r.versionURL(digest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("fetching model version %s: %w: %w", digest, ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if r.logger != nil {
		r.logger.Debug("registry response", "url", url, "status", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		return NotFoundBody(), false, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading model version %s: %w: %w", digest, ErrNetworkError, err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, false, fmt.Errorf("parsing model version %s: %w", digest, ErrRegistryError)
	}

	return json.RawMessage(buf.Bytes()), true, nil
}
