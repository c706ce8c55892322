package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPSource fetches datasets as CSV objects from an object-store
// gateway exposing <base_url>/<dataset>.csv.
type HTTPSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPSource creates a source with optional proxy support.
func NewHTTPSource(baseURL, apiKey, proxyURL string) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *HTTPSource) Name() string { return "http:" + s.BaseURL }

func (s *HTTPSource) Fetch(ctx context.Context, dataset string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/%s.csv", s.BaseURL, dataset)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", dataset, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch %s: status %d, body: %s", dataset, resp.StatusCode, string(body))
	}
	return parseCSV(resp.Body, dataset)
}
