package discovery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
)

// Fetcher downloads Discovery documents, consulting an optional Cache first.
type Fetcher struct {
	client *http.Client
	cache  *Cache
	logger *slog.Logger
}

// NewFetcher returns a Fetcher that uses client, or http.DefaultClient when
// client is nil. cache may be nil.
func NewFetcher(client *http.Client, cache *Cache, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, cache: cache, logger: logger}
}

// Fetch returns the raw document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		body, ok, err := f.cache.Get(ctx, url)
		if err != nil {
			f.logger.Warn("discovery cache read failed", "url", url, "error", err)
		} else if ok {
			f.logger.Debug("discovery cache hit", "url", url)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch discovery document: %w", err)
	}
	defer googleapi.CloseBody(resp)
	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("fetch discovery document %s: %w", url, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read discovery document: %w", err)
	}
	if !LooksLikeDiscovery(data) {
		return nil, fmt.Errorf("fetch discovery document %s: not a discovery document", url)
	}

	if f.cache != nil {
		if err := f.cache.Put(ctx, url, data); err != nil {
			f.logger.Warn("discovery cache write failed", "url", url, "error", err)
		}
	}
	return data, nil
}

// FetchService fetches the document at url and converts it to a canonical
// Service named apiName.
func (f *Fetcher) FetchService(ctx context.Context, url, apiName string) (*canonical.Service, error) {
	raw, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseToCanonical(ctx, raw, apiName, "")
}
