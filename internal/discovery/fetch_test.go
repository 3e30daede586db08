package discovery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"gapi/internal/logging"
)

func TestFetcherUsesCache(t *testing.T) {
	fixture := loadFixture(t)
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.Header.Get("Accept") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer server.Close()

	cache, err := OpenCache(":memory:", time.Hour)
	require.NoError(t, err)
	defer cache.Close()

	f := NewFetcher(server.Client(), cache, logging.Discard())
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc, err := f.FetchService(ctx, server.URL+"/discovery/v1/apis/factchecktools/v1alpha1/rest", "factchecktools")
		require.NoError(t, err)
		require.Len(t, svc.Operations, 7)
	}
	require.Equal(t, 1, hits)
}

func TestFetcherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"no such api"}}`))
		default:
			_, _ = w.Write([]byte(`{"kind":"something#else"}`))
		}
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), nil, nil)
	_, err := f.Fetch(context.Background(), server.URL+"/missing")
	var gerr *googleapi.Error
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, http.StatusNotFound, gerr.Code)

	_, err = f.Fetch(context.Background(), server.URL+"/other")
	require.ErrorContains(t, err, "not a discovery document")
}
