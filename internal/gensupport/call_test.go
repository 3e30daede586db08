package gensupport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
)

var widgetsGet = &canonical.Operation{ID: "demo.widgets.get", Method: http.MethodGet, Path: "v1/{+name}"}
var widgetsCreate = &canonical.Operation{ID: "demo.widgets.create", Method: http.MethodPost, Path: "v1/projects/{project}/widgets"}

type widget struct {
	googleapi.ServerResponse `json:"-"`
	Name                     string `json:"name,omitempty"`
	Size                     int64  `json:"size,omitempty,string"`
}

func TestCallDoExpandsPathAndQuery(t *testing.T) {
	var gotPath, gotRawPath, gotQuery, gotUA, gotTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		gotTrace = r.Header.Get("X-Trace")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"widgets/w 1","size":"9007199254740993"}`)
	}))
	defer srv.Close()

	call := NewCall(srv.Client(), srv.URL+"/", "gapi-test")
	call.Params().Set("view", "FULL")
	call.SetFields([]googleapi.Field{"name", "size"})
	call.Header().Set("X-Trace", "t-1")
	res, err := call.Do(widgetsGet, map[string]string{"name": "widgets/w 1"}, nil, []googleapi.CallOption{googleapi.QuotaUser("qu")})
	require.NoError(t, err)
	got, err := Decode(res, &widget{ServerResponse: ServerResponse(res)})
	require.NoError(t, err)

	require.Equal(t, "/v1/widgets/w 1", gotPath)
	require.Equal(t, "/v1/widgets/w%201", gotRawPath)
	require.Equal(t, "alt=json&fields=name%2Csize&prettyPrint=false&quotaUser=qu&view=FULL", gotQuery)
	require.Equal(t, "gapi-test", gotUA)
	require.Equal(t, "t-1", gotTrace)
	require.Equal(t, "widgets/w 1", got.Name)
	require.Equal(t, int64(9007199254740993), got.Size)
	require.Equal(t, http.StatusOK, got.HTTPStatusCode)
}

func TestCallDoSendsJSONBody(t *testing.T) {
	var body map[string]any
	var contentType, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	call := NewCall(srv.Client(), srv.URL+"/", "")
	res, err := call.Do(widgetsCreate, map[string]string{"project": "a/b"}, &widget{Name: "w", Size: 42}, nil)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, "/v1/projects/a%2Fb/widgets", path)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, map[string]any{"name": "w", "size": "42"}, body)
}

func TestCallDoErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == "etag-1" {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"widget not found"}}`)
	}))
	defer srv.Close()

	call := NewCall(srv.Client(), srv.URL+"/", "")
	call.SetIfNoneMatch("etag-1")
	_, err := call.Do(widgetsGet, map[string]string{"name": "w"}, nil, nil)
	require.True(t, googleapi.IsNotModified(err))

	call = NewCall(srv.Client(), srv.URL+"/", "")
	_, err = call.Do(widgetsGet, map[string]string{"name": "w"}, nil, nil)
	var gerr *googleapi.Error
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, http.StatusNotFound, gerr.Code)
	require.Equal(t, "widget not found", gerr.Message)
}

func TestCallDoCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	call := NewCall(srv.Client(), srv.URL+"/", "")
	call.SetContext(ctx)
	_, err := call.Do(widgetsGet, map[string]string{"name": "w"}, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSendRequestRejectsAcceptEncoding(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")
	_, err = SendRequest(context.Background(), http.DefaultClient, req)
	require.Error(t, err)
}
