package runtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/discovery"
	"gapi/internal/logging"
	"gapi/internal/ratelimit"
	"gapi/internal/redact"
	"gapi/internal/runtime"
)

type captured struct {
	method string
	path   string
	query  string
	body   string
}

func newServer(t *testing.T, status int, reply string) (*httptest.Server, chan captured) {
	t.Helper()
	ch := make(chan captured, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		ch <- captured{method: r.Method, path: r.URL.EscapedPath(), query: r.URL.RawQuery, body: string(data)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)
	return server, ch
}

func factcheckService(t *testing.T, baseURL string) *canonical.Service {
	t.Helper()
	raw, err := os.ReadFile("../discovery/testdata/factchecktools_v1alpha1.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	svc, err := discovery.ParseToCanonical(context.Background(), raw, "factchecktools", baseURL+"/")
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return svc
}

func newExecutor(secrets ...string) *runtime.Executor {
	r := redact.NewRedactor()
	r.AddSecrets(secrets)
	return runtime.NewExecutor(nil, logging.Discard(), r, 0)
}

func TestExecuteQueryParameters(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{"claims":[{"text":"sky is green"}]}`)
	svc := factcheckService(t, server.URL)
	op := svc.Find("claims.search")
	if op == nil {
		t.Fatalf("claims.search not found")
	}

	result, err := newExecutor().Execute(context.Background(), svc, op, map[string]any{
		"query":    "sky",
		"pageSize": 10,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	got := <-ch
	if got.method != http.MethodGet {
		t.Fatalf("unexpected method: %s", got.method)
	}
	if got.path != "/v1alpha1/claims:search" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	if got.query != "alt=json&pageSize=10&prettyPrint=false&query=sky" {
		t.Fatalf("unexpected query: %s", got.query)
	}
	if result.Status != http.StatusOK || !strings.HasPrefix(result.ContentType, "application/json") {
		t.Fatalf("unexpected result: %+v", result)
	}
	body := result.Body.(map[string]any)
	claims := body["claims"].([]any)
	if len(claims) != 1 {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestExecuteReservedPathAndBody(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{"name":"pages/abc"}`)
	svc := factcheckService(t, server.URL)
	op := svc.Find("pages.update")

	_, err := newExecutor().Execute(context.Background(), svc, op, map[string]any{
		"name": "pages/abc",
		"body": map[string]any{"pageUrl": "https://example.com/review"},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	got := <-ch
	if got.method != http.MethodPut {
		t.Fatalf("unexpected method: %s", got.method)
	}
	if got.path != "/v1alpha1/pages/abc" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	var sent map[string]any
	if err := json.Unmarshal([]byte(got.body), &sent); err != nil {
		t.Fatalf("body is not JSON: %q", got.body)
	}
	if sent["pageUrl"] != "https://example.com/review" {
		t.Fatalf("unexpected body: %v", sent)
	}
}

func TestExecuteRejectsInvalidArguments(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{}`)
	svc := factcheckService(t, server.URL)
	exec := newExecutor()

	cases := []struct {
		name string
		op   string
		args map[string]any
	}{
		{name: "unknown parameter", op: "claims.search", args: map[string]any{"bogus": "x"}},
		{name: "wrong type", op: "claims.search", args: map[string]any{"pageSize": "ten"}},
		{name: "missing required path", op: "pages.get", args: map[string]any{}},
		{name: "missing body", op: "pages.create", args: map[string]any{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := exec.Execute(context.Background(), svc, svc.Find(tc.op), tc.args)
			if err == nil || !strings.Contains(err.Error(), "invalid arguments") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	select {
	case got := <-ch:
		t.Fatalf("request sent despite invalid arguments: %+v", got)
	default:
	}
}

func TestExecuteHTTPError(t *testing.T) {
	server, _ := newServer(t, http.StatusNotFound, `{"error":{"code":404,"message":"page not found"}}`)
	svc := factcheckService(t, server.URL)

	_, err := newExecutor().Execute(context.Background(), svc, svc.Find("pages.get"), map[string]any{"name": "pages/missing"})
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected googleapi.Error, got %T %v", err, err)
	}
	if gerr.Code != http.StatusNotFound || gerr.Message != "page not found" {
		t.Fatalf("unexpected error: %+v", gerr)
	}
}

func TestExecuteEmptyAndNonJSONBodies(t *testing.T) {
	server, _ := newServer(t, http.StatusOK, ``)
	svc := factcheckService(t, server.URL)
	result, err := newExecutor().Execute(context.Background(), svc, svc.Find("pages.delete"), map[string]any{"name": "pages/abc"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if result.Body != nil {
		t.Fatalf("expected nil body, got %v", result.Body)
	}

	text, _ := newServer(t, http.StatusOK, `plain text`)
	svc = factcheckService(t, text.URL)
	result, err = newExecutor().Execute(context.Background(), svc, svc.Find("pages.get"), map[string]any{"name": "pages/abc"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if result.Body != "plain text" {
		t.Fatalf("expected raw text body, got %v", result.Body)
	}
}

func TestExecuteHandBuiltOperation(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{}`)
	svc := &canonical.Service{Name: "content", BaseURL: server.URL + "/content/v2.1/"}
	op := &canonical.Operation{
		ID:     "productstatuses.get",
		Method: http.MethodGet,
		Path:   "{merchantId}/productstatuses/{productId}",
		Parameters: []canonical.Parameter{
			{Name: "merchantId", In: "path", Required: true},
			{Name: "productId", In: "path", Required: true},
			{Name: "destinations", In: "query", Repeated: true},
		},
	}
	_, err := newExecutor().Execute(context.Background(), svc, op, map[string]any{
		"merchantId":   "123",
		"productId":    "online:en:US:a/b",
		"destinations": []any{"Shopping", "SurfacesAcrossGoogle"},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	got := <-ch
	if got.path != "/content/v2.1/123/productstatuses/online%3Aen%3AUS%3Aa%2Fb" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	if got.query != "alt=json&destinations=Shopping&destinations=SurfacesAcrossGoogle&prettyPrint=false" {
		t.Fatalf("unexpected query: %s", got.query)
	}

	_, err = newExecutor().Execute(context.Background(), svc, op, map[string]any{"merchantId": "123"})
	if err == nil || !strings.Contains(err.Error(), "productId") {
		t.Fatalf("expected missing path parameter error, got %v", err)
	}
}

func TestExecuteQuotaUserOption(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{}`)
	svc := factcheckService(t, server.URL)
	_, err := newExecutor().Execute(context.Background(), svc, svc.Find("pages.list"), nil, googleapi.QuotaUser("team-a"))
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	got := <-ch
	if !strings.Contains(got.query, "quotaUser=team-a") {
		t.Fatalf("quotaUser not sent: %s", got.query)
	}
}

func TestArgsFromStrings(t *testing.T) {
	op := &canonical.Operation{
		Parameters: []canonical.Parameter{
			{Name: "pageSize", In: "query", Schema: map[string]any{"type": "integer"}},
			{Name: "force", In: "query", Schema: map[string]any{"type": "boolean"}},
			{Name: "destinations", In: "query", Repeated: true, Schema: map[string]any{"type": "array", "items": map[string]any{"type": "string"}}},
			{Name: "name", In: "path", Schema: map[string]any{"type": "string"}},
		},
	}
	args, err := runtime.ArgsFromStrings(op, map[string][]string{
		"pageSize":     {"5", "25"},
		"force":        {"true"},
		"destinations": {"Shopping", "Actions"},
		"name":         {"pages/1"},
		"extra":        {"x"},
	})
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if args["pageSize"] != int64(25) || args["force"] != true || args["name"] != "pages/1" || args["extra"] != "x" {
		t.Fatalf("unexpected args: %#v", args)
	}
	dest := args["destinations"].([]any)
	if len(dest) != 2 || dest[1] != "Actions" {
		t.Fatalf("unexpected destinations: %#v", dest)
	}

	if _, err := runtime.ArgsFromStrings(op, map[string][]string{"pageSize": {"many"}}); err == nil {
		t.Fatalf("expected integer parse error")
	}
}

func TestExecuteHonoursQuota(t *testing.T) {
	server, ch := newServer(t, http.StatusOK, `{}`)
	svc := factcheckService(t, server.URL)
	exec := newExecutor()
	exec.SetLimiter(ratelimit.New(ratelimit.Limits{PerHour: 1}))

	if _, err := exec.Execute(context.Background(), svc, svc.Find("pages.list"), nil); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	<-ch
	_, err := exec.Execute(context.Background(), svc, svc.Find("pages.list"), nil)
	var qe *ratelimit.QuotaError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QuotaError, got %v", err)
	}
}
