package factchecktools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type recorded struct {
	method string
	path   string
	query  map[string][]string
	body   []byte
	header http.Header
}

func newTestService(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Service, *[]recorded) {
	t.Helper()
	var reqs []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		reqs = append(reqs, recorded{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.Query(),
			body:   body,
			header: r.Header.Clone(),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	svc, err := New(srv.Client())
	require.NoError(t, err)
	svc.BasePath = srv.URL + "/"
	return svc, &reqs
}

func TestNewRejectsNilClient(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestClaimsSearch(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"claims":[{"text":"Crime has doubled","claimDate":"2020-01-02T03:04:05Z","claimReview":[{"textualRating":"False","publisher":{"site":"example.org"}}]}],"nextPageToken":""}`)
	})

	res, err := svc.Claims.Search().Query("crime").LanguageCode("en").MaxAgeDays(30).PageSize(5).Do()
	require.NoError(t, err)
	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	require.Equal(t, http.MethodGet, got.method)
	require.Equal(t, "/v1alpha1/claims:search", got.path)
	require.Equal(t, []string{"crime"}, got.query["query"])
	require.Equal(t, []string{"30"}, got.query["maxAgeDays"])
	require.Equal(t, []string{"5"}, got.query["pageSize"])
	require.Equal(t, []string{"json"}, got.query["alt"])

	require.Equal(t, http.StatusOK, res.HTTPStatusCode)
	require.Len(t, res.Claims, 1)
	require.Equal(t, "Crime has doubled", res.Claims[0].Text)
	require.Equal(t, 2020, res.Claims[0].ClaimDate.Year())
	require.Equal(t, "example.org", res.Claims[0].ClaimReview[0].Publisher.Site)
}

func TestClaimsImageSearchPages(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pageToken") {
		case "":
			io.WriteString(w, `{"results":[{"claim":{"text":"a"}}],"nextPageToken":"p2"}`)
		case "p2":
			io.WriteString(w, `{"results":[{"claim":{"text":"b"}}]}`)
		default:
			http.Error(w, "bad token", http.StatusBadRequest)
		}
	})

	var texts []string
	err := svc.Claims.ImageSearch().ImageUri("https://example.org/a.png").Pages(context.Background(),
		func(page *GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse) error {
			for _, r := range page.Results {
				texts = append(texts, r.Claim.Text)
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, texts)
	require.Len(t, *reqs, 2)
	require.Equal(t, "/v1alpha1/claims:imageSearch", (*reqs)[0].path)
	require.Equal(t, []string{"https://example.org/a.png"}, (*reqs)[1].query["imageUri"])
}

func TestPagesCreateSendsBody(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"name":"pages/123","versionId":"v1"}`)
	})

	page := &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		PageUrl: "https://example.org/check",
		ClaimReviewMarkups: []*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkup{{
			ClaimReviewed: "The moon is cheese",
			Rating:        &GoogleFactcheckingFactchecktoolsV1alpha1ClaimRating{BestRating: 5, RatingValue: 1, WorstRating: 1},
		}},
	}
	res, err := svc.Pages.Create(page).Do()
	require.NoError(t, err)
	require.Equal(t, "pages/123", res.Name)

	got := (*reqs)[0]
	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "/v1alpha1/pages", got.path)
	require.Equal(t, "application/json", got.header.Get("Content-Type"))
	var sent map[string]any
	require.NoError(t, json.Unmarshal(got.body, &sent))
	require.Equal(t, "https://example.org/check", sent["pageUrl"])
	require.NotContains(t, sent, "name")
}

func TestPagesUpdateAndDeleteExpandName(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	_, err := svc.Pages.Update("pages/42", &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{Name: "pages/42"}).Do()
	require.NoError(t, err)
	_, err = svc.Pages.Delete("pages/42").Do()
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, (*reqs)[0].method)
	require.Equal(t, "/v1alpha1/pages/42", (*reqs)[0].path)
	require.Equal(t, http.MethodDelete, (*reqs)[1].method)
	require.Equal(t, "/v1alpha1/pages/42", (*reqs)[1].path)
	require.Empty(t, (*reqs)[1].body)
}

func TestPagesListQuery(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"claimReviewMarkupPages":[{"name":"pages/1"}]}`)
	})

	res, err := svc.Pages.List().Organization("org").Url("https://example.org").Offset(0).Do()
	require.NoError(t, err)
	require.Len(t, res.ClaimReviewMarkupPages, 1)
	q := (*reqs)[0].query
	require.Equal(t, []string{"org"}, q["organization"])
	require.Equal(t, []string{"0"}, q["offset"])
	require.Equal(t, []string{"https://example.org"}, q["url"])
}

func TestPagesGetErrors(t *testing.T) {
	svc, reqs := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == "etag-1" {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"code":404,"message":"page not found"}}`)
	})

	_, err := svc.Pages.Get("pages/1").IfNoneMatch("etag-1").Do()
	require.True(t, googleapi.IsNotModified(err))

	_, err = svc.Pages.Get("pages/missing").Do()
	var gerr *googleapi.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, http.StatusNotFound, gerr.Code)
	require.Equal(t, "page not found", gerr.Message)
	require.Len(t, *reqs, 2)
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Equal(t, "factchecktools", cat.Name)
	require.Equal(t, "v1alpha1", cat.Version)
	require.Len(t, cat.Operations, 7)
	op := cat.Find("pages.update")
	require.NotNil(t, op)
	require.Equal(t, http.MethodPut, op.Method)
	require.Equal(t, "factchecktools__pages_update", op.ToolName)
}
