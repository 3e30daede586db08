package content

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type hit struct {
	method string
	path   string
	query  map[string][]string
	body   string
}

func newTestService(t *testing.T, reply func(r *http.Request) (int, string)) (*Service, *[]hit) {
	t.Helper()
	var hits []hit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		hits = append(hits, hit{method: r.Method, path: r.URL.EscapedPath(), query: r.URL.Query(), body: string(b)})
		code, body := reply(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	svc, err := New(srv.Client())
	require.NoError(t, err)
	svc.BasePath = srv.URL + "/"
	return svc, &hits
}

func okReply(body string) func(*http.Request) (int, string) {
	return func(*http.Request) (int, string) { return http.StatusOK, body }
}

func TestMethodRouting(t *testing.T) {
	const merchant = uint64(123456789012)
	tests := []struct {
		name   string
		do     func(s *Service) error
		method string
		path   string
		body   string
	}{
		{"accounts.authinfo", func(s *Service) error { _, err := s.Accounts.Authinfo().Do(); return err },
			http.MethodGet, "/accounts/authinfo", ""},
		{"accounts.custombatch", func(s *Service) error {
			_, err := s.Accounts.Custombatch(&AccountsCustomBatchRequest{Entries: []*AccountsCustomBatchRequestEntry{
				{BatchId: 1, MerchantId: merchant, Method: "get", AccountId: 42},
			}}).Do()
			return err
		}, http.MethodPost, "/accounts/batch",
			`{"entries":[{"accountId":"42","batchId":1,"merchantId":"123456789012","method":"get"}]}`},
		{"accounts.delete", func(s *Service) error { return s.Accounts.Delete(merchant, 42).Do() },
			http.MethodDelete, "/123456789012/accounts/42", ""},
		{"accounts.get", func(s *Service) error { _, err := s.Accounts.Get(merchant, 42).Do(); return err },
			http.MethodGet, "/123456789012/accounts/42", ""},
		{"accounts.insert", func(s *Service) error {
			_, err := s.Accounts.Insert(merchant, &Account{Name: "sub"}).Do()
			return err
		}, http.MethodPost, "/123456789012/accounts", `{"name":"sub"}`},
		{"accounts.list", func(s *Service) error { _, err := s.Accounts.List(merchant).Do(); return err },
			http.MethodGet, "/123456789012/accounts", ""},
		{"accounts.update", func(s *Service) error {
			_, err := s.Accounts.Update(merchant, 42, &Account{Id: 42, Name: "sub"}).Do()
			return err
		}, http.MethodPut, "/123456789012/accounts/42", `{"id":"42","name":"sub"}`},
		{"products.custombatch", func(s *Service) error {
			_, err := s.Products.Custombatch(&ProductsCustomBatchRequest{Entries: []*ProductsCustomBatchRequestEntry{
				{BatchId: 7, MerchantId: merchant, Method: "delete", ProductId: "online:en:US:sku1"},
			}}).Do()
			return err
		}, http.MethodPost, "/products/batch",
			`{"entries":[{"batchId":7,"merchantId":"123456789012","method":"delete","productId":"online:en:US:sku1"}]}`},
		{"products.delete", func(s *Service) error { return s.Products.Delete(merchant, "sku1").Do() },
			http.MethodDelete, "/123456789012/products/sku1", ""},
		{"products.get", func(s *Service) error { _, err := s.Products.Get(merchant, "sku1").Do(); return err },
			http.MethodGet, "/123456789012/products/sku1", ""},
		{"products.insert", func(s *Service) error {
			_, err := s.Products.Insert(merchant, &Product{OfferId: "sku1", Multipack: 6}).Do()
			return err
		}, http.MethodPost, "/123456789012/products", `{"multipack":"6","offerId":"sku1"}`},
		{"products.list", func(s *Service) error { _, err := s.Products.List(merchant).Do(); return err },
			http.MethodGet, "/123456789012/products", ""},
		{"products.update", func(s *Service) error {
			_, err := s.Products.Update(merchant, "sku1", &Product{Title: "t"}).Do()
			return err
		}, http.MethodPatch, "/123456789012/products/sku1", `{"title":"t"}`},
		{"productstatuses.get", func(s *Service) error { _, err := s.Productstatuses.Get(merchant, "sku1").Do(); return err },
			http.MethodGet, "/123456789012/productstatuses/sku1", ""},
		{"productstatuses.list", func(s *Service) error { _, err := s.Productstatuses.List(merchant).Do(); return err },
			http.MethodGet, "/123456789012/productstatuses", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, hits := newTestService(t, okReply(`{}`))
			require.NoError(t, tc.do(svc))
			require.Len(t, *hits, 1)
			got := (*hits)[0]
			require.Equal(t, tc.method, got.method)
			require.Equal(t, tc.path, got.path)
			if tc.body == "" {
				require.Empty(t, got.body)
			} else {
				require.JSONEq(t, tc.body, got.body)
			}
			require.NotNil(t, Catalog().Find(tc.name))
		})
	}
	require.Len(t, Catalog().Operations, len(tests))
}

func TestProductIdWithColonsIsEscaped(t *testing.T) {
	svc, hits := newTestService(t, okReply(`{"id":"online:en:US:a/b"}`))
	p, err := svc.Products.Get(1, "online:en:US:a/b").Do()
	require.NoError(t, err)
	require.Equal(t, "online:en:US:a/b", p.Id)
	require.Equal(t, "/1/products/online%3Aen%3AUS%3Aa%2Fb", (*hits)[0].path)
}

func TestAuthinfoDecodesUint64Strings(t *testing.T) {
	svc, _ := newTestService(t, okReply(
		`{"kind":"content#accountsAuthInfoResponse","accountIdentifiers":[{"merchantId":"18446744073709551615"},{"aggregatorId":"42","merchantId":"0"}]}`))
	res, err := svc.Accounts.Authinfo().Do()
	require.NoError(t, err)
	require.Len(t, res.AccountIdentifiers, 2)
	require.Equal(t, uint64(18446744073709551615), res.AccountIdentifiers[0].MerchantId)
	require.Equal(t, uint64(42), res.AccountIdentifiers[1].AggregatorId)
	require.Equal(t, uint64(0), res.AccountIdentifiers[1].MerchantId)
}

func TestAccountsListQueryAndPages(t *testing.T) {
	svc, hits := newTestService(t, func(r *http.Request) (int, string) {
		if r.URL.Query().Get("pageToken") == "" {
			return http.StatusOK, `{"resources":[{"id":"1"}],"nextPageToken":"p2"}`
		}
		return http.StatusOK, `{"resources":[{"id":"2"}]}`
	})
	var ids []uint64
	err := svc.Accounts.List(9).Label(5).MaxResults(1).Name("shop").View("MERCHANT").
		Pages(context.Background(), func(page *AccountsListResponse) error {
			for _, a := range page.Resources {
				ids = append(ids, a.Id)
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, ids)
	require.Len(t, *hits, 2)
	q := (*hits)[0].query
	require.Equal(t, []string{"5"}, q["label"])
	require.Equal(t, []string{"1"}, q["maxResults"])
	require.Equal(t, []string{"shop"}, q["name"])
	require.Equal(t, []string{"MERCHANT"}, q["view"])
	require.Equal(t, []string{"p2"}, (*hits)[1].query["pageToken"])
}

func TestProductstatusesDestinations(t *testing.T) {
	svc, hits := newTestService(t, okReply(
		`{"productId":"sku1","destinationStatuses":[{"destination":"Shopping","approvedCountries":["US"]}]}`))
	st, err := svc.Productstatuses.Get(1, "sku1").Destinations("Shopping", "SurfacesAcrossGoogle").Do()
	require.NoError(t, err)
	require.Equal(t, []string{"US"}, st.DestinationStatuses[0].ApprovedCountries)
	require.Equal(t, []string{"Shopping", "SurfacesAcrossGoogle"}, (*hits)[0].query["destinations"])
}

func TestDeleteOptionalParams(t *testing.T) {
	svc, hits := newTestService(t, okReply(``))
	require.NoError(t, svc.Accounts.Delete(1, 2).Force(true).Do())
	require.NoError(t, svc.Products.Delete(1, "sku").FeedId(77).Do())
	require.Equal(t, []string{"true"}, (*hits)[0].query["force"])
	require.Equal(t, []string{"77"}, (*hits)[1].query["feedId"])
}

func TestCustombatchEntryErrors(t *testing.T) {
	svc, _ := newTestService(t, okReply(
		`{"entries":[{"batchId":1,"errors":{"code":404,"message":"not found","errors":[{"reason":"notFound"}]}},{"batchId":2,"product":{"offerId":"b"}}]}`))
	res, err := svc.Products.Custombatch(&ProductsCustomBatchRequest{}).Do()
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	require.Equal(t, int64(404), res.Entries[0].Errors.Code)
	require.Equal(t, "notFound", res.Entries[0].Errors.Errors[0].Reason)
	require.Equal(t, "b", res.Entries[1].Product.OfferId)
}

func TestServerError(t *testing.T) {
	svc, _ := newTestService(t, func(*http.Request) (int, string) {
		return http.StatusUnauthorized, `{"error":{"code":401,"message":"bad creds"}}`
	})
	_, err := svc.Accounts.Get(1, 2).Do()
	var gerr *googleapi.Error
	require.True(t, errors.As(err, &gerr))
	require.Equal(t, http.StatusUnauthorized, gerr.Code)
	require.Equal(t, "bad creds", gerr.Message)
}
