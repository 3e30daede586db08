// Package content provides access to the Content API for Shopping.
//
// For product documentation, see: https://developers.google.com/shopping-content/v2/
//
// # Creating a client
//
// Usage example:
//
//	import "gapi/content/v2.1"
//	...
//	ctx := context.Background()
//	contentService, err := content.NewService(ctx)
//
// Merchant and account identifiers are unsigned 64-bit values. They travel
// as decimal strings in request and response bodies.
package content

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/option/internaloption"
	htransport "google.golang.org/api/transport/http"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

const apiId = "content:v2.1"
const apiName = "content"
const apiVersion = "v2.1"
const basePath = "https://shoppingcontent.googleapis.com/content/v2.1/"
const mtlsBasePath = "https://shoppingcontent.mtls.googleapis.com/content/v2.1/"

// OAuth2 scopes used by this API.
const (
	// Manage your product listings and accounts for Google Shopping
	ContentScope = "https://www.googleapis.com/auth/content"
)

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	scopesOption := internaloption.WithDefaultScopes(
		"https://www.googleapis.com/auth/content",
	)
	// Prepend, so user-specified scopes win.
	opts = append([]option.ClientOption{scopesOption}, opts...)
	opts = append(opts, internaloption.WithDefaultEndpoint(basePath))
	opts = append(opts, internaloption.WithDefaultMTLSEndpoint(mtlsBasePath))
	client, endpoint, err := htransport.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	s, err := New(client)
	if err != nil {
		return nil, err
	}
	if endpoint != "" {
		s.BasePath = endpoint
	}
	return s, nil
}

// New creates a new Service. It uses the provided http.Client for requests.
//
// Deprecated: please use NewService instead.
func New(client *http.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	s := &Service{client: client, BasePath: basePath}
	s.Accounts = NewAccountsService(s)
	s.Products = NewProductsService(s)
	s.Productstatuses = NewProductstatusesService(s)
	return s, nil
}

type Service struct {
	client    *http.Client
	BasePath  string // API endpoint base URL
	UserAgent string // optional additional User-Agent fragment

	Accounts *AccountsService

	Products *ProductsService

	Productstatuses *ProductstatusesService
}

func (s *Service) userAgent() string {
	if s.UserAgent == "" {
		return googleapi.UserAgent
	}
	return googleapi.UserAgent + " " + s.UserAgent
}

func (s *Service) newCall() gensupport.Call {
	return gensupport.NewCall(s.client, s.BasePath, s.userAgent())
}

func NewAccountsService(s *Service) *AccountsService {
	rs := &AccountsService{s: s}
	return rs
}

type AccountsService struct {
	s *Service
}

func NewProductsService(s *Service) *ProductsService {
	rs := &ProductsService{s: s}
	return rs
}

type ProductsService struct {
	s *Service
}

func NewProductstatusesService(s *Service) *ProductstatusesService {
	rs := &ProductstatusesService{s: s}
	return rs
}

type ProductstatusesService struct {
	s *Service
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// Catalog describes every method bound by this package.
func Catalog() *canonical.Service {
	return canonical.NewService(apiName, apiVersion, "Content API for Shopping", basePath,
		accountsAuthinfoOp,
		accountsCustombatchOp,
		accountsDeleteOp,
		accountsGetOp,
		accountsInsertOp,
		accountsListOp,
		accountsUpdateOp,
		productsCustombatchOp,
		productsDeleteOp,
		productsGetOp,
		productsInsertOp,
		productsListOp,
		productsUpdateOp,
		productstatusesGetOp,
		productstatusesListOp,
	)
}
