// Package vmmigration provides access to the VM Migration API.
//
// For product documentation, see: https://cloud.google.com/migrate/virtual-machines
//
// # Creating a client
//
// Usage example:
//
//	import "gapi/vmmigration/v1"
//	...
//	ctx := context.Background()
//	vmmigrationService, err := vmmigration.NewService(ctx)
//
// Long-running methods return an *Operation; poll it with
// Projects.Locations.Operations.Get until Done is set.
package vmmigration

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/option/internaloption"
	htransport "google.golang.org/api/transport/http"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

const apiId = "vmmigration:v1"
const apiName = "vmmigration"
const apiVersion = "v1"
const basePath = "https://vmmigration.googleapis.com/"
const mtlsBasePath = "https://vmmigration.mtls.googleapis.com/"

// OAuth2 scopes used by this API.
const (
	// See, edit, configure, and delete your Google Cloud data and see the
	// email address for your Google Account.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// NewService creates a new Service.
func NewService(ctx context.Context, opts ...option.ClientOption) (*Service, error) {
	scopesOption := internaloption.WithDefaultScopes(
		"https://www.googleapis.com/auth/cloud-platform",
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
	s.Projects = NewProjectsService(s)
	return s, nil
}

type Service struct {
	client    *http.Client
	BasePath  string // API endpoint base URL
	UserAgent string // optional additional User-Agent fragment

	Projects *ProjectsService
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

func NewProjectsService(s *Service) *ProjectsService {
	rs := &ProjectsService{s: s}
	rs.Locations = NewProjectsLocationsService(s)
	return rs
}

type ProjectsService struct {
	s *Service

	Locations *ProjectsLocationsService
}

func NewProjectsLocationsService(s *Service) *ProjectsLocationsService {
	rs := &ProjectsLocationsService{s: s}
	rs.Operations = NewProjectsLocationsOperationsService(s)
	rs.Sources = NewProjectsLocationsSourcesService(s)
	return rs
}

type ProjectsLocationsService struct {
	s *Service

	Operations *ProjectsLocationsOperationsService

	Sources *ProjectsLocationsSourcesService
}

func NewProjectsLocationsOperationsService(s *Service) *ProjectsLocationsOperationsService {
	rs := &ProjectsLocationsOperationsService{s: s}
	return rs
}

type ProjectsLocationsOperationsService struct {
	s *Service
}

func NewProjectsLocationsSourcesService(s *Service) *ProjectsLocationsSourcesService {
	rs := &ProjectsLocationsSourcesService{s: s}
	rs.MigratingVms = NewProjectsLocationsSourcesMigratingVmsService(s)
	rs.UtilizationReports = NewProjectsLocationsSourcesUtilizationReportsService(s)
	return rs
}

type ProjectsLocationsSourcesService struct {
	s *Service

	MigratingVms *ProjectsLocationsSourcesMigratingVmsService

	UtilizationReports *ProjectsLocationsSourcesUtilizationReportsService
}

func NewProjectsLocationsSourcesMigratingVmsService(s *Service) *ProjectsLocationsSourcesMigratingVmsService {
	rs := &ProjectsLocationsSourcesMigratingVmsService{s: s}
	return rs
}

type ProjectsLocationsSourcesMigratingVmsService struct {
	s *Service
}

func NewProjectsLocationsSourcesUtilizationReportsService(s *Service) *ProjectsLocationsSourcesUtilizationReportsService {
	rs := &ProjectsLocationsSourcesUtilizationReportsService{s: s}
	return rs
}

type ProjectsLocationsSourcesUtilizationReportsService struct {
	s *Service
}

// Catalog describes every method bound by this package.
func Catalog() *canonical.Service {
	return canonical.NewService(apiName, apiVersion, "VM Migration API", basePath,
		locationsGetOp,
		locationsListOp,
		operationsCancelOp,
		operationsDeleteOp,
		operationsGetOp,
		operationsListOp,
		sourcesCreateOp,
		sourcesDeleteOp,
		sourcesFetchInventoryOp,
		sourcesGetOp,
		sourcesListOp,
		sourcesPatchOp,
		migratingVmsCreateOp,
		migratingVmsDeleteOp,
		migratingVmsFinalizeMigrationOp,
		migratingVmsGetOp,
		migratingVmsListOp,
		migratingVmsPatchOp,
		migratingVmsPauseMigrationOp,
		migratingVmsResumeMigrationOp,
		migratingVmsStartMigrationOp,
		utilizationReportsCreateOp,
		utilizationReportsDeleteOp,
		utilizationReportsGetOp,
		utilizationReportsListOp,
	)
}
