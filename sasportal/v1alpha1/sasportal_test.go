package sasportal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type hit struct {
	method string
	path   string
	query  map[string][]string
	body   string
}

func newTestService(t *testing.T, reply func(r *http.Request) string) (*Service, *[]hit) {
	t.Helper()
	var hits []hit
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		hits = append(hits, hit{method: r.Method, path: r.URL.EscapedPath(), query: r.URL.Query(), body: string(b)})
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, reply(r))
	}))
	t.Cleanup(srv.Close)
	svc, err := New(srv.Client())
	require.NoError(t, err)
	svc.BasePath = srv.URL + "/"
	return svc, &hits
}

func emptyReply(*http.Request) string { return `{}` }

func TestMethodRouting(t *testing.T) {
	tests := []struct {
		name   string
		do     func(s *Service) error
		method string
		path   string
	}{
		{"customers.get", func(s *Service) error { _, err := s.Customers.Get("customers/c1").Do(); return err },
			http.MethodGet, "/v1alpha1/customers/c1"},
		{"customers.list", func(s *Service) error { _, err := s.Customers.List().Do(); return err },
			http.MethodGet, "/v1alpha1/customers"},
		{"customers.patch", func(s *Service) error {
			_, err := s.Customers.Patch("customers/c1", &SasPortalCustomer{DisplayName: "Acme"}).Do()
			return err
		}, http.MethodPatch, "/v1alpha1/customers/c1"},
		{"customers.devices.create", func(s *Service) error {
			_, err := s.Customers.Devices.Create("customers/c1", &SasPortalDevice{FccId: "F1"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/customers/c1/devices"},
		{"customers.devices.createSigned", func(s *Service) error {
			_, err := s.Customers.Devices.CreateSigned("customers/c1", &SasPortalCreateSignedDeviceRequest{InstallerId: "i"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/customers/c1/devices:createSigned"},
		{"customers.devices.list", func(s *Service) error { _, err := s.Customers.Devices.List("customers/c1").Do(); return err },
			http.MethodGet, "/v1alpha1/customers/c1/devices"},
		{"customers.nodes.create", func(s *Service) error {
			_, err := s.Customers.Nodes.Create("customers/c1", &SasPortalNode{DisplayName: "n"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/customers/c1/nodes"},
		{"customers.nodes.list", func(s *Service) error { _, err := s.Customers.Nodes.List("customers/c1").Do(); return err },
			http.MethodGet, "/v1alpha1/customers/c1/nodes"},
		{"deployments.get", func(s *Service) error { _, err := s.Deployments.Get("deployments/d1").Do(); return err },
			http.MethodGet, "/v1alpha1/deployments/d1"},
		{"devices.delete", func(s *Service) error { _, err := s.Devices.Delete("devices/x").Do(); return err },
			http.MethodDelete, "/v1alpha1/devices/x"},
		{"devices.get", func(s *Service) error { _, err := s.Devices.Get("devices/x").Do(); return err },
			http.MethodGet, "/v1alpha1/devices/x"},
		{"devices.move", func(s *Service) error {
			_, err := s.Devices.Move("devices/x", &SasPortalMoveDeviceRequest{Destination: "nodes/n2"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/devices/x:move"},
		{"devices.patch", func(s *Service) error {
			_, err := s.Devices.Patch("devices/x", &SasPortalDevice{DisplayName: "d"}).Do()
			return err
		}, http.MethodPatch, "/v1alpha1/devices/x"},
		{"devices.signDevice", func(s *Service) error {
			_, err := s.Devices.SignDevice("devices/x", &SasPortalSignDeviceRequest{Device: &SasPortalDevice{Name: "devices/x"}}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/devices/x:signDevice"},
		{"devices.updateSigned", func(s *Service) error {
			_, err := s.Devices.UpdateSigned("devices/x", &SasPortalUpdateSignedDeviceRequest{EncodedDevice: []byte("jwt")}).Do()
			return err
		}, http.MethodPatch, "/v1alpha1/devices/x:updateSigned"},
		{"installer.generateSecret", func(s *Service) error {
			_, err := s.Installer.GenerateSecret(&SasPortalGenerateSecretRequest{}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/installer:generateSecret"},
		{"installer.validate", func(s *Service) error {
			_, err := s.Installer.Validate(&SasPortalValidateInstallerRequest{Secret: "s"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/installer:validate"},
		{"nodes.delete", func(s *Service) error { _, err := s.Nodes.Delete("nodes/n").Do(); return err },
			http.MethodDelete, "/v1alpha1/nodes/n"},
		{"nodes.get", func(s *Service) error { _, err := s.Nodes.Get("nodes/n").Do(); return err },
			http.MethodGet, "/v1alpha1/nodes/n"},
		{"nodes.move", func(s *Service) error {
			_, err := s.Nodes.Move("nodes/n", &SasPortalMoveNodeRequest{Destination: "customers/c2"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/nodes/n:move"},
		{"nodes.patch", func(s *Service) error {
			_, err := s.Nodes.Patch("nodes/n", &SasPortalNode{DisplayName: "n"}).Do()
			return err
		}, http.MethodPatch, "/v1alpha1/nodes/n"},
		{"policies.get", func(s *Service) error {
			_, err := s.Policies.Get(&SasPortalGetPolicyRequest{Resource: "customers/c1"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/policies:get"},
		{"policies.set", func(s *Service) error {
			_, err := s.Policies.Set(&SasPortalSetPolicyRequest{Resource: "customers/c1"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/policies:set"},
		{"policies.test", func(s *Service) error {
			_, err := s.Policies.Test(&SasPortalTestPermissionsRequest{Resource: "customers/c1"}).Do()
			return err
		}, http.MethodPost, "/v1alpha1/policies:test"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, hits := newTestService(t, emptyReply)
			require.NoError(t, tc.do(svc))
			require.Len(t, *hits, 1)
			require.Equal(t, tc.method, (*hits)[0].method)
			require.Equal(t, tc.path, (*hits)[0].path)
			require.NotNil(t, Catalog().Find(tc.name))
		})
	}
	require.Len(t, Catalog().Operations, len(tests))
}

func TestUpdateSignedEncodesBase64(t *testing.T) {
	svc, hits := newTestService(t, emptyReply)
	_, err := svc.Devices.UpdateSigned("devices/x", &SasPortalUpdateSignedDeviceRequest{
		EncodedDevice: []byte{0, 1, 2},
		InstallerId:   "cpi-1",
	}).Do()
	require.NoError(t, err)
	require.JSONEq(t, `{"encodedDevice":"AAEC","installerId":"cpi-1"}`, (*hits)[0].body)
}

func TestPoliciesGetDecodesEtag(t *testing.T) {
	svc, _ := newTestService(t, func(*http.Request) string {
		return `{"assignments":[{"role":"roles/owner","members":["user:a@example.com"]}],"etag":"AAEC"}`
	})
	p, err := svc.Policies.Get(&SasPortalGetPolicyRequest{Resource: "customers/c1"}).Do()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, p.Etag)
	require.Equal(t, "roles/owner", p.Assignments[0].Role)
	require.Equal(t, http.StatusOK, p.HTTPStatusCode)
}

func TestCustomersDevicesListPages(t *testing.T) {
	svc, hits := newTestService(t, func(r *http.Request) string {
		if r.URL.Query().Get("pageToken") == "" {
			return `{"devices":[{"name":"d1"}],"nextPageToken":"next"}`
		}
		return `{"devices":[{"name":"d2"}]}`
	})
	var names []string
	err := svc.Customers.Devices.List("customers/c1").Filter("sn=1").PageSize(1).Pages(context.Background(),
		func(page *SasPortalListDevicesResponse) error {
			for _, d := range page.Devices {
				names = append(names, d.Name)
			}
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d2"}, names)
	require.Equal(t, []string{"sn=1"}, (*hits)[1].query["filter"])
	require.Equal(t, []string{"next"}, (*hits)[1].query["pageToken"])
}

func TestPatchUpdateMask(t *testing.T) {
	svc, hits := newTestService(t, func(*http.Request) string { return `{"name":"nodes/n","displayName":"new"}` })
	n, err := svc.Nodes.Patch("nodes/n", &SasPortalNode{DisplayName: "new"}).UpdateMask("displayName").Do()
	require.NoError(t, err)
	require.Equal(t, "new", n.DisplayName)
	require.Equal(t, []string{"displayName"}, (*hits)[0].query["updateMask"])
}
