package discovery

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	factchecktools "gapi/factchecktools/v1alpha1"
	"gapi/internal/canonical"
)

func TestDiffMatchesBoundCatalog(t *testing.T) {
	live, err := ParseToCanonical(context.Background(), loadFixture(t), "factchecktools", "")
	require.NoError(t, err)
	drifts := Diff(factchecktools.Catalog(), live)
	require.Empty(t, drifts)
	require.False(t, HasBreaking(drifts))
}

func TestDiffReportsChanges(t *testing.T) {
	bound := canonical.NewService("demo", "v1", "Demo", "https://demo/",
		&canonical.Operation{ID: "things.get", Method: http.MethodGet, Path: "v1/{+name}", ResponseRef: "Thing"},
		&canonical.Operation{ID: "things.patch", Method: http.MethodPatch, Path: "v1/{+name}", RequestRef: "Thing", ResponseRef: "Thing"},
		&canonical.Operation{ID: "things.gone", Method: http.MethodDelete, Path: "v1/{+name}"},
	)
	live := canonical.NewService("demo", "v1", "Demo", "https://demo/",
		&canonical.Operation{ID: "things.get", Method: "get", Path: "v2/{+name}", ResponseRef: "ThingV2"},
		&canonical.Operation{ID: "things.patch", Method: http.MethodPut, Path: "v1/{+name}", RequestRef: "Patch", ResponseRef: "Thing"},
		&canonical.Operation{ID: "things.list", Method: http.MethodGet, Path: "v1/things"},
	)

	drifts := Diff(bound, live)
	require.Equal(t, []Drift{
		{API: "demo", Method: "things.get", Kind: DriftPath, Bound: "v1/{+name}", Live: "v2/{+name}"},
		{API: "demo", Method: "things.get", Kind: DriftResponse, Bound: "Thing", Live: "ThingV2"},
		{API: "demo", Method: "things.gone", Kind: DriftMissing},
		{API: "demo", Method: "things.patch", Kind: DriftHTTPMethod, Bound: "PATCH", Live: "PUT"},
		{API: "demo", Method: "things.patch", Kind: DriftRequest, Bound: "Thing", Live: "Patch"},
		{API: "demo", Method: "things.list", Kind: DriftUnbound},
	}, drifts)
	require.True(t, HasBreaking(drifts))
	require.False(t, HasBreaking(drifts[5:]))
	require.Equal(t, "demo.things.gone: missing upstream", drifts[2].String())
	require.Equal(t, `demo.things.patch: http-method "PATCH" -> "PUT"`, drifts[3].String())
	require.Equal(t, "demo.things.list: not bound", drifts[5].String())
}
