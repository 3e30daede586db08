package discovery

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	factchecktools "gapi/factchecktools/v1alpha1"
)

func TestToOpenAPIFromBoundCatalog(t *testing.T) {
	doc, err := ToOpenAPI(factchecktools.Catalog())
	require.NoError(t, err)
	require.Equal(t, "3.0.3", doc.OpenAPI)
	require.Equal(t, "Fact Check Tools API", doc.Info.Title)
	require.Equal(t, "v1alpha1", doc.Info.Version)
	require.Equal(t, "https://factchecktools.googleapis.com", doc.Servers[0].URL)

	item := doc.Paths["/v1alpha1/{name}"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	require.NotNil(t, item.Put)
	require.NotNil(t, item.Delete)
	require.Equal(t, "factchecktools__pages_get", item.Get.OperationID)
	require.Len(t, item.Get.Parameters, 1)
	name := item.Get.Parameters[0].Value
	require.Equal(t, "name", name.Name)
	require.Equal(t, "path", name.In)
	require.True(t, name.Required)

	require.NotNil(t, item.Put.RequestBody)
	body := item.Put.RequestBody.Value.Content.Get("application/json")
	require.Equal(t, "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage", body.Schema.Value.Title)

	require.NotNil(t, doc.Paths["/v1alpha1/claims:search"].Get)
	require.Nil(t, doc.Paths["/v1alpha1/claims:search"].Get.RequestBody)
}

func TestToOpenAPIFromDiscovery(t *testing.T) {
	svc, err := ParseToCanonical(context.Background(), loadFixture(t), "", "")
	require.NoError(t, err)
	doc, err := ToOpenAPI(svc)
	require.NoError(t, err)
	require.Equal(t, "https://developers.google.com/fact-check/tools/api/", doc.ExternalDocs.URL)

	search := doc.Paths["/v1alpha1/claims:search"].Get
	var names []string
	for _, p := range search.Parameters {
		names = append(names, p.Value.Name)
	}
	require.Contains(t, names, "query")
	require.Contains(t, names, "pageSize")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	require.Contains(t, generic["paths"], "/v1alpha1/pages")
}
