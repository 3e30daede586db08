package sasportal

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var deploymentsGetOp = &canonical.Operation{
	ID:          "deployments.get",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+name}",
	Summary:     "Returns a requested deployment.",
	ResponseRef: "SasPortalDeployment",
}

type DeploymentsGetCall struct {
	call gensupport.Call
	name string
}

// Get: Returns a requested deployment.
//
// - name: The name of the deployment.
func (r *DeploymentsService) Get(name string) *DeploymentsGetCall {
	return &DeploymentsGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *DeploymentsGetCall) Fields(s ...googleapi.Field) *DeploymentsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *DeploymentsGetCall) IfNoneMatch(entityTag string) *DeploymentsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DeploymentsGetCall) Context(ctx context.Context) *DeploymentsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DeploymentsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.deployments.get" call.
func (c *DeploymentsGetCall) Do(opts ...googleapi.CallOption) (*SasPortalDeployment, error) {
	res, err := c.call.Do(deploymentsGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDeployment{ServerResponse: gensupport.ServerResponse(res)})
}
