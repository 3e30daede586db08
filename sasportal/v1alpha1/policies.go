package sasportal

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var policiesGetOp = &canonical.Operation{
	ID:          "policies.get",
	Method:      http.MethodPost,
	Path:        "v1alpha1/policies:get",
	Summary:     "Gets the access control policy for a resource.",
	RequestRef:  "SasPortalGetPolicyRequest",
	ResponseRef: "SasPortalPolicy",
}

type PoliciesGetCall struct {
	call gensupport.Call
	req  *SasPortalGetPolicyRequest
}

// Get: Gets the access control policy for a resource. Returns an empty
// policy if the resource exists and does not have a policy set.
func (r *PoliciesService) Get(sasportalgetpolicyrequest *SasPortalGetPolicyRequest) *PoliciesGetCall {
	return &PoliciesGetCall{call: r.s.newCall(), req: sasportalgetpolicyrequest}
}

// Fields allows partial responses to be retrieved.
func (c *PoliciesGetCall) Fields(s ...googleapi.Field) *PoliciesGetCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PoliciesGetCall) Context(ctx context.Context) *PoliciesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PoliciesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.policies.get" call.
func (c *PoliciesGetCall) Do(opts ...googleapi.CallOption) (*SasPortalPolicy, error) {
	res, err := c.call.Do(policiesGetOp, nil, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalPolicy{ServerResponse: gensupport.ServerResponse(res)})
}

var policiesSetOp = &canonical.Operation{
	ID:          "policies.set",
	Method:      http.MethodPost,
	Path:        "v1alpha1/policies:set",
	Summary:     "Sets the access control policy on the specified resource.",
	RequestRef:  "SasPortalSetPolicyRequest",
	ResponseRef: "SasPortalPolicy",
}

type PoliciesSetCall struct {
	call gensupport.Call
	req  *SasPortalSetPolicyRequest
}

// Set: Sets the access control policy on the specified resource. Replaces
// any existing policy.
func (r *PoliciesService) Set(sasportalsetpolicyrequest *SasPortalSetPolicyRequest) *PoliciesSetCall {
	return &PoliciesSetCall{call: r.s.newCall(), req: sasportalsetpolicyrequest}
}

// Fields allows partial responses to be retrieved.
func (c *PoliciesSetCall) Fields(s ...googleapi.Field) *PoliciesSetCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PoliciesSetCall) Context(ctx context.Context) *PoliciesSetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PoliciesSetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.policies.set" call.
func (c *PoliciesSetCall) Do(opts ...googleapi.CallOption) (*SasPortalPolicy, error) {
	res, err := c.call.Do(policiesSetOp, nil, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalPolicy{ServerResponse: gensupport.ServerResponse(res)})
}

var policiesTestOp = &canonical.Operation{
	ID:          "policies.test",
	Method:      http.MethodPost,
	Path:        "v1alpha1/policies:test",
	Summary:     "Returns permissions that a caller has on the specified resource.",
	RequestRef:  "SasPortalTestPermissionsRequest",
	ResponseRef: "SasPortalTestPermissionsResponse",
}

type PoliciesTestCall struct {
	call gensupport.Call
	req  *SasPortalTestPermissionsRequest
}

// Test: Returns permissions that a caller has on the specified resource.
func (r *PoliciesService) Test(sasportaltestpermissionsrequest *SasPortalTestPermissionsRequest) *PoliciesTestCall {
	return &PoliciesTestCall{call: r.s.newCall(), req: sasportaltestpermissionsrequest}
}

// Fields allows partial responses to be retrieved.
func (c *PoliciesTestCall) Fields(s ...googleapi.Field) *PoliciesTestCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PoliciesTestCall) Context(ctx context.Context) *PoliciesTestCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PoliciesTestCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.policies.test" call.
func (c *PoliciesTestCall) Do(opts ...googleapi.CallOption) (*SasPortalTestPermissionsResponse, error) {
	res, err := c.call.Do(policiesTestOp, nil, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalTestPermissionsResponse{ServerResponse: gensupport.ServerResponse(res)})
}
