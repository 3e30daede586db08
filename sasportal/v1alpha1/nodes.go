package sasportal

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var nodesDeleteOp = &canonical.Operation{
	ID:          "nodes.delete",
	Method:      http.MethodDelete,
	Path:        "v1alpha1/{+name}",
	Summary:     "Deletes a node.",
	ResponseRef: "SasPortalEmpty",
}

type NodesDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a node.
//
// - name: The name of the node.
func (r *NodesService) Delete(name string) *NodesDeleteCall {
	return &NodesDeleteCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *NodesDeleteCall) Fields(s ...googleapi.Field) *NodesDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *NodesDeleteCall) Context(ctx context.Context) *NodesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *NodesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.nodes.delete" call.
func (c *NodesDeleteCall) Do(opts ...googleapi.CallOption) (*SasPortalEmpty, error) {
	res, err := c.call.Do(nodesDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalEmpty{ServerResponse: gensupport.ServerResponse(res)})
}

var nodesGetOp = &canonical.Operation{
	ID:          "nodes.get",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+name}",
	Summary:     "Returns a requested node.",
	ResponseRef: "SasPortalNode",
}

type NodesGetCall struct {
	call gensupport.Call
	name string
}

// Get: Returns a requested node.
//
// - name: The name of the node.
func (r *NodesService) Get(name string) *NodesGetCall {
	return &NodesGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *NodesGetCall) Fields(s ...googleapi.Field) *NodesGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *NodesGetCall) IfNoneMatch(entityTag string) *NodesGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *NodesGetCall) Context(ctx context.Context) *NodesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *NodesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.nodes.get" call.
func (c *NodesGetCall) Do(opts ...googleapi.CallOption) (*SasPortalNode, error) {
	res, err := c.call.Do(nodesGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalNode{ServerResponse: gensupport.ServerResponse(res)})
}

var nodesMoveOp = &canonical.Operation{
	ID:          "nodes.move",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+name}:move",
	Summary:     "Moves a node under another node or customer.",
	RequestRef:  "SasPortalMoveNodeRequest",
	ResponseRef: "SasPortalOperation",
}

type NodesMoveCall struct {
	call gensupport.Call
	name string
	req  *SasPortalMoveNodeRequest
}

// Move: Moves a node under another node or customer.
//
// - name: The name of the node to move.
func (r *NodesService) Move(name string, sasportalmovenoderequest *SasPortalMoveNodeRequest) *NodesMoveCall {
	return &NodesMoveCall{call: r.s.newCall(), name: name, req: sasportalmovenoderequest}
}

// Fields allows partial responses to be retrieved.
func (c *NodesMoveCall) Fields(s ...googleapi.Field) *NodesMoveCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *NodesMoveCall) Context(ctx context.Context) *NodesMoveCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *NodesMoveCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.nodes.move" call.
func (c *NodesMoveCall) Do(opts ...googleapi.CallOption) (*SasPortalOperation, error) {
	res, err := c.call.Do(nodesMoveOp, map[string]string{"name": c.name}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalOperation{ServerResponse: gensupport.ServerResponse(res)})
}

var nodesPatchOp = &canonical.Operation{
	ID:          "nodes.patch",
	Method:      http.MethodPatch,
	Path:        "v1alpha1/{+name}",
	Summary:     "Updates an existing node.",
	RequestRef:  "SasPortalNode",
	ResponseRef: "SasPortalNode",
}

type NodesPatchCall struct {
	call gensupport.Call
	name string
	node *SasPortalNode
}

// Patch: Updates an existing node.
//
// - name: Output only. Resource name.
func (r *NodesService) Patch(name string, sasportalnode *SasPortalNode) *NodesPatchCall {
	return &NodesPatchCall{call: r.s.newCall(), name: name, node: sasportalnode}
}

// UpdateMask sets the optional parameter "updateMask": Fields to be
// updated.
func (c *NodesPatchCall) UpdateMask(updateMask string) *NodesPatchCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *NodesPatchCall) Fields(s ...googleapi.Field) *NodesPatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *NodesPatchCall) Context(ctx context.Context) *NodesPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *NodesPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.nodes.patch" call.
func (c *NodesPatchCall) Do(opts ...googleapi.CallOption) (*SasPortalNode, error) {
	res, err := c.call.Do(nodesPatchOp, map[string]string{"name": c.name}, c.node, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalNode{ServerResponse: gensupport.ServerResponse(res)})
}
