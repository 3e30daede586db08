package vmmigration

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var operationsCancelOp = &canonical.Operation{
	ID:          "projects.locations.operations.cancel",
	Method:      http.MethodPost,
	Path:        "v1/{+name}:cancel",
	Summary:     "Starts asynchronous cancellation on a long-running operation.",
	RequestRef:  "CancelOperationRequest",
	ResponseRef: "Empty",
}

type ProjectsLocationsOperationsCancelCall struct {
	call gensupport.Call
	name string
	req  *CancelOperationRequest
}

// Cancel: Starts asynchronous cancellation on a long-running operation. The
// server makes a best effort to cancel the operation, but success is not
// guaranteed.
//
// - name: The name of the operation resource to be cancelled.
func (r *ProjectsLocationsOperationsService) Cancel(name string, canceloperationrequest *CancelOperationRequest) *ProjectsLocationsOperationsCancelCall {
	return &ProjectsLocationsOperationsCancelCall{call: r.s.newCall(), name: name, req: canceloperationrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsOperationsCancelCall) Fields(s ...googleapi.Field) *ProjectsLocationsOperationsCancelCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsOperationsCancelCall) Context(ctx context.Context) *ProjectsLocationsOperationsCancelCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsOperationsCancelCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.operations.cancel" call.
func (c *ProjectsLocationsOperationsCancelCall) Do(opts ...googleapi.CallOption) (*Empty, error) {
	res, err := c.call.Do(operationsCancelOp, map[string]string{"name": c.name}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Empty{ServerResponse: gensupport.ServerResponse(res)})
}

var operationsDeleteOp = &canonical.Operation{
	ID:          "projects.locations.operations.delete",
	Method:      http.MethodDelete,
	Path:        "v1/{+name}",
	Summary:     "Deletes a long-running operation.",
	ResponseRef: "Empty",
}

type ProjectsLocationsOperationsDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a long-running operation. This method indicates that the
// client is no longer interested in the operation result.
//
// - name: The name of the operation resource to be deleted.
func (r *ProjectsLocationsOperationsService) Delete(name string) *ProjectsLocationsOperationsDeleteCall {
	return &ProjectsLocationsOperationsDeleteCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsOperationsDeleteCall) Fields(s ...googleapi.Field) *ProjectsLocationsOperationsDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsOperationsDeleteCall) Context(ctx context.Context) *ProjectsLocationsOperationsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsOperationsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.operations.delete" call.
func (c *ProjectsLocationsOperationsDeleteCall) Do(opts ...googleapi.CallOption) (*Empty, error) {
	res, err := c.call.Do(operationsDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Empty{ServerResponse: gensupport.ServerResponse(res)})
}

var operationsGetOp = &canonical.Operation{
	ID:          "projects.locations.operations.get",
	Method:      http.MethodGet,
	Path:        "v1/{+name}",
	Summary:     "Gets the latest state of a long-running operation.",
	ResponseRef: "Operation",
}

type ProjectsLocationsOperationsGetCall struct {
	call gensupport.Call
	name string
}

// Get: Gets the latest state of a long-running operation. Clients can use
// this method to poll the operation result at intervals as recommended by
// the API service.
//
// - name: The name of the operation resource.
func (r *ProjectsLocationsOperationsService) Get(name string) *ProjectsLocationsOperationsGetCall {
	return &ProjectsLocationsOperationsGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsOperationsGetCall) Fields(s ...googleapi.Field) *ProjectsLocationsOperationsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsOperationsGetCall) IfNoneMatch(entityTag string) *ProjectsLocationsOperationsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsOperationsGetCall) Context(ctx context.Context) *ProjectsLocationsOperationsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsOperationsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.operations.get" call.
func (c *ProjectsLocationsOperationsGetCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(operationsGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var operationsListOp = &canonical.Operation{
	ID:          "projects.locations.operations.list",
	Method:      http.MethodGet,
	Path:        "v1/{+name}/operations",
	Summary:     "Lists operations that match the specified filter in the request.",
	ResponseRef: "ListOperationsResponse",
}

type ProjectsLocationsOperationsListCall struct {
	call gensupport.Call
	name string
}

// List: Lists operations that match the specified filter in the request.
//
// - name: The name of the operation's parent resource.
func (r *ProjectsLocationsOperationsService) List(name string) *ProjectsLocationsOperationsListCall {
	return &ProjectsLocationsOperationsListCall{call: r.s.newCall(), name: name}
}

// Filter sets the optional parameter "filter": The standard list filter.
func (c *ProjectsLocationsOperationsListCall) Filter(filter string) *ProjectsLocationsOperationsListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize": The standard list page
// size.
func (c *ProjectsLocationsOperationsListCall) PageSize(pageSize int64) *ProjectsLocationsOperationsListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The standard list page
// token.
func (c *ProjectsLocationsOperationsListCall) PageToken(pageToken string) *ProjectsLocationsOperationsListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsOperationsListCall) Fields(s ...googleapi.Field) *ProjectsLocationsOperationsListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsOperationsListCall) IfNoneMatch(entityTag string) *ProjectsLocationsOperationsListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsOperationsListCall) Context(ctx context.Context) *ProjectsLocationsOperationsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsOperationsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.operations.list" call.
func (c *ProjectsLocationsOperationsListCall) Do(opts ...googleapi.CallOption) (*ListOperationsResponse, error) {
	res, err := c.call.Do(operationsListOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ListOperationsResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProjectsLocationsOperationsListCall) Pages(ctx context.Context, f func(*ListOperationsResponse) error) error {
	c.call.SetContext(ctx)
	defer c.PageToken(c.call.Params().Get("pageToken"))
	for {
		x, err := c.Do()
		if err != nil {
			return err
		}
		if err := f(x); err != nil {
			return err
		}
		if x.NextPageToken == "" {
			return nil
		}
		c.PageToken(x.NextPageToken)
	}
}
