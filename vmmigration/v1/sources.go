package vmmigration

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var sourcesCreateOp = &canonical.Operation{
	ID:          "projects.locations.sources.create",
	Method:      http.MethodPost,
	Path:        "v1/{+parent}/sources",
	Summary:     "Creates a new Source in a given project and location.",
	RequestRef:  "Source",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesCreateCall struct {
	call   gensupport.Call
	parent string
	source *Source
}

// Create: Creates a new Source in a given project and location.
//
// - parent: The Source's parent.
func (r *ProjectsLocationsSourcesService) Create(parent string, source *Source) *ProjectsLocationsSourcesCreateCall {
	return &ProjectsLocationsSourcesCreateCall{call: r.s.newCall(), parent: parent, source: source}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests. The server will guarantee that for at least 60 minutes
// since the first request a retry with the same ID is ignored.
func (c *ProjectsLocationsSourcesCreateCall) RequestId(requestId string) *ProjectsLocationsSourcesCreateCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// SourceId sets the optional parameter "sourceId": Required. The source
// identifier.
func (c *ProjectsLocationsSourcesCreateCall) SourceId(sourceId string) *ProjectsLocationsSourcesCreateCall {
	c.call.Params().Set("sourceId", sourceId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesCreateCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesCreateCall) Context(ctx context.Context) *ProjectsLocationsSourcesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.create" call.
func (c *ProjectsLocationsSourcesCreateCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(sourcesCreateOp, map[string]string{"parent": c.parent}, c.source, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var sourcesDeleteOp = &canonical.Operation{
	ID:          "projects.locations.sources.delete",
	Method:      http.MethodDelete,
	Path:        "v1/{+name}",
	Summary:     "Deletes a single Source.",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a single Source.
//
// - name: The Source name.
func (r *ProjectsLocationsSourcesService) Delete(name string) *ProjectsLocationsSourcesDeleteCall {
	return &ProjectsLocationsSourcesDeleteCall{call: r.s.newCall(), name: name}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesDeleteCall) RequestId(requestId string) *ProjectsLocationsSourcesDeleteCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesDeleteCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesDeleteCall) Context(ctx context.Context) *ProjectsLocationsSourcesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.delete" call.
func (c *ProjectsLocationsSourcesDeleteCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(sourcesDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var sourcesFetchInventoryOp = &canonical.Operation{
	ID:          "projects.locations.sources.fetchInventory",
	Method:      http.MethodGet,
	Path:        "v1/{+source}:fetchInventory",
	Summary:     "List remote source's inventory of VMs.",
	ResponseRef: "FetchInventoryResponse",
}

type ProjectsLocationsSourcesFetchInventoryCall struct {
	call   gensupport.Call
	source string
}

// FetchInventory: List remote source's inventory of VMs. The remote source
// is the onprem vCenter (remote in the sense it's not in Compute Engine).
// The inventory describes the list of existing VMs in that source.
//
// - source: The name of the Source.
func (r *ProjectsLocationsSourcesService) FetchInventory(source string) *ProjectsLocationsSourcesFetchInventoryCall {
	return &ProjectsLocationsSourcesFetchInventoryCall{call: r.s.newCall(), source: source}
}

// ForceRefresh sets the optional parameter "forceRefresh": If this flag is
// set to true, the source will be queried instead of using cached results.
func (c *ProjectsLocationsSourcesFetchInventoryCall) ForceRefresh(forceRefresh bool) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.Params().Set("forceRefresh", fmt.Sprint(forceRefresh))
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of VMs
// to return.
func (c *ProjectsLocationsSourcesFetchInventoryCall) PageSize(pageSize int64) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": A page token, received
// from a previous `FetchInventory` call.
func (c *ProjectsLocationsSourcesFetchInventoryCall) PageToken(pageToken string) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesFetchInventoryCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesFetchInventoryCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesFetchInventoryCall) Context(ctx context.Context) *ProjectsLocationsSourcesFetchInventoryCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesFetchInventoryCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.fetchInventory" call.
func (c *ProjectsLocationsSourcesFetchInventoryCall) Do(opts ...googleapi.CallOption) (*FetchInventoryResponse, error) {
	res, err := c.call.Do(sourcesFetchInventoryOp, map[string]string{"source": c.source}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &FetchInventoryResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProjectsLocationsSourcesFetchInventoryCall) Pages(ctx context.Context, f func(*FetchInventoryResponse) error) error {
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

var sourcesGetOp = &canonical.Operation{
	ID:          "projects.locations.sources.get",
	Method:      http.MethodGet,
	Path:        "v1/{+name}",
	Summary:     "Gets details of a single Source.",
	ResponseRef: "Source",
}

type ProjectsLocationsSourcesGetCall struct {
	call gensupport.Call
	name string
}

// Get: Gets details of a single Source.
//
// - name: The Source name.
func (r *ProjectsLocationsSourcesService) Get(name string) *ProjectsLocationsSourcesGetCall {
	return &ProjectsLocationsSourcesGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesGetCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesGetCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesGetCall) Context(ctx context.Context) *ProjectsLocationsSourcesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.get" call.
func (c *ProjectsLocationsSourcesGetCall) Do(opts ...googleapi.CallOption) (*Source, error) {
	res, err := c.call.Do(sourcesGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Source{ServerResponse: gensupport.ServerResponse(res)})
}

var sourcesListOp = &canonical.Operation{
	ID:          "projects.locations.sources.list",
	Method:      http.MethodGet,
	Path:        "v1/{+parent}/sources",
	Summary:     "Lists Sources in a given project and location.",
	ResponseRef: "ListSourcesResponse",
}

type ProjectsLocationsSourcesListCall struct {
	call   gensupport.Call
	parent string
}

// List: Lists Sources in a given project and location.
//
// - parent: The parent, which owns this collection of sources.
func (r *ProjectsLocationsSourcesService) List(parent string) *ProjectsLocationsSourcesListCall {
	return &ProjectsLocationsSourcesListCall{call: r.s.newCall(), parent: parent}
}

// Filter sets the optional parameter "filter": The filter request.
func (c *ProjectsLocationsSourcesListCall) Filter(filter string) *ProjectsLocationsSourcesListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// OrderBy sets the optional parameter "orderBy": the order by fields for the
// result.
func (c *ProjectsLocationsSourcesListCall) OrderBy(orderBy string) *ProjectsLocationsSourcesListCall {
	c.call.Params().Set("orderBy", orderBy)
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of
// sources to return.
func (c *ProjectsLocationsSourcesListCall) PageSize(pageSize int64) *ProjectsLocationsSourcesListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": A page token, received
// from a previous `ListSources` call.
func (c *ProjectsLocationsSourcesListCall) PageToken(pageToken string) *ProjectsLocationsSourcesListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesListCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesListCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesListCall) Context(ctx context.Context) *ProjectsLocationsSourcesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.list" call.
func (c *ProjectsLocationsSourcesListCall) Do(opts ...googleapi.CallOption) (*ListSourcesResponse, error) {
	res, err := c.call.Do(sourcesListOp, map[string]string{"parent": c.parent}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ListSourcesResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProjectsLocationsSourcesListCall) Pages(ctx context.Context, f func(*ListSourcesResponse) error) error {
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

var sourcesPatchOp = &canonical.Operation{
	ID:          "projects.locations.sources.patch",
	Method:      http.MethodPatch,
	Path:        "v1/{+name}",
	Summary:     "Updates the parameters of a single Source.",
	RequestRef:  "Source",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesPatchCall struct {
	call   gensupport.Call
	name   string
	source *Source
}

// Patch: Updates the parameters of a single Source.
//
// - name: Output only. The Source name.
func (r *ProjectsLocationsSourcesService) Patch(name string, source *Source) *ProjectsLocationsSourcesPatchCall {
	return &ProjectsLocationsSourcesPatchCall{call: r.s.newCall(), name: name, source: source}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesPatchCall) RequestId(requestId string) *ProjectsLocationsSourcesPatchCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// UpdateMask sets the optional parameter "updateMask": Field mask is used to
// specify the fields to be overwritten in the Source resource by the update.
func (c *ProjectsLocationsSourcesPatchCall) UpdateMask(updateMask string) *ProjectsLocationsSourcesPatchCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesPatchCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesPatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesPatchCall) Context(ctx context.Context) *ProjectsLocationsSourcesPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.patch" call.
func (c *ProjectsLocationsSourcesPatchCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(sourcesPatchOp, map[string]string{"name": c.name}, c.source, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}
