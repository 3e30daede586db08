package vmmigration

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var utilizationReportsCreateOp = &canonical.Operation{
	ID:          "projects.locations.sources.utilizationReports.create",
	Method:      http.MethodPost,
	Path:        "v1/{+parent}/utilizationReports",
	Summary:     "Creates a new UtilizationReport.",
	RequestRef:  "UtilizationReport",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesUtilizationReportsCreateCall struct {
	call              gensupport.Call
	parent            string
	utilizationreport *UtilizationReport
}

// Create: Creates a new UtilizationReport.
//
// - parent: The Utilization Report's parent.
func (r *ProjectsLocationsSourcesUtilizationReportsService) Create(parent string, utilizationreport *UtilizationReport) *ProjectsLocationsSourcesUtilizationReportsCreateCall {
	return &ProjectsLocationsSourcesUtilizationReportsCreateCall{call: r.s.newCall(), parent: parent, utilizationreport: utilizationreport}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) RequestId(requestId string) *ProjectsLocationsSourcesUtilizationReportsCreateCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// UtilizationReportId sets the optional parameter "utilizationReportId":
// Required. The ID to use for the report, which will become the final
// component of the report's resource name.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) UtilizationReportId(utilizationReportId string) *ProjectsLocationsSourcesUtilizationReportsCreateCall {
	c.call.Params().Set("utilizationReportId", utilizationReportId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesUtilizationReportsCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) Context(ctx context.Context) *ProjectsLocationsSourcesUtilizationReportsCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.utilizationReports.create" call.
func (c *ProjectsLocationsSourcesUtilizationReportsCreateCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(utilizationReportsCreateOp, map[string]string{"parent": c.parent}, c.utilizationreport, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var utilizationReportsDeleteOp = &canonical.Operation{
	ID:          "projects.locations.sources.utilizationReports.delete",
	Method:      http.MethodDelete,
	Path:        "v1/{+name}",
	Summary:     "Deletes a single Utilization Report.",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesUtilizationReportsDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a single Utilization Report.
//
// - name: The Utilization Report name.
func (r *ProjectsLocationsSourcesUtilizationReportsService) Delete(name string) *ProjectsLocationsSourcesUtilizationReportsDeleteCall {
	return &ProjectsLocationsSourcesUtilizationReportsDeleteCall{call: r.s.newCall(), name: name}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesUtilizationReportsDeleteCall) RequestId(requestId string) *ProjectsLocationsSourcesUtilizationReportsDeleteCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesUtilizationReportsDeleteCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesUtilizationReportsDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesUtilizationReportsDeleteCall) Context(ctx context.Context) *ProjectsLocationsSourcesUtilizationReportsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesUtilizationReportsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.utilizationReports.delete" call.
func (c *ProjectsLocationsSourcesUtilizationReportsDeleteCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(utilizationReportsDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var utilizationReportsGetOp = &canonical.Operation{
	ID:          "projects.locations.sources.utilizationReports.get",
	Method:      http.MethodGet,
	Path:        "v1/{+name}",
	Summary:     "Gets a single Utilization Report.",
	ResponseRef: "UtilizationReport",
}

type ProjectsLocationsSourcesUtilizationReportsGetCall struct {
	call gensupport.Call
	name string
}

// Get: Gets a single Utilization Report.
//
// - name: The Utilization Report name.
func (r *ProjectsLocationsSourcesUtilizationReportsService) Get(name string) *ProjectsLocationsSourcesUtilizationReportsGetCall {
	return &ProjectsLocationsSourcesUtilizationReportsGetCall{call: r.s.newCall(), name: name}
}

// View sets the optional parameter "view": The level of details of the
// report. Defaults to FULL.
//
// Possible values:
//
//	"UTILIZATION_REPORT_VIEW_UNSPECIFIED"
//	"BASIC"
//	"FULL"
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) View(view string) *ProjectsLocationsSourcesUtilizationReportsGetCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesUtilizationReportsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesUtilizationReportsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) Context(ctx context.Context) *ProjectsLocationsSourcesUtilizationReportsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.utilizationReports.get" call.
func (c *ProjectsLocationsSourcesUtilizationReportsGetCall) Do(opts ...googleapi.CallOption) (*UtilizationReport, error) {
	res, err := c.call.Do(utilizationReportsGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &UtilizationReport{ServerResponse: gensupport.ServerResponse(res)})
}

var utilizationReportsListOp = &canonical.Operation{
	ID:          "projects.locations.sources.utilizationReports.list",
	Method:      http.MethodGet,
	Path:        "v1/{+parent}/utilizationReports",
	Summary:     "Lists Utilization Reports of the given Source.",
	ResponseRef: "ListUtilizationReportsResponse",
}

type ProjectsLocationsSourcesUtilizationReportsListCall struct {
	call   gensupport.Call
	parent string
}

// List: Lists Utilization Reports of the given Source.
//
// - parent: The Utilization Reports parent.
func (r *ProjectsLocationsSourcesUtilizationReportsService) List(parent string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	return &ProjectsLocationsSourcesUtilizationReportsListCall{call: r.s.newCall(), parent: parent}
}

// Filter sets the optional parameter "filter": The filter request.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Filter(filter string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// OrderBy sets the optional parameter "orderBy": the order by fields for the
// result.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) OrderBy(orderBy string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.Params().Set("orderBy", orderBy)
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of
// reports to return.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) PageSize(pageSize int64) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": Required. A page token,
// received from a previous `ListUtilizationReports` call.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) PageToken(pageToken string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// View sets the optional parameter "view": The level of details of each
// report. Defaults to BASIC.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) View(view string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Context(ctx context.Context) *ProjectsLocationsSourcesUtilizationReportsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.utilizationReports.list" call.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Do(opts ...googleapi.CallOption) (*ListUtilizationReportsResponse, error) {
	res, err := c.call.Do(utilizationReportsListOp, map[string]string{"parent": c.parent}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ListUtilizationReportsResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProjectsLocationsSourcesUtilizationReportsListCall) Pages(ctx context.Context, f func(*ListUtilizationReportsResponse) error) error {
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
