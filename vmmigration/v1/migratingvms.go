package vmmigration

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var migratingVmsCreateOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.create",
	Method:      http.MethodPost,
	Path:        "v1/{+parent}/migratingVms",
	Summary:     "Creates a new MigratingVm in a given Source.",
	RequestRef:  "MigratingVm",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsCreateCall struct {
	call        gensupport.Call
	parent      string
	migratingvm *MigratingVm
}

// Create: Creates a new MigratingVm in a given Source.
//
// - parent: The MigratingVm's parent.
func (r *ProjectsLocationsSourcesMigratingVmsService) Create(parent string, migratingvm *MigratingVm) *ProjectsLocationsSourcesMigratingVmsCreateCall {
	return &ProjectsLocationsSourcesMigratingVmsCreateCall{call: r.s.newCall(), parent: parent, migratingvm: migratingvm}
}

// MigratingVmId sets the optional parameter "migratingVmId": Required. The
// migratingVm identifier.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) MigratingVmId(migratingVmId string) *ProjectsLocationsSourcesMigratingVmsCreateCall {
	c.call.Params().Set("migratingVmId", migratingVmId)
	return c
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) RequestId(requestId string) *ProjectsLocationsSourcesMigratingVmsCreateCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.create" call.
func (c *ProjectsLocationsSourcesMigratingVmsCreateCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsCreateOp, map[string]string{"parent": c.parent}, c.migratingvm, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsDeleteOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.delete",
	Method:      http.MethodDelete,
	Path:        "v1/{+name}",
	Summary:     "Deletes a single MigratingVm.",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a single MigratingVm.
//
// - name: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) Delete(name string) *ProjectsLocationsSourcesMigratingVmsDeleteCall {
	return &ProjectsLocationsSourcesMigratingVmsDeleteCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsDeleteCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsDeleteCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.delete" call.
func (c *ProjectsLocationsSourcesMigratingVmsDeleteCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsFinalizeMigrationOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.finalizeMigration",
	Method:      http.MethodPost,
	Path:        "v1/{+migratingVm}:finalizeMigration",
	Summary:     "Marks a migration as completed, deleting migration resources that are no longer being used.",
	RequestRef:  "FinalizeMigrationRequest",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall struct {
	call        gensupport.Call
	migratingVm string
	req         *FinalizeMigrationRequest
}

// FinalizeMigration: Marks a migration as completed, deleting migration
// resources that are no longer being used. Only applicable after cutover is
// done.
//
// - migratingVm: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) FinalizeMigration(migratingVm string, finalizemigrationrequest *FinalizeMigrationRequest) *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall {
	return &ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall{call: r.s.newCall(), migratingVm: migratingVm, req: finalizemigrationrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.finalizeMigration" call.
func (c *ProjectsLocationsSourcesMigratingVmsFinalizeMigrationCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsFinalizeMigrationOp, map[string]string{"migratingVm": c.migratingVm}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsGetOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.get",
	Method:      http.MethodGet,
	Path:        "v1/{+name}",
	Summary:     "Gets details of a single MigratingVm.",
	ResponseRef: "MigratingVm",
}

type ProjectsLocationsSourcesMigratingVmsGetCall struct {
	call gensupport.Call
	name string
}

// Get: Gets details of a single MigratingVm.
//
// - name: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) Get(name string) *ProjectsLocationsSourcesMigratingVmsGetCall {
	return &ProjectsLocationsSourcesMigratingVmsGetCall{call: r.s.newCall(), name: name}
}

// View sets the optional parameter "view": The level of details of the
// migrating VM.
//
// Possible values:
//
//	"MIGRATING_VM_VIEW_UNSPECIFIED"
//	"MIGRATING_VM_VIEW_BASIC"
//	"MIGRATING_VM_VIEW_FULL"
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) View(view string) *ProjectsLocationsSourcesMigratingVmsGetCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesMigratingVmsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.get" call.
func (c *ProjectsLocationsSourcesMigratingVmsGetCall) Do(opts ...googleapi.CallOption) (*MigratingVm, error) {
	res, err := c.call.Do(migratingVmsGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &MigratingVm{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsListOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.list",
	Method:      http.MethodGet,
	Path:        "v1/{+parent}/migratingVms",
	Summary:     "Lists MigratingVms in a given Source.",
	ResponseRef: "ListMigratingVmsResponse",
}

type ProjectsLocationsSourcesMigratingVmsListCall struct {
	call   gensupport.Call
	parent string
}

// List: Lists MigratingVms in a given Source.
//
// - parent: The parent, which owns this collection of MigratingVms.
func (r *ProjectsLocationsSourcesMigratingVmsService) List(parent string) *ProjectsLocationsSourcesMigratingVmsListCall {
	return &ProjectsLocationsSourcesMigratingVmsListCall{call: r.s.newCall(), parent: parent}
}

// Filter sets the optional parameter "filter": The filter request.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Filter(filter string) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// OrderBy sets the optional parameter "orderBy": the order by fields for the
// result.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) OrderBy(orderBy string) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.Params().Set("orderBy", orderBy)
	return c
}

// PageSize sets the optional parameter "pageSize": The maximum number of
// migrating VMs to return.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) PageSize(pageSize int64) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": A page token, received
// from a previous `ListMigratingVms` call.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) PageToken(pageToken string) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// View sets the optional parameter "view": The level of details of each
// migrating VM.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) View(view string) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) IfNoneMatch(entityTag string) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.list" call.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Do(opts ...googleapi.CallOption) (*ListMigratingVmsResponse, error) {
	res, err := c.call.Do(migratingVmsListOp, map[string]string{"parent": c.parent}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ListMigratingVmsResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProjectsLocationsSourcesMigratingVmsListCall) Pages(ctx context.Context, f func(*ListMigratingVmsResponse) error) error {
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

var migratingVmsPatchOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.patch",
	Method:      http.MethodPatch,
	Path:        "v1/{+name}",
	Summary:     "Updates the parameters of a single MigratingVm.",
	RequestRef:  "MigratingVm",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsPatchCall struct {
	call        gensupport.Call
	name        string
	migratingvm *MigratingVm
}

// Patch: Updates the parameters of a single MigratingVm.
//
// - name: Output only. The identifier of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) Patch(name string, migratingvm *MigratingVm) *ProjectsLocationsSourcesMigratingVmsPatchCall {
	return &ProjectsLocationsSourcesMigratingVmsPatchCall{call: r.s.newCall(), name: name, migratingvm: migratingvm}
}

// RequestId sets the optional parameter "requestId": A request ID to
// identify requests.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) RequestId(requestId string) *ProjectsLocationsSourcesMigratingVmsPatchCall {
	c.call.Params().Set("requestId", requestId)
	return c
}

// UpdateMask sets the optional parameter "updateMask": Field mask is used to
// specify the fields to be overwritten in the MigratingVm resource by the
// update.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) UpdateMask(updateMask string) *ProjectsLocationsSourcesMigratingVmsPatchCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsPatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.patch" call.
func (c *ProjectsLocationsSourcesMigratingVmsPatchCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsPatchOp, map[string]string{"name": c.name}, c.migratingvm, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsPauseMigrationOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.pauseMigration",
	Method:      http.MethodPost,
	Path:        "v1/{+migratingVm}:pauseMigration",
	Summary:     "Pauses a migration for a VM.",
	RequestRef:  "PauseMigrationRequest",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsPauseMigrationCall struct {
	call        gensupport.Call
	migratingVm string
	req         *PauseMigrationRequest
}

// PauseMigration: Pauses a migration for a VM. If cycle tasks are running
// they will be cancelled, preserving source task data. Further replication
// cycles will not be triggered while the VM is paused.
//
// - migratingVm: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) PauseMigration(migratingVm string, pausemigrationrequest *PauseMigrationRequest) *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall {
	return &ProjectsLocationsSourcesMigratingVmsPauseMigrationCall{call: r.s.newCall(), migratingVm: migratingVm, req: pausemigrationrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.pauseMigration" call.
func (c *ProjectsLocationsSourcesMigratingVmsPauseMigrationCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsPauseMigrationOp, map[string]string{"migratingVm": c.migratingVm}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsResumeMigrationOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.resumeMigration",
	Method:      http.MethodPost,
	Path:        "v1/{+migratingVm}:resumeMigration",
	Summary:     "Resumes a migration for a VM.",
	RequestRef:  "ResumeMigrationRequest",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsResumeMigrationCall struct {
	call        gensupport.Call
	migratingVm string
	req         *ResumeMigrationRequest
}

// ResumeMigration: Resumes a migration for a VM. When called on a paused
// migration, will start the process of uploading data and creating snapshots.
//
// - migratingVm: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) ResumeMigration(migratingVm string, resumemigrationrequest *ResumeMigrationRequest) *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall {
	return &ProjectsLocationsSourcesMigratingVmsResumeMigrationCall{call: r.s.newCall(), migratingVm: migratingVm, req: resumemigrationrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.resumeMigration" call.
func (c *ProjectsLocationsSourcesMigratingVmsResumeMigrationCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsResumeMigrationOp, map[string]string{"migratingVm": c.migratingVm}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}

var migratingVmsStartMigrationOp = &canonical.Operation{
	ID:          "projects.locations.sources.migratingVms.startMigration",
	Method:      http.MethodPost,
	Path:        "v1/{+migratingVm}:startMigration",
	Summary:     "Starts migration for a VM.",
	RequestRef:  "StartMigrationRequest",
	ResponseRef: "Operation",
}

type ProjectsLocationsSourcesMigratingVmsStartMigrationCall struct {
	call        gensupport.Call
	migratingVm string
	req         *StartMigrationRequest
}

// StartMigration: Starts migration for a VM. Starts the process of uploading
// data and creating snapshots, in replication cycles scheduled by the policy.
//
// - migratingVm: The name of the MigratingVm.
func (r *ProjectsLocationsSourcesMigratingVmsService) StartMigration(migratingVm string, startmigrationrequest *StartMigrationRequest) *ProjectsLocationsSourcesMigratingVmsStartMigrationCall {
	return &ProjectsLocationsSourcesMigratingVmsStartMigrationCall{call: r.s.newCall(), migratingVm: migratingVm, req: startmigrationrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProjectsLocationsSourcesMigratingVmsStartMigrationCall) Fields(s ...googleapi.Field) *ProjectsLocationsSourcesMigratingVmsStartMigrationCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProjectsLocationsSourcesMigratingVmsStartMigrationCall) Context(ctx context.Context) *ProjectsLocationsSourcesMigratingVmsStartMigrationCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProjectsLocationsSourcesMigratingVmsStartMigrationCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "vmmigration.projects.locations.sources.migratingVms.startMigration" call.
func (c *ProjectsLocationsSourcesMigratingVmsStartMigrationCall) Do(opts ...googleapi.CallOption) (*Operation, error) {
	res, err := c.call.Do(migratingVmsStartMigrationOp, map[string]string{"migratingVm": c.migratingVm}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Operation{ServerResponse: gensupport.ServerResponse(res)})
}
