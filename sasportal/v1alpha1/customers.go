package sasportal

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var customersGetOp = &canonical.Operation{
	ID:          "customers.get",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+name}",
	Summary:     "Returns a requested customer.",
	ResponseRef: "SasPortalCustomer",
}

type CustomersGetCall struct {
	call gensupport.Call
	name string
}

// Get: Returns a requested customer.
//
// - name: The name of the customer.
func (r *CustomersService) Get(name string) *CustomersGetCall {
	return &CustomersGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *CustomersGetCall) Fields(s ...googleapi.Field) *CustomersGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *CustomersGetCall) IfNoneMatch(entityTag string) *CustomersGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersGetCall) Context(ctx context.Context) *CustomersGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.get" call.
func (c *CustomersGetCall) Do(opts ...googleapi.CallOption) (*SasPortalCustomer, error) {
	res, err := c.call.Do(customersGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalCustomer{ServerResponse: gensupport.ServerResponse(res)})
}

var customersListOp = &canonical.Operation{
	ID:          "customers.list",
	Method:      http.MethodGet,
	Path:        "v1alpha1/customers",
	Summary:     "Returns a list of requested customers.",
	ResponseRef: "SasPortalListCustomersResponse",
}

type CustomersListCall struct {
	call gensupport.Call
}

// List: Returns a list of requested customers.
func (r *CustomersService) List() *CustomersListCall {
	return &CustomersListCall{call: r.s.newCall()}
}

// PageSize sets the optional parameter "pageSize": The maximum number of
// customers to return in the response.
func (c *CustomersListCall) PageSize(pageSize int64) *CustomersListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": A pagination token
// returned from a previous call to ListCustomers.
func (c *CustomersListCall) PageToken(pageToken string) *CustomersListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *CustomersListCall) Fields(s ...googleapi.Field) *CustomersListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *CustomersListCall) IfNoneMatch(entityTag string) *CustomersListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersListCall) Context(ctx context.Context) *CustomersListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.list" call.
func (c *CustomersListCall) Do(opts ...googleapi.CallOption) (*SasPortalListCustomersResponse, error) {
	res, err := c.call.Do(customersListOp, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalListCustomersResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *CustomersListCall) Pages(ctx context.Context, f func(*SasPortalListCustomersResponse) error) error {
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

var customersPatchOp = &canonical.Operation{
	ID:          "customers.patch",
	Method:      http.MethodPatch,
	Path:        "v1alpha1/{+name}",
	Summary:     "Updates an existing customer.",
	RequestRef:  "SasPortalCustomer",
	ResponseRef: "SasPortalCustomer",
}

type CustomersPatchCall struct {
	call     gensupport.Call
	name     string
	customer *SasPortalCustomer
}

// Patch: Updates an existing customer.
//
// - name: Output only. Resource name of the customer.
func (r *CustomersService) Patch(name string, sasportalcustomer *SasPortalCustomer) *CustomersPatchCall {
	return &CustomersPatchCall{call: r.s.newCall(), name: name, customer: sasportalcustomer}
}

// UpdateMask sets the optional parameter "updateMask": Fields to be
// updated.
func (c *CustomersPatchCall) UpdateMask(updateMask string) *CustomersPatchCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *CustomersPatchCall) Fields(s ...googleapi.Field) *CustomersPatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersPatchCall) Context(ctx context.Context) *CustomersPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.patch" call.
func (c *CustomersPatchCall) Do(opts ...googleapi.CallOption) (*SasPortalCustomer, error) {
	res, err := c.call.Do(customersPatchOp, map[string]string{"name": c.name}, c.customer, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalCustomer{ServerResponse: gensupport.ServerResponse(res)})
}

var customersDevicesCreateOp = &canonical.Operation{
	ID:          "customers.devices.create",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+parent}/devices",
	Summary:     "Creates a device under a node or customer.",
	RequestRef:  "SasPortalDevice",
	ResponseRef: "SasPortalDevice",
}

type CustomersDevicesCreateCall struct {
	call   gensupport.Call
	parent string
	device *SasPortalDevice
}

// Create: Creates a device under a node or customer.
//
// - parent: The name of the parent resource.
func (r *CustomersDevicesService) Create(parent string, sasportaldevice *SasPortalDevice) *CustomersDevicesCreateCall {
	return &CustomersDevicesCreateCall{call: r.s.newCall(), parent: parent, device: sasportaldevice}
}

// Fields allows partial responses to be retrieved.
func (c *CustomersDevicesCreateCall) Fields(s ...googleapi.Field) *CustomersDevicesCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersDevicesCreateCall) Context(ctx context.Context) *CustomersDevicesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersDevicesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.devices.create" call.
func (c *CustomersDevicesCreateCall) Do(opts ...googleapi.CallOption) (*SasPortalDevice, error) {
	res, err := c.call.Do(customersDevicesCreateOp, map[string]string{"parent": c.parent}, c.device, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDevice{ServerResponse: gensupport.ServerResponse(res)})
}

var customersDevicesCreateSignedOp = &canonical.Operation{
	ID:          "customers.devices.createSigned",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+parent}/devices:createSigned",
	Summary:     "Creates a signed device under a node or customer.",
	RequestRef:  "SasPortalCreateSignedDeviceRequest",
	ResponseRef: "SasPortalDevice",
}

type CustomersDevicesCreateSignedCall struct {
	call   gensupport.Call
	parent string
	req    *SasPortalCreateSignedDeviceRequest
}

// CreateSigned: Creates a signed device under a node or customer.
//
// - parent: The name of the parent resource.
func (r *CustomersDevicesService) CreateSigned(parent string, sasportalcreatesigneddevicerequest *SasPortalCreateSignedDeviceRequest) *CustomersDevicesCreateSignedCall {
	return &CustomersDevicesCreateSignedCall{call: r.s.newCall(), parent: parent, req: sasportalcreatesigneddevicerequest}
}

// Fields allows partial responses to be retrieved.
func (c *CustomersDevicesCreateSignedCall) Fields(s ...googleapi.Field) *CustomersDevicesCreateSignedCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersDevicesCreateSignedCall) Context(ctx context.Context) *CustomersDevicesCreateSignedCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersDevicesCreateSignedCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.devices.createSigned" call.
func (c *CustomersDevicesCreateSignedCall) Do(opts ...googleapi.CallOption) (*SasPortalDevice, error) {
	res, err := c.call.Do(customersDevicesCreateSignedOp, map[string]string{"parent": c.parent}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDevice{ServerResponse: gensupport.ServerResponse(res)})
}

var customersDevicesListOp = &canonical.Operation{
	ID:          "customers.devices.list",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+parent}/devices",
	Summary:     "Lists devices under a node or customer.",
	ResponseRef: "SasPortalListDevicesResponse",
}

type CustomersDevicesListCall struct {
	call   gensupport.Call
	parent string
}

// List: Lists devices under a node or customer.
//
// - parent: The name of the parent resource.
func (r *CustomersDevicesService) List(parent string) *CustomersDevicesListCall {
	return &CustomersDevicesListCall{call: r.s.newCall(), parent: parent}
}

// Filter sets the optional parameter "filter": The filter expression. The
// filter should have one of the following formats: "sn=123454" or
// "display_name=MyDevice".
func (c *CustomersDevicesListCall) Filter(filter string) *CustomersDevicesListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize".
func (c *CustomersDevicesListCall) PageSize(pageSize int64) *CustomersDevicesListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken".
func (c *CustomersDevicesListCall) PageToken(pageToken string) *CustomersDevicesListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *CustomersDevicesListCall) Fields(s ...googleapi.Field) *CustomersDevicesListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *CustomersDevicesListCall) IfNoneMatch(entityTag string) *CustomersDevicesListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersDevicesListCall) Context(ctx context.Context) *CustomersDevicesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersDevicesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.devices.list" call.
func (c *CustomersDevicesListCall) Do(opts ...googleapi.CallOption) (*SasPortalListDevicesResponse, error) {
	res, err := c.call.Do(customersDevicesListOp, map[string]string{"parent": c.parent}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalListDevicesResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *CustomersDevicesListCall) Pages(ctx context.Context, f func(*SasPortalListDevicesResponse) error) error {
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

var customersNodesCreateOp = &canonical.Operation{
	ID:          "customers.nodes.create",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+parent}/nodes",
	Summary:     "Creates a new node.",
	RequestRef:  "SasPortalNode",
	ResponseRef: "SasPortalNode",
}

type CustomersNodesCreateCall struct {
	call   gensupport.Call
	parent string
	node   *SasPortalNode
}

// Create: Creates a new node.
//
// - parent: The parent resource name where the node is to be created.
func (r *CustomersNodesService) Create(parent string, sasportalnode *SasPortalNode) *CustomersNodesCreateCall {
	return &CustomersNodesCreateCall{call: r.s.newCall(), parent: parent, node: sasportalnode}
}

// Fields allows partial responses to be retrieved.
func (c *CustomersNodesCreateCall) Fields(s ...googleapi.Field) *CustomersNodesCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersNodesCreateCall) Context(ctx context.Context) *CustomersNodesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersNodesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.nodes.create" call.
func (c *CustomersNodesCreateCall) Do(opts ...googleapi.CallOption) (*SasPortalNode, error) {
	res, err := c.call.Do(customersNodesCreateOp, map[string]string{"parent": c.parent}, c.node, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalNode{ServerResponse: gensupport.ServerResponse(res)})
}

var customersNodesListOp = &canonical.Operation{
	ID:          "customers.nodes.list",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+parent}/nodes",
	Summary:     "Lists nodes.",
	ResponseRef: "SasPortalListNodesResponse",
}

type CustomersNodesListCall struct {
	call   gensupport.Call
	parent string
}

// List: Lists nodes.
//
// - parent: The parent resource name, for example, "nodes/1".
func (r *CustomersNodesService) List(parent string) *CustomersNodesListCall {
	return &CustomersNodesListCall{call: r.s.newCall(), parent: parent}
}

// Filter sets the optional parameter "filter": The filter expression. The
// filter should have the following format: "DIRECT_CHILDREN" or format:
// "direct_children".
func (c *CustomersNodesListCall) Filter(filter string) *CustomersNodesListCall {
	c.call.Params().Set("filter", filter)
	return c
}

// PageSize sets the optional parameter "pageSize".
func (c *CustomersNodesListCall) PageSize(pageSize int64) *CustomersNodesListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken".
func (c *CustomersNodesListCall) PageToken(pageToken string) *CustomersNodesListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *CustomersNodesListCall) Fields(s ...googleapi.Field) *CustomersNodesListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *CustomersNodesListCall) IfNoneMatch(entityTag string) *CustomersNodesListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *CustomersNodesListCall) Context(ctx context.Context) *CustomersNodesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *CustomersNodesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.customers.nodes.list" call.
func (c *CustomersNodesListCall) Do(opts ...googleapi.CallOption) (*SasPortalListNodesResponse, error) {
	res, err := c.call.Do(customersNodesListOp, map[string]string{"parent": c.parent}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalListNodesResponse{ServerResponse: gensupport.ServerResponse(res)})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *CustomersNodesListCall) Pages(ctx context.Context, f func(*SasPortalListNodesResponse) error) error {
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
