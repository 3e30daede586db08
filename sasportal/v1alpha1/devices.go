package sasportal

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var devicesDeleteOp = &canonical.Operation{
	ID:          "devices.delete",
	Method:      http.MethodDelete,
	Path:        "v1alpha1/{+name}",
	Summary:     "Deletes a device.",
	ResponseRef: "SasPortalEmpty",
}

type DevicesDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Deletes a device.
//
// - name: The name of the device.
func (r *DevicesService) Delete(name string) *DevicesDeleteCall {
	return &DevicesDeleteCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *DevicesDeleteCall) Fields(s ...googleapi.Field) *DevicesDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesDeleteCall) Context(ctx context.Context) *DevicesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.delete" call.
func (c *DevicesDeleteCall) Do(opts ...googleapi.CallOption) (*SasPortalEmpty, error) {
	res, err := c.call.Do(devicesDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalEmpty{ServerResponse: gensupport.ServerResponse(res)})
}

var devicesGetOp = &canonical.Operation{
	ID:          "devices.get",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+name}",
	Summary:     "Gets details about a device.",
	ResponseRef: "SasPortalDevice",
}

type DevicesGetCall struct {
	call gensupport.Call
	name string
}

// Get: Gets details about a device.
//
// - name: The name of the device.
func (r *DevicesService) Get(name string) *DevicesGetCall {
	return &DevicesGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *DevicesGetCall) Fields(s ...googleapi.Field) *DevicesGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *DevicesGetCall) IfNoneMatch(entityTag string) *DevicesGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesGetCall) Context(ctx context.Context) *DevicesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.get" call.
func (c *DevicesGetCall) Do(opts ...googleapi.CallOption) (*SasPortalDevice, error) {
	res, err := c.call.Do(devicesGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDevice{ServerResponse: gensupport.ServerResponse(res)})
}

var devicesMoveOp = &canonical.Operation{
	ID:          "devices.move",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+name}:move",
	Summary:     "Moves a device under another node or customer.",
	RequestRef:  "SasPortalMoveDeviceRequest",
	ResponseRef: "SasPortalOperation",
}

type DevicesMoveCall struct {
	call gensupport.Call
	name string
	req  *SasPortalMoveDeviceRequest
}

// Move: Moves a device under another node or customer.
//
// - name: The name of the device to move.
func (r *DevicesService) Move(name string, sasportalmovedevicerequest *SasPortalMoveDeviceRequest) *DevicesMoveCall {
	return &DevicesMoveCall{call: r.s.newCall(), name: name, req: sasportalmovedevicerequest}
}

// Fields allows partial responses to be retrieved.
func (c *DevicesMoveCall) Fields(s ...googleapi.Field) *DevicesMoveCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesMoveCall) Context(ctx context.Context) *DevicesMoveCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesMoveCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.move" call.
func (c *DevicesMoveCall) Do(opts ...googleapi.CallOption) (*SasPortalOperation, error) {
	res, err := c.call.Do(devicesMoveOp, map[string]string{"name": c.name}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalOperation{ServerResponse: gensupport.ServerResponse(res)})
}

var devicesPatchOp = &canonical.Operation{
	ID:          "devices.patch",
	Method:      http.MethodPatch,
	Path:        "v1alpha1/{+name}",
	Summary:     "Updates a device.",
	RequestRef:  "SasPortalDevice",
	ResponseRef: "SasPortalDevice",
}

type DevicesPatchCall struct {
	call   gensupport.Call
	name   string
	device *SasPortalDevice
}

// Patch: Updates a device.
//
// - name: Output only. The resource path name.
func (r *DevicesService) Patch(name string, sasportaldevice *SasPortalDevice) *DevicesPatchCall {
	return &DevicesPatchCall{call: r.s.newCall(), name: name, device: sasportaldevice}
}

// UpdateMask sets the optional parameter "updateMask": Fields to be
// updated.
func (c *DevicesPatchCall) UpdateMask(updateMask string) *DevicesPatchCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *DevicesPatchCall) Fields(s ...googleapi.Field) *DevicesPatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesPatchCall) Context(ctx context.Context) *DevicesPatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesPatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.patch" call.
func (c *DevicesPatchCall) Do(opts ...googleapi.CallOption) (*SasPortalDevice, error) {
	res, err := c.call.Do(devicesPatchOp, map[string]string{"name": c.name}, c.device, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDevice{ServerResponse: gensupport.ServerResponse(res)})
}

var devicesSignDeviceOp = &canonical.Operation{
	ID:          "devices.signDevice",
	Method:      http.MethodPost,
	Path:        "v1alpha1/{+name}:signDevice",
	Summary:     "Signs a device.",
	RequestRef:  "SasPortalSignDeviceRequest",
	ResponseRef: "SasPortalEmpty",
}

type DevicesSignDeviceCall struct {
	call gensupport.Call
	name string
	req  *SasPortalSignDeviceRequest
}

// SignDevice: Signs a device.
//
// - name: Output only. The resource path name.
func (r *DevicesService) SignDevice(name string, sasportalsigndevicerequest *SasPortalSignDeviceRequest) *DevicesSignDeviceCall {
	return &DevicesSignDeviceCall{call: r.s.newCall(), name: name, req: sasportalsigndevicerequest}
}

// Fields allows partial responses to be retrieved.
func (c *DevicesSignDeviceCall) Fields(s ...googleapi.Field) *DevicesSignDeviceCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesSignDeviceCall) Context(ctx context.Context) *DevicesSignDeviceCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesSignDeviceCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.signDevice" call.
func (c *DevicesSignDeviceCall) Do(opts ...googleapi.CallOption) (*SasPortalEmpty, error) {
	res, err := c.call.Do(devicesSignDeviceOp, map[string]string{"name": c.name}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalEmpty{ServerResponse: gensupport.ServerResponse(res)})
}

var devicesUpdateSignedOp = &canonical.Operation{
	ID:          "devices.updateSigned",
	Method:      http.MethodPatch,
	Path:        "v1alpha1/{+name}:updateSigned",
	Summary:     "Updates a signed device.",
	RequestRef:  "SasPortalUpdateSignedDeviceRequest",
	ResponseRef: "SasPortalDevice",
}

type DevicesUpdateSignedCall struct {
	call gensupport.Call
	name string
	req  *SasPortalUpdateSignedDeviceRequest
}

// UpdateSigned: Updates a signed device.
//
// - name: The name of the device to update.
func (r *DevicesService) UpdateSigned(name string, sasportalupdatesigneddevicerequest *SasPortalUpdateSignedDeviceRequest) *DevicesUpdateSignedCall {
	return &DevicesUpdateSignedCall{call: r.s.newCall(), name: name, req: sasportalupdatesigneddevicerequest}
}

// Fields allows partial responses to be retrieved.
func (c *DevicesUpdateSignedCall) Fields(s ...googleapi.Field) *DevicesUpdateSignedCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *DevicesUpdateSignedCall) Context(ctx context.Context) *DevicesUpdateSignedCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *DevicesUpdateSignedCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.devices.updateSigned" call.
func (c *DevicesUpdateSignedCall) Do(opts ...googleapi.CallOption) (*SasPortalDevice, error) {
	res, err := c.call.Do(devicesUpdateSignedOp, map[string]string{"name": c.name}, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalDevice{ServerResponse: gensupport.ServerResponse(res)})
}
