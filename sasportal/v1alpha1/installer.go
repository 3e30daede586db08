package sasportal

import (
	"context"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var installerGenerateSecretOp = &canonical.Operation{
	ID:          "installer.generateSecret",
	Method:      http.MethodPost,
	Path:        "v1alpha1/installer:generateSecret",
	Summary:     "Generates a secret to be used with the ValidateInstaller.",
	RequestRef:  "SasPortalGenerateSecretRequest",
	ResponseRef: "SasPortalGenerateSecretResponse",
}

type InstallerGenerateSecretCall struct {
	call gensupport.Call
	req  *SasPortalGenerateSecretRequest
}

// GenerateSecret: Generates a secret to be used with the ValidateInstaller.
func (r *InstallerService) GenerateSecret(sasportalgeneratesecretrequest *SasPortalGenerateSecretRequest) *InstallerGenerateSecretCall {
	return &InstallerGenerateSecretCall{call: r.s.newCall(), req: sasportalgeneratesecretrequest}
}

// Fields allows partial responses to be retrieved.
func (c *InstallerGenerateSecretCall) Fields(s ...googleapi.Field) *InstallerGenerateSecretCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *InstallerGenerateSecretCall) Context(ctx context.Context) *InstallerGenerateSecretCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *InstallerGenerateSecretCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.installer.generateSecret" call.
func (c *InstallerGenerateSecretCall) Do(opts ...googleapi.CallOption) (*SasPortalGenerateSecretResponse, error) {
	res, err := c.call.Do(installerGenerateSecretOp, nil, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalGenerateSecretResponse{ServerResponse: gensupport.ServerResponse(res)})
}

var installerValidateOp = &canonical.Operation{
	ID:          "installer.validate",
	Method:      http.MethodPost,
	Path:        "v1alpha1/installer:validate",
	Summary:     "Validates the identity of a Certified Professional Installer (CPI).",
	RequestRef:  "SasPortalValidateInstallerRequest",
	ResponseRef: "SasPortalValidateInstallerResponse",
}

type InstallerValidateCall struct {
	call gensupport.Call
	req  *SasPortalValidateInstallerRequest
}

// Validate: Validates the identity of a Certified Professional Installer
// (CPI).
func (r *InstallerService) Validate(sasportalvalidateinstallerrequest *SasPortalValidateInstallerRequest) *InstallerValidateCall {
	return &InstallerValidateCall{call: r.s.newCall(), req: sasportalvalidateinstallerrequest}
}

// Fields allows partial responses to be retrieved.
func (c *InstallerValidateCall) Fields(s ...googleapi.Field) *InstallerValidateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *InstallerValidateCall) Context(ctx context.Context) *InstallerValidateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *InstallerValidateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "sasportal.installer.validate" call.
func (c *InstallerValidateCall) Do(opts ...googleapi.CallOption) (*SasPortalValidateInstallerResponse, error) {
	res, err := c.call.Do(installerValidateOp, nil, c.req, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &SasPortalValidateInstallerResponse{ServerResponse: gensupport.ServerResponse(res)})
}
