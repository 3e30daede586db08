package factchecktools

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var pagesCreateOp = &canonical.Operation{
	ID:          "pages.create",
	Method:      http.MethodPost,
	Path:        "v1alpha1/pages",
	Summary:     "Create `ClaimReview` markup on a page.",
	RequestRef:  "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage",
}

type PagesCreateCall struct {
	call gensupport.Call
	page *GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage
}

// Create: Create `ClaimReview` markup on a page.
func (r *PagesService) Create(page *GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage) *PagesCreateCall {
	return &PagesCreateCall{call: r.s.newCall(), page: page}
}

// Fields allows partial responses to be retrieved.
func (c *PagesCreateCall) Fields(s ...googleapi.Field) *PagesCreateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PagesCreateCall) Context(ctx context.Context) *PagesCreateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PagesCreateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.pages.create" call.
func (c *PagesCreateCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage, error) {
	res, err := c.call.Do(pagesCreateOp, nil, c.page, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var pagesDeleteOp = &canonical.Operation{
	ID:          "pages.delete",
	Method:      http.MethodDelete,
	Path:        "v1alpha1/{+name}",
	Summary:     "Delete all `ClaimReview` markup on a page.",
	ResponseRef: "GoogleProtobufEmpty",
}

type PagesDeleteCall struct {
	call gensupport.Call
	name string
}

// Delete: Delete all `ClaimReview` markup on a page.
//
//   - name: The name of the resource to delete, in the form of
//     `pages/{page_id}`.
func (r *PagesService) Delete(name string) *PagesDeleteCall {
	return &PagesDeleteCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *PagesDeleteCall) Fields(s ...googleapi.Field) *PagesDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PagesDeleteCall) Context(ctx context.Context) *PagesDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PagesDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.pages.delete" call.
func (c *PagesDeleteCall) Do(opts ...googleapi.CallOption) (*GoogleProtobufEmpty, error) {
	res, err := c.call.Do(pagesDeleteOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleProtobufEmpty{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var pagesGetOp = &canonical.Operation{
	ID:          "pages.get",
	Method:      http.MethodGet,
	Path:        "v1alpha1/{+name}",
	Summary:     "Get all `ClaimReview` markup on a page.",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage",
}

type PagesGetCall struct {
	call gensupport.Call
	name string
}

// Get: Get all `ClaimReview` markup on a page.
//
//   - name: The name of the resource to get, in the form of `pages/{page_id}`.
func (r *PagesService) Get(name string) *PagesGetCall {
	return &PagesGetCall{call: r.s.newCall(), name: name}
}

// Fields allows partial responses to be retrieved.
func (c *PagesGetCall) Fields(s ...googleapi.Field) *PagesGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *PagesGetCall) IfNoneMatch(entityTag string) *PagesGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PagesGetCall) Context(ctx context.Context) *PagesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PagesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.pages.get" call.
func (c *PagesGetCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage, error) {
	res, err := c.call.Do(pagesGetOp, map[string]string{"name": c.name}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var pagesListOp = &canonical.Operation{
	ID:          "pages.list",
	Method:      http.MethodGet,
	Path:        "v1alpha1/pages",
	Summary:     "List the `ClaimReview` markup pages for a specific URL or for an organization.",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse",
}

type PagesListCall struct {
	call gensupport.Call
}

// List: List the `ClaimReview` markup pages for a specific URL or for an
// organization.
func (r *PagesService) List() *PagesListCall {
	return &PagesListCall{call: r.s.newCall()}
}

// Offset sets the optional parameter "offset": An integer that specifies the
// current offset in search results. This field is only considered if
// `page_token` is unset, and if the request is not for a specific URL.
func (c *PagesListCall) Offset(offset int64) *PagesListCall {
	c.call.Params().Set("offset", fmt.Sprint(offset))
	return c
}

// Organization sets the optional parameter "organization": The organization
// for which we want to fetch markups for.
func (c *PagesListCall) Organization(organization string) *PagesListCall {
	c.call.Params().Set("organization", organization)
	return c
}

// PageSize sets the optional parameter "pageSize": The pagination size.
func (c *PagesListCall) PageSize(pageSize int64) *PagesListCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The pagination token.
func (c *PagesListCall) PageToken(pageToken string) *PagesListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Url sets the optional parameter "url": The URL from which to get
// `ClaimReview` markup.
func (c *PagesListCall) Url(url string) *PagesListCall {
	c.call.Params().Set("url", url)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *PagesListCall) Fields(s ...googleapi.Field) *PagesListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *PagesListCall) IfNoneMatch(entityTag string) *PagesListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PagesListCall) Context(ctx context.Context) *PagesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PagesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.pages.list" call.
func (c *PagesListCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse, error) {
	res, err := c.call.Do(pagesListOp, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *PagesListCall) Pages(ctx context.Context, f func(*GoogleFactcheckingFactchecktoolsV1alpha1ListClaimReviewMarkupPagesResponse) error) error {
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

var pagesUpdateOp = &canonical.Operation{
	ID:          "pages.update",
	Method:      http.MethodPut,
	Path:        "v1alpha1/{+name}",
	Summary:     "Update for all `ClaimReview` markup on a page.",
	RequestRef:  "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage",
}

type PagesUpdateCall struct {
	call gensupport.Call
	name string
	page *GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage
}

// Update: Update for all `ClaimReview` markup on a page. Note that this is a
// full update. To retain the existing `ClaimReview` markup on a page, first
// perform a Get operation, then modify the returned markup, and finally call
// Update with the entire `ClaimReview` markup as the body.
//
//   - name: The name of this `ClaimReview` markup page resource, in the form
//     of `pages/{page_id}`.
func (r *PagesService) Update(name string, page *GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage) *PagesUpdateCall {
	return &PagesUpdateCall{call: r.s.newCall(), name: name, page: page}
}

// Fields allows partial responses to be retrieved.
func (c *PagesUpdateCall) Fields(s ...googleapi.Field) *PagesUpdateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *PagesUpdateCall) Context(ctx context.Context) *PagesUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *PagesUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.pages.update" call.
func (c *PagesUpdateCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage, error) {
	res, err := c.call.Do(pagesUpdateOp, map[string]string{"name": c.name}, c.page, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1ClaimReviewMarkupPage{
		ServerResponse: gensupport.ServerResponse(res),
	})
}
