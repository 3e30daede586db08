package content

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var productstatusesGetOp = &canonical.Operation{
	ID:          "productstatuses.get",
	Method:      http.MethodGet,
	Path:        "{merchantId}/productstatuses/{productId}",
	Summary:     "Gets the status of a product from your Merchant Center account.",
	ResponseRef: "ProductStatus",
}

type ProductstatusesGetCall struct {
	call       gensupport.Call
	merchantId uint64
	productId  string
}

// Get: Gets the status of a product from your Merchant Center account.
//
//   - merchantId: The ID of the account that contains the product.
//   - productId: The REST ID of the product.
func (r *ProductstatusesService) Get(merchantId uint64, productId string) *ProductstatusesGetCall {
	return &ProductstatusesGetCall{call: r.s.newCall(), merchantId: merchantId, productId: productId}
}

// Destinations sets the optional parameter "destinations": If set, only
// issues for the specified destinations are returned, otherwise only issues
// for the Shopping destination.
func (c *ProductstatusesGetCall) Destinations(destinations ...string) *ProductstatusesGetCall {
	c.call.Params().SetMulti("destinations", destinations)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductstatusesGetCall) Fields(s ...googleapi.Field) *ProductstatusesGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProductstatusesGetCall) IfNoneMatch(entityTag string) *ProductstatusesGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductstatusesGetCall) Context(ctx context.Context) *ProductstatusesGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductstatusesGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.productstatuses.get" call.
func (c *ProductstatusesGetCall) Do(opts ...googleapi.CallOption) (*ProductStatus, error) {
	res, err := c.call.Do(productstatusesGetOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"productId":  c.productId,
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ProductStatus{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var productstatusesListOp = &canonical.Operation{
	ID:          "productstatuses.list",
	Method:      http.MethodGet,
	Path:        "{merchantId}/productstatuses",
	Summary:     "Lists the statuses of the products in your Merchant Center account.",
	ResponseRef: "ProductstatusesListResponse",
}

type ProductstatusesListCall struct {
	call       gensupport.Call
	merchantId uint64
}

// List: Lists the statuses of the products in your Merchant Center account.
//
//   - merchantId: The ID of the account that contains the products.
func (r *ProductstatusesService) List(merchantId uint64) *ProductstatusesListCall {
	return &ProductstatusesListCall{call: r.s.newCall(), merchantId: merchantId}
}

// Destinations sets the optional parameter "destinations": If set, only
// issues for the specified destinations are returned.
func (c *ProductstatusesListCall) Destinations(destinations ...string) *ProductstatusesListCall {
	c.call.Params().SetMulti("destinations", destinations)
	return c
}

// MaxResults sets the optional parameter "maxResults": The maximum number of
// product statuses to return in the response, used for paging. The default
// value is 25. The maximum value is 250.
func (c *ProductstatusesListCall) MaxResults(maxResults int64) *ProductstatusesListCall {
	c.call.Params().Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// PageToken sets the optional parameter "pageToken": The token returned by
// the previous request.
func (c *ProductstatusesListCall) PageToken(pageToken string) *ProductstatusesListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductstatusesListCall) Fields(s ...googleapi.Field) *ProductstatusesListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProductstatusesListCall) IfNoneMatch(entityTag string) *ProductstatusesListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductstatusesListCall) Context(ctx context.Context) *ProductstatusesListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductstatusesListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.productstatuses.list" call.
func (c *ProductstatusesListCall) Do(opts ...googleapi.CallOption) (*ProductstatusesListResponse, error) {
	res, err := c.call.Do(productstatusesListOp, map[string]string{
		"merchantId": formatID(c.merchantId),
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ProductstatusesListResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProductstatusesListCall) Pages(ctx context.Context, f func(*ProductstatusesListResponse) error) error {
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
