package content

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var productsCustombatchOp = &canonical.Operation{
	ID:          "products.custombatch",
	Method:      http.MethodPost,
	Path:        "products/batch",
	Summary:     "Retrieves, inserts, and deletes multiple products in a single request.",
	RequestRef:  "ProductsCustomBatchRequest",
	ResponseRef: "ProductsCustomBatchResponse",
}

type ProductsCustombatchCall struct {
	call                       gensupport.Call
	productscustombatchrequest *ProductsCustomBatchRequest
}

// Custombatch: Retrieves, inserts, and deletes multiple products in a single
// request.
func (r *ProductsService) Custombatch(productscustombatchrequest *ProductsCustomBatchRequest) *ProductsCustombatchCall {
	return &ProductsCustombatchCall{call: r.s.newCall(), productscustombatchrequest: productscustombatchrequest}
}

// Fields allows partial responses to be retrieved.
func (c *ProductsCustombatchCall) Fields(s ...googleapi.Field) *ProductsCustombatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsCustombatchCall) Context(ctx context.Context) *ProductsCustombatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsCustombatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.custombatch" call.
func (c *ProductsCustombatchCall) Do(opts ...googleapi.CallOption) (*ProductsCustomBatchResponse, error) {
	res, err := c.call.Do(productsCustombatchOp, nil, c.productscustombatchrequest, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ProductsCustomBatchResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var productsDeleteOp = &canonical.Operation{
	ID:      "products.delete",
	Method:  http.MethodDelete,
	Path:    "{merchantId}/products/{productId}",
	Summary: "Deletes a product from your Merchant Center account.",
}

type ProductsDeleteCall struct {
	call       gensupport.Call
	merchantId uint64
	productId  string
}

// Delete: Deletes a product from your Merchant Center account.
//
//   - merchantId: The ID of the account that contains the product.
//   - productId: The REST ID of the product.
func (r *ProductsService) Delete(merchantId uint64, productId string) *ProductsDeleteCall {
	return &ProductsDeleteCall{call: r.s.newCall(), merchantId: merchantId, productId: productId}
}

// FeedId sets the optional parameter "feedId": The Content API Supplemental
// Feed ID.
func (c *ProductsDeleteCall) FeedId(feedId uint64) *ProductsDeleteCall {
	c.call.Params().Set("feedId", fmt.Sprint(feedId))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductsDeleteCall) Fields(s ...googleapi.Field) *ProductsDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsDeleteCall) Context(ctx context.Context) *ProductsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.delete" call.
func (c *ProductsDeleteCall) Do(opts ...googleapi.CallOption) error {
	res, err := c.call.Do(productsDeleteOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"productId":  c.productId,
	}, nil, opts)
	if err != nil {
		return err
	}
	googleapi.CloseBody(res)
	return nil
}

var productsGetOp = &canonical.Operation{
	ID:          "products.get",
	Method:      http.MethodGet,
	Path:        "{merchantId}/products/{productId}",
	Summary:     "Retrieves a product from your Merchant Center account.",
	ResponseRef: "Product",
}

type ProductsGetCall struct {
	call       gensupport.Call
	merchantId uint64
	productId  string
}

// Get: Retrieves a product from your Merchant Center account.
//
//   - merchantId: The ID of the account that contains the product.
//   - productId: The REST ID of the product.
func (r *ProductsService) Get(merchantId uint64, productId string) *ProductsGetCall {
	return &ProductsGetCall{call: r.s.newCall(), merchantId: merchantId, productId: productId}
}

// Fields allows partial responses to be retrieved.
func (c *ProductsGetCall) Fields(s ...googleapi.Field) *ProductsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProductsGetCall) IfNoneMatch(entityTag string) *ProductsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsGetCall) Context(ctx context.Context) *ProductsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.get" call.
func (c *ProductsGetCall) Do(opts ...googleapi.CallOption) (*Product, error) {
	res, err := c.call.Do(productsGetOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"productId":  c.productId,
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Product{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var productsInsertOp = &canonical.Operation{
	ID:          "products.insert",
	Method:      http.MethodPost,
	Path:        "{merchantId}/products",
	Summary:     "Uploads a product to your Merchant Center account.",
	RequestRef:  "Product",
	ResponseRef: "Product",
}

type ProductsInsertCall struct {
	call       gensupport.Call
	merchantId uint64
	product    *Product
}

// Insert: Uploads a product to your Merchant Center account. If an item with
// the same channel, contentLanguage, offerId, and targetCountry already
// exists, this method updates that entry.
//
//   - merchantId: The ID of the account that contains the product.
func (r *ProductsService) Insert(merchantId uint64, product *Product) *ProductsInsertCall {
	return &ProductsInsertCall{call: r.s.newCall(), merchantId: merchantId, product: product}
}

// FeedId sets the optional parameter "feedId": The Content API Supplemental
// Feed ID.
func (c *ProductsInsertCall) FeedId(feedId uint64) *ProductsInsertCall {
	c.call.Params().Set("feedId", fmt.Sprint(feedId))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductsInsertCall) Fields(s ...googleapi.Field) *ProductsInsertCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsInsertCall) Context(ctx context.Context) *ProductsInsertCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsInsertCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.insert" call.
func (c *ProductsInsertCall) Do(opts ...googleapi.CallOption) (*Product, error) {
	res, err := c.call.Do(productsInsertOp, map[string]string{
		"merchantId": formatID(c.merchantId),
	}, c.product, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Product{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var productsListOp = &canonical.Operation{
	ID:          "products.list",
	Method:      http.MethodGet,
	Path:        "{merchantId}/products",
	Summary:     "Lists the products in your Merchant Center account.",
	ResponseRef: "ProductsListResponse",
}

type ProductsListCall struct {
	call       gensupport.Call
	merchantId uint64
}

// List: Lists the products in your Merchant Center account. The response
// might contain fewer items than specified by maxResults. Rely on
// nextPageToken to determine if there are more items to be requested.
//
//   - merchantId: The ID of the account that contains the products.
func (r *ProductsService) List(merchantId uint64) *ProductsListCall {
	return &ProductsListCall{call: r.s.newCall(), merchantId: merchantId}
}

// MaxResults sets the optional parameter "maxResults": The maximum number of
// products to return in the response, used for paging. The default value is
// 25. The maximum value is 250.
func (c *ProductsListCall) MaxResults(maxResults int64) *ProductsListCall {
	c.call.Params().Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// PageToken sets the optional parameter "pageToken": The token returned by
// the previous request.
func (c *ProductsListCall) PageToken(pageToken string) *ProductsListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductsListCall) Fields(s ...googleapi.Field) *ProductsListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ProductsListCall) IfNoneMatch(entityTag string) *ProductsListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsListCall) Context(ctx context.Context) *ProductsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.list" call.
func (c *ProductsListCall) Do(opts ...googleapi.CallOption) (*ProductsListResponse, error) {
	res, err := c.call.Do(productsListOp, map[string]string{
		"merchantId": formatID(c.merchantId),
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &ProductsListResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ProductsListCall) Pages(ctx context.Context, f func(*ProductsListResponse) error) error {
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

var productsUpdateOp = &canonical.Operation{
	ID:          "products.update",
	Method:      http.MethodPatch,
	Path:        "{merchantId}/products/{productId}",
	Summary:     "Updates an existing product in your Merchant Center account.",
	RequestRef:  "Product",
	ResponseRef: "Product",
}

type ProductsUpdateCall struct {
	call       gensupport.Call
	merchantId uint64
	productId  string
	product    *Product
}

// Update: Updates an existing product in your Merchant Center account. Only
// updates attributes provided in the request.
//
//   - merchantId: The ID of the account that contains the product.
//   - productId: The REST ID of the product for which to update.
func (r *ProductsService) Update(merchantId uint64, productId string, product *Product) *ProductsUpdateCall {
	return &ProductsUpdateCall{call: r.s.newCall(), merchantId: merchantId, productId: productId, product: product}
}

// UpdateMask sets the optional parameter "updateMask": The comma-separated
// list of product attributes to be updated.
func (c *ProductsUpdateCall) UpdateMask(updateMask string) *ProductsUpdateCall {
	c.call.Params().Set("updateMask", updateMask)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ProductsUpdateCall) Fields(s ...googleapi.Field) *ProductsUpdateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ProductsUpdateCall) Context(ctx context.Context) *ProductsUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ProductsUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.products.update" call.
func (c *ProductsUpdateCall) Do(opts ...googleapi.CallOption) (*Product, error) {
	res, err := c.call.Do(productsUpdateOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"productId":  c.productId,
	}, c.product, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Product{
		ServerResponse: gensupport.ServerResponse(res),
	})
}
