package content

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var accountsAuthinfoOp = &canonical.Operation{
	ID:          "accounts.authinfo",
	Method:      http.MethodGet,
	Path:        "accounts/authinfo",
	Summary:     "Returns information about the authenticated user.",
	ResponseRef: "AccountsAuthInfoResponse",
}

type AccountsAuthinfoCall struct {
	call gensupport.Call
}

// Authinfo: Returns information about the authenticated user.
func (r *AccountsService) Authinfo() *AccountsAuthinfoCall {
	return &AccountsAuthinfoCall{call: r.s.newCall()}
}

// Fields allows partial responses to be retrieved.
func (c *AccountsAuthinfoCall) Fields(s ...googleapi.Field) *AccountsAuthinfoCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *AccountsAuthinfoCall) IfNoneMatch(entityTag string) *AccountsAuthinfoCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsAuthinfoCall) Context(ctx context.Context) *AccountsAuthinfoCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsAuthinfoCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.authinfo" call.
func (c *AccountsAuthinfoCall) Do(opts ...googleapi.CallOption) (*AccountsAuthInfoResponse, error) {
	res, err := c.call.Do(accountsAuthinfoOp, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &AccountsAuthInfoResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var accountsCustombatchOp = &canonical.Operation{
	ID:          "accounts.custombatch",
	Method:      http.MethodPost,
	Path:        "accounts/batch",
	Summary:     "Retrieves, inserts, updates, and deletes multiple Merchant Center (sub-)accounts in a single request.",
	RequestRef:  "AccountsCustomBatchRequest",
	ResponseRef: "AccountsCustomBatchResponse",
}

type AccountsCustombatchCall struct {
	call                       gensupport.Call
	accountscustombatchrequest *AccountsCustomBatchRequest
}

// Custombatch: Retrieves, inserts, updates, and deletes multiple Merchant
// Center (sub-)accounts in a single request. The entries are sent as one
// request body; the server reports a result per entry.
func (r *AccountsService) Custombatch(accountscustombatchrequest *AccountsCustomBatchRequest) *AccountsCustombatchCall {
	return &AccountsCustombatchCall{call: r.s.newCall(), accountscustombatchrequest: accountscustombatchrequest}
}

// Fields allows partial responses to be retrieved.
func (c *AccountsCustombatchCall) Fields(s ...googleapi.Field) *AccountsCustombatchCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsCustombatchCall) Context(ctx context.Context) *AccountsCustombatchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsCustombatchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.custombatch" call.
func (c *AccountsCustombatchCall) Do(opts ...googleapi.CallOption) (*AccountsCustomBatchResponse, error) {
	res, err := c.call.Do(accountsCustombatchOp, nil, c.accountscustombatchrequest, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &AccountsCustomBatchResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var accountsDeleteOp = &canonical.Operation{
	ID:      "accounts.delete",
	Method:  http.MethodDelete,
	Path:    "{merchantId}/accounts/{accountId}",
	Summary: "Deletes a Merchant Center sub-account.",
}

type AccountsDeleteCall struct {
	call       gensupport.Call
	merchantId uint64
	accountId  uint64
}

// Delete: Deletes a Merchant Center sub-account.
//
//   - accountId: The ID of the account.
//   - merchantId: The ID of the managing account. This must be a multi-client
//     account, and accountId must be the ID of a sub-account of this account.
func (r *AccountsService) Delete(merchantId uint64, accountId uint64) *AccountsDeleteCall {
	return &AccountsDeleteCall{call: r.s.newCall(), merchantId: merchantId, accountId: accountId}
}

// Force sets the optional parameter "force": Option to delete sub-accounts
// with products. The default value is false.
func (c *AccountsDeleteCall) Force(force bool) *AccountsDeleteCall {
	c.call.Params().Set("force", fmt.Sprint(force))
	return c
}

// Fields allows partial responses to be retrieved.
func (c *AccountsDeleteCall) Fields(s ...googleapi.Field) *AccountsDeleteCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsDeleteCall) Context(ctx context.Context) *AccountsDeleteCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsDeleteCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.delete" call.
func (c *AccountsDeleteCall) Do(opts ...googleapi.CallOption) error {
	res, err := c.call.Do(accountsDeleteOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"accountId":  formatID(c.accountId),
	}, nil, opts)
	if err != nil {
		return err
	}
	googleapi.CloseBody(res)
	return nil
}

var accountsGetOp = &canonical.Operation{
	ID:          "accounts.get",
	Method:      http.MethodGet,
	Path:        "{merchantId}/accounts/{accountId}",
	Summary:     "Retrieves a Merchant Center account.",
	ResponseRef: "Account",
}

type AccountsGetCall struct {
	call       gensupport.Call
	merchantId uint64
	accountId  uint64
}

// Get: Retrieves a Merchant Center account.
//
//   - accountId: The ID of the account.
//   - merchantId: The ID of the managing account. If this parameter is not
//     the same as accountId, then this account must be a multi-client account
//     and `accountId` must be the ID of a sub-account of this account.
func (r *AccountsService) Get(merchantId uint64, accountId uint64) *AccountsGetCall {
	return &AccountsGetCall{call: r.s.newCall(), merchantId: merchantId, accountId: accountId}
}

// View sets the optional parameter "view": Controls which fields will be
// populated. Acceptable values are: "merchant" and "css". The default value
// is "merchant".
//
// Possible values:
//
//	"MERCHANT" - Default. View is populated with Merchant Center fields.
//	"CSS" - View is populated with Comparison Shopping Services fields.
func (c *AccountsGetCall) View(view string) *AccountsGetCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *AccountsGetCall) Fields(s ...googleapi.Field) *AccountsGetCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *AccountsGetCall) IfNoneMatch(entityTag string) *AccountsGetCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsGetCall) Context(ctx context.Context) *AccountsGetCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsGetCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.get" call.
func (c *AccountsGetCall) Do(opts ...googleapi.CallOption) (*Account, error) {
	res, err := c.call.Do(accountsGetOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"accountId":  formatID(c.accountId),
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Account{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var accountsInsertOp = &canonical.Operation{
	ID:          "accounts.insert",
	Method:      http.MethodPost,
	Path:        "{merchantId}/accounts",
	Summary:     "Creates a Merchant Center sub-account.",
	RequestRef:  "Account",
	ResponseRef: "Account",
}

type AccountsInsertCall struct {
	call       gensupport.Call
	merchantId uint64
	account    *Account
}

// Insert: Creates a Merchant Center sub-account.
//
//   - merchantId: The ID of the managing account. This must be a multi-client
//     account.
func (r *AccountsService) Insert(merchantId uint64, account *Account) *AccountsInsertCall {
	return &AccountsInsertCall{call: r.s.newCall(), merchantId: merchantId, account: account}
}

// Fields allows partial responses to be retrieved.
func (c *AccountsInsertCall) Fields(s ...googleapi.Field) *AccountsInsertCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsInsertCall) Context(ctx context.Context) *AccountsInsertCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsInsertCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.insert" call.
func (c *AccountsInsertCall) Do(opts ...googleapi.CallOption) (*Account, error) {
	res, err := c.call.Do(accountsInsertOp, map[string]string{
		"merchantId": formatID(c.merchantId),
	}, c.account, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Account{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

var accountsListOp = &canonical.Operation{
	ID:          "accounts.list",
	Method:      http.MethodGet,
	Path:        "{merchantId}/accounts",
	Summary:     "Lists the sub-accounts in your Merchant Center account.",
	ResponseRef: "AccountsListResponse",
}

type AccountsListCall struct {
	call       gensupport.Call
	merchantId uint64
}

// List: Lists the sub-accounts in your Merchant Center account.
//
//   - merchantId: The ID of the managing account. This must be a multi-client
//     account.
func (r *AccountsService) List(merchantId uint64) *AccountsListCall {
	return &AccountsListCall{call: r.s.newCall(), merchantId: merchantId}
}

// Label sets the optional parameter "label": If view is set to "css", only
// return accounts that are assigned label with given ID.
func (c *AccountsListCall) Label(label uint64) *AccountsListCall {
	c.call.Params().Set("label", fmt.Sprint(label))
	return c
}

// MaxResults sets the optional parameter "maxResults": The maximum number of
// accounts to return in the response, used for paging.
func (c *AccountsListCall) MaxResults(maxResults int64) *AccountsListCall {
	c.call.Params().Set("maxResults", fmt.Sprint(maxResults))
	return c
}

// Name sets the optional parameter "name": If set, only the accounts with
// the given name (case sensitive) will be returned.
func (c *AccountsListCall) Name(name string) *AccountsListCall {
	c.call.Params().Set("name", name)
	return c
}

// PageToken sets the optional parameter "pageToken": The token returned by
// the previous request.
func (c *AccountsListCall) PageToken(pageToken string) *AccountsListCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// View sets the optional parameter "view": Controls which fields will be
// populated.
func (c *AccountsListCall) View(view string) *AccountsListCall {
	c.call.Params().Set("view", view)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *AccountsListCall) Fields(s ...googleapi.Field) *AccountsListCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *AccountsListCall) IfNoneMatch(entityTag string) *AccountsListCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsListCall) Context(ctx context.Context) *AccountsListCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsListCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.list" call.
func (c *AccountsListCall) Do(opts ...googleapi.CallOption) (*AccountsListResponse, error) {
	res, err := c.call.Do(accountsListOp, map[string]string{
		"merchantId": formatID(c.merchantId),
	}, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &AccountsListResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *AccountsListCall) Pages(ctx context.Context, f func(*AccountsListResponse) error) error {
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

var accountsUpdateOp = &canonical.Operation{
	ID:          "accounts.update",
	Method:      http.MethodPut,
	Path:        "{merchantId}/accounts/{accountId}",
	Summary:     "Updates a Merchant Center account.",
	RequestRef:  "Account",
	ResponseRef: "Account",
}

type AccountsUpdateCall struct {
	call       gensupport.Call
	merchantId uint64
	accountId  uint64
	account    *Account
}

// Update: Updates a Merchant Center account. Any fields that are not
// provided are deleted from the resource.
//
//   - accountId: The ID of the account.
//   - merchantId: The ID of the managing account.
func (r *AccountsService) Update(merchantId uint64, accountId uint64, account *Account) *AccountsUpdateCall {
	return &AccountsUpdateCall{call: r.s.newCall(), merchantId: merchantId, accountId: accountId, account: account}
}

// Fields allows partial responses to be retrieved.
func (c *AccountsUpdateCall) Fields(s ...googleapi.Field) *AccountsUpdateCall {
	c.call.SetFields(s)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *AccountsUpdateCall) Context(ctx context.Context) *AccountsUpdateCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *AccountsUpdateCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "content.accounts.update" call.
func (c *AccountsUpdateCall) Do(opts ...googleapi.CallOption) (*Account, error) {
	res, err := c.call.Do(accountsUpdateOp, map[string]string{
		"merchantId": formatID(c.merchantId),
		"accountId":  formatID(c.accountId),
	}, c.account, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &Account{
		ServerResponse: gensupport.ServerResponse(res),
	})
}
