package factchecktools

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
)

var claimsImageSearchOp = &canonical.Operation{
	ID:          "claims.imageSearch",
	Method:      http.MethodGet,
	Path:        "v1alpha1/claims:imageSearch",
	Summary:     "Searches through fact-checked claims using an image as the query.",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse",
}

type ClaimsImageSearchCall struct {
	call gensupport.Call
}

// ImageSearch: Searches through fact-checked claims using an image as the
// query.
func (r *ClaimsService) ImageSearch() *ClaimsImageSearchCall {
	return &ClaimsImageSearchCall{call: r.s.newCall()}
}

// ImageUri sets the optional parameter "imageUri": Required. The URI of the
// source image. This must be a publicly-accessible image HTTP/HTTPS URL.
func (c *ClaimsImageSearchCall) ImageUri(imageUri string) *ClaimsImageSearchCall {
	c.call.Params().Set("imageUri", imageUri)
	return c
}

// LanguageCode sets the optional parameter "languageCode": The BCP-47
// language code, such as "en-US" or "sr-Latn". Can be used to restrict
// results by language, though we do not currently consider the region.
func (c *ClaimsImageSearchCall) LanguageCode(languageCode string) *ClaimsImageSearchCall {
	c.call.Params().Set("languageCode", languageCode)
	return c
}

// Offset sets the optional parameter "offset": An integer that specifies the
// current offset (that is, starting result location) in search results.
func (c *ClaimsImageSearchCall) Offset(offset int64) *ClaimsImageSearchCall {
	c.call.Params().Set("offset", fmt.Sprint(offset))
	return c
}

// PageSize sets the optional parameter "pageSize": The pagination size. We
// will return up to that many results. Defaults to 10 if not set.
func (c *ClaimsImageSearchCall) PageSize(pageSize int64) *ClaimsImageSearchCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The pagination token.
func (c *ClaimsImageSearchCall) PageToken(pageToken string) *ClaimsImageSearchCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Fields allows partial responses to be retrieved. See
// https://developers.google.com/gdata/docs/2.0/basics#PartialResponse for
// more details.
func (c *ClaimsImageSearchCall) Fields(s ...googleapi.Field) *ClaimsImageSearchCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value. Use googleapi.IsNotModified to
// check whether the response error from Do is the result of If-None-Match.
func (c *ClaimsImageSearchCall) IfNoneMatch(entityTag string) *ClaimsImageSearchCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ClaimsImageSearchCall) Context(ctx context.Context) *ClaimsImageSearchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ClaimsImageSearchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.claims.imageSearch" call.
// Any non-2xx status code is an error. Response headers are in either
// *GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse.ServerResponse.Header
// or (if a response was returned at all) in error.(*googleapi.Error).Header.
func (c *ClaimsImageSearchCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse, error) {
	res, err := c.call.Do(claimsImageSearchOp, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ClaimsImageSearchCall) Pages(ctx context.Context, f func(*GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimImageSearchResponse) error) error {
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

var claimsSearchOp = &canonical.Operation{
	ID:          "claims.search",
	Method:      http.MethodGet,
	Path:        "v1alpha1/claims:search",
	Summary:     "Searches through fact-checked claims.",
	ResponseRef: "GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse",
}

type ClaimsSearchCall struct {
	call gensupport.Call
}

// Search: Searches through fact-checked claims.
func (r *ClaimsService) Search() *ClaimsSearchCall {
	return &ClaimsSearchCall{call: r.s.newCall()}
}

// LanguageCode sets the optional parameter "languageCode": The BCP-47
// language code, such as "en-US" or "sr-Latn".
func (c *ClaimsSearchCall) LanguageCode(languageCode string) *ClaimsSearchCall {
	c.call.Params().Set("languageCode", languageCode)
	return c
}

// MaxAgeDays sets the optional parameter "maxAgeDays": The maximum age of
// the returned search results, in days. Age is determined by either claim
// date or review date, whichever is newer.
func (c *ClaimsSearchCall) MaxAgeDays(maxAgeDays int64) *ClaimsSearchCall {
	c.call.Params().Set("maxAgeDays", fmt.Sprint(maxAgeDays))
	return c
}

// Offset sets the optional parameter "offset": An integer that specifies the
// current offset in search results. This field is only considered if
// `page_token` is unset.
func (c *ClaimsSearchCall) Offset(offset int64) *ClaimsSearchCall {
	c.call.Params().Set("offset", fmt.Sprint(offset))
	return c
}

// PageSize sets the optional parameter "pageSize": The pagination size.
// Defaults to 10 if not set.
func (c *ClaimsSearchCall) PageSize(pageSize int64) *ClaimsSearchCall {
	c.call.Params().Set("pageSize", fmt.Sprint(pageSize))
	return c
}

// PageToken sets the optional parameter "pageToken": The pagination token.
func (c *ClaimsSearchCall) PageToken(pageToken string) *ClaimsSearchCall {
	c.call.Params().Set("pageToken", pageToken)
	return c
}

// Query sets the optional parameter "query": Textual query string. Required
// unless `review_publisher_site_filter` is specified.
func (c *ClaimsSearchCall) Query(query string) *ClaimsSearchCall {
	c.call.Params().Set("query", query)
	return c
}

// ReviewPublisherSiteFilter sets the optional parameter
// "reviewPublisherSiteFilter": The review publisher site to filter results
// by, e.g. nytimes.com.
func (c *ClaimsSearchCall) ReviewPublisherSiteFilter(reviewPublisherSiteFilter string) *ClaimsSearchCall {
	c.call.Params().Set("reviewPublisherSiteFilter", reviewPublisherSiteFilter)
	return c
}

// Fields allows partial responses to be retrieved.
func (c *ClaimsSearchCall) Fields(s ...googleapi.Field) *ClaimsSearchCall {
	c.call.SetFields(s)
	return c
}

// IfNoneMatch sets an optional parameter which makes the operation fail if
// the object's ETag matches the given value.
func (c *ClaimsSearchCall) IfNoneMatch(entityTag string) *ClaimsSearchCall {
	c.call.SetIfNoneMatch(entityTag)
	return c
}

// Context sets the context to be used in this call's Do method.
func (c *ClaimsSearchCall) Context(ctx context.Context) *ClaimsSearchCall {
	c.call.SetContext(ctx)
	return c
}

// Header returns a http.Header that can be modified by the caller to add
// headers to the request.
func (c *ClaimsSearchCall) Header() http.Header {
	return c.call.Header()
}

// Do executes the "factchecktools.claims.search" call.
func (c *ClaimsSearchCall) Do(opts ...googleapi.CallOption) (*GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse, error) {
	res, err := c.call.Do(claimsSearchOp, nil, nil, opts)
	if err != nil {
		return nil, err
	}
	return gensupport.Decode(res, &GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse{
		ServerResponse: gensupport.ServerResponse(res),
	})
}

// Pages invokes f for each page of results.
// A non-nil error returned from f will halt the iteration.
// The provided context supersedes any context provided to the Context method.
func (c *ClaimsSearchCall) Pages(ctx context.Context, f func(*GoogleFactcheckingFactchecktoolsV1alpha1FactCheckedClaimSearchResponse) error) error {
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
