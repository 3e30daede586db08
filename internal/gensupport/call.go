package gensupport

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
)

// Call holds the per-invocation state that every generated call builder
// embeds: the transport, the endpoint, query parameters and headers.
// The base path and user agent are captured when the call is created.
type Call struct {
	client      *http.Client
	basePath    string
	userAgent   string
	params      URLParams
	ctx         context.Context
	header      http.Header
	ifNoneMatch string
}

// NewCall returns a Call that sends requests through client, resolving
// paths against basePath.
func NewCall(client *http.Client, basePath, userAgent string) Call {
	return Call{
		client:    client,
		basePath:  basePath,
		userAgent: userAgent,
		params:    make(URLParams),
	}
}

// Params exposes the query parameters of the call.
func (c *Call) Params() URLParams { return c.params }

// SetFields sets the partial response field mask.
func (c *Call) SetFields(fields []googleapi.Field) {
	c.params.Set("fields", googleapi.CombineFields(fields))
}

// SetContext sets the context used by Do.
func (c *Call) SetContext(ctx context.Context) { c.ctx = ctx }

// Ctx returns the context set with SetContext, or nil.
func (c *Call) Ctx() context.Context { return c.ctx }

// SetIfNoneMatch makes the request conditional on the entity tag.
func (c *Call) SetIfNoneMatch(entityTag string) { c.ifNoneMatch = entityTag }

// Header returns an http.Header that can be modified by the caller to add
// headers to the request.
func (c *Call) Header() http.Header {
	if c.header == nil {
		c.header = make(http.Header)
	}
	return c.header
}

// Do sends op with the given path expansions and optional JSON body.
// It returns the response only for 2xx statuses; 304 and every other
// non-2xx status are returned as *googleapi.Error. The caller must close
// the returned body.
func (c *Call) Do(op *canonical.Operation, pathParams map[string]string, body any, opts []googleapi.CallOption) (*http.Response, error) {
	SetOptions(c.params, opts...)
	c.params.Set("alt", "json")
	c.params.Set("prettyPrint", "false")

	reqHeaders := make(http.Header)
	for k, v := range c.header {
		reqHeaders[k] = v
	}
	if c.userAgent != "" {
		reqHeaders.Set("User-Agent", c.userAgent)
	}
	if c.ifNoneMatch != "" {
		reqHeaders.Set("If-None-Match", c.ifNoneMatch)
	}
	var reader io.Reader
	if body != nil {
		buf, err := WriteJSON(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op.ID, err)
		}
		reqHeaders.Set("Content-Type", "application/json")
		reader = buf
	}

	urls := googleapi.ResolveRelative(c.basePath, op.Path)
	urls += "?" + c.params.Encode()
	req, err := http.NewRequest(op.Method, urls, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op.ID, err)
	}
	req.Header = reqHeaders
	googleapi.Expand(req.URL, pathParams)

	res, err := SendRequest(c.ctx, c.client, req)
	if res != nil && res.StatusCode == http.StatusNotModified {
		if res.Body != nil {
			res.Body.Close()
		}
		return nil, &googleapi.Error{
			Code:   res.StatusCode,
			Header: res.Header,
		}
	}
	if err != nil {
		return nil, err
	}
	if err := googleapi.CheckResponse(res); err != nil {
		googleapi.CloseBody(res)
		return nil, err
	}
	return res, nil
}
