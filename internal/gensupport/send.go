// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Derived from google.golang.org/api/internal/gensupport/send.go.

package gensupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"
)

// SendRequest sends a single HTTP request using the given client.
// If ctx is non-nil, it sends the request with ctx.Done and a cancelled
// context surfaces as ctx.Err().
func SendRequest(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := req.Header["Accept-Encoding"]; ok {
		return nil, errors.New("google api: custom Accept-Encoding headers not allowed")
	}
	slog.DebugContext(ctx, "google api request", "method", req.Method, "url", req.URL.Redacted())
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		return nil, err
	}
	return resp, nil
}

// DecodeResponse decodes the body of res into target. If there is no body,
// target is unchanged.
func DecodeResponse(target any, res *http.Response) error {
	if res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(target)
}

// ServerResponse captures the status and headers of res for embedding in a
// decoded response record.
func ServerResponse(res *http.Response) googleapi.ServerResponse {
	return googleapi.ServerResponse{
		Header:         res.Header,
		HTTPStatusCode: res.StatusCode,
	}
}

// WriteJSON encodes body as a JSON request payload.
func WriteJSON(body any) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode decodes res into ret, closes the body and returns ret.
func Decode[T any](res *http.Response, ret *T) (*T, error) {
	defer googleapi.CloseBody(res)
	if err := DecodeResponse(ret, res); err != nil {
		return nil, err
	}
	return ret, nil
}
