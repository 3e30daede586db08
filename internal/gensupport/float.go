// Copyright 2016 Google LLC.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Derived from google.golang.org/api/internal/gensupport/jsonfloat.go.

package gensupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// JSONFloat64 is a float64 that supports proper unmarshaling of special
// float values in JSON, according to
// https://developers.google.com/protocol-buffers/docs/proto3#json.
// Although that is a proto-to-JSON spec, it applies to all Google APIs.
//
// The jsonpb package
// (https://github.com/golang/protobuf/blob/master/jsonpb/jsonpb.go) has
// similar functionality, but only for direct translation from proto
// messages to JSON.
type JSONFloat64 float64

// MarshalJSON writes NaN and the infinities as the strings UnmarshalJSON
// accepts, and every other value as a JSON number.
func (f JSONFloat64) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}

func (f *JSONFloat64) UnmarshalJSON(data []byte) error {
	var ff float64
	if err := json.Unmarshal(data, &ff); err == nil {
		*f = JSONFloat64(ff)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			ff = math.NaN()
		case "Infinity":
			ff = math.Inf(1)
		case "-Infinity":
			ff = math.Inf(-1)
		default:
			// proto3 JSON also allows numbers in string form.
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("google api: bad float string %q", s)
			}
			ff = v
		}
		*f = JSONFloat64(ff)
		return nil
	}
	return errors.New("google api: data not float or string")
}
