// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Derived from google.golang.org/api/internal/gensupport/json.go.

package gensupport

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// MarshalJSON returns a JSON encoding of schema containing only selected
// fields. A field is selected if any of the following is true:
//   - it has a non-empty value
//   - its field name is present in forceSendFields and it is not a nil pointer or nil interface
//   - its field name is present in nullFields.
//
// The JSON key for each selected field is taken from the field's json:
// struct tag. Fields tagged ",string" are sent as decimal strings. Float
// fields holding NaN or an infinity are sent as "NaN", "Infinity" or
// "-Infinity".
func MarshalJSON(schema any, forceSendFields, nullFields []string) ([]byte, error) {
	if len(forceSendFields) == 0 && len(nullFields) == 0 && !hasNonFiniteFloat(schema) {
		return json.Marshal(schema)
	}

	mustInclude := make(map[string]bool)
	for _, f := range forceSendFields {
		mustInclude[f] = true
	}
	useNull := make(map[string]bool)
	useNullMaps := make(map[string]map[string]bool)
	for _, nf := range nullFields {
		parts := strings.SplitN(nf, ".", 2)
		field := parts[0]
		if len(parts) == 1 {
			useNull[field] = true
		} else {
			if useNullMaps[field] == nil {
				useNullMaps[field] = map[string]bool{}
			}
			useNullMaps[field][parts[1]] = true
		}
	}

	dataMap, err := schemaToMap(schema, mustInclude, useNull, useNullMaps)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dataMap)
}

func schemaToMap(schema any, mustInclude, useNull map[string]bool, useNullMaps map[string]map[string]bool) (map[string]any, error) {
	m := make(map[string]any)
	s := reflect.ValueOf(schema)
	if s.Kind() == reflect.Ptr {
		s = s.Elem()
	}
	st := s.Type()

	for i := 0; i < s.NumField(); i++ {
		jsonTag := st.Field(i).Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		tag, err := parseJSONTag(jsonTag)
		if err != nil {
			return nil, err
		}
		if tag.ignore {
			continue
		}

		v := s.Field(i)
		f := st.Field(i)

		if useNull[f.Name] {
			if !isEmptyValue(v) {
				return nil, fmt.Errorf("field %q in NullFields has non-empty value", f.Name)
			}
			m[tag.apiName] = nil
			continue
		}

		if !includeField(v, f, mustInclude) {
			continue
		}

		// If map fields are explicitly set to null, use a map[string]any.
		if f.Type.Kind() == reflect.Map && useNullMaps[f.Name] != nil {
			mi := make(map[string]any, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				mi[iter.Key().String()] = iter.Value().Interface()
			}
			for k := range useNullMaps[f.Name] {
				mi[k] = nil
			}
			m[tag.apiName] = mi
			continue
		}

		// nil slices are encoded as null; send [] instead, or "" for bytes.
		if f.Type.Kind() == reflect.Slice && v.IsNil() {
			if f.Type.Elem().Kind() == reflect.Uint8 && !f.Type.Implements(marshalerType) {
				m[tag.apiName] = ""
				continue
			}
			m[tag.apiName] = []bool{}
			continue
		}

		if tag.stringFormat {
			m[tag.apiName] = formatAsString(v)
		} else if isNonFinite(v) {
			m[tag.apiName] = JSONFloat64(v.Float())
		} else {
			m[tag.apiName] = v.Interface()
		}
	}
	return m, nil
}

func isNonFinite(v reflect.Value) bool {
	if v.Kind() != reflect.Float32 && v.Kind() != reflect.Float64 {
		return false
	}
	f := v.Float()
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// hasNonFiniteFloat reports whether any top-level float field of schema is
// NaN or infinite. encoding/json refuses those values.
func hasNonFiniteFloat(schema any) bool {
	s := reflect.ValueOf(schema)
	if s.Kind() == reflect.Ptr {
		s = s.Elem()
	}
	if s.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < s.NumField(); i++ {
		if isNonFinite(s.Field(i)) {
			return true
		}
	}
	return false
}

// formatAsString returns a string representation of v, dereferencing it
// first if possible.
func formatAsString(v reflect.Value) string {
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	}
	return fmt.Sprintf("%v", v.Interface())
}

// jsonTag represents a restricted version of the struct tag format used by
// encoding/json. It is used to describe the JSON encoding of fields in a
// schema struct.
type jsonTag struct {
	apiName      string
	stringFormat bool
	ignore       bool
}

// parseJSONTag parses a restricted version of the struct tag format used
// by encoding/json.
func parseJSONTag(val string) (jsonTag, error) {
	if val == "-" {
		return jsonTag{ignore: true}, nil
	}

	var tag jsonTag

	name, opts, _ := strings.Cut(val, ",")
	if name == "" {
		return tag, fmt.Errorf("malformed json tag: %s", val)
	}
	tag.apiName = name
	if opts == "" {
		return tag, nil
	}

	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "omitempty", "omitzero":
		case "string":
			tag.stringFormat = true
		default:
			return tag, fmt.Errorf("malformed json tag: %s", val)
		}
	}

	return tag, nil
}

// includeField reports whether the field should be sent.
func includeField(v reflect.Value, f reflect.StructField, mustInclude map[string]bool) bool {
	// The regular JSON encoding of a nil pointer is "null", which means
	// "delete this field". Many fields are not pointers, so deletion
	// would only be partially supported; nil pointers are never sent.
	if f.Type.Kind() == reflect.Ptr && v.IsNil() {
		return false
	}

	// The same reasoning applies to nil interfaces.
	if f.Type.Kind() == reflect.Interface && v.IsNil() {
		return false
	}

	return mustInclude[f.Name] || !isEmptyValue(v)
}

var marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

type zeroer interface {
	IsZero() bool
}

// isEmptyValue reports whether v is the empty value for its type. It
// follows encoding/json's omitempty, extended with omitzero semantics for
// structs that report IsZero (time.Time).
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		if z, ok := v.Interface().(zeroer); ok {
			return z.IsZero()
		}
	}
	return false
}
