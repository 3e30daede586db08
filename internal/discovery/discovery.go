// Package discovery reads Google API Discovery documents. It turns them into
// canonical service descriptions, caches fetched documents, compares them
// with the bound packages and exports them as OpenAPI.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gapi/internal/canonical"
)

const directoryBase = "https://www.googleapis.com/discovery/v1/apis/"

// DirectoryURL returns the Discovery service URL of an API version.
func DirectoryURL(name, version string) string {
	return directoryBase + url.PathEscape(name) + "/" + url.PathEscape(version) + "/rest"
}

// LooksLikeDiscovery reports whether payload appears to be a Google API Discovery document.
func LooksLikeDiscovery(raw []byte) bool {
	var payload struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(payload.Kind), "discovery#")
}

// Parse decodes a Discovery document.
func Parse(raw []byte) (*Doc, error) {
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("google discovery: parse failed: %w", err)
	}
	if doc.Kind != "" && !strings.HasPrefix(strings.ToLower(doc.Kind), "discovery#") {
		return nil, fmt.Errorf("google discovery: unexpected kind %q", doc.Kind)
	}
	return &doc, nil
}

// Scopes returns the OAuth2 scopes declared by the document, sorted.
func (d *Doc) Scopes() []string {
	if d.Auth == nil {
		return nil
	}
	out := make([]string, 0, len(d.Auth.OAuth2.Scopes))
	for s := range d.Auth.OAuth2.Scopes {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ParseToCanonical parses a Google API Discovery document into a canonical Service.
// An empty apiName falls back to the document's name.
func ParseToCanonical(ctx context.Context, raw []byte, apiName, baseURLOverride string) (*canonical.Service, error) {
	_ = ctx
	doc, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return doc.Canonical(apiName, baseURLOverride)
}

// Canonical converts the document into a canonical Service.
func (d *Doc) Canonical(apiName, baseURLOverride string) (*canonical.Service, error) {
	if apiName == "" {
		apiName = d.Name
	}
	baseURL := strings.TrimSpace(baseURLOverride)
	if baseURL == "" {
		if d.RootURL != "" {
			baseURL = d.RootURL + d.ServicePath
		} else {
			baseURL = d.BaseURL
		}
	}
	if baseURL == "" {
		return nil, fmt.Errorf("google discovery: base URL missing")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	resolver := newSchemaResolver(d.Schemas)
	service := &canonical.Service{
		Name:              apiName,
		Version:           d.Version,
		Title:             d.Title,
		BaseURL:           baseURL,
		DocumentationLink: d.DocumentationLink,
	}

	var entries []methodEntry
	if len(d.Methods) > 0 {
		entries = append(entries, collectMethods("", d.Methods)...)
	}
	for name, res := range d.Resources {
		entries = append(entries, collectResourceMethods(name, res)...)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("google discovery: no methods found")
	}

	for _, entry := range entries {
		op, err := buildOperation(d, entry, apiName, resolver)
		if err != nil {
			return nil, err
		}
		service.Operations = append(service.Operations, op)
	}

	sort.Slice(service.Operations, func(i, j int) bool {
		return service.Operations[i].ID < service.Operations[j].ID
	})

	return service, nil
}

type methodEntry struct {
	FullName string
	Name     string
	Method   *Method
}

func collectResourceMethods(prefix string, res *Resource) []methodEntry {
	if res == nil {
		return nil
	}
	entries := collectMethods(prefix, res.Methods)
	resourceNames := make([]string, 0, len(res.Resources))
	for name := range res.Resources {
		resourceNames = append(resourceNames, name)
	}
	sort.Strings(resourceNames)
	for _, name := range resourceNames {
		entries = append(entries, collectResourceMethods(prefix+"."+name, res.Resources[name])...)
	}
	return entries
}

func collectMethods(prefix string, methods map[string]*Method) []methodEntry {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	var entries []methodEntry
	for _, name := range names {
		full := name
		if prefix != "" {
			full = prefix + "." + name
		}
		entries = append(entries, methodEntry{
			FullName: full,
			Name:     name,
			Method:   methods[name],
		})
	}
	return entries
}

func buildOperation(doc *Doc, entry methodEntry, apiName string, resolver *schemaResolver) (*canonical.Operation, error) {
	method := entry.Method
	if method == nil {
		return nil, fmt.Errorf("google discovery: nil method for %s", entry.FullName)
	}

	operationID := resolveOperationID(doc, entry)

	parameters := mergeParameters(doc.Parameters, method.Parameters)
	paramKeys := orderedParams(parameters, method.ParameterOrder)

	properties := map[string]any{}
	required := []string{}
	var params []canonical.Parameter
	for _, name := range paramKeys {
		param := parameters[name]
		location := strings.ToLower(param.Location)
		if location == "" {
			location = "query"
		}
		if location != "path" && location != "query" {
			continue
		}
		schema := paramSchema(param)
		properties[name] = schema
		if param.Required {
			required = append(required, name)
		}
		params = append(params, canonical.Parameter{
			Name:     name,
			In:       location,
			Required: param.Required,
			Repeated: param.Repeated,
			Format:   param.Format,
			Schema:   schema,
		})
	}

	var requestBody *canonical.RequestBody
	var requestRef, responseRef string
	if method.Request != nil {
		requestRef = method.Request.Ref
		bodySchema := resolver.ResolveRef(method.Request)
		if method.Request.Description != "" {
			bodySchema["description"] = method.Request.Description
		}
		requestBody = &canonical.RequestBody{
			Required:    requiresBody(method.HTTPMethod),
			ContentType: "application/json",
			Schema:      bodySchema,
		}
		properties["body"] = bodySchema
		if requestBody.Required {
			required = append(required, "body")
		}
	}

	inputSchema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		inputSchema["required"] = uniqueSorted(required)
	}

	var responseSchema map[string]any
	if method.Response != nil {
		responseRef = method.Response.Ref
		responseSchema = resolver.ResolveRef(method.Response)
	}

	summary := firstSentence(method.Description)
	if summary == "" {
		summary = operationID
	}

	return &canonical.Operation{
		ServiceName:    apiName,
		ID:             operationID,
		ToolName:       canonical.ToolName(apiName, operationID),
		Method:         strings.ToUpper(method.HTTPMethod),
		Path:           method.Path,
		Summary:        summary,
		Parameters:     params,
		RequestRef:     requestRef,
		ResponseRef:    responseRef,
		RequestBody:    requestBody,
		InputSchema:    inputSchema,
		ResponseSchema: responseSchema,
	}, nil
}

func resolveOperationID(doc *Doc, entry methodEntry) string {
	if entry.Method.ID != "" {
		return canonical.ShortID(doc.Name, entry.Method.ID)
	}
	if entry.FullName != "" {
		return entry.FullName
	}
	return entry.Name
}

// orderedParams lists parameter names with the method's declared order first
// and the rest sorted.
func orderedParams(params map[string]*Param, order []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, name := range order {
		if params[name] != nil && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	var rest []string
	for name, p := range params {
		if p != nil && !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}

func requiresBody(method string) bool {
	switch strings.ToUpper(method) {
	case "GET", "DELETE", "HEAD":
		return false
	default:
		return true
	}
}

func mergeParameters(global, local map[string]*Param) map[string]*Param {
	merged := map[string]*Param{}
	for name, param := range global {
		merged[name] = param
	}
	for name, param := range local {
		merged[name] = param
	}
	return merged
}

func paramSchema(param *Param) map[string]any {
	baseType := param.Type
	if baseType == "" {
		baseType = "string"
	}
	schema := map[string]any{}
	if param.Repeated {
		schema["type"] = "array"
		schema["items"] = map[string]any{"type": baseType}
	} else if baseType == "array" {
		schema["type"] = "array"
		if param.Items != nil {
			schema["items"] = param.Items
		}
	} else {
		schema["type"] = baseType
	}
	if param.Description != "" {
		schema["description"] = param.Description
	}
	if len(param.Enum) > 0 {
		schema["enum"] = param.Enum
	}
	if param.Format != "" {
		schema["format"] = param.Format
	}
	return schema
}

const maxSchemaDepth = 10

type schemaResolver struct {
	defs map[string]*Schema
}

func newSchemaResolver(defs map[string]*Schema) *schemaResolver {
	if defs == nil {
		defs = map[string]*Schema{}
	}
	return &schemaResolver{defs: defs}
}

func (r *schemaResolver) ResolveRef(ref *SchemaRef) map[string]any {
	if ref == nil {
		return map[string]any{"type": "object"}
	}
	return r.resolve(&Schema{Ref: ref.Ref}, nil, 0)
}

// resolve expands schema into a JSON-schema map. stack holds the $refs on
// the current path; a ref that recurs on it becomes an opaque object.
func (r *schemaResolver) resolve(schema *Schema, stack []string, depth int) map[string]any {
	if schema == nil || depth > maxSchemaDepth {
		return map[string]any{"type": "object"}
	}

	if schema.Ref != "" {
		for _, s := range stack {
			if s == schema.Ref {
				return map[string]any{"type": "object"}
			}
		}
		def, ok := r.defs[schema.Ref]
		if !ok {
			return map[string]any{"type": "object"}
		}
		return r.resolve(def, append(stack[:len(stack):len(stack)], schema.Ref), depth+1)
	}

	baseType := schema.Type
	if baseType == "" {
		baseType = "object"
	}
	if baseType == "any" {
		return map[string]any{}
	}

	out := map[string]any{"type": baseType}
	if schema.Description != "" {
		out["description"] = schema.Description
	}
	if len(schema.Enum) > 0 {
		out["enum"] = schema.Enum
	}
	if schema.Format != "" {
		out["format"] = schema.Format
	}
	if schema.ReadOnly {
		out["readOnly"] = true
	}

	switch baseType {
	case "array":
		out["items"] = r.resolve(schema.Items, stack, depth+1)
	case "object":
		props := map[string]any{}
		for name, p := range schema.Properties {
			props[name] = r.resolve(p, stack, depth+1)
		}
		if len(props) > 0 {
			out["properties"] = props
		}
		if len(schema.Required) > 0 {
			out["required"] = uniqueSorted(schema.Required)
		}
		if schema.AdditionalProperties != nil {
			out["additionalProperties"] = r.resolve(schema.AdditionalProperties, stack, depth+1)
		}
	}

	if schema.Repeated {
		return map[string]any{
			"type":  "array",
			"items": out,
		}
	}
	return out
}

func uniqueSorted(values []string) []string {
	set := map[string]struct{}{}
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
