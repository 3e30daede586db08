package discovery

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"gapi/internal/canonical"
)

var templateVar = regexp.MustCompile(`\{\+?([^}]+)\}`)

// ToOpenAPI renders a canonical service as an OpenAPI 3 document. Reserved
// expansions ({+name}) become plain path parameters.
func ToOpenAPI(svc *canonical.Service) (*openapi3.T, error) {
	version := svc.Version
	if version == "" {
		version = "unknown"
	}
	title := svc.Title
	if title == "" {
		title = svc.Name
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Servers: openapi3.Servers{{URL: strings.TrimRight(svc.BaseURL, "/")}},
		Paths:   openapi3.Paths{},
	}
	if svc.DocumentationLink != "" {
		doc.ExternalDocs = &openapi3.ExternalDocs{URL: svc.DocumentationLink}
	}

	for _, op := range svc.SortedOperations() {
		path := "/" + templateVar.ReplaceAllString(strings.TrimLeft(op.Path, "/"), "{$1}")
		item := doc.Paths[path]
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths[path] = item
		}
		o, err := buildOpenAPIOperation(op)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", op.ID, err)
		}
		item.SetOperation(strings.ToUpper(op.Method), o)
	}
	return doc, nil
}

func buildOpenAPIOperation(op *canonical.Operation) (*openapi3.Operation, error) {
	o := openapi3.NewOperation()
	o.OperationID = op.ToolName
	if o.OperationID == "" {
		o.OperationID = op.ID
	}
	o.Summary = op.Summary
	o.Tags = []string{resourceOf(op.ID)}

	declared := map[string]bool{}
	for _, p := range op.Parameters {
		schema, err := toSchema(p.Schema)
		if err != nil {
			return nil, err
		}
		if schema == nil {
			schema = openapi3.NewStringSchema()
		}
		param := &openapi3.Parameter{
			Name:     p.Name,
			In:       p.In,
			Required: p.Required || p.In == "path",
			Schema:   openapi3.NewSchemaRef("", schema),
		}
		o.AddParameter(param)
		declared[p.In+":"+p.Name] = true
	}
	for _, m := range templateVar.FindAllStringSubmatch(op.Path, -1) {
		if declared["path:"+m[1]] {
			continue
		}
		declared["path:"+m[1]] = true
		o.AddParameter(openapi3.NewPathParameter(m[1]).WithSchema(openapi3.NewStringSchema()))
	}

	if op.RequestBody != nil || op.RequestRef != "" {
		schema, err := bodySchema(op.RequestRef, requestSchemaOf(op))
		if err != nil {
			return nil, err
		}
		body := openapi3.NewRequestBody().WithJSONSchemaRef(schema)
		body.Required = op.RequestBody == nil || op.RequestBody.Required
		o.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	resp := openapi3.NewResponse().WithDescription("Successful response")
	if op.ResponseRef != "" || op.ResponseSchema != nil {
		schema, err := bodySchema(op.ResponseRef, op.ResponseSchema)
		if err != nil {
			return nil, err
		}
		resp = resp.WithJSONSchemaRef(schema)
	}
	o.Responses = openapi3.Responses{"200": &openapi3.ResponseRef{Value: resp}}
	return o, nil
}

func requestSchemaOf(op *canonical.Operation) map[string]any {
	if op.RequestBody == nil {
		return nil
	}
	return op.RequestBody.Schema
}

// bodySchema uses the resolved schema when present and otherwise an object
// titled with the schema name.
func bodySchema(ref string, resolved map[string]any) (*openapi3.SchemaRef, error) {
	schema, err := toSchema(resolved)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = openapi3.NewObjectSchema()
	}
	if schema.Title == "" {
		schema.Title = ref
	}
	return openapi3.NewSchemaRef("", schema), nil
}

// toSchema converts a JSON-schema map into an openapi3.Schema.
func toSchema(m map[string]any) (*openapi3.Schema, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	schema := openapi3.NewSchema()
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, fmt.Errorf("convert schema: %w", err)
	}
	return schema, nil
}

func resourceOf(id string) string {
	if i := strings.LastIndex(id, "."); i > 0 {
		return id[:i]
	}
	return id
}
