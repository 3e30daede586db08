package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/api/googleapi"

	"gapi/internal/canonical"
	"gapi/internal/gensupport"
	"gapi/internal/ratelimit"
	"gapi/internal/redact"
)

// Executor sends operations described by a canonical.Service without a
// generated binding. Arguments are validated against the operation's input
// schema before anything goes over the wire.
type Executor struct {
	client    *http.Client
	logger    *slog.Logger
	redactor  *redact.Redactor
	timeout   time.Duration
	userAgent string
	limiter   *ratelimit.Limiter

	mu      sync.Mutex
	schemas map[*canonical.Operation]*jsonschema.Schema
}

// Result is the decoded outcome of a successful call.
type Result struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        any    `json:"body"`
}

// NewExecutor returns an Executor. A zero timeout leaves the deadline to the
// caller's context.
func NewExecutor(client *http.Client, logger *slog.Logger, redactor *redact.Redactor, timeout time.Duration) *Executor {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		client:    client,
		logger:    logger,
		redactor:  redactor,
		timeout:   timeout,
		userAgent: "gapi/dynamic",
		schemas:   map[*canonical.Operation]*jsonschema.Schema{},
	}
}

// SetLimiter makes every Execute wait on l before sending.
func (e *Executor) SetLimiter(l *ratelimit.Limiter) { e.limiter = l }

// Execute validates args, sends op against svc.BaseURL and decodes the reply.
// Path and query parameters are taken from args by name; the request body,
// if any, is args["body"]. Non-2xx replies are returned as *googleapi.Error.
func (e *Executor) Execute(ctx context.Context, svc *canonical.Service, op *canonical.Operation, args map[string]any, opts ...googleapi.CallOption) (*Result, error) {
	if svc == nil || svc.BaseURL == "" {
		return nil, fmt.Errorf("%s: base URL is missing", op.ID)
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := e.Validate(op, args); err != nil {
		return nil, err
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	call := gensupport.NewCall(e.client, svc.BaseURL, e.userAgent)
	call.SetContext(ctx)
	pathParams := map[string]string{}
	for _, param := range op.Parameters {
		value, ok := args[param.Name]
		if !ok {
			continue
		}
		switch param.In {
		case "path":
			pathParams[param.Name] = valueToString(value)
		case "query":
			addQueryParam(call.Params(), param.Name, value)
		}
	}
	if missing := missingPathParams(op.Path, pathParams); len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required path parameter %s", op.ID, missing[0])
	}

	var body any
	if op.RequestBody != nil {
		if v, ok := args["body"]; ok {
			body = v
		}
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op.ID, err)
	}
	target := e.describe(svc.BaseURL, op.Path)
	e.logger.DebugContext(ctx, "executing", "op", op.ID, "method", op.Method, "url", target)
	start := time.Now()
	res, err := call.Do(op, pathParams, body, opts)
	if err != nil {
		e.logger.WarnContext(ctx, "call failed", "op", op.ID, "url", target, "error", e.scrub(err.Error()))
		return nil, err
	}
	result, err := normalizeResponse(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.ID, err)
	}
	e.logger.InfoContext(ctx, "call complete", "op", op.ID, "status", result.Status, "duration", time.Since(start))
	return result, nil
}

// Validate checks args against the operation's input schema. Operations
// without a schema accept anything.
func (e *Executor) Validate(op *canonical.Operation, args map[string]any) error {
	if len(op.InputSchema) == 0 {
		return nil
	}
	schema, err := e.schemaFor(op)
	if err != nil {
		return fmt.Errorf("%s: compile input schema: %w", op.ID, err)
	}
	// Round trip through JSON so the validator sees plain JSON values.
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%s: encode arguments: %w", op.ID, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: decode arguments: %w", op.ID, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%s: invalid arguments: %w", op.ID, err)
	}
	return nil
}

func (e *Executor) schemaFor(op *canonical.Operation) (*jsonschema.Schema, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.schemas[op]; ok {
		return s, nil
	}
	s, err := compileSchema(op.InputSchema)
	if err != nil {
		return nil, err
	}
	e.schemas[op] = s
	return s, nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func (e *Executor) describe(base, path string) string {
	u, err := url.Parse(googleapi.ResolveRelative(base, path))
	if err != nil {
		return e.scrub(base)
	}
	return e.redactor.URL(u)
}

func (e *Executor) scrub(s string) string {
	return e.redactor.Redact(s)
}

// ArgsFromStrings converts command-line style string values into arguments
// typed per the operation's parameter schemas. Unknown names are passed
// through as strings so validation can report them.
func ArgsFromStrings(op *canonical.Operation, values map[string][]string) (map[string]any, error) {
	byName := map[string]canonical.Parameter{}
	for _, p := range op.Parameters {
		byName[p.Name] = p
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	args := map[string]any{}
	for _, name := range names {
		raw := values[name]
		param, ok := byName[name]
		if !ok {
			args[name] = lastOf(raw)
			continue
		}
		if param.Repeated {
			items := make([]any, 0, len(raw))
			for _, s := range raw {
				v, err := coerce(itemType(param.Schema), s)
				if err != nil {
					return nil, fmt.Errorf("parameter %s: %w", name, err)
				}
				items = append(items, v)
			}
			args[name] = items
			continue
		}
		v, err := coerce(schemaType(param.Schema), lastOf(raw))
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		args[name] = v
	}
	return args, nil
}

func coerce(typ, s string) (any, error) {
	switch typ {
	case "integer":
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	case "number":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return f, nil
	case "boolean":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", s)
		}
		return b, nil
	default:
		return s, nil
	}
}

func schemaType(schema map[string]any) string {
	t, _ := schema["type"].(string)
	return t
}

func itemType(schema map[string]any) string {
	items, _ := schema["items"].(map[string]any)
	return schemaType(items)
}

func lastOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func addQueryParam(values gensupport.URLParams, name string, value any) {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			values[name] = append(values[name], valueToString(item))
		}
	case []string:
		values[name] = append(values[name], v...)
	default:
		values[name] = append(values[name], valueToString(value))
	}
}

func valueToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}

// missingPathParams lists template variables in path with no value.
func missingPathParams(path string, values map[string]string) []string {
	var missing []string
	for {
		open := strings.IndexByte(path, '{')
		if open < 0 {
			return missing
		}
		end := strings.IndexByte(path[open:], '}')
		if end < 0 {
			return missing
		}
		name := strings.TrimLeft(path[open+1:open+end], "+")
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
		path = path[open+end+1:]
	}
}

func normalizeResponse(resp *http.Response) (*Result, error) {
	defer googleapi.CloseBody(resp)
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")

	var body any
	if len(bodyBytes) == 0 {
		body = nil
	} else if err := json.Unmarshal(bodyBytes, &body); err != nil {
		body = string(bodyBytes)
	}

	return &Result{
		Status:      resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
