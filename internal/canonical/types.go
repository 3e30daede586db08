package canonical

import "sort"

// Service is a canonical description of one versioned REST API.
type Service struct {
	Name              string
	Version           string
	Title             string
	BaseURL           string
	DocumentationLink string
	Operations        []*Operation
}

// Operation describes a single REST method: its HTTP verb, the path template
// relative to the service base URL, and the schemas it exchanges.
type Operation struct {
	ServiceName    string
	ID             string
	ToolName       string
	Method         string
	Path           string
	Summary        string
	Parameters     []Parameter
	RequestRef     string
	ResponseRef    string
	RequestBody    *RequestBody
	InputSchema    map[string]any
	ResponseSchema map[string]any
}

// Parameter describes an operation input parameter.
type Parameter struct {
	Name     string
	In       string // path, query
	Required bool
	Repeated bool
	Format   string
	Schema   map[string]any
}

// RequestBody describes a JSON request body.
type RequestBody struct {
	Required    bool
	ContentType string
	Schema      map[string]any
}

// Find returns the operation with the given method ID, or nil.
func (s *Service) Find(id string) *Operation {
	if s == nil {
		return nil
	}
	for _, op := range s.Operations {
		if op.ID == id || op.ToolName == id {
			return op
		}
	}
	return nil
}

// SortedOperations returns the operations ordered by method ID.
func (s *Service) SortedOperations() []*Operation {
	ops := make([]*Operation, len(s.Operations))
	copy(ops, s.Operations)
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops
}

// PathParams returns the names of the operation's path parameters in
// declaration order.
func (o *Operation) PathParams() []string {
	var names []string
	for _, p := range o.Parameters {
		if p.In == "path" {
			names = append(names, p.Name)
		}
	}
	return names
}

// NewService assembles a Service from operation descriptors, filling in the
// owning service name and tool name of each operation.
func NewService(name, version, title, baseURL string, ops ...*Operation) *Service {
	svc := &Service{
		Name:    name,
		Version: version,
		Title:   title,
		BaseURL: baseURL,
	}
	for _, op := range ops {
		cp := *op
		cp.ServiceName = name
		cp.ToolName = ToolName(name, op.ID)
		svc.Operations = append(svc.Operations, &cp)
	}
	return svc
}
