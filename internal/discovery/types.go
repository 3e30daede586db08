package discovery

// Doc represents a Google API Discovery document (partial).
type Doc struct {
	Kind              string               `json:"kind"`
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Version           string               `json:"version"`
	Revision          string               `json:"revision"`
	Title             string               `json:"title"`
	DocumentationLink string               `json:"documentationLink"`
	RootURL           string               `json:"rootUrl"`
	MTLSRootURL       string               `json:"mtlsRootUrl"`
	ServicePath       string               `json:"servicePath"`
	BaseURL           string               `json:"baseUrl"`
	Auth              *Auth                `json:"auth"`
	Resources         map[string]*Resource `json:"resources"`
	Methods           map[string]*Method   `json:"methods"`
	Parameters        map[string]*Param    `json:"parameters"`
	Schemas           map[string]*Schema   `json:"schemas"`
}

type Auth struct {
	OAuth2 struct {
		Scopes map[string]struct {
			Description string `json:"description"`
		} `json:"scopes"`
	} `json:"oauth2"`
}

type Resource struct {
	Resources map[string]*Resource `json:"resources"`
	Methods   map[string]*Method   `json:"methods"`
}

type Method struct {
	ID             string            `json:"id"`
	Path           string            `json:"path"`
	FlatPath       string            `json:"flatPath"`
	HTTPMethod     string            `json:"httpMethod"`
	Description    string            `json:"description"`
	Parameters     map[string]*Param `json:"parameters"`
	ParameterOrder []string          `json:"parameterOrder"`
	Request        *SchemaRef        `json:"request"`
	Response       *SchemaRef        `json:"response"`
	Scopes         []string          `json:"scopes"`
}

type Param struct {
	Location    string         `json:"location"`
	Type        string         `json:"type"`
	Format      string         `json:"format"`
	Description string         `json:"description"`
	Pattern     string         `json:"pattern"`
	Enum        []string       `json:"enum"`
	Required    bool           `json:"required"`
	Repeated    bool           `json:"repeated"`
	Items       map[string]any `json:"items"`
}

type SchemaRef struct {
	Ref         string `json:"$ref"`
	Description string `json:"description"`
}

type Schema struct {
	ID                   string             `json:"id"`
	Ref                  string             `json:"$ref"`
	Type                 string             `json:"type"`
	Format               string             `json:"format"`
	Description          string             `json:"description"`
	Enum                 []string           `json:"enum"`
	Properties           map[string]*Schema `json:"properties"`
	Items                *Schema            `json:"items"`
	Required             []string           `json:"required"`
	AdditionalProperties *Schema            `json:"additionalProperties"`
	Repeated             bool               `json:"repeated"`
	ReadOnly             bool               `json:"readOnly"`
}
