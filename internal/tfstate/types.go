package tfstate

// State mirrors the on-disk layout of a terraform.tfstate document. Only the
// fields the toolkit reads are declared; everything else round-trips through
// the attribute maps untouched.
type State struct {
	Version          int               `json:"version"`
	TerraformVersion string            `json:"terraform_version"`
	Serial           int64             `json:"serial"`
	Lineage          string            `json:"lineage"`
	Outputs          map[string]Output `json:"outputs,omitempty"`
	Resources        []Resource        `json:"resources"`
}

// Output is a single terraform output value as persisted in state.
type Output struct {
	Value     any  `json:"value"`
	Type      any  `json:"type,omitempty"`
	Sensitive bool `json:"sensitive,omitempty"`
}

// Resource is one resource declaration in state. Each declaration holds one
// or more instances (count/for_each expansions).
type Resource struct {
	Mode      string     `json:"mode,omitempty"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Provider  string     `json:"provider,omitempty"`
	Instances []Instance `json:"instances"`
}

// Instance is one provisioned instance of a resource. Attributes carry the
// raw values as persisted by the provisioning backend, sensitive values
// included.
type Instance struct {
	SchemaVersion int            `json:"schema_version,omitempty"`
	Attributes    map[string]any `json:"attributes"`
}

// Record is the flattened view of a single (resource, instance) pair. Records
// are built fresh on every read and never mutated.
type Record struct {
	Type       string
	Name       string
	Attributes map[string]any
}

// Attr returns the named attribute, or def when the attribute is absent.
func (r Record) Attr(key string, def any) any {
	if v, ok := r.Attributes[key]; ok && v != nil {
		return v
	}
	return def
}

// StringAttr returns the named attribute as a string, or def when the
// attribute is absent, nil, or not a string.
func (r Record) StringAttr(key, def string) string {
	if v, ok := r.Attributes[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}
