// Package tfvars reads and writes terraform.tfvars files for the workshop
// modules. Parsing goes through the HCL toolchain rather than string
// splitting, so quoting and escaping behave exactly as terraform itself
// would see them.
package tfvars

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ParseFile decodes the tfvars file at path into a flat map of variable
// names to string values. Non-string scalars are converted to their string
// form; complex values are rejected.
func ParseFile(path string) (map[string]string, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tfvars file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read tfvars attributes in %s: %w", path, diags)
	}

	vars := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, path, diags)
		}
		str, err := convert.Convert(value, cty.String)
		if err != nil {
			return nil, fmt.Errorf("variable %q in %s is not a string-convertible value: %w", name, path, err)
		}
		vars[name] = str.AsString()
	}

	return vars, nil
}

// CredentialValue looks key up in creds, accepting both the bare name and
// the TF_VAR_-prefixed form the terraform CLI understands.
func CredentialValue(creds map[string]string, key string) string {
	if v := creds[key]; v != "" {
		return v
	}
	return creds["TF_VAR_"+key]
}

// WriteFile writes a tfvars file, backing up any existing one next to it as
// *.tfvars.backup and creating parent directories as needed.
func WriteFile(path, content string) error {
	if existing, err := os.ReadFile(path); err == nil {
		backup := path + ".backup"
		if err := os.WriteFile(backup, existing, 0o600); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
