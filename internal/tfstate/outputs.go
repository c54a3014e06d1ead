package tfstate

import (
	"fmt"
	"strings"
)

// OutputString extracts a terraform output value as a string, or def when
// the output is absent or nil. Non-string scalars are formatted with their
// default representation.
func (s *State) OutputString(key, def string) string {
	out, ok := s.Outputs[key]
	if !ok || out.Value == nil {
		return def
	}
	if str, ok := out.Value.(string); ok {
		return str
	}
	return fmt.Sprint(out.Value)
}

// DetectCloud determines the target cloud provider from the cloud_provider
// output of a core state document. It returns "" when the output is absent
// or names a provider the toolkit does not know.
func (s *State) DetectCloud() string {
	cloud := strings.ToLower(s.OutputString("cloud_provider", ""))
	switch cloud {
	case "aws", "azure":
		return cloud
	}
	return ""
}
