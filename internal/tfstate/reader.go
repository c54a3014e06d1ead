// Package tfstate reads persisted Terraform state documents and exposes
// their resource instances as flat records. It reads the state file
// directly rather than shelling out to terraform, because the state file is
// the only place unredacted sensitive values are recoverable after
// provisioning.
package tfstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// NotFoundError reports that the state file does not exist. Callers treat
// this as "nothing deployed yet", not as a failure.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("state file not found: %s", e.Path)
}

// MalformedStateError reports that the state file exists but could not be
// parsed, or lacks the resources key. Surfaced as a warning by callers,
// since partially-deployed state is a legitimate condition.
type MalformedStateError struct {
	Path string
	Err  error
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("malformed state file %s: %v", e.Path, e.Err)
}

func (e *MalformedStateError) Unwrap() error { return e.Err }

// ReadFile parses the terraform.tfstate document at path.
func ReadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedStateError{Path: path, Err: err}
	}
	if _, ok := raw["resources"]; !ok {
		return nil, &MalformedStateError{Path: path, Err: errors.New("missing resources key")}
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, &MalformedStateError{Path: path, Err: err}
	}

	return &state, nil
}

// Records flattens every (resource, instance) pair in the state into a
// uniform record, independent of how instances nest under declarations.
func (s *State) Records() []Record {
	var records []Record
	for _, res := range s.Resources {
		for _, inst := range res.Instances {
			attrs := inst.Attributes
			if attrs == nil {
				attrs = map[string]any{}
			}
			records = append(records, Record{
				Type:       res.Type,
				Name:       res.Name,
				Attributes: attrs,
			})
		}
	}
	return records
}
