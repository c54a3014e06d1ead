// Package labs describes the workshop labs the toolkit knows how to
// document: the mapping from a lab identifier to its terraform directory
// and its walkthrough markdown file. The built-in manifest can be overridden
// with a labs.yaml file for workshops that add or rename labs.
package labs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lab is one workshop lab.
type Lab struct {
	// Name is the short lab identifier, e.g. "lab1".
	Name string `yaml:"name"`
	// DirName is the terraform directory under <cloud>/, e.g. "lab1-tool-calling".
	DirName string `yaml:"dir"`
	// Walkthrough is the walkthrough markdown file name at the project root.
	// Empty when the lab ships no walkthrough.
	Walkthrough string `yaml:"walkthrough"`
}

// Manifest is the full set of labs for a workshop.
type Manifest struct {
	Labs []Lab `yaml:"labs"`
}

// DefaultManifest returns the built-in lab set.
func DefaultManifest() Manifest {
	return Manifest{Labs: []Lab{
		{Name: "lab1", DirName: "lab1-tool-calling", Walkthrough: "LAB1-Walkthrough.md"},
		{Name: "lab2", DirName: "lab2-vector-search", Walkthrough: "LAB2-Walkthrough.md"},
		{Name: "lab3", DirName: "lab3-anomaly-detection", Walkthrough: "Lab3-Walkthrough.md"},
	}}
}

// LoadManifest reads a labs.yaml manifest from path. An empty path returns
// the built-in manifest.
func LoadManifest(path string) (Manifest, error) {
	if path == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read lab manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse lab manifest %s: %w", path, err)
	}
	if len(m.Labs) == 0 {
		return Manifest{}, fmt.Errorf("lab manifest %s defines no labs", path)
	}

	return m, nil
}

// Find returns the lab with the given name, or false when the manifest does
// not define it.
func (m Manifest) Find(name string) (Lab, bool) {
	for _, lab := range m.Labs {
		if lab.Name == name {
			return lab, true
		}
	}
	return Lab{}, false
}
