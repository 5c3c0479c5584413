// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Roster is the on-disk representation of a standing author list. A
// research group keeps one roster file and rebuilds its publication page
// without retyping names or year bounds.
type Roster struct {
	Authors  []string `yaml:"authors"`
	FromYear int      `yaml:"from,omitempty"`
	ToYear   int      `yaml:"to,omitempty"`
	Category string   `yaml:"category,omitempty"`
}

// ReadRosterFile loads a roster from a YAML file.
func ReadRosterFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	return &r, nil
}

// WriteRosterFile saves a roster to a YAML file.
func WriteRosterFile(path string, r *Roster) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling roster: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
