// Package snapshot loads budget snapshots from files for the CLI.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tandembudget/tandem/internal/budget"
)

// Load reads a budget snapshot from a YAML or JSON file, chosen by
// extension (.json means JSON, anything else is parsed as YAML).
func Load(path string) (*budget.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseJSON decodes a snapshot from JSON.
func ParseJSON(data []byte) (*budget.Snapshot, error) {
	var snap budget.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}
	return &snap, nil
}

// ParseYAML decodes a snapshot from YAML.
func ParseYAML(data []byte) (*budget.Snapshot, error) {
	var snap budget.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}
	return &snap, nil
}
