package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the communities dataset file.
// JSON is the canonical format; YAML is accepted for hand-authored files.
type Loader struct {
	filePath string
}

// NewLoader creates a new dataset loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the dataset file into a raw document. This is the
// only place a dataset problem surfaces as an error; everything downstream
// (normalization) is total and never fails.
func (l *Loader) Load() (any, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(l.filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse dataset yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse dataset json: %w", err)
		}
	}

	return doc, nil
}
