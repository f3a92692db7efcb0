package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a prefab into T. Unknown top-level keys are rejected so a
// misspelt field fails loudly instead of silently falling back to zero.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	data, err := Load(filename)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero, fmt.Errorf("prefabs: decode %s: %w", filename, err)
	}
	return spec, nil
}
