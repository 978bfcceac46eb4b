// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a schema file encoding.
type Format int

// Supported schema file formats.
const (
	JSON Format = iota
	YAML
)

// FormatFromPath returns the format implied by a file extension.
// Anything that is not ".yaml" or ".yml" is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile reads and decodes a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(path string) (*Document, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatFromPath(path))
}

// Decode decodes raw schema bytes. Numbers are normalized to float64 so that
// JSON and YAML documents produce identical value trees.
func Decode(data []byte, format Format) (*Document, error) {
	switch format {
	case YAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		var value any
		if err := root.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		keyOrder := make(map[string][]string)
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			extractYAMLKeyOrder(root.Content[0], "", keyOrder)
		}
		return &Document{Value: normalize(value), KeyOrder: keyOrder}, nil
	case JSON:
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		keyOrder, err := extractJSONKeyOrder(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return &Document{Value: value, KeyOrder: keyOrder}, nil
	default:
		return nil, fmt.Errorf("format not supported")
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

// extractJSONKeyOrder walks the token stream and records the keys of every object.
func extractJSONKeyOrder(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)
	dec := json.NewDecoder(strings.NewReader(string(data)))

	var extract func(path string) error
	extract = func(path string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		delim, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, _ := keyToken.(string)
				keys = append(keys, key)
				if err := extract(joinPath(path, key)); err != nil {
					return err
				}
			}
			result[path] = keys
		case '[':
			for i := 0; dec.More(); i++ {
				if err := extract(joinPath(path, strconv.Itoa(i))); err != nil {
					return err
				}
			}
		}
		_, err = dec.Token()
		return err
	}

	if err := extract(""); err != nil {
		return nil, err
	}
	return result, nil
}

// extractYAMLKeyOrder records the keys of every mapping node below node.
func extractYAMLKeyOrder(node *yaml.Node, path string, result map[string][]string) {
	switch node.Kind {
	case yaml.MappingNode:
		keys := make([]string, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			keys = append(keys, key)
			extractYAMLKeyOrder(node.Content[i+1], joinPath(path, key), result)
		}
		result[path] = keys
	case yaml.SequenceNode:
		for i, child := range node.Content {
			extractYAMLKeyOrder(child, joinPath(path, strconv.Itoa(i)), result)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			extractYAMLKeyOrder(node.Alias, path, result)
		}
	}
}

// normalize converts YAML-decoded values to the shapes encoding/json produces.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = normalize(child)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range val {
			val[i] = normalize(child)
		}
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	default:
		return v
	}
}
