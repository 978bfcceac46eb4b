// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate derives per-field code metadata from a parsed Firestore
// schema and defines the interface every target language generator implements.
package translate

import (
	"fmt"
	"sort"

	"github.com/fireodm/cli/internal/schema"
)

// File is a generated output file, relative to the target's output directory.
type File struct {
	Name string
	Data []byte
}

// Translator defines the interface all target generators must implement.
type Translator interface {
	// Name returns the target's identifier (e.g., "typescript-client", "dart-client")
	Name() string

	// Translate renders the schema into the target's source files.
	Translate(s *schema.Schema, opts Options) ([]File, error)
}

// Register maps target names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", name)
	}
	return t, nil
}

// Available returns all registered target names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
