// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"

	"github.com/fireodm/cli/internal/schema"
)

// Profiled is implemented by translators that expose their target language
// profile.
type Profiled interface {
	Resolver() TypeResolver
}

// Describe prepares the schema and returns the model of the collection at
// path. Placeholder segments in path are normalized first.
func Describe(s *schema.Schema, path string, resolver TypeResolver, opts Options) (*Model, error) {
	c := s.CollectionByPath(path)
	if c == nil {
		return nil, fmt.Errorf("collection %q not found", path)
	}
	data, err := Prepare(s, resolver, opts)
	if err != nil {
		return nil, err
	}
	for i := range data.Models {
		if data.Models[i].Path == c.Path {
			return &data.Models[i], nil
		}
	}
	return nil, fmt.Errorf("collection %q not found", path)
}
