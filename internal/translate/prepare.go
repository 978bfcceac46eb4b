// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/fireodm/cli/internal/schema"
)

// Prepare converts a validated schema into a SchemaData ready for template
// execution. It walks every collection depth-first, derives type names,
// operator tables and update descriptors through the resolver, and names
// each model after its collection id. Collection ids used more than once are
// qualified with their ancestors' ids, and names that still clash get a
// numeric suffix, so model names stay unique.
func Prepare(s *schema.Schema, resolver TypeResolver, opts Options) (*SchemaData, error) {
	opts = opts.clone()
	opts.models = modelKeys(s, resolver)

	data := &SchemaData{
		Version: s.Version,
		Options: opts,
		Extra:   make(map[string]any),
	}

	for c := range s.Walk() {
		m, err := prepareModel(c, resolver, opts)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", c.Path, err)
		}
		data.Models = append(data.Models, m)
	}

	return data, nil
}

func prepareModel(c *schema.Collection, resolver TypeResolver, opts Options) (Model, error) {
	m := Model{
		CollectionID: c.ID,
		Path:         c.Path,
		PathPattern:  c.PathPattern(),
		Params:       c.DocumentParams(),
		Description:  c.Description,
	}
	ref := modelRef(c, resolver, opts)
	m.Name, m.Base = ref.Name, ref.Base

	if c.Parent != nil {
		parent := modelRef(c.Parent, resolver, opts)
		m.Parent = &parent
	}
	for _, sub := range c.Subcollections {
		m.Subcollections = append(m.Subcollections, modelRef(sub, resolver, opts))
	}

	for _, f := range c.Fields {
		typ, err := TypeName(f, resolver, opts)
		if err != nil {
			return Model{}, err
		}
		ops, err := QueryOperators(f, resolver, opts)
		if err != nil {
			return Model{}, err
		}
		field := Field{
			Name:        f.Name,
			Ident:       f.Name,
			Method:      ToPascalCase(f.Name),
			Type:        typ,
			Required:    f.Required,
			Description: f.Description,
			FieldType:   f.Type,
			Operators:   ops,
			Default:     f.Default,
			HasDefault:  f.HasDefault,
			Constraints: f.Constraints,
		}
		resolver.EnrichField(&field)
		m.Fields = append(m.Fields, field)
	}

	updates, err := UpdateDescriptors(c.Fields, "", resolver, opts)
	if err != nil {
		return Model{}, err
	}
	m.Updates = updates

	return m, nil
}

func modelRef(c *schema.Collection, resolver TypeResolver, opts Options) ModelRef {
	key := opts.modelKey(c.Path)
	return ModelRef{
		Name:         resolver.FormatModelName(key),
		Base:         ToPascalCase(key),
		CollectionID: c.ID,
	}
}

// modelKeys maps every normalized collection path to its model key.
// Collections with a unique id claim their id first; the rest are
// qualified with their ancestors' ids. A key whose formatted model name
// is already taken gets a numeric suffix.
func modelKeys(s *schema.Schema, resolver TypeResolver) map[string]string {
	counts := make(map[string]int)
	for c := range s.Walk() {
		counts[c.ID]++
	}

	keys := make(map[string]string)
	taken := make(map[string]bool)
	claim := func(path, key string) {
		unique := key
		for n := 2; taken[ToPascalCase(unique)] || taken[resolver.FormatModelName(unique)]; n++ {
			unique = fmt.Sprintf("%s_%d", key, n)
		}
		taken[ToPascalCase(unique)] = true
		taken[resolver.FormatModelName(unique)] = true
		keys[path] = unique
	}

	for c := range s.Walk() {
		if counts[c.ID] == 1 {
			claim(c.Path, c.ID)
		}
	}
	for c := range s.Walk() {
		if counts[c.ID] == 1 {
			continue
		}
		ids := make([]string, 0)
		for _, a := range c.Ancestors() {
			ids = append(ids, a.ID)
		}
		claim(c.Path, strings.Join(ids, "_"))
	}
	return keys
}
