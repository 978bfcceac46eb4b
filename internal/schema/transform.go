// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"sort"
)

// Document is a raw decoded schema file: a JSON value tree plus the source
// order of every object's keys.
type Document struct {
	Value any

	// KeyOrder maps an instance path ("collections/users/fields") to the
	// object's keys in source order. The root object is keyed by "".
	KeyOrder map[string][]string
}

// Transform converts a structurally valid raw document into a Schema.
// It does not validate; run the structural validator first.
func Transform(doc *Document) *Schema {
	root, _ := doc.Value.(map[string]any)
	t := transformer{keyOrder: doc.KeyOrder}

	s := &Schema{}
	s.Version, _ = root["schemaVersion"].(string)

	collections, _ := root["collections"].(map[string]any)
	for _, id := range t.orderedKeys(collections, "collections") {
		raw, _ := collections[id].(map[string]any)
		s.Collections = append(s.Collections, t.collection(id, raw, nil, "collections/"+id))
	}
	return s
}

type transformer struct {
	keyOrder map[string][]string
}

func (t *transformer) collection(id string, raw map[string]any, parent *Collection, path string) *Collection {
	c := &Collection{ID: id, Parent: parent}
	c.Description, _ = raw["description"].(string)
	if parent == nil {
		c.Path = id
	} else {
		c.Path = parent.Path + "/" + DocumentToken + "/" + id
	}

	fields, _ := raw["fields"].(map[string]any)
	for _, name := range t.orderedKeys(fields, path+"/fields") {
		rawField, _ := fields[name].(map[string]any)
		c.Fields = append(c.Fields, t.field(name, id, rawField, path+"/fields/"+name))
	}

	subs, _ := raw["subcollections"].(map[string]any)
	for _, subID := range t.orderedKeys(subs, path+"/subcollections") {
		rawSub, _ := subs[subID].(map[string]any)
		c.Subcollections = append(c.Subcollections, t.collection(subID, rawSub, c, path+"/subcollections/"+subID))
	}
	return c
}

func (t *transformer) field(name, collectionID string, raw map[string]any, path string) *Field {
	f := &Field{
		Name:         name,
		CollectionID: collectionID,
	}
	if typ, ok := raw["type"].(string); ok {
		f.Type = FieldType(typ)
	}
	f.Required, _ = raw["required"].(bool)
	f.Description, _ = raw["description"].(string)
	f.Default, f.HasDefault = raw["defaultValue"]
	f.Constraints = constraints(raw)

	switch f.Type {
	case Reference:
		f.ReferenceTo, _ = raw["referenceTo"].(string)
	case Array:
		if items, ok := raw["items"].(map[string]any); ok {
			f.Items = t.field(name, collectionID, items, path+"/items")
		}
	case Map:
		props, _ := raw["properties"].(map[string]any)
		for _, key := range t.orderedKeys(props, path+"/properties") {
			rawProp, _ := props[key].(map[string]any)
			f.Properties = append(f.Properties, t.field(key, collectionID, rawProp, path+"/properties/"+key))
		}
	}
	return f
}

func constraints(raw map[string]any) Constraints {
	var c Constraints
	if v, ok := raw["minLength"].(float64); ok {
		n := int(v)
		c.MinLength = &n
	}
	if v, ok := raw["maxLength"].(float64); ok {
		n := int(v)
		c.MaxLength = &n
	}
	c.Pattern, _ = raw["pattern"].(string)
	if v, ok := raw["minimum"].(float64); ok {
		c.Minimum = &v
	}
	if v, ok := raw["maximum"].(float64); ok {
		c.Maximum = &v
	}
	return c
}

// orderedKeys returns the keys of m in source order when known, sorted otherwise.
func (t *transformer) orderedKeys(m map[string]any, path string) []string {
	if len(m) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(m))
	keys := make([]string, 0, len(m))
	for _, key := range t.keyOrder[path] {
		if _, ok := m[key]; ok && !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range m {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
