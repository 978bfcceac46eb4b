// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"github.com/fireodm/cli/internal/schema"
	"github.com/google/jsonschema-go/jsonschema"
)

// Rule is a named meta-schema fragment checked independently against a node.
type Rule struct {
	Name   string
	Schema *jsonschema.Schema
}

// MetaSchema describes the legal shape of each node kind of a schema document.
// The first rule of each kind must check that the node is an object; when it
// fails the remaining rules and the node's children are skipped.
type MetaSchema struct {
	Document   []Rule
	Collection []Rule
	Field      []Rule
}

func ptr[T any](v T) *T {
	return &v
}

func constSchema(v any) *jsonschema.Schema {
	return &jsonschema.Schema{Const: ptr(v)}
}

// falseSchema matches nothing.
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func objectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

// closed allows only the given keys.
func closed(keys ...string) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(keys))
	for _, k := range keys {
		props[k] = &jsonschema.Schema{}
	}
	return &jsonschema.Schema{Properties: props, AdditionalProperties: falseSchema()}
}

// typeConditional requires key when the field type is typ and forbids it otherwise.
func typeConditional(typ schema.FieldType, key string, value *jsonschema.Schema, required bool) *jsonschema.Schema {
	then := &jsonschema.Schema{Properties: map[string]*jsonschema.Schema{key: value}}
	if required {
		then.Required = []string{key}
	}
	return &jsonschema.Schema{
		If: &jsonschema.Schema{
			Required:   []string{"type"},
			Properties: map[string]*jsonschema.Schema{"type": constSchema(string(typ))},
		},
		Then: then,
		Else: &jsonschema.Schema{Properties: map[string]*jsonschema.Schema{key: falseSchema()}},
	}
}

// DefaultMetaSchema returns a fresh copy of the Firestore schema meta-schema.
func DefaultMetaSchema() MetaSchema {
	types := make([]any, 0, len(schema.AllFieldTypes()))
	for _, t := range schema.AllFieldTypes() {
		types = append(types, string(t))
	}

	return MetaSchema{
		Document: []Rule{
			{"object", objectSchema()},
			{"schemaVersion", &jsonschema.Schema{
				Required:   []string{"schemaVersion"},
				Properties: map[string]*jsonschema.Schema{"schemaVersion": {Type: "string", MinLength: ptr(1)}},
			}},
			{"collections", &jsonschema.Schema{
				Required:   []string{"collections"},
				Properties: map[string]*jsonschema.Schema{"collections": objectSchema()},
			}},
		},
		Collection: []Rule{
			{"object", objectSchema()},
			{"fields", &jsonschema.Schema{
				Required:   []string{"fields"},
				Properties: map[string]*jsonschema.Schema{"fields": objectSchema()},
			}},
			{"subcollections", &jsonschema.Schema{
				Properties: map[string]*jsonschema.Schema{"subcollections": objectSchema()},
			}},
			{"description", &jsonschema.Schema{
				Properties: map[string]*jsonschema.Schema{"description": {Type: "string"}},
			}},
			{"additionalKeys", closed("description", "fields", "subcollections")},
		},
		Field: []Rule{
			{"object", objectSchema()},
			{"type", &jsonschema.Schema{
				Required:   []string{"type"},
				Properties: map[string]*jsonschema.Schema{"type": {Type: "string", Enum: types}},
			}},
			{"required", &jsonschema.Schema{
				Properties: map[string]*jsonschema.Schema{"required": {Type: "boolean"}},
			}},
			{"referenceTo", typeConditional(schema.Reference, "referenceTo", &jsonschema.Schema{Type: "string", MinLength: ptr(1)}, true)},
			{"items", typeConditional(schema.Array, "items", objectSchema(), true)},
			{"properties", typeConditional(schema.Map, "properties", objectSchema(), false)},
			{"keywords", &jsonschema.Schema{
				Properties: map[string]*jsonschema.Schema{
					"description": {Type: "string"},
					"minLength":   {Type: "integer", Minimum: ptr(0.0)},
					"maxLength":   {Type: "integer", Minimum: ptr(0.0)},
					"pattern":     {Type: "string"},
					"minimum":     {Type: "number"},
					"maximum":     {Type: "number"},
				},
			}},
			{"additionalKeys", closed(
				"type", "required", "description", "defaultValue", "referenceTo", "items", "properties",
				"minLength", "maxLength", "pattern", "minimum", "maximum",
			)},
		},
	}
}
