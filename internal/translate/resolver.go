// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/fireodm/cli/internal/schema"

// Property is a resolved map property handed to TypeResolver.MapType.
type Property struct {
	Name     string
	Type     string
	Required bool
}

// TypeResolver is a target language profile: it names the target's types and
// applies its conventions. Every derivation in this package is shared across
// targets and only calls out to the resolver for names.
type TypeResolver interface {
	// PrimitiveType maps a scalar field type (string, number, boolean,
	// timestamp, geopoint) to a target type string. Options decide whether
	// timestamps use the SDK wrapper or the native date type.
	PrimitiveType(t schema.FieldType, opts Options) string

	// ArrayType wraps an element type string in a sequence type.
	ArrayType(elemType string) string

	// MapType synthesizes an inline record type from resolved properties.
	MapType(props []Property) string

	// DynamicMapType is used for maps declared without properties.
	DynamicMapType() string

	// RefType returns a reference to a document of the given model, or an
	// untyped document reference when modelName is empty.
	RefType(modelName string) string

	// FormatModelName formats the document model name of a collection.
	FormatModelName(collectionID string) string

	// FieldValueType annotates a value type so that update methods also
	// accept the SDK's sentinel field operations.
	FieldValueType(valueType string) string

	// EnrichField applies language-specific post-processing to a resolved field,
	// e.g. an identifier for the target's naming rules, nullable wrapping, tags.
	// Called once per top-level field after type and operator derivation.
	EnrichField(f *Field)
}
