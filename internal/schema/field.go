// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema provides the Firestore schema model, its transformation from
// raw decoded documents, and file loading.
package schema

// FieldType is the tag of a field definition.
type FieldType string

// Supported field types.
const (
	String    FieldType = "string"
	Number    FieldType = "number"
	Boolean   FieldType = "boolean"
	Timestamp FieldType = "timestamp"
	GeoPoint  FieldType = "geopoint"
	Reference FieldType = "reference"
	Array     FieldType = "array"
	Map       FieldType = "map"
)

// ServerTimestamp is the default value sentinel for timestamp fields.
const ServerTimestamp = "serverTimestamp"

// AllFieldTypes returns every supported field type in declaration order.
func AllFieldTypes() []FieldType {
	return []FieldType{String, Number, Boolean, Timestamp, GeoPoint, Reference, Array, Map}
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case String, Number, Boolean, Timestamp, GeoPoint, Reference, Array, Map:
		return true
	}
	return false
}

// Scalar reports whether t compares as a single value (everything but array and map).
func (t FieldType) Scalar() bool {
	return t.Valid() && t != Array && t != Map
}

// Constraints holds the validation keywords of a field.
type Constraints struct {
	MinLength *int
	MaxLength *int
	Pattern   string
	Minimum   *float64
	Maximum   *float64
}

// Field is a single field definition. Exactly one of ReferenceTo, Items and
// Properties is populated, matching Type; scalars populate none.
type Field struct {
	Name         string // field or map key name; array items carry their owner's name
	CollectionID string // id of the collection that declares the field
	Type         FieldType
	Required     bool
	Description  string
	Default      any
	HasDefault   bool
	ReferenceTo  string   // reference only
	Items        *Field   // array only
	Properties   []*Field // map only, in source order
	Constraints  Constraints
}

// Property returns the map property with the given name, or nil.
func (f *Field) Property(name string) *Field {
	for _, p := range f.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}
