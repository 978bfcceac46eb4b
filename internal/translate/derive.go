// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/pkg/odm"
)

// ErrUnknownFieldType is wrapped by every InvariantError.
var ErrUnknownFieldType = errors.New("unknown field type")

// InvariantError reports a field that structural validation should have
// rejected. Generation must stop instead of guessing a type.
type InvariantError struct {
	Field  string
	Type   schema.FieldType
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %v %q", e.Field, ErrUnknownFieldType, e.Type)
}

func (e *InvariantError) Unwrap() error {
	if e.Reason != "" {
		return nil
	}
	return ErrUnknownFieldType
}

// Operator is a legal query operator for a field and the type of the value it
// compares against.
type Operator struct {
	Op        odm.Operator
	ValueType string
}

// UpdateDescriptor describes one field path addressable by an update builder.
type UpdateDescriptor struct {
	Path      string   // dot-separated Firestore field path, e.g. "settings.theme"
	Segments  []string // Path split on "."
	Name      string   // lowerCamelCase identifier built from the segments
	FieldType schema.FieldType
	Type      string // resolved value type
	ValueType string // Type widened to accept sentinel field operations
	Leaf      bool   // false for maps with declared properties
}

var (
	scalarOperators = []odm.Operator{
		odm.Equal, odm.NotEqual, odm.LessThan, odm.LessThanOrEqual,
		odm.GreaterThan, odm.GreaterThanOrEqual, odm.In, odm.NotIn,
	}
	arrayOperators = []odm.Operator{odm.ArrayContains, odm.ArrayContainsAny, odm.In, odm.NotIn}
	mapOperators   = []odm.Operator{odm.Equal, odm.NotEqual, odm.In, odm.NotIn}
)

// OperatorsFor returns the operators Firestore accepts on a field of type t.
// Arrays support no equality or range operators; maps support no ordering.
func OperatorsFor(t schema.FieldType) ([]odm.Operator, bool) {
	var ops []odm.Operator
	switch t {
	case schema.String, schema.Number, schema.Boolean, schema.Timestamp, schema.GeoPoint, schema.Reference:
		ops = scalarOperators
	case schema.Array:
		ops = arrayOperators
	case schema.Map:
		ops = mapOperators
	default:
		return nil, false
	}
	return append([]odm.Operator(nil), ops...), true
}

// TypeName derives the target type string of f.
func TypeName(f *schema.Field, r TypeResolver, opts Options) (string, error) {
	switch f.Type {
	case schema.String, schema.Number, schema.Boolean, schema.Timestamp, schema.GeoPoint:
		return r.PrimitiveType(f.Type, opts), nil
	case schema.Reference:
		if f.ReferenceTo == "" {
			return r.RefType(""), nil
		}
		return r.RefType(r.FormatModelName(opts.modelKey(f.ReferenceTo))), nil
	case schema.Array:
		if f.Items == nil {
			return "", &InvariantError{Field: f.Name, Type: f.Type, Reason: "array field has no items definition"}
		}
		elem, err := TypeName(f.Items, r, opts)
		if err != nil {
			return "", err
		}
		return r.ArrayType(elem), nil
	case schema.Map:
		if len(f.Properties) == 0 {
			return r.DynamicMapType(), nil
		}
		props := make([]Property, 0, len(f.Properties))
		for _, p := range f.Properties {
			t, err := TypeName(p, r, opts)
			if err != nil {
				return "", err
			}
			props = append(props, Property{Name: p.Name, Type: t, Required: p.Required})
		}
		return r.MapType(props), nil
	default:
		return "", &InvariantError{Field: f.Name, Type: f.Type}
	}
}

// QueryOperators derives the legal operators of f with their value types.
// in and not-in compare the whole field against a list of candidates, so an
// array field's in operand is a sequence of sequences.
func QueryOperators(f *schema.Field, r TypeResolver, opts Options) ([]Operator, error) {
	ops, ok := OperatorsFor(f.Type)
	if !ok {
		return nil, &InvariantError{Field: f.Name, Type: f.Type}
	}
	base, err := TypeName(f, r, opts)
	if err != nil {
		return nil, err
	}
	var elem string
	if f.Type == schema.Array {
		if elem, err = TypeName(f.Items, r, opts); err != nil {
			return nil, err
		}
	}

	result := make([]Operator, 0, len(ops))
	for _, op := range ops {
		valueType := base
		switch op {
		case odm.In, odm.NotIn:
			valueType = r.ArrayType(base)
		case odm.ArrayContains:
			valueType = elem
		case odm.ArrayContainsAny:
			valueType = r.ArrayType(elem)
		}
		result = append(result, Operator{Op: op, ValueType: valueType})
	}
	return result, nil
}

// UpdateDescriptors derives one descriptor per field path below basePath,
// recursing into maps with declared properties. Intermediate maps get a
// descriptor of their own so they can be replaced as a whole.
func UpdateDescriptors(fields []*schema.Field, basePath string, r TypeResolver, opts Options) ([]UpdateDescriptor, error) {
	var result []UpdateDescriptor
	for _, f := range fields {
		path := f.Name
		if basePath != "" {
			path = basePath + "." + f.Name
		}
		t, err := TypeName(f, r, opts)
		if err != nil {
			return nil, err
		}
		segments := strings.Split(path, ".")
		nested := f.Type == schema.Map && len(f.Properties) > 0
		result = append(result, UpdateDescriptor{
			Path:      path,
			Segments:  segments,
			Name:      ToCamelCase(strings.Join(segments, "_")),
			FieldType: f.Type,
			Type:      t,
			ValueType: r.FieldValueType(t),
			Leaf:      !nested,
		})
		if nested {
			children, err := UpdateDescriptors(f.Properties, path, r, opts)
			if err != nil {
				return nil, err
			}
			result = append(result, children...)
		}
	}
	return result, nil
}

// modelKey returns the key the model of the referenced collection is named
// after: the disambiguated key set by Prepare, or the last collection id.
func (o Options) modelKey(referenceTo string) string {
	if key, ok := o.models[schema.NormalizePath(referenceTo)]; ok {
		return key
	}
	return schema.LastCollectionID(referenceTo)
}
