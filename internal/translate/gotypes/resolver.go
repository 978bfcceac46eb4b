// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"
	"unicode"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
)

type resolver struct{}

// PrimitiveType maps timestamps to time.Time regardless of dateTimeType:
// the Go client decodes both representations into time.Time.
func (r *resolver) PrimitiveType(t schema.FieldType, _ translate.Options) string {
	switch t {
	case schema.String:
		return "string"
	case schema.Number:
		return "float64"
	case schema.Boolean:
		return "bool"
	case schema.Timestamp:
		return "time.Time"
	case schema.GeoPoint:
		return "*latlng.LatLng"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) MapType(props []translate.Property) string {
	var sb strings.Builder
	sb.WriteString("struct {\n")
	for _, p := range props {
		typ, tag := fieldType(p.Name, p.Type, p.Required)
		sb.WriteString(toPascalCase(p.Name) + " " + typ + " " + tag + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (r *resolver) DynamicMapType() string {
	return "map[string]any"
}

// RefType is untyped: firestore.DocumentRef carries no document type.
func (r *resolver) RefType(_ string) string {
	return "*firestore.DocumentRef"
}

func (r *resolver) FormatModelName(collectionID string) string {
	return toPascalCase(collectionID) + "Data"
}

// FieldValueType leaves the type unchanged. Sentinel operations get their
// own generated methods instead of an untyped parameter.
func (r *resolver) FieldValueType(valueType string) string {
	return valueType
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Type, f.Tag = fieldType(f.Name, f.Type, f.Required)
	f.Ident = toPascalCase(f.Name)
	f.Method = f.Ident
}

// fieldType wraps optional non-nilable types in a pointer and builds the
// firestore struct tag.
func fieldType(name, typ string, required bool) (string, string) {
	tag := name
	if !required {
		tag += ",omitempty"
		if !nilable(typ) {
			typ = "*" + typ
		}
	}
	return typ, "`firestore:\"" + tag + "\"`"
}

func nilable(typ string) bool {
	return strings.HasPrefix(typ, "*") || strings.HasPrefix(typ, "[]") ||
		strings.HasPrefix(typ, "map[") || typ == "any"
}

// toPascalCase converts a snake_case, kebab-case or camelCase string to an
// exported Go identifier. It handles common Go acronyms (ID, URL, HTTP, API,
// JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	// Common Go acronyms that should be fully uppercased.
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"uri":  "URI",
		"uid":  "UID",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '$'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	result := sb.String()
	if result != "" && unicode.IsDigit(rune(result[0])) {
		result = "F" + result
	}
	return result
}
