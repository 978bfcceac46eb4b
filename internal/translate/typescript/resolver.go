// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
)

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type resolver struct{}

func (r *resolver) PrimitiveType(t schema.FieldType, opts translate.Options) string {
	switch t {
	case schema.String:
		return "string"
	case schema.Number:
		return "number"
	case schema.Boolean:
		return "boolean"
	case schema.Timestamp:
		if opts.NativeDates() {
			return "Date"
		}
		return "Timestamp"
	case schema.GeoPoint:
		return "GeoPoint"
	default:
		return "unknown"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return elemType + "[]"
}

func (r *resolver) MapType(props []translate.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		key := propertyKey(p.Name)
		if !p.Required {
			key += "?"
		}
		parts = append(parts, key+": "+p.Type)
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (r *resolver) DynamicMapType() string {
	return "Record<string, any>"
}

func (r *resolver) RefType(modelName string) string {
	if modelName == "" {
		return "DocumentReference"
	}
	return "DocumentReference<" + modelName + ">"
}

func (r *resolver) FormatModelName(collectionID string) string {
	return translate.ToPascalCase(collectionID) + "Data"
}

func (r *resolver) FieldValueType(valueType string) string {
	return valueType + " | FieldValue"
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Ident = propertyKey(f.Name)
}

// propertyKey quotes names that are not valid TypeScript identifiers.
func propertyKey(name string) string {
	if identifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
