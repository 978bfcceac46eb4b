// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders a Markdown reference of a Firestore schema.
package markdown

import (
	"strings"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(t schema.FieldType, _ translate.Options) string {
	return string(t)
}

func (r *resolver) ArrayType(elemType string) string {
	return "array<" + elemType + ">"
}

func (r *resolver) MapType(props []translate.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		sep := "?: "
		if p.Required {
			sep = ": "
		}
		parts = append(parts, p.Name+sep+p.Type)
	}
	return "map { " + strings.Join(parts, "; ") + " }"
}

func (r *resolver) DynamicMapType() string {
	return "map"
}

func (r *resolver) RefType(modelName string) string {
	if modelName == "" {
		return "reference"
	}
	return "reference to [" + modelName + "](#" + strings.ToLower(modelName) + ")"
}

func (r *resolver) FormatModelName(collectionID string) string {
	return translate.ToPascalCase(collectionID)
}

func (r *resolver) FieldValueType(valueType string) string {
	return valueType
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Tag = formatConstraints(f.Constraints)
}
