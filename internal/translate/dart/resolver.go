// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dart

import (
	"regexp"
	"strings"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
)

const untypedMap = "Map<String, dynamic>"

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type resolver struct{}

func (r *resolver) PrimitiveType(t schema.FieldType, opts translate.Options) string {
	switch t {
	case schema.String:
		return "String"
	case schema.Number:
		return "num"
	case schema.Boolean:
		return "bool"
	case schema.Timestamp:
		if opts.NativeDates() {
			return "DateTime"
		}
		return "Timestamp"
	case schema.GeoPoint:
		return "GeoPoint"
	default:
		return "Object"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "List<" + elemType + ">"
}

// MapType falls back to an untyped map: Dart has no inline record type that
// cloud_firestore can decode.
func (r *resolver) MapType(_ []translate.Property) string {
	return untypedMap
}

func (r *resolver) DynamicMapType() string {
	return untypedMap
}

func (r *resolver) RefType(modelName string) string {
	if modelName == "" {
		return "DocumentReference<" + untypedMap + ">"
	}
	return "DocumentReference<" + modelName + ">"
}

func (r *resolver) FormatModelName(collectionID string) string {
	return translate.ToPascalCase(collectionID) + "Data"
}

func (r *resolver) FieldValueType(valueType string) string {
	return "Object /* " + valueType + " | FieldValue */"
}

// EnrichField makes the name a Dart identifier and stores the fromMap read
// expression in Tag.
func (r *resolver) EnrichField(f *translate.Field) {
	if !identifier.MatchString(f.Name) {
		f.Ident = translate.ToCamelCase(f.Name)
	}
	f.Tag = readExpr(f)
}

func readExpr(f *translate.Field) string {
	key := "data[" + dartString(f.Name) + "]"
	q := "?"
	if f.Required {
		q = ""
	}

	switch {
	case f.Type == "DateTime":
		return "(" + key + " as Timestamp" + q + ")" + q + ".toDate()"
	case strings.HasPrefix(f.Type, "List<"):
		elem := strings.TrimSuffix(strings.TrimPrefix(f.Type, "List<"), ">")
		return "(" + key + " as List<dynamic>" + q + ")" + q + ".cast<" + elem + ">()"
	case strings.HasPrefix(f.Type, "DocumentReference<") && f.Type != "DocumentReference<"+untypedMap+">":
		model := strings.TrimSuffix(strings.TrimPrefix(f.Type, "DocumentReference<"), ">")
		return "(" + key + " as DocumentReference<" + untypedMap + ">" + q + ")" + q +
			".withConverter<" + model + ">(fromFirestore: (s, _) => " + model +
			".fromMap(s.data()!), toFirestore: (v, _) => v.toMap())"
	default:
		return key + " as " + f.Type + q
	}
}

// dartString quotes s as a single-quoted Dart string literal.
func dartString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`)
	return "'" + r.Replace(s) + "'"
}
