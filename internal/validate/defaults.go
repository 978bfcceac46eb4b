// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/fireodm/cli/internal/schema"
)

// DefaultCompatible reports whether v is a legal default value for f.
func DefaultCompatible(f *schema.Field, v any) bool {
	ok := true
	checkDefault(f, v, "", func(string, string) { ok = false })
	return ok
}

// checkDefault reports every position inside v that does not fit f. Positions
// are dotted map keys and bracketed array indices relative to path.
func checkDefault(f *schema.Field, v any, path string, report func(path, msg string)) {
	switch f.Type {
	case schema.String:
		if _, ok := v.(string); !ok {
			report(path, mismatch(f.Type, v))
		}
	case schema.Number:
		if !isNumber(v) {
			report(path, mismatch(f.Type, v))
		}
	case schema.Boolean:
		if _, ok := v.(bool); !ok {
			report(path, mismatch(f.Type, v))
		}
	case schema.Timestamp:
		switch val := v.(type) {
		case time.Time, *time.Time:
		case string:
			if val != schema.ServerTimestamp {
				report(path, fmt.Sprintf("timestamp default must be %q or a date value, got %q", schema.ServerTimestamp, val))
			}
		default:
			report(path, mismatch(f.Type, v))
		}
	case schema.GeoPoint:
		m, ok := v.(map[string]any)
		if !ok || !isNumber(m["latitude"]) || !isNumber(m["longitude"]) {
			report(path, "geopoint default must be an object with numeric latitude and longitude")
		}
	case schema.Reference:
		if _, ok := v.(string); !ok {
			report(path, mismatch(f.Type, v))
		}
	case schema.Array:
		list, ok := v.([]any)
		if !ok {
			report(path, mismatch(f.Type, v))
			return
		}
		if f.Items == nil {
			return
		}
		for i, elem := range list {
			checkDefault(f.Items, elem, fmt.Sprintf("%s[%d]", path, i), report)
		}
	case schema.Map:
		m, ok := v.(map[string]any)
		if !ok {
			report(path, mismatch(f.Type, v))
			return
		}
		if f.Properties == nil {
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			prop := f.Property(k)
			if prop == nil {
				report(joinField(path, k), fmt.Sprintf("default value key %q is not a declared property", k))
				continue
			}
			checkDefault(prop, m[k], joinField(path, k), report)
		}
	default:
		report(path, fmt.Sprintf("unknown field type %q", f.Type))
	}
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func mismatch(t schema.FieldType, v any) string {
	return fmt.Sprintf("default value %s is not a valid %s", describe(v), t)
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
