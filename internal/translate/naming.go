// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "strings"

// ToPascalCase converts a snake_case, kebab-case or camelCase string to PascalCase.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}

	return sb.String()
}

// ToCamelCase converts a string to lowerCamelCase.
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}
