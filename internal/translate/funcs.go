// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"text/template"

	"github.com/fireodm/cli/internal/version"
	"github.com/fireodm/cli/pkg/odm"
)

// OperatorGroup is a set of operators that share one value type.
type OperatorGroup struct {
	Ops       []odm.Operator
	ValueType string
}

// GroupOperators groups ops by value type, in order of first appearance.
func GroupOperators(ops []Operator) []OperatorGroup {
	var groups []OperatorGroup
	index := make(map[string]int)
	for _, op := range ops {
		i, ok := index[op.ValueType]
		if !ok {
			i = len(groups)
			index[op.ValueType] = i
			groups = append(groups, OperatorGroup{ValueType: op.ValueType})
		}
		groups[i].Ops = append(groups[i].Ops, op.Op)
	}
	return groups
}

// Funcs returns the template functions shared by every target.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"pascal":         ToPascalCase,
		"camel":          ToCamelCase,
		"join":           strings.Join,
		"generated":      version.Generated,
		"groupOperators": GroupOperators,
		"oneLine":        func(s string) string { return strings.Join(strings.Fields(s), " ") },
		"last": func(s []string) string {
			if len(s) == 0 {
				return ""
			}
			return s[len(s)-1]
		},
	}
}
