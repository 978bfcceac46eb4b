// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dart generates Dart ODM sources for the cloud_firestore package.
package dart

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/pkg/odm"
)

//go:embed *.dart.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("dart").
	Funcs(translate.Funcs()).
	Funcs(template.FuncMap{
		"dartString": dartString,
		"dartPath":   dartPath,
		"whereParam": whereParam,
	}).
	ParseFS(tmplFS, "*.dart.tmpl"))

// whereParams maps operators to Query.where named parameters.
var whereParams = map[odm.Operator]string{
	odm.Equal:              "isEqualTo",
	odm.NotEqual:           "isNotEqualTo",
	odm.LessThan:           "isLessThan",
	odm.LessThanOrEqual:    "isLessThanOrEqualTo",
	odm.GreaterThan:        "isGreaterThan",
	odm.GreaterThanOrEqual: "isGreaterThanOrEqualTo",
	odm.In:                 "whereIn",
	odm.NotIn:              "whereNotIn",
	odm.ArrayContains:      "arrayContains",
	odm.ArrayContainsAny:   "arrayContainsAny",
}

// Translator translates schemas to Dart models for cloud_firestore.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return "dart-client"
}

// Resolver returns the target's type resolver.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate converts a schema to models.dart and base.dart.
func (t *Translator) Translate(s *schema.Schema, opts translate.Options) ([]translate.File, error) {
	data, err := translate.Prepare(s, t.Resolver(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	files := make([]translate.File, 0, 2)
	for _, name := range []string{"models.dart", "base.dart"} {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
			return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
		}
		files = append(files, translate.File{Name: name, Data: buf.Bytes()})
	}
	return files, nil
}

// whereParam returns the named where parameter and the method suffix of op,
// e.g. "isEqualTo" and "IsEqualTo".
func whereParam(op odm.Operator) (map[string]string, error) {
	param, ok := whereParams[op]
	if !ok {
		return nil, fmt.Errorf("unsupported operator %q", op)
	}
	suffix := translate.ToPascalCase(param)
	switch op {
	case odm.In:
		suffix = "IsIn"
	case odm.NotIn:
		suffix = "IsNotIn"
	}
	return map[string]string{"Param": param, "Suffix": suffix}, nil
}

// dartPath turns a path pattern into an interpolated Dart string body.
func dartPath(pattern string) string {
	return strings.ReplaceAll(pattern, "{", "${")
}
