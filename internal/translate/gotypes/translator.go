// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes generates Go document structs and typed collection, query
// and update wrappers over the pkg/odm runtime.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/pkg/odm"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("gotypes").
	Funcs(translate.Funcs()).
	Funcs(template.FuncMap{
		"goName":   toPascalCase,
		"goParam":  goParam,
		"goPath":   goPath,
		"opSuffix": opSuffix,
		"opConst":  opConst,
		"elem":     func(t string) string { return strings.TrimPrefix(t, "[]") },
	}).
	ParseFS(tmplFS, "gotypes.go.tmpl"))

var opSuffixes = map[odm.Operator]string{
	odm.Equal:              "Eq",
	odm.NotEqual:           "NotEq",
	odm.LessThan:           "Lt",
	odm.LessThanOrEqual:    "Lte",
	odm.GreaterThan:        "Gt",
	odm.GreaterThanOrEqual: "Gte",
	odm.In:                 "In",
	odm.NotIn:              "NotIn",
	odm.ArrayContains:      "ArrayContains",
	odm.ArrayContainsAny:   "ArrayContainsAny",
}

// Translator translates schemas to Go source for cloud.google.com/go/firestore.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return "go"
}

// Resolver returns the target's type resolver.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate converts a schema to a gofmt'ed models.go. The package name comes
// from the "package" option and defaults to "models".
func (t *Translator) Translate(s *schema.Schema, opts translate.Options) ([]translate.File, error) {
	data, err := translate.Prepare(s, t.Resolver(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	data.Extra["Package"] = opts.String("package", "models")

	// checks which optional imports the field types need.
	data.Extra["NeedsTimeImport"] = false
	data.Extra["NeedsLatLngImport"] = false
	for _, m := range data.Models {
		for _, f := range m.Fields {
			if strings.Contains(f.Type, "time.Time") {
				data.Extra["NeedsTimeImport"] = true
			}
			if strings.Contains(f.Type, "latlng.") {
				data.Extra["NeedsLatLngImport"] = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}

	return []translate.File{{Name: "models.go", Data: src}}, nil
}

var opConsts = map[odm.Operator]string{
	odm.Equal:              "odm.Equal",
	odm.NotEqual:           "odm.NotEqual",
	odm.LessThan:           "odm.LessThan",
	odm.LessThanOrEqual:    "odm.LessThanOrEqual",
	odm.GreaterThan:        "odm.GreaterThan",
	odm.GreaterThanOrEqual: "odm.GreaterThanOrEqual",
	odm.In:                 "odm.In",
	odm.NotIn:              "odm.NotIn",
	odm.ArrayContains:      "odm.ArrayContains",
	odm.ArrayContainsAny:   "odm.ArrayContainsAny",
}

func opConst(op odm.Operator) (string, error) {
	c, ok := opConsts[op]
	if !ok {
		return "", fmt.Errorf("unsupported operator %q", op)
	}
	return c, nil
}

func opSuffix(op odm.Operator) (string, error) {
	suffix, ok := opSuffixes[op]
	if !ok {
		return "", fmt.Errorf("unsupported operator %q", op)
	}
	return suffix, nil
}

// goParam turns a document id parameter into an unexported Go identifier,
// e.g. "usersId" to "usersID".
func goParam(name string) string {
	p := toPascalCase(name)
	if p == "" {
		return p
	}
	lower := strings.ToLower(p[:1]) + p[1:]
	if strings.HasSuffix(lower, "Id") {
		lower = strings.TrimSuffix(lower, "Id") + "ID"
	}
	return lower
}

// goPath builds a Go string concatenation from a path pattern, e.g.
// "users/" + usersID + "/posts".
func goPath(pattern string) string {
	segments := strings.Split(pattern, "/")
	parts := make([]string, 0, len(segments))
	lit := ""
	for _, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			parts = append(parts, fmt.Sprintf("%q", lit), goParam(strings.Trim(seg, "{}")))
			lit = "/"
			continue
		}
		lit += seg + "/"
	}
	parts = append(parts, fmt.Sprintf("%q", strings.TrimSuffix(lit, "/")))
	return strings.Join(parts, " + ")
}
