// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
)

//go:embed schema.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatDefault": formatDefault,
	"lower":         strings.ToLower,
	"opList":        opList,
}

var tmpl = template.Must(template.New("schema.md.tmpl").
	Funcs(translate.Funcs()).
	Funcs(funcMap).
	ParseFS(tmplFS, "schema.md.tmpl"))

// Translator renders a Markdown reference of every collection.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return "markdown"
}

// Resolver returns the target's type resolver.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate converts a schema to SCHEMA.md. The document title is taken from
// the "title" option.
func (t *Translator) Translate(s *schema.Schema, opts translate.Options) ([]translate.File, error) {
	data, err := translate.Prepare(s, t.Resolver(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}
	data.Extra["Title"] = opts.String("title", "Firestore schema")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "schema.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return []translate.File{{Name: "SCHEMA.md", Data: buf.Bytes()}}, nil
}

// formatConstraints formats the constraints for a field as a human-readable string.
func formatConstraints(c schema.Constraints) string {
	var parts []string

	if c.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", c.Pattern))
	}

	if c.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLength: %d", *c.MinLength))
	}

	if c.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLength: %d", *c.MaxLength))
	}

	if c.Minimum != nil {
		parts = append(parts, fmt.Sprintf("minimum: %v", *c.Minimum))
	}

	if c.Maximum != nil {
		parts = append(parts, fmt.Sprintf("maximum: %v", *c.Maximum))
	}

	return strings.Join(parts, ", ")
}

func formatDefault(f translate.Field) string {
	if !f.HasDefault {
		return ""
	}
	if s, ok := f.Default.(string); ok {
		return fmt.Sprintf("`%q`", s)
	}
	return fmt.Sprintf("`%v`", f.Default)
}

func opList(ops []translate.Operator) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = "`" + string(op.Op) + "`"
	}
	return strings.Join(names, " ")
}
