// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript generates TypeScript ODM sources for the Firebase web
// SDK and the Firebase Admin SDK.
package typescript

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

//go:embed *.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("typescript").
	Funcs(translate.Funcs()).
	Funcs(template.FuncMap{"opUnion": opUnion, "tsPath": tsPath}).
	ParseFS(tmplFS, "*.ts.tmpl"))

type flavor struct {
	name     string
	module   string
	baseTmpl string
}

var (
	client = flavor{name: "typescript-client", module: "firebase/firestore", baseTmpl: "base_client.ts.tmpl"}
	admin  = flavor{name: "typescript-admin", module: "firebase-admin/firestore", baseTmpl: "base_admin.ts.tmpl"}
)

// Translator renders models.ts and base.ts for one Firebase SDK.
type Translator struct {
	flavor flavor
}

// NewClientTranslator returns the translator for the modular web SDK.
func NewClientTranslator() *Translator {
	return &Translator{flavor: client}
}

// NewAdminTranslator returns the translator for the Admin SDK.
func NewAdminTranslator() *Translator {
	return &Translator{flavor: admin}
}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return t.flavor.name
}

// Resolver returns the target's type resolver.
func (t *Translator) Resolver() translate.TypeResolver {
	return &resolver{}
}

// Translate converts a schema to TypeScript models, collections, queries and
// update builders.
func (t *Translator) Translate(s *schema.Schema, opts translate.Options) ([]translate.File, error) {
	data, err := translate.Prepare(s, t.Resolver(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	data.Extra["Module"] = t.flavor.module
	data.Extra["Target"] = t.flavor.name

	models, err := render("models.ts.tmpl", data)
	if err != nil {
		return nil, err
	}
	base, err := render(t.flavor.baseTmpl, data)
	if err != nil {
		return nil, err
	}

	return []translate.File{
		{Name: "models.ts", Data: models},
		{Name: "base.ts", Data: base},
	}, nil
}

func render(name string, data *translate.SchemaData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// opUnion renders operators as a string literal union, e.g. '==' | '!='.
func opUnion(ops []odm.Operator) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, "'"+string(op)+"'")
	}
	return strings.Join(parts, " | ")
}

// tsPath turns a path pattern into a template literal body, e.g.
// users/${usersId}/posts.
func tsPath(pattern string) string {
	return strings.ReplaceAll(pattern, "{", "${")
}
