// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

type resolvedRule struct {
	name   string
	schema *jsonschema.Resolved
}

// Structural validates raw schema documents against a MetaSchema.
type Structural struct {
	document   []resolvedRule
	collection []resolvedRule
	field      []resolvedRule
}

// NewStructural resolves every rule of meta once for reuse across documents.
func NewStructural(meta MetaSchema) (*Structural, error) {
	document, err := resolveRules("document", meta.Document)
	if err != nil {
		return nil, err
	}
	collection, err := resolveRules("collection", meta.Collection)
	if err != nil {
		return nil, err
	}
	field, err := resolveRules("field", meta.Field)
	if err != nil {
		return nil, err
	}
	return &Structural{document: document, collection: collection, field: field}, nil
}

func resolveRules(kind string, rules []Rule) ([]resolvedRule, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("meta-schema has no %s rules", kind)
	}
	resolved := make([]resolvedRule, 0, len(rules))
	for _, r := range rules {
		rs, err := r.Schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("%s rule %q: %w", kind, r.Name, err)
		}
		resolved = append(resolved, resolvedRule{name: r.Name, schema: rs})
	}
	return resolved, nil
}

// Validate checks doc, a value tree as produced by encoding/json, and returns
// an *Error listing every violation, or nil.
func (v *Structural) Validate(doc any) error {
	w := &structuralWalker{v: v}
	w.document(doc)
	if len(w.issues) > 0 {
		return &Error{Kind: KindStructural, Issues: w.issues}
	}
	return nil
}

type structuralWalker struct {
	v      *Structural
	issues []Issue
}

// check applies rules to node and reports whether the node is an object whose
// children can be walked.
func (w *structuralWalker) check(rules []resolvedRule, node any, path string) (map[string]any, bool) {
	for i, r := range rules {
		if err := r.schema.Validate(node); err != nil {
			w.issues = append(w.issues, Issue{Path: path, Message: err.Error(), Rule: r.name})
			if i == 0 {
				return nil, false
			}
		}
	}
	m, ok := node.(map[string]any)
	return m, ok
}

func (w *structuralWalker) document(node any) {
	m, ok := w.check(w.v.document, node, "")
	if !ok {
		return
	}
	w.each(m, "collections", "collections", w.collection)
}

func (w *structuralWalker) collection(node any, path string) {
	m, ok := w.check(w.v.collection, node, path)
	if !ok {
		return
	}
	w.each(m, "fields", path+"/fields", w.field)
	w.each(m, "subcollections", path+"/subcollections", w.collection)
}

func (w *structuralWalker) field(node any, path string) {
	m, ok := w.check(w.v.field, node, path)
	if !ok {
		return
	}
	if items, ok := m["items"].(map[string]any); ok {
		w.field(items, path+"/items")
	}
	w.each(m, "properties", path+"/properties", w.field)
}

// each walks the entries of the object stored under key, in sorted order.
// Non-object values were already reported by the owner's rules.
func (w *structuralWalker) each(m map[string]any, key, path string, visit func(any, string)) {
	children, ok := m[key].(map[string]any)
	if !ok {
		return
	}
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		visit(children[name], path+"/"+name)
	}
}
