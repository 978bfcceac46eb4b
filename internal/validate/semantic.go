// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"fmt"
	"strings"

	"github.com/fireodm/cli/internal/schema"
	"go.uber.org/zap"
)

// Semantic rule identifiers.
const (
	RuleFieldName     = "field-name"
	RuleReferencePath = "reference-path"
	RuleDefaultValue  = "default-value"
	RuleDuplicatePath = "duplicate-path"
)

// Semantic checks the Firestore rules that need the whole parsed schema.
type Semantic struct {
	logger *zap.Logger
}

// NewSemantic creates a Semantic validator. A nil logger disables logging.
func NewSemantic(logger *zap.Logger) *Semantic {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Semantic{logger: logger}
}

// Validate walks every collection and field of s and returns an *Error listing
// every violation, or nil.
func (v *Semantic) Validate(s *schema.Schema) error {
	w := &semanticWalker{known: make(map[string]bool)}
	w.paths = s.Paths()
	for _, p := range w.paths {
		if w.known[p] {
			w.add(p, RuleDuplicatePath, fmt.Sprintf("collection path %q is declared more than once", p))
		}
		w.known[p] = true
	}

	for c := range s.Walk() {
		prefix := c.Path + "/" + schema.DocumentToken + "/"
		for _, f := range c.Fields {
			w.field(f, prefix, f.Name, true)
		}
	}

	if len(w.issues) > 0 {
		v.logger.Debug("schema failed semantic validation", zap.Int("issues", len(w.issues)))
		return &Error{Kind: KindSemantic, Issues: w.issues}
	}
	collections, fields := s.Count()
	v.logger.Info("schema validated", zap.Int("collections", collections), zap.Int("fields", fields))
	return nil
}

type semanticWalker struct {
	paths  []string
	known  map[string]bool
	issues []Issue
}

func (w *semanticWalker) add(path, rule, msg string) {
	w.issues = append(w.issues, Issue{Path: path, Message: msg, Rule: rule})
}

// field checks f at fieldPath and recurses into items and properties.
// Array items carry their owner's name, so named is false for them.
func (w *semanticWalker) field(f *schema.Field, prefix, fieldPath string, named bool) {
	if named {
		if strings.ContainsAny(f.Name, "/.") {
			w.add(prefix+fieldPath, RuleFieldName, fmt.Sprintf("field name %q must not contain '/' or '.'", f.Name))
		}
	}

	if f.Type == schema.Reference {
		if !w.known[schema.NormalizePath(f.ReferenceTo)] {
			w.add(prefix+fieldPath, RuleReferencePath, fmt.Sprintf(
				"referenceTo %q does not match any collection; valid paths: %s",
				f.ReferenceTo, strings.Join(w.paths, ", ")))
		}
	}

	if f.HasDefault {
		checkDefault(f, f.Default, fieldPath, func(path, msg string) {
			w.add(prefix+path, RuleDefaultValue, msg)
		})
	}

	if f.Items != nil {
		w.field(f.Items, prefix, fieldPath+"[]", false)
	}
	for _, p := range f.Properties {
		w.field(p, prefix, fieldPath+"."+p.Name, true)
	}
}
