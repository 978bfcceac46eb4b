// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validate checks raw schema documents against the structural
// meta-schema and parsed schemas against Firestore's semantic rules.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStructural indicates the raw document does not match the meta-schema.
	ErrStructural = errors.New("schema is structurally invalid")

	// ErrSemantic indicates the schema is well formed but breaks a Firestore rule.
	ErrSemantic = errors.New("schema violates Firestore rules")
)

// Kind classifies a validation failure.
type Kind int

// Validation failure kinds.
const (
	KindStructural Kind = iota
	KindSemantic
)

// Issue is a single violation.
type Issue struct {
	Path    string // instance path or human-readable field path
	Message string
	Rule    string
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("%s: %s [%s]", path, i.Message, i.Rule)
}

// Error reports every violation found in one validation pass.
type Error struct {
	Kind   Kind
	Issues []Issue
}

func (e *Error) sentinel() error {
	if e.Kind == KindSemantic {
		return ErrSemantic
	}
	return ErrStructural
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v (%d issue", e.sentinel(), len(e.Issues))
	if len(e.Issues) != 1 {
		sb.WriteString("s")
	}
	sb.WriteString("):")
	for _, issue := range e.Issues {
		sb.WriteString("\n  - ")
		sb.WriteString(issue.String())
	}
	return sb.String()
}

// Unwrap allows errors.Is(err, ErrStructural) and errors.Is(err, ErrSemantic).
func (e *Error) Unwrap() error {
	return e.sentinel()
}

// Issues extracts the issue list from err, or nil if err is not a validation error.
func Issues(err error) []Issue {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Issues
	}
	return nil
}
