// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/fireodm/cli/internal/validate"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Schema", Value: "firestore.schema.json"},
		{Label: "Targets", Value: "go, dart-client"},
	}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Schema: firestore.schema.json")
	assert.Contains(t, out, "Targets: go, dart-client")
	assert.Contains(t, out, "Done")
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, []validate.Issue{
		{Path: "users/<docId>/a.b", Message: "field names cannot contain '/' or '.'", Rule: validate.RuleFieldName},
		{Message: "missing collections", Rule: "document"},
	})

	out := buf.String()
	assert.Contains(t, out, "users/<docId>/a.b: field names cannot contain '/' or '.' [field-name]")
	assert.Contains(t, out, "<root>: missing collections [document]")
}

func TestIdentifierValidator(t *testing.T) {
	check := identifierValidator(map[string]struct{}{"users": {}})

	tests := []struct {
		input   string
		wantErr string
	}{
		{input: "orders"},
		{input: "_private"},
		{input: "order_items2"},
		{input: "", wantErr: "name is required"},
		{input: "2fa", wantErr: "must start with letter or underscore"},
		{input: "user-profiles", wantErr: "must contain only letters, numbers, underscores"},
		{input: "users", wantErr: `"users" already exists`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := check(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	assert.EqualError(t, requiredValidator("output directory")(""), "output directory is required")
	assert.NoError(t, requiredValidator("output directory")("generated"))
}
