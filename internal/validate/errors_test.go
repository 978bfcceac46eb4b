// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestError_UnwrapsByKind(t *testing.T) {
	issue := Issue{Path: "/collections/users", Message: "bad", Rule: "type"}

	structural := &Error{Kind: KindStructural, Issues: []Issue{issue}}
	assert.ErrorIs(t, structural, ErrStructural)
	assert.NotErrorIs(t, structural, ErrSemantic)

	semantic := &Error{Kind: KindSemantic, Issues: []Issue{issue, issue}}
	assert.ErrorIs(t, semantic, ErrSemantic)
	assert.NotErrorIs(t, semantic, ErrStructural)
	assert.Contains(t, semantic.Error(), "(2 issues)")
}

func TestError_ValidatorTypesAndKindsCoexist(t *testing.T) {
	assert.IsType(t, &Semantic{}, NewSemantic(zap.NewNop()))
	assert.IsType(t, &Structural{}, new(Structural))
	assert.NotEqual(t, KindStructural, KindSemantic)
}

func TestIssues(t *testing.T) {
	issues := []Issue{{Path: "", Message: "missing", Rule: "required"}}
	wrapped := fmt.Errorf("load: %w", &Error{Kind: KindStructural, Issues: issues})

	assert.Equal(t, issues, Issues(wrapped))
	assert.Nil(t, Issues(errors.New("other")))
	assert.Equal(t, "<root>: missing [required]", issues[0].String())
}
