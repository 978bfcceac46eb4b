// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odm

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_CollectsInCallOrder(t *testing.T) {
	u := NewUpdate(nil).
		Set("name", "Ada").
		ServerTimestamp("updatedAt").
		Delete("settings.theme")

	updates := u.Updates()
	require.Len(t, updates, 3)

	assert.Equal(t, firestore.FieldPath{"name"}, updates[0].FieldPath)
	assert.Equal(t, "Ada", updates[0].Value)
	assert.Equal(t, firestore.ServerTimestamp, updates[1].Value)
	assert.Equal(t, firestore.FieldPath{"settings", "theme"}, updates[2].FieldPath)
	assert.Equal(t, firestore.Delete, updates[2].Value)
}

func TestUpdate_LaterCallReplacesPath(t *testing.T) {
	u := NewUpdate(nil).Set("age", 1).Set("name", "x").Set("age", 2)

	updates := u.Updates()
	require.Len(t, updates, 2)
	assert.Equal(t, 2, updates[0].Value)
}

func TestUpdate_Sentinels(t *testing.T) {
	u := NewUpdate(nil).
		Increment("visits", 1).
		ArrayUnion("tags", "a", "b").
		ArrayRemove("roles", "admin")

	updates := u.Updates()
	require.Len(t, updates, 3)
	assert.Equal(t, firestore.Increment(1), updates[0].Value)
	assert.Equal(t, firestore.ArrayUnion("a", "b"), updates[1].Value)
	assert.Equal(t, firestore.ArrayRemove("admin"), updates[2].Value)
}

func TestUpdate_UpdatesIsACopy(t *testing.T) {
	u := NewUpdate(nil).Set("name", "Ada")
	updates := u.Updates()
	updates[0].Value = "changed"

	assert.Equal(t, "Ada", u.Updates()[0].Value)
}

func TestUpdate_CommitEmpty(t *testing.T) {
	_, err := NewUpdate(nil).Commit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestElems(t *testing.T) {
	assert.Equal(t, []any{"a", "b"}, Elems([]string{"a", "b"}))
	assert.Empty(t, Elems[int](nil))
}
