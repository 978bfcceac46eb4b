// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersJSON = `{
  "schemaVersion": "1.0.0",
  "collections": {
    "users": {
      "description": "Registered users",
      "fields": {
        "name": {"type": "string", "required": true, "minLength": 1},
        "age": {"type": "number", "minimum": 0},
        "settings": {
          "type": "map",
          "properties": {
            "theme": {"type": "string", "defaultValue": "dark"},
            "notifications": {
              "type": "map",
              "required": true,
              "properties": {"email": {"type": "boolean"}}
            }
          }
        },
        "tags": {"type": "array", "items": {"type": "string"}},
        "bestFriend": {"type": "reference", "referenceTo": "users"}
      },
      "subcollections": {
        "posts": {
          "fields": {
            "title": {"type": "string", "required": false},
            "author": {"type": "reference", "referenceTo": "users"}
          }
        }
      }
    },
    "audit": {"fields": {"at": {"type": "timestamp", "defaultValue": "serverTimestamp"}}}
  }
}`

func transformJSON(t *testing.T, src string) *Schema {
	t.Helper()
	doc, err := Decode([]byte(src), JSON)
	require.NoError(t, err)
	return Transform(doc)
}

func TestTransform_PreservesSourceOrder(t *testing.T) {
	s := transformJSON(t, usersJSON)

	assert.Equal(t, "1.0.0", s.Version)
	require.Len(t, s.Collections, 2)
	assert.Equal(t, "users", s.Collections[0].ID)
	assert.Equal(t, "audit", s.Collections[1].ID)

	var names []string
	for _, f := range s.Collections[0].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "age", "settings", "tags", "bestFriend"}, names)
}

func TestTransform_RequiredDefaultsToFalse(t *testing.T) {
	s := transformJSON(t, usersJSON)
	users := s.Collections[0]

	assert.True(t, users.Field("name").Required)
	assert.False(t, users.Field("age").Required)

	settings := users.Field("settings")
	assert.False(t, settings.Required)
	assert.False(t, settings.Property("theme").Required)
	assert.True(t, settings.Property("notifications").Required)
	assert.False(t, settings.Property("notifications").Property("email").Required)

	assert.False(t, users.Field("tags").Items.Required)
	assert.False(t, users.Subcollections[0].Field("title").Required)
}

func TestTransform_AnnotatesNames(t *testing.T) {
	s := transformJSON(t, usersJSON)
	users := s.Collections[0]

	theme := users.Field("settings").Property("theme")
	assert.Equal(t, "theme", theme.Name)
	assert.Equal(t, "users", theme.CollectionID)

	items := users.Field("tags").Items
	assert.Equal(t, "tags", items.Name)
	assert.Equal(t, String, items.Type)

	title := users.Subcollections[0].Field("title")
	assert.Equal(t, "posts", title.CollectionID)
}

func TestTransform_TypeSpecificKeys(t *testing.T) {
	s := transformJSON(t, usersJSON)
	users := s.Collections[0]

	ref := users.Field("bestFriend")
	assert.Equal(t, Reference, ref.Type)
	assert.Equal(t, "users", ref.ReferenceTo)
	assert.Nil(t, ref.Items)
	assert.Nil(t, ref.Properties)

	theme := users.Field("settings").Property("theme")
	assert.True(t, theme.HasDefault)
	assert.Equal(t, "dark", theme.Default)

	age := users.Field("age")
	assert.False(t, age.HasDefault)
	require.NotNil(t, age.Constraints.Minimum)
	assert.InDelta(t, 0, *age.Constraints.Minimum, 0)

	name := users.Field("name")
	require.NotNil(t, name.Constraints.MinLength)
	assert.Equal(t, 1, *name.Constraints.MinLength)
}

func TestTransform_CollectionPaths(t *testing.T) {
	s := transformJSON(t, usersJSON)

	assert.Equal(t, []string{"users", "users/<docId>/posts", "audit"}, s.Paths())

	posts := s.CollectionByPath("users/{userId}/posts")
	require.NotNil(t, posts)
	assert.Equal(t, "posts", posts.ID)
	assert.Same(t, s.Collections[0], posts.Parent)
	assert.Equal(t, "Registered users", s.Collections[0].Description)
}

func TestTransform_FallsBackToSortedKeys(t *testing.T) {
	doc := &Document{Value: map[string]any{
		"schemaVersion": "1.0.0",
		"collections": map[string]any{
			"b": map[string]any{"fields": map[string]any{}},
			"a": map[string]any{"fields": map[string]any{}},
		},
	}}
	s := Transform(doc)
	require.Len(t, s.Collections, 2)
	assert.Equal(t, "a", s.Collections[0].ID)
	assert.Equal(t, "b", s.Collections[1].ID)
}
