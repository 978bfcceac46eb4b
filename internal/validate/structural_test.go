// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(src), &v))
	return v
}

func newStructural(t *testing.T) *Structural {
	t.Helper()
	v, err := NewStructural(DefaultMetaSchema())
	require.NoError(t, err)
	return v
}

// rulesAt collects the rules reported per path.
func rulesAt(issues []Issue) map[string][]string {
	out := make(map[string][]string)
	for _, i := range issues {
		out[i.Path] = append(out[i.Path], i.Rule)
	}
	return out
}

func TestStructural_ValidDocument(t *testing.T) {
	doc := decode(t, `{
		"schemaVersion": "1.0.0",
		"collections": {
			"items": {
				"description": "Catalog items",
				"fields": {
					"name": {"type": "string", "required": true, "minLength": 1, "maxLength": 80, "pattern": "^[a-z]+$"},
					"price": {"type": "number", "minimum": 0, "maximum": 1000},
					"createdAt": {"type": "timestamp", "defaultValue": "serverTimestamp"},
					"owner": {"type": "reference", "referenceTo": "users"},
					"tags": {"type": "array", "items": {"type": "string"}},
					"meta": {"type": "map", "properties": {"color": {"type": "string"}}},
					"loose": {"type": "map"}
				},
				"subcollections": {
					"reviews": {"fields": {"stars": {"type": "number"}}}
				}
			}
		}
	}`)

	assert.NoError(t, newStructural(t).Validate(doc))
}

func TestStructural_MissingTopLevelKeys(t *testing.T) {
	err := newStructural(t).Validate(decode(t, `{}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructural))

	rules := rulesAt(Issues(err))
	assert.ElementsMatch(t, []string{"schemaVersion", "collections"}, rules[""])
}

func TestStructural_NotAnObject(t *testing.T) {
	err := newStructural(t).Validate(decode(t, `[]`))
	require.Error(t, err)
	issues := Issues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "object", issues[0].Rule)
}

func TestStructural_AggregatesEveryViolation(t *testing.T) {
	doc := decode(t, `{
		"schemaVersion": "1.0.0",
		"collections": {
			"users": {
				"fields": {
					"email": {"type": "text"},
					"friend": {"type": "reference"},
					"tags": {"type": "array"},
					"name": {"type": "string", "items": {"type": "string"}},
					"age": {"type": "number", "minimum": "zero", "unknown": true},
					"plain": "string",
					"settings": {"type": "map", "properties": {"theme": {"required": "yes"}}}
				},
				"subcollections": {"posts": {"title": "x"}}
			}
		}
	}`)

	err := newStructural(t).Validate(doc)
	require.Error(t, err)
	rules := rulesAt(Issues(err))

	assert.Contains(t, rules["collections/users/fields/email"], "type")
	assert.Contains(t, rules["collections/users/fields/friend"], "referenceTo")
	assert.Contains(t, rules["collections/users/fields/tags"], "items")
	assert.Contains(t, rules["collections/users/fields/name"], "items")
	assert.Contains(t, rules["collections/users/fields/age"], "keywords")
	assert.Contains(t, rules["collections/users/fields/age"], "additionalKeys")
	assert.Equal(t, []string{"object"}, rules["collections/users/fields/plain"])
	assert.Contains(t, rules["collections/users/fields/settings/properties/theme"], "type")
	assert.Contains(t, rules["collections/users/fields/settings/properties/theme"], "required")
	assert.Contains(t, rules["collections/users/subcollections/posts"], "fields")
	assert.Contains(t, rules["collections/users/subcollections/posts"], "additionalKeys")
}

func TestStructural_ErrorMessageListsAllIssues(t *testing.T) {
	doc := decode(t, `{"schemaVersion": "1", "collections": {"a": {"fields": {"x": {"type": "bad"}, "y": {}}}}}`)
	err := newStructural(t).Validate(doc)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "collections/a/fields/x")
	assert.Contains(t, msg, "collections/a/fields/y")
}

func TestNewStructural_RequiresRules(t *testing.T) {
	meta := DefaultMetaSchema()
	meta.Field = nil
	_, err := NewStructural(meta)
	require.Error(t, err)
}
