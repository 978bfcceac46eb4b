// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"testing"

	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopJSON = `{
  "schemaVersion": "3.0.0",
  "collections": {
    "customers": {
      "description": "Customer accounts",
      "fields": {
        "email": {"type": "string", "required": true, "pattern": "^.+@.+$", "maxLength": 254},
        "credit": {"type": "number", "minimum": 0, "defaultValue": 0},
        "tier": {"type": "string", "defaultValue": "basic"},
        "address": {
          "type": "map",
          "properties": {
            "city": {"type": "string", "required": true},
            "zip": {"type": "string"}
          }
        }
      },
      "subcollections": {
        "orders": {
          "fields": {
            "items": {"type": "array", "items": {"type": "string"}},
            "customer": {"type": "reference", "referenceTo": "customers"}
          }
        }
      }
    }
  }
}`

func render(t *testing.T, opts translate.Options) string {
	t.Helper()
	doc, err := schema.Decode([]byte(shopJSON), schema.JSON)
	require.NoError(t, err)

	files, err := (&Translator{}).Translate(schema.Transform(doc), opts)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "SCHEMA.md", files[0].Name)
	return string(files[0].Data)
}

func TestTranslate_Headings(t *testing.T) {
	result := render(t, translate.Options{})

	assert.Contains(t, result, "# Firestore schema\n\nSchema version `3.0.0`.")
	assert.Contains(t, result, "## Customers\n\nPath: `customers`\n\nCustomer accounts")
	assert.Contains(t, result, "## Orders\n\nPath: `customers/{customersId}/orders`\nParent: [Customers](#customers)")
	assert.Contains(t, result, "### Subcollections\n\n- [orders](#orders)")
}

func TestTranslate_Title(t *testing.T) {
	result := render(t, translate.Options{Extra: map[string]any{"title": "Shop"}})
	assert.Contains(t, result, "# Shop\n")
}

func TestTranslate_FieldRows(t *testing.T) {
	result := render(t, translate.Options{})

	assert.Contains(t, result, "| `email` | string | Yes |  | pattern: `^.+@.+$`, maxLength: 254 | `==` `!=` `<` `<=` `>` `>=` `in` `not-in` |")
	assert.Contains(t, result, "| `credit` | number | No | `0` | minimum: 0 |")
	assert.Contains(t, result, "| `tier` | string | No | `\"basic\"` |")
	assert.Contains(t, result, "| `address` | map { city: string; zip?: string } | No |")
	assert.Contains(t, result, "| `items` | array<string> | No |  |  | `array-contains` `array-contains-any` `in` `not-in` |")
	assert.Contains(t, result, "| `customer` | reference to [Customers](#customers) | No |")
}

func TestTranslate_UpdatePaths(t *testing.T) {
	result := render(t, translate.Options{})

	assert.Contains(t, result, "| `address.city` | string |")
	assert.Contains(t, result, "| `address.zip` | string |")
}
