// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/fireodm/cli/internal/schema"

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Version string         // schemaVersion of the source schema
	Models  []Model        // one per collection, depth-first in source order
	Options Options        // options the data was prepared with
	Extra   map[string]any // translator-specific template data
}

// Model is the generation unit of one collection: the document model plus
// everything needed to emit its collection, query and update types.
type Model struct {
	Name           string     // document model type, e.g. "UsersData"
	Base           string     // PascalCase prefix for companion types, e.g. "Users"
	CollectionID   string     // last path segment, e.g. "posts"
	Path           string     // normalized path, e.g. "users/<docId>/posts"
	PathPattern    string     // e.g. "users/{usersId}/posts"
	Params         []string   // document id parameters, e.g. ["usersId"]
	Description    string     // collection description, if any
	Fields         []Field    // top-level fields in source order
	Updates        []UpdateDescriptor
	Subcollections []ModelRef // direct subcollections
	Parent         *ModelRef  // nil for root collections
}

// ModelRef points at another model by name.
type ModelRef struct {
	Name         string
	Base         string
	CollectionID string
}

// Field represents a single top-level field of a document model.
type Field struct {
	Name        string           // Firestore field name
	Ident       string           // target identifier (may be mutated by EnrichField)
	Method      string           // PascalCase suffix for generated methods, e.g. "CreatedAt"
	Type        string           // fully resolved target type string
	Required    bool             // false if the field may be absent
	Tag         string           // language-specific annotation, e.g. `firestore:"name"`
	Description string           // field description, if any
	FieldType   schema.FieldType // source field type
	Operators   []Operator       // legal query operators with value types
	Default     any              // default value, when HasDefault
	HasDefault  bool
	Constraints schema.Constraints
}

// Root reports whether the model belongs to a root collection.
func (m Model) Root() bool {
	return m.Parent == nil
}
