// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"iter"
	"strings"
)

// DocumentToken replaces variable document segments in normalized collection paths.
const DocumentToken = "<docId>"

// Schema is the parsed, immutable Firestore schema.
type Schema struct {
	Version     string
	Collections []*Collection // root collections in source order
}

// Collection is a collection definition. Subcollections nest arbitrarily deep.
type Collection struct {
	ID             string
	Description    string
	Fields         []*Field
	Subcollections []*Collection
	Parent         *Collection
	Path           string // normalized, e.g. "users/<docId>/posts"
}

// Field returns the top-level field with the given name, or nil.
func (c *Collection) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Ancestors returns the chain of collections from the root down to c, inclusive.
func (c *Collection) Ancestors() []*Collection {
	var chain []*Collection
	for n := c; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// DocumentParams returns the names of the document id parameters needed to
// address c, one per ancestor collection ("usersId" for "users/{usersId}/posts").
func (c *Collection) DocumentParams() []string {
	chain := c.Ancestors()
	params := make([]string, 0, len(chain)-1)
	for _, a := range chain[:len(chain)-1] {
		params = append(params, a.ID+"Id")
	}
	return params
}

// PathPattern returns the collection path with named document placeholders,
// e.g. "users/{usersId}/posts".
func (c *Collection) PathPattern() string {
	chain := c.Ancestors()
	segments := make([]string, 0, 2*len(chain)-1)
	for i, a := range chain {
		if i > 0 {
			segments = append(segments, "{"+chain[i-1].ID+"Id}")
		}
		segments = append(segments, a.ID)
	}
	return strings.Join(segments, "/")
}

// Walk returns an iterator over every collection, depth-first in source order.
func (s *Schema) Walk() iter.Seq[*Collection] {
	return func(yield func(*Collection) bool) {
		for _, c := range s.Collections {
			if !walk(c, yield) {
				return
			}
		}
	}
}

func walk(c *Collection, yield func(*Collection) bool) bool {
	if !yield(c) {
		return false
	}
	for _, sub := range c.Subcollections {
		if !walk(sub, yield) {
			return false
		}
	}
	return true
}

// CollectionByPath finds a collection by path. Placeholders are normalized first.
func (s *Schema) CollectionByPath(path string) *Collection {
	normalized := NormalizePath(path)
	for c := range s.Walk() {
		if c.Path == normalized {
			return c
		}
	}
	return nil
}

// Paths returns the normalized path of every collection in walk order.
func (s *Schema) Paths() []string {
	var paths []string
	for c := range s.Walk() {
		paths = append(paths, c.Path)
	}
	return paths
}

// Count returns the number of collections and of named fields, map
// properties included. Array items are not counted; they carry their
// owner's name.
func (s *Schema) Count() (collections, fields int) {
	for c := range s.Walk() {
		collections++
		fields += countFields(c.Fields)
	}
	return collections, fields
}

func countFields(fs []*Field) int {
	n := 0
	for _, f := range fs {
		n++
		for item := f.Items; item != nil; item = item.Items {
			n += countFields(item.Properties)
		}
		n += countFields(f.Properties)
	}
	return n
}

// NormalizePath replaces every "{placeholder}" segment with DocumentToken.
func NormalizePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = DocumentToken
		}
	}
	return strings.Join(segments, "/")
}

// LastCollectionID returns the last collection id of a reference path,
// skipping document segments. It returns "" for an empty path.
func LastCollectionID(path string) string {
	segments := strings.Split(NormalizePath(path), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" && segments[i] != DocumentToken {
			return segments[i]
		}
	}
	return ""
}
