// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odm

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
)

// ErrEmptyUpdate is returned by Commit when no field was updated.
var ErrEmptyUpdate = errors.New("update has no fields")

// Update collects field updates of one document. Later updates of the same
// path replace earlier ones.
type Update struct {
	ref     *firestore.DocumentRef
	updates []firestore.Update
	index   map[string]int
}

// NewUpdate returns an empty update of ref.
func NewUpdate(ref *firestore.DocumentRef) *Update {
	return &Update{ref: ref, index: make(map[string]int)}
}

// Set sets the field at path to value, which may be a firestore sentinel.
func (u *Update) Set(path string, value any) *Update {
	u.put(path, value)
	return u
}

// Delete removes the field at path.
func (u *Update) Delete(path string) *Update {
	u.put(path, firestore.Delete)
	return u
}

// ServerTimestamp sets the field at path to the commit time.
func (u *Update) ServerTimestamp(path string) *Update {
	u.put(path, firestore.ServerTimestamp)
	return u
}

// Increment adds n to the numeric field at path.
func (u *Update) Increment(path string, n any) *Update {
	u.put(path, firestore.Increment(n))
	return u
}

// ArrayUnion adds elems missing from the array field at path.
func (u *Update) ArrayUnion(path string, elems ...any) *Update {
	u.put(path, firestore.ArrayUnion(elems...))
	return u
}

// ArrayRemove removes every instance of elems from the array field at path.
func (u *Update) ArrayRemove(path string, elems ...any) *Update {
	u.put(path, firestore.ArrayRemove(elems...))
	return u
}

// Updates returns the collected updates in call order.
func (u *Update) Updates() []firestore.Update {
	return append([]firestore.Update(nil), u.updates...)
}

// Commit applies every collected update in one write.
func (u *Update) Commit(ctx context.Context) (*firestore.WriteResult, error) {
	if len(u.updates) == 0 {
		return nil, ErrEmptyUpdate
	}
	return u.ref.Update(ctx, u.Updates())
}

func (u *Update) put(path string, value any) {
	upd := firestore.Update{FieldPath: fieldPath(path), Value: value}
	if i, ok := u.index[path]; ok {
		u.updates[i] = upd
		return
	}
	u.index[path] = len(u.updates)
	u.updates = append(u.updates, upd)
}

// Elems converts a typed slice to the variadic form ArrayUnion and
// ArrayRemove accept.
func Elems[T any](s []T) []any {
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = v
	}
	return result
}
