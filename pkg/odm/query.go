// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Query is an immutable typed query. Every builder method returns a new
// Query; the first invalid call is reported by Get and Err.
type Query[T any] struct {
	q   firestore.Query
	err error
}

// Where filters on a dot-separated field path.
func (q Query[T]) Where(path string, op Operator, value any) Query[T] {
	if q.err != nil {
		return q
	}
	if !op.Valid() {
		q.err = fmt.Errorf("invalid operator %q on %s", op, path)
		return q
	}
	q.q = q.q.WherePath(fieldPath(path), string(op), value)
	return q
}

// OrderBy sorts by a dot-separated field path.
func (q Query[T]) OrderBy(path string, dir firestore.Direction) Query[T] {
	if q.err != nil {
		return q
	}
	q.q = q.q.OrderByPath(fieldPath(path), dir)
	return q
}

// Limit caps the number of results.
func (q Query[T]) Limit(n int) Query[T] {
	if q.err != nil {
		return q
	}
	if n < 0 {
		q.err = fmt.Errorf("invalid limit %d", n)
		return q
	}
	q.q = q.q.Limit(n)
	return q
}

// Err returns the first error recorded while building the query.
func (q Query[T]) Err() error {
	return q.err
}

// Firestore returns the underlying query.
func (q Query[T]) Firestore() firestore.Query {
	return q.q
}

// Get runs the query and decodes every result.
func (q Query[T]) Get(ctx context.Context) ([]*T, error) {
	if q.err != nil {
		return nil, q.err
	}

	iter := q.q.Documents(ctx)
	defer iter.Stop()

	var results []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var m T
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("decode %s: %w", doc.Ref.ID, err)
		}
		results = append(results, &m)
	}
	return results, nil
}

func fieldPath(path string) firestore.FieldPath {
	return firestore.FieldPath(strings.Split(path, "."))
}
