// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package odm

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned by Get when the document does not exist.
var ErrNotFound = errors.New("document not found")

// Collection is a typed collection of T documents.
type Collection[T any] struct {
	client *firestore.Client
	ref    *firestore.CollectionRef
}

// NewCollection returns the collection at path, e.g. "users/u1/posts".
func NewCollection[T any](client *firestore.Client, path string) *Collection[T] {
	return &Collection[T]{client: client, ref: client.Collection(path)}
}

// Client returns the underlying Firestore client.
func (c *Collection[T]) Client() *firestore.Client {
	return c.client
}

// Ref returns the underlying collection reference.
func (c *Collection[T]) Ref() *firestore.CollectionRef {
	return c.ref
}

// Path returns the collection path relative to the database root.
func (c *Collection[T]) Path() string {
	return c.ref.Path
}

// Doc returns a reference to the document with the given id.
func (c *Collection[T]) Doc(id string) *firestore.DocumentRef {
	return c.ref.Doc(id)
}

// Get reads the document with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s/%s: %w", c.ref.ID, id, ErrNotFound)
		}
		return nil, err
	}
	var m T
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Add creates a document with a generated id.
func (c *Collection[T]) Add(ctx context.Context, data *T) (*firestore.DocumentRef, error) {
	ref, _, err := c.ref.Add(ctx, data)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// Set creates or overwrites the document with the given id.
func (c *Collection[T]) Set(ctx context.Context, id string, data *T) error {
	_, err := c.ref.Doc(id).Set(ctx, data)
	return err
}

// Delete removes the document with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	_, err := c.ref.Doc(id).Delete(ctx)
	return err
}

// Query starts a query over every document of the collection.
func (c *Collection[T]) Query() Query[T] {
	return Query[T]{q: c.ref.Query}
}
