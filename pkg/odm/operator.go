// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package odm is the runtime base embedded by Go code generated by fireodm.
// It wraps cloud.google.com/go/firestore with typed collections, queries and
// update builders.
package odm

// Operator is a Firestore query operator.
type Operator string

// Firestore query operators.
const (
	Equal              Operator = "=="
	NotEqual           Operator = "!="
	LessThan           Operator = "<"
	LessThanOrEqual    Operator = "<="
	GreaterThan        Operator = ">"
	GreaterThanOrEqual Operator = ">="
	In                 Operator = "in"
	NotIn              Operator = "not-in"
	ArrayContains      Operator = "array-contains"
	ArrayContainsAny   Operator = "array-contains-any"
)

// Operators returns every Firestore query operator.
func Operators() []Operator {
	return []Operator{
		Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual,
		In, NotIn, ArrayContains, ArrayContainsAny,
	}
}

// Valid reports whether op is a Firestore query operator.
func (op Operator) Valid() bool {
	switch op {
	case Equal, NotEqual, LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual,
		In, NotIn, ArrayContains, ArrayContainsAny:
		return true
	}
	return false
}
