// Package testdata contains types for the source provider tests.
package testdata

import "time"

// Shape is implemented by every figure.
type Shape interface {
	Area() float64
}

// Page is a generic page of results.
type Page[T any] struct {
	Items []T
	Next  *string
}

// Account is a regular struct with assorted field types.
type Account struct {
	ID       int64
	Name     string
	Tags     []string
	Limits   map[string][]int
	Owner    *Account
	Created  time.Time
	Shapes   []Shape
	Pages    Page[Account]
	Extra    any
	Callback func()
	secret   string
}

// Status is not a struct and yields no members.
type Status string
