package repository

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is the single failure sentinel for read and write operations.
// It covers both "no row matched" and "the store errored"; the underlying
// store error is logged where it happens and is not distinguishable by
// callers.
var ErrNotFound = errors.New("record not found")

// Filter is a typed field comparison used to locate rows. All call sites use
// equality; carrying the operator as data keeps filters loggable and lets the
// store translate them to its native query form.
type Filter struct {
	Field string
	Op    string
	Value any
}

// Eq builds an equality filter on the given column.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: "=", Value: value}
}

func (f Filter) String() string {
	return fmt.Sprintf("%s %s %v", f.Field, f.Op, f.Value)
}

// Repository is the uniform data-access contract instantiated once per record
// type. Every operation completes fully (commit or reported failure) before
// returning; no partial writes are exposed.
type Repository[T any] interface {
	// Create inserts the record and returns it with its generated identifier
	// populated, or ErrNotFound if the store rejects it.
	Create(ctx context.Context, record *T) (*T, error)

	// GetAll returns every row in store-defined order.
	GetAll(ctx context.Context) ([]*T, error)

	// GetOne returns the first row matching the filter.
	GetOne(ctx context.Context, filter Filter) (*T, error)

	// Update locates the first row matching the filter, overwrites its scalar
	// fields with the given record's fields, and returns the persisted row.
	// When nothing matches, nothing is written and ErrNotFound is returned.
	Update(ctx context.Context, filter Filter, record *T) (*T, error)

	// Delete removes the first row matching the filter and reports whether a
	// row was found and removed.
	Delete(ctx context.Context, filter Filter) bool

	// Exists reports whether at least one row matches the filter.
	Exists(ctx context.Context, filter Filter) bool
}

// TxRunner runs a function inside a single store transaction. The transaction
// travels in the context so repositories used within fn join it.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
