// Package records is the client-side record store for the profiles collection.
//
// Store validates before dispatch. Every failure, including a rejected
// field set, is a *StoreError. It holds no cache: callers re-list after each mutation.
package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField = errors.New("name, email and age are required")
	ErrNotFound     = errors.New("record not found")
)

// StoreError reports a rejected field set or a failed backend call.
type StoreError struct {
	Op  string
	ID  string
	Err error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type Location struct {
	Latitude  float64
	Longitude float64
}

// Fields is the writable part of a record.
type Fields struct {
	Name     string
	Email    string
	Age      string
	Location *Location
	Address  string
}

// Complete reports whether name, email and age are all non-blank.
func (f Fields) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Age) != ""
}

type Record struct {
	ID string
	Fields
}

// Backend is the document-store contract behind a Store.
// Remove and Replace report a missing id with an error wrapping ErrNotFound.
type Backend interface {
	ListAll(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, f Fields) (string, error)
	Replace(ctx context.Context, id string, f Fields) error
	Remove(ctx context.Context, id string) error
}

type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// List returns the whole collection in arrival order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	records, err := s.backend.ListAll(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return records, nil
}

func (s *Store) Create(ctx context.Context, f Fields) (string, error) {
	if !f.Complete() {
		return "", &StoreError{Op: "create", Err: ErrMissingField}
	}
	id, err := s.backend.Insert(ctx, f)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id string, f Fields) error {
	if !f.Complete() {
		return &StoreError{Op: "update", ID: id, Err: ErrMissingField}
	}
	if err := s.backend.Replace(ctx, id, f); err != nil {
		return &StoreError{Op: "update", ID: id, Err: err}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.backend.Remove(ctx, id); err != nil {
		return &StoreError{Op: "delete", ID: id, Err: err}
	}
	return nil
}
