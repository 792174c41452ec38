package store

import (
	"context"
	"errors"
)

var (
	// ErrDimensionMismatch is returned when a vector's length disagrees with
	// the configured embedding size. It signals model or config drift, not a
	// one-off fault.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	ErrWrite = errors.New("store write failed")
	ErrRead  = errors.New("store read failed")
)

type Store interface {
	// Insert appends a new record and returns its id. Records are never
	// overwritten; a correction is a new insert.
	Insert(ctx context.Context, category string, text string, vector []float32) (int64, error)
	// Query returns up to limit texts from the category, ascending by cosine
	// distance to the vector. Ties go to the earlier-inserted record. An
	// unknown or empty category yields an empty result, not an error.
	Query(ctx context.Context, category string, vector []float32, limit int) ([]string, error)
}
