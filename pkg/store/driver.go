// Package store defines the interface for persisting annotation collections.
//
// A collection is an ordered slice of annotations; order on disk is
// insertion order, oldest first. Drivers own the authoritative copy while it
// is at rest. During an interactive session the TUI model owns the in-memory
// collection and hands it back via Save, which rewrites the full set — that
// rewrite is the only way deletions are persisted.
package store

import (
	"context"

	"github.com/marginaliaco/annotate/pkg/annotation"
)

// Driver defines the interface for loading and persisting annotations in a
// storage backend.
type Driver interface {
	// Load reads the full collection in stored order. A backend with no
	// prior state returns an empty collection, not an error. Any record
	// that fails to parse aborts the whole load.
	Load(ctx context.Context) ([]annotation.Annotation, error)

	// Append persists a single annotation after all existing records.
	Append(ctx context.Context, a annotation.Annotation) error

	// Save replaces the stored collection with the given one, in order.
	Save(ctx context.Context, annotations []annotation.Annotation) error

	// Close releases any resources held by the driver.
	Close() error
}
