// Package inmemory provides an in-process implementation of store.Driver.
//
// Used by tests and as a seam for exercising the interactive list model
// without touching the filesystem.
package inmemory

import (
	"context"
	"sync"

	"github.com/marginaliaco/annotate/pkg/annotation"
)

// Driver implements store.Driver using an in-process slice.
type Driver struct {
	mu          sync.RWMutex
	annotations []annotation.Annotation
}

// NewDriver creates an empty in-memory driver.
func NewDriver() *Driver {
	return &Driver{}
}

// NewDriverWith creates an in-memory driver seeded with the given records.
func NewDriverWith(annotations []annotation.Annotation) *Driver {
	d := &Driver{annotations: make([]annotation.Annotation, len(annotations))}
	copy(d.annotations, annotations)
	return d
}

// Load returns a copy of the stored collection in insertion order.
func (d *Driver) Load(_ context.Context) ([]annotation.Annotation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// Return a copy to avoid callers mutating internal state.
	result := make([]annotation.Annotation, len(d.annotations))
	copy(result, d.annotations)

	return result, nil
}

// Append adds one annotation after all existing records.
func (d *Driver) Append(_ context.Context, a annotation.Annotation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.annotations = append(d.annotations, a)
	return nil
}

// Save replaces the stored collection entirely.
func (d *Driver) Save(_ context.Context, annotations []annotation.Annotation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.annotations = make([]annotation.Annotation, len(annotations))
	copy(d.annotations, annotations)

	return nil
}

// Close is a no-op for the in-memory driver.
func (d *Driver) Close() error {
	return nil
}
