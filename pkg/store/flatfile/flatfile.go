// Package flatfile implements store.Driver over the flat annotations file.
//
// The file holds one serialized annotation per line, newline-terminated,
// UTF-8, no header and no escaping. It is created empty on first load and is
// never locked; concurrent writers race and the last full Save wins. That is
// an accepted limitation of the single-user design.
package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/marginaliaco/annotate/pkg/annotation"
	"github.com/marginaliaco/annotate/pkg/store"
)

const fileMode = 0o644

// Driver persists annotations in a plain text file.
type Driver struct {
	path string
}

// NewDriver creates a flat-file driver over the given path. The file itself
// is created lazily on first Load or Append.
func NewDriver(path string) *Driver {
	return &Driver{path: path}
}

// Path returns the backing file path.
func (d *Driver) Path() string {
	return d.path
}

// Load reads every non-empty line of the file in order. A missing file is
// created empty and yields an empty collection. A line that fails to parse
// aborts the load with a store.ErrCorruptRecord naming the line.
func (d *Driver) Load(_ context.Context) ([]annotation.Annotation, error) {
	file, err := os.Open(d.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening annotation store %s: %w", d.path, err)
		}

		created, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY, fileMode)
		if err != nil {
			return nil, fmt.Errorf("creating annotation store %s: %w", d.path, err)
		}
		if err := created.Close(); err != nil {
			return nil, fmt.Errorf("creating annotation store %s: %w", d.path, err)
		}
		return []annotation.Annotation{}, nil
	}
	defer file.Close()

	annotations := []annotation.Annotation{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		a, err := annotation.Parse(line)
		if err != nil {
			return nil, store.ErrCorruptRecord{Path: d.path, Line: lineNo, Err: err}
		}
		annotations = append(annotations, a)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading annotation store %s: %w", d.path, err)
	}

	return annotations, nil
}

// Append writes one serialized annotation to the end of the file, creating
// it if absent. I/O failures are returned for the CLI to report; nothing is
// retried.
func (d *Driver) Append(_ context.Context, a annotation.Annotation) error {
	file, err := os.OpenFile(d.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("opening annotation store %s: %w", d.path, err)
	}

	if _, err := fmt.Fprintln(file, a.Serialize()); err != nil {
		_ = file.Close()
		return fmt.Errorf("appending to annotation store %s: %w", d.path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("flushing annotation store %s: %w", d.path, err)
	}

	return nil
}

// Save rewrites the file from scratch with the given collection in order.
// This is the sole persistence path for deletions.
func (d *Driver) Save(_ context.Context, annotations []annotation.Annotation) error {
	file, err := os.OpenFile(d.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return fmt.Errorf("opening annotation store %s: %w", d.path, err)
	}

	writer := bufio.NewWriter(file)
	for _, a := range annotations {
		if _, err := fmt.Fprintln(writer, a.Serialize()); err != nil {
			_ = file.Close()
			return fmt.Errorf("writing annotation store %s: %w", d.path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing annotation store %s: %w", d.path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("flushing annotation store %s: %w", d.path, err)
	}

	return nil
}

// Close is a no-op; the driver holds no open handles between operations.
func (d *Driver) Close() error {
	return nil
}
