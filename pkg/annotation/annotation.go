// Package annotation defines the annotation record and its line codec.
//
// An annotation is a single timestamped text note. On disk each record is one
// line of the form:
//
//	<created_at> <content>
//
// where created_at is milliseconds since the Unix epoch and content is the
// rest of the line. The parser splits at the first space, so content whose
// first word is a digit sequence is indistinguishable from a record with a
// missing timestamp. The store is self-produced, so this ambiguity is
// documented rather than escaped.
package annotation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Typed parse failures. Callers decide whether these abort the process;
// the parser itself never panics.
var (
	// ErrMissingDelimiter is returned when a line has no space separating
	// the timestamp from the content.
	ErrMissingDelimiter = errors.New("missing timestamp delimiter")

	// ErrInvalidTimestamp is returned when the prefix before the first
	// space is not an unsigned integer.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrFutureTimestamp is returned by Age when a record claims to have
	// been created after now. Future-dated records are not a supported
	// case.
	ErrFutureTimestamp = errors.New("annotation created in the future")
)

// Annotation is a single timestamped text note.
type Annotation struct {
	// Content is the note text. A single line; must not contain newlines.
	Content string

	// CreatedAt is the creation time in milliseconds since the Unix epoch.
	CreatedAt uint64
}

// New creates an annotation with the given content, stamped with the current
// wall-clock time.
func New(content string) Annotation {
	return Annotation{
		Content:   content,
		CreatedAt: uint64(time.Now().UnixMilli()),
	}
}

// Parse decodes one stored line into an annotation. The value up to the
// first space is the timestamp; everything after that single space is the
// content.
func Parse(line string) (Annotation, error) {
	prefix, content, found := strings.Cut(line, " ")
	if !found {
		return Annotation{}, fmt.Errorf("%w: %q", ErrMissingDelimiter, line)
	}

	createdAt, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return Annotation{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, prefix)
	}

	return Annotation{Content: content, CreatedAt: createdAt}, nil
}

// Serialize encodes the annotation in its stored line form, without a
// trailing newline.
func (a Annotation) Serialize() string {
	return strconv.FormatUint(a.CreatedAt, 10) + " " + a.Content
}

// Age renders the elapsed time since creation as a human-readable relative
// age: "Just now", then "N seconds ago", "N minutes ago", "N hours ago",
// "N days ago", "N years ago" (years counted as 365 days). Units never carry
// singular forms; "1 minutes ago" is the documented rendering.
func (a Annotation) Age(now time.Time) (string, error) {
	deltaMillis := now.UnixMilli() - int64(a.CreatedAt)
	if deltaMillis < 0 {
		return "", fmt.Errorf("%w: created_at=%d", ErrFutureTimestamp, a.CreatedAt)
	}

	seconds := deltaMillis / 1000
	if seconds == 0 {
		return "Just now", nil
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds), nil
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes), nil
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours), nil
	}

	days := hours / 24
	if days < 365 {
		return fmt.Sprintf("%d days ago", days), nil
	}

	return fmt.Sprintf("%d years ago", days/365), nil
}
