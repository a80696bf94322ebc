// Package storepath resolves the location of the annotations store file.
package storepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvFile overrides the store file location when set.
	EnvFile = "ANNOTATE_FILE"

	// fileName is the default store file name under the home directory.
	fileName = ".annotations"
)

// Resolve returns the absolute path of the annotations store file.
// Order of precedence is as follows:
//  1. Provided override (--file flag or storage.path config)
//  2. ANNOTATE_FILE environment variable
//  3. ~/.annotations
//
// The home directory must be resolvable for the default case; failure to
// determine it is a startup error.
func Resolve(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}

	if envPath := strings.TrimSpace(os.Getenv(EnvFile)); envPath != "" {
		return filepath.Abs(envPath)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, fileName), nil
}
