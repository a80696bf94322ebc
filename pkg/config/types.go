package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent annotate configuration stored as
// config.toml in the .annotate/ directory. The TOML layout uses sections for
// logical grouping.
type Config struct {
	Version int           `toml:"version"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig holds annotations store settings.
type StorageConfig struct {
	// Path overrides the default ~/.annotations store file location.
	Path string `toml:"path,omitempty"`
}

// UIConfig holds interactive list settings.
type UIConfig struct {
	// PreviewWidth caps the rendered content width per row in the
	// interactive list. Zero means no cap beyond the terminal width.
	PreviewWidth uint `toml:"preview_width,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, value string) error
}

var configKeys = map[string]configKeyInfo{
	"storage.path": {
		get: func(c *Config) string { return c.Storage.Path },
		set: func(c *Config, v string) error {
			c.Storage.Path = v
			return nil
		},
	},
	"ui.preview_width": {
		get: func(c *Config) string {
			if c.UI.PreviewWidth == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.UI.PreviewWidth), 10)
		},
		set: func(c *Config, v string) error {
			width, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("ui.preview_width must be an unsigned integer: %w", err)
			}
			c.UI.PreviewWidth = uint(width)
			return nil
		},
	},
}
