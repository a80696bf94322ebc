package config

const defaultPreviewWidth = 80

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values. Storage.Path is
// left empty here; an empty path means "resolve via storepath" (env var,
// then ~/.annotations).
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		UI: UIConfig{
			PreviewWidth: defaultPreviewWidth,
		},
	}
}
