package textcrypt

// writeConfig holds configuration for KeySet.WriteTo.
type writeConfig struct {
	overwrite bool
}

// WriteOption configures KeySet.WriteTo.
type WriteOption func(*writeConfig)

// WithOverwrite replaces key files that already exist in the output
// directory. By default WriteTo fails with ErrArtifactExists.
func WithOverwrite() WriteOption {
	return func(c *writeConfig) {
		c.overwrite = true
	}
}
