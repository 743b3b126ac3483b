package driven

// ConfigStore provides read access to the optional configuration file.
// Implementations handle parsing (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Nested tables are addressed with dot notation ("documents.SRS").
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetStringMap returns every string value under the given table,
	// keyed by the remainder of the dotted key.
	GetStringMap(table string) map[string]string

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
