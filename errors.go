package sdffont

import "errors"

// ErrUnknownFormat is returned by Registry.Import for a file extension
// without a registered importer.
var ErrUnknownFormat = errors.New("sdffont: unknown font format")

// ErrBadAsset is returned by ReadFontAsset for data that is not a
// serialized FontAsset.
var ErrBadAsset = errors.New("sdffont: invalid asset data")

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdffont: invalid config." + e.Field + ": " + e.Reason
}
