package truetype

import "errors"

// Sentinel errors for truetype package.
var (
	// ErrEmptyData is returned when Parse is called with no font data.
	ErrEmptyData = errors.New("truetype: empty font data")

	// ErrInvalidSize is returned when the requested size is not positive.
	ErrInvalidSize = errors.New("truetype: size must be positive")
)

// FormatError reports malformed font data: a bad checksum or magic number,
// a truncated table, a duplicate character mapping or a missing table.
type FormatError struct {
	Table  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Table == "" {
		return "truetype: " + e.Reason
	}
	return "truetype: " + e.Table + ": " + e.Reason
}

// UnsupportedError reports a valid font feature this package does not decode,
// such as compound glyphs or a non-format-4 cmap subtable.
type UnsupportedError struct {
	Table   string
	Feature string
}

func (e *UnsupportedError) Error() string {
	return "truetype: " + e.Table + ": " + e.Feature + " not implemented"
}

// Unwrap lets callers match any unsupported feature with errors.ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return errors.ErrUnsupported
}
