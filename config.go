package sdffont

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/sdffont/pack"
)

// DefaultChars is the character set imported when Config.Chars is empty:
// ASCII letters, digits, punctuation and space.
const DefaultChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// maxChar is the highest character code the parser keeps.
const maxChar = 254

// Config holds font import parameters.
type Config struct {
	// Resolution is the em size in pixels glyphs are rendered at.
	// Default: 64
	Resolution int

	// Range is how far the distance field extends past the outline, in
	// pixels. The outline encodes as 0.5; values reach 0 and 1 at Range
	// pixels outside and inside.
	// Default: 8
	Range int

	// Padding is the empty border in pixels added around every cell on
	// top of Range.
	// Default: 2
	Padding int

	// Chars lists the characters to import. Space is always added.
	// Empty means DefaultChars.
	Chars string
}

// DefaultConfig returns the default import configuration.
func DefaultConfig() Config {
	return Config{
		Resolution: 64,
		Range:      8,
		Padding:    2,
		Chars:      DefaultChars,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Resolution < 1 {
		return &ConfigError{Field: "Resolution", Reason: "must be positive"}
	}
	if c.Resolution > 4096 {
		return &ConfigError{Field: "Resolution", Reason: "must be at most 4096"}
	}
	if c.Range < 1 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.Range > pack.MaxCanvas {
		return &ConfigError{Field: "Range", Reason: "must be at most 16384"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must not be negative"}
	}
	if c.Padding > pack.MaxCanvas {
		return &ConfigError{Field: "Padding", Reason: "must be at most 16384"}
	}
	return nil
}

// charset returns the characters to import: Chars (or DefaultChars) in NFC
// form, without duplicates, with space appended when missing. Characters
// above code 254 are dropped with a warning.
func (c *Config) charset() string {
	chars := c.Chars
	if chars == "" {
		chars = DefaultChars
	}

	var (
		b    strings.Builder
		seen [maxChar + 1]bool
	)
	for _, r := range norm.NFC.String(chars) {
		if r < 0 || r > maxChar {
			Logger().Warn("sdffont: character outside supported range",
				"char", string(r), "code", int(r))
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		b.WriteRune(r)
	}
	if !seen[' '] {
		b.WriteByte(' ')
	}
	return b.String()
}
