package hexwords

import (
	"fmt"

	"github.com/bft-labs/hexwords/internal/domain"
	"github.com/bft-labs/hexwords/pkg/words"
)

// DefaultDelim is used when Delim is empty.
const DefaultDelim = " "

// Config holds the formatting parameters of a conversion.
// Empty string fields mean "not set" and fall back to their defaults.
type Config struct {
	// WordSize is the number of bytes read per word.
	WordSize int
	// PrintSize is the number of bytes rendered per print-word.
	// It must divide WordSize.
	PrintSize int
	// LittleEndian reverses each whole word before it is split.
	LittleEndian bool

	WordsPerLine int
	IndentLevel  int
	UseTab       bool

	// AddPrefix is written before every print-word.
	AddPrefix string
	// WordPrefix is written before every word.
	WordPrefix string
	// Delim separates print-words within a word.
	Delim string
	// WordDelim follows every word in a line. Defaults to Delim.
	WordDelim string
	RTrim     bool

	// BeginOfFile and EndOfFile are written verbatim on their own line
	// before and after the data lines.
	BeginOfFile string
	EndOfFile   string
}

// DefaultConfig returns a Config rendering one byte per word, sixteen words
// per line.
func DefaultConfig() Config {
	return Config{
		WordSize:     1,
		PrintSize:    1,
		WordsPerLine: 16,
		Delim:        DefaultDelim,
	}
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is domain.ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == domain.ErrInvalidConfig
}

// Validate checks c for out-of-range or inconsistent values.
func (c Config) Validate() error {
	if c.IndentLevel < 0 {
		return &ConfigError{Field: "indent", Reason: fmt.Sprintf("%d is negative", c.IndentLevel)}
	}
	if c.WordsPerLine < 1 {
		return &ConfigError{Field: "words-per-line", Reason: fmt.Sprintf("%d is less than 1", c.WordsPerLine)}
	}
	if c.WordSize < 1 {
		return &ConfigError{Field: "word-size", Reason: fmt.Sprintf("%d is less than 1", c.WordSize)}
	}
	if c.PrintSize < 1 {
		return &ConfigError{Field: "print-size", Reason: fmt.Sprintf("%d is less than 1", c.PrintSize)}
	}
	if c.PrintSize > c.WordSize {
		return &ConfigError{Field: "print-size", Reason: fmt.Sprintf("%d exceeds word size %d", c.PrintSize, c.WordSize)}
	}
	if c.WordSize%c.PrintSize != 0 {
		return &ConfigError{Field: "print-size", Reason: fmt.Sprintf("word size %d is not divisible by %d", c.WordSize, c.PrintSize)}
	}
	return nil
}

// withDefaults resolves unset string fields.
func (c Config) withDefaults() Config {
	if c.Delim == "" {
		c.Delim = DefaultDelim
	}
	if c.WordDelim == "" {
		c.WordDelim = c.Delim
	}
	return c
}

// PrintWordsPerWord returns WordSize / PrintSize.
func (c Config) PrintWordsPerWord() int {
	return c.WordSize / c.PrintSize
}

func (c Config) lineOptions() words.LineOptions {
	return words.LineOptions{
		WordsPerLine: c.WordsPerLine,
		IndentLevel:  c.IndentLevel,
		UseTab:       c.UseTab,
		WordDelim:    c.WordDelim,
		RTrim:        c.RTrim,
	}
}
