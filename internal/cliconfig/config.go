package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bft-labs/hexwords/internal/ports"
	"github.com/bft-labs/hexwords/pkg/hexwords"
)

// Config holds CLI configuration for hexwords.
type Config struct {
	WordSize     int
	PrintSize    int
	LittleEndian bool

	WordsPerLine int
	IndentLevel  int
	UseTab       bool

	AddPrefix   string
	WordPrefix  string
	Delim       string
	WordDelim   string
	RTrim       bool
	BeginOfFile string
	EndOfFile   string

	Output   string
	Watch    bool
	Debounce time.Duration
	Verbose  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	f := hexwords.DefaultConfig()
	return Config{
		WordSize:     f.WordSize,
		PrintSize:    f.PrintSize,
		WordsPerLine: f.WordsPerLine,
		Delim:        f.Delim,
		Debounce:     100 * time.Millisecond,
	}
}

// Format returns the formatting parameters of c.
func (c Config) Format() hexwords.Config {
	return hexwords.Config{
		WordSize:     c.WordSize,
		PrintSize:    c.PrintSize,
		LittleEndian: c.LittleEndian,
		WordsPerLine: c.WordsPerLine,
		IndentLevel:  c.IndentLevel,
		UseTab:       c.UseTab,
		AddPrefix:    c.AddPrefix,
		WordPrefix:   c.WordPrefix,
		Delim:        c.Delim,
		WordDelim:    c.WordDelim,
		RTrim:        c.RTrim,
		BeginOfFile:  c.BeginOfFile,
		EndOfFile:    c.EndOfFile,
	}
}

// Validate checks the configuration against the given inputs.
func (c *Config) Validate(inputs []string) error {
	if err := c.Format().Validate(); err != nil {
		return err
	}
	if c.Watch {
		if c.Output == "" {
			return &hexwords.ConfigError{Field: "watch", Reason: "requires --output"}
		}
		if len(inputs) == 0 {
			return &hexwords.ConfigError{Field: "watch", Reason: "cannot watch standard input"}
		}
		for _, in := range inputs {
			if in == ports.StdinName {
				return &hexwords.ConfigError{Field: "watch", Reason: "cannot watch standard input"}
			}
		}
		if c.Debounce <= 0 {
			return &hexwords.ConfigError{Field: "debounce", Reason: "must be positive"}
		}
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Out-of-range values are left for Validate to reject.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
