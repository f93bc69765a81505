package cliconfig

import "os"

// EnvPrefix prefixes every environment variable hexwords reads.
const EnvPrefix = "HEXWORDS_"

// ApplyEnvConfig applies configuration from environment variables (HEXWORDS_*).
// It respects flags that have been explicitly set (changed map) and returns
// an error if a numeric or duration variable cannot be parsed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return os.Getenv(EnvPrefix + name) }

	if err := s.setIntFromString("word-size", env("WORD_SIZE"), &cfg.WordSize); err != nil {
		return err
	}
	if err := s.setIntFromString("print-size", env("PRINT_SIZE"), &cfg.PrintSize); err != nil {
		return err
	}
	if err := s.setIntFromString("words-per-line", env("WORDS_PER_LINE"), &cfg.WordsPerLine); err != nil {
		return err
	}
	if err := s.setIntFromString("indent", env("INDENT"), &cfg.IndentLevel); err != nil {
		return err
	}

	s.setBoolFromString("little-endian", env("LITTLE_ENDIAN"), &cfg.LittleEndian)
	s.setBoolFromString("tab", env("TAB"), &cfg.UseTab)
	s.setBoolFromString("rtrim", env("RTRIM"), &cfg.RTrim)

	s.setString("prefix", env("PREFIX"), &cfg.AddPrefix)
	s.setString("word-prefix", env("WORD_PREFIX"), &cfg.WordPrefix)
	s.setString("delim", env("DELIM"), &cfg.Delim)
	s.setString("word-delim", env("WORD_DELIM"), &cfg.WordDelim)
	s.setString("begin", env("BEGIN"), &cfg.BeginOfFile)
	s.setString("end", env("END"), &cfg.EndOfFile)
	s.setString("output", env("OUTPUT"), &cfg.Output)

	return s.setDuration("debounce", env("DEBOUNCE"), &cfg.Debounce)
}
