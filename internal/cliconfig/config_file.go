package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML files. Pointers distinguish "unset"
// from zero values.
type FileConfig struct {
	WordSize     *int   `toml:"word_size"`
	PrintSize    *int   `toml:"print_size"`
	LittleEndian *bool  `toml:"little_endian"`
	WordsPerLine *int   `toml:"words_per_line"`
	IndentLevel  *int   `toml:"indent"`
	UseTab       *bool  `toml:"tab"`
	AddPrefix    string `toml:"prefix"`
	WordPrefix   string `toml:"word_prefix"`
	Delim        string `toml:"delim"`
	WordDelim    string `toml:"word_delim"`
	RTrim        *bool  `toml:"rtrim"`
	BeginOfFile  string `toml:"begin"`
	EndOfFile    string `toml:"end"`
	Output       string `toml:"output"`
	Debounce     string `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.hexwords/config.toml, or "" if the user home
// directory is not accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".hexwords", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("word-size", fc.WordSize, &cfg.WordSize)
	s.setInt("print-size", fc.PrintSize, &cfg.PrintSize)
	s.setInt("words-per-line", fc.WordsPerLine, &cfg.WordsPerLine)
	s.setInt("indent", fc.IndentLevel, &cfg.IndentLevel)

	s.setBool("little-endian", fc.LittleEndian, &cfg.LittleEndian)
	s.setBool("tab", fc.UseTab, &cfg.UseTab)
	s.setBool("rtrim", fc.RTrim, &cfg.RTrim)

	s.setString("prefix", fc.AddPrefix, &cfg.AddPrefix)
	s.setString("word-prefix", fc.WordPrefix, &cfg.WordPrefix)
	s.setString("delim", fc.Delim, &cfg.Delim)
	s.setString("word-delim", fc.WordDelim, &cfg.WordDelim)
	s.setString("begin", fc.BeginOfFile, &cfg.BeginOfFile)
	s.setString("end", fc.EndOfFile, &cfg.EndOfFile)
	s.setString("output", fc.Output, &cfg.Output)

	return s.setDuration("debounce", fc.Debounce, &cfg.Debounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
