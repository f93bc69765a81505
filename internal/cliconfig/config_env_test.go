package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"HEXWORDS_WORD_SIZE":      "4",
				"HEXWORDS_PRINT_SIZE":     "2",
				"HEXWORDS_WORDS_PER_LINE": "8",
				"HEXWORDS_INDENT":         "2",
				"HEXWORDS_LITTLE_ENDIAN":  "true",
				"HEXWORDS_TAB":            "1",
				"HEXWORDS_RTRIM":          "true",
				"HEXWORDS_PREFIX":         "0x",
				"HEXWORDS_WORD_PREFIX":    "{",
				"HEXWORDS_DELIM":          ",",
				"HEXWORDS_WORD_DELIM":     ";",
				"HEXWORDS_BEGIN":          "begin",
				"HEXWORDS_END":            "end",
				"HEXWORDS_OUTPUT":         "out.txt",
				"HEXWORDS_DEBOUNCE":       "1s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				WordSize:     4,
				PrintSize:    2,
				WordsPerLine: 8,
				IndentLevel:  2,
				LittleEndian: true,
				UseTab:       true,
				RTrim:        true,
				AddPrefix:    "0x",
				WordPrefix:   "{",
				Delim:        ",",
				WordDelim:    ";",
				BeginOfFile:  "begin",
				EndOfFile:    "end",
				Output:       "out.txt",
				Debounce:     time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"HEXWORDS_WORD_SIZE": "8",
				"HEXWORDS_DELIM":     ",",
			},
			changed:  map[string]bool{"word-size": true},
			initial:  Config{WordSize: 2},
			expected: Config{WordSize: 2, Delim: ","},
		},
		{
			name: "negative values reach validation",
			envVars: map[string]string{
				"HEXWORDS_INDENT": "-1",
			},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{IndentLevel: -1},
		},
		{
			name: "empty strings keep current values",
			envVars: map[string]string{
				"HEXWORDS_DELIM": "",
			},
			changed:  map[string]bool{},
			initial:  Config{Delim: " "},
			expected: Config{Delim: " "},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"HEXWORDS_RTRIM": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{RTrim: true},
			expected: Config{},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"HEXWORDS_WORD_SIZE": "four"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"HEXWORDS_DEBOUNCE": "soon"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v\nwant %+v", cfg, tt.expected)
			}
		})
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	four, eight := 4, 8
	trueVal := true

	fileConf := FileConfig{
		WordSize:     &four,
		WordsPerLine: &eight,
		Delim:        ",",
		RTrim:        &trueVal,
	}

	t.Setenv("HEXWORDS_WORD_SIZE", "2")
	t.Setenv("HEXWORDS_DELIM", ";")

	changed := map[string]bool{"delim": true}
	cfg := DefaultConfig()
	cfg.Delim = "|"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.Delim != "|" {
		t.Errorf("Delim = %q, want | (CLI should win)", cfg.Delim)
	}
	if cfg.WordSize != 2 {
		t.Errorf("WordSize = %d, want 2 (env should override file)", cfg.WordSize)
	}
	if cfg.WordsPerLine != 8 {
		t.Errorf("WordsPerLine = %d, want 8 (file should set)", cfg.WordsPerLine)
	}
	if !cfg.RTrim {
		t.Error("RTrim = false, want true (file should set)")
	}
}
