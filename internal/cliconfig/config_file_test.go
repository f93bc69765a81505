package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	two, four, zero, neg := 2, 4, 0, -3
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				WordSize:     &four,
				PrintSize:    &two,
				LittleEndian: &trueVal,
				WordsPerLine: &four,
				IndentLevel:  &two,
				UseTab:       &trueVal,
				AddPrefix:    "0x",
				WordPrefix:   "{",
				Delim:        ", ",
				WordDelim:    "}, ",
				RTrim:        &trueVal,
				BeginOfFile:  "uint16_t data[] = {",
				EndOfFile:    "};",
				Output:       "data.inc",
				Debounce:     "250ms",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				WordSize:     4,
				PrintSize:    2,
				LittleEndian: true,
				WordsPerLine: 4,
				IndentLevel:  2,
				UseTab:       true,
				AddPrefix:    "0x",
				WordPrefix:   "{",
				Delim:        ", ",
				WordDelim:    "}, ",
				RTrim:        true,
				BeginOfFile:  "uint16_t data[] = {",
				EndOfFile:    "};",
				Output:       "data.inc",
				Debounce:     250 * time.Millisecond,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				WordSize: &four,
				Delim:    ",",
			},
			changed:  map[string]bool{"word-size": true},
			initial:  Config{WordSize: 1, Delim: " "},
			expected: Config{WordSize: 1, Delim: ","},
		},
		{
			name: "explicit zero and false values apply",
			fileConfig: FileConfig{
				IndentLevel: &zero,
				RTrim:       &falseVal,
			},
			changed:  map[string]bool{},
			initial:  Config{IndentLevel: 4, RTrim: true},
			expected: Config{},
		},
		{
			name:       "negative values are passed through",
			fileConfig: FileConfig{IndentLevel: &neg},
			changed:    map[string]bool{},
			initial:    Config{},
			expected:   Config{IndentLevel: -3},
		},
		{
			name:       "unset fields keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{Debounce: "fast"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v\nwant %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
word_size = 4
print_size = 4
little_endian = true
words_per_line = 6
indent = 8
tab = false
prefix = "0x"
delim = ", "
rtrim = true
begin = "static const uint32_t blob[] = {"
end = "};"
debounce = "2s"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig failed: %v", err)
	}

	if fc.WordSize == nil || *fc.WordSize != 4 {
		t.Errorf("WordSize = %v, want 4", fc.WordSize)
	}
	if fc.LittleEndian == nil || !*fc.LittleEndian {
		t.Errorf("LittleEndian = %v, want true", fc.LittleEndian)
	}
	if fc.UseTab == nil || *fc.UseTab {
		t.Errorf("UseTab = %v, want explicit false", fc.UseTab)
	}
	if fc.IndentLevel == nil || *fc.IndentLevel != 8 {
		t.Errorf("IndentLevel = %v, want 8", fc.IndentLevel)
	}
	if fc.AddPrefix != "0x" || fc.Delim != ", " {
		t.Errorf("prefix/delim = %q/%q", fc.AddPrefix, fc.Delim)
	}
	if fc.BeginOfFile != "static const uint32_t blob[] = {" || fc.EndOfFile != "};" {
		t.Errorf("begin/end = %q/%q", fc.BeginOfFile, fc.EndOfFile)
	}
	if fc.WordPrefix != "" || fc.PrintSize == nil {
		t.Errorf("WordPrefix = %q, PrintSize = %v", fc.WordPrefix, fc.PrintSize)
	}
	if fc.Debounce != "2s" {
		t.Errorf("Debounce = %q, want 2s", fc.Debounce)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig should fail for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	if err := os.WriteFile(configPath, []byte(`word_size = "four`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig should fail for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("Home directory not available")
	}
	if !strings.HasSuffix(path, filepath.Join(".hexwords", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %v, want suffix .hexwords/config.toml", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists should return true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("FileExists should return false for missing file")
	}
}
