package hexwords

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/hexwords/pkg/words"
)

// Stats counts what a conversion produced.
type Stats struct {
	Bytes      int64
	Words      int
	PrintWords int
	Lines      int
}

// Converter renders binary streams as hex text under one Config.
// A Converter holds no per-stream state and may be reused for any number
// of inputs, one at a time.
type Converter struct {
	cfg  Config
	opts options
}

// New validates cfg and returns a Converter for it.
// The returned error is a *ConfigError when cfg is invalid.
func New(cfg Config, opts ...Option) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{cfg: cfg.withDefaults(), opts: o}, nil
}

// Config returns the effective configuration, defaults resolved.
func (c *Converter) Config() Config {
	return c.cfg
}

// Convert reads r to the end and writes the formatted text to w.
// Lines are written as soon as they are complete. If r ends inside a word
// Convert returns a *words.IndivisibleLengthError; lines already written
// stay written and the footer is skipped.
func (c *Converter) Convert(r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	if c.cfg.BeginOfFile != "" {
		if _, err := io.WriteString(w, c.cfg.BeginOfFile+"\n"); err != nil {
			return st, fmt.Errorf("write header: %w", err)
		}
	}

	reader := words.NewReader(r, c.cfg.WordSize)
	lines := words.NewLineAssembler(w, c.cfg.lineOptions())
	var (
		scratch    []byte
		printWords = make([]string, 0, min(c.cfg.PrintWordsPerWord(), 64))
	)
	for {
		word, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			st.Bytes = reader.Offset()
			st.Lines = lines.Lines()
			return st, err
		}
		scratch = words.Orient(scratch, word, c.cfg.LittleEndian)
		printWords = printWords[:0]
		for _, pw := range words.SplitPrintWords(scratch, c.cfg.PrintSize) {
			printWords = append(printWords, words.EncodePrintWord(c.cfg.AddPrefix, pw))
		}
		st.Words++
		st.Bytes = reader.Offset()
		st.PrintWords += len(printWords)
		if err := lines.Append(words.FormatWord(c.cfg.WordPrefix, c.cfg.Delim, printWords)); err != nil {
			st.Lines = lines.Lines()
			return st, fmt.Errorf("write line: %w", err)
		}
	}
	if err := lines.Finish(); err != nil {
		st.Lines = lines.Lines()
		return st, fmt.Errorf("write line: %w", err)
	}
	st.Lines = lines.Lines()

	if c.cfg.EndOfFile != "" {
		if _, err := io.WriteString(w, c.cfg.EndOfFile+"\n"); err != nil {
			return st, fmt.Errorf("write footer: %w", err)
		}
	}
	return st, nil
}
