package words

import (
	"io"
	"strings"
	"unicode"
)

// LineOptions configures a LineAssembler.
type LineOptions struct {
	WordsPerLine int
	IndentLevel  int
	UseTab       bool
	WordDelim    string
	RTrim        bool
}

// Indent returns the indentation prefix for o.
func (o LineOptions) Indent() string {
	if o.IndentLevel <= 0 {
		return ""
	}
	if o.UseTab {
		return strings.Repeat("\t", o.IndentLevel)
	}
	return strings.Repeat(" ", o.IndentLevel)
}

// maxInitialWords bounds the initial line buffer; longer lines grow it.
const maxInitialWords = 64

// LineAssembler buffers formatted words and writes them to w one line at a
// time. Every word in a line is followed by WordDelim, the last included.
type LineAssembler struct {
	w      io.Writer
	opts   LineOptions
	indent string
	buf    []string
	lines  int
	words  int
}

// NewLineAssembler returns a LineAssembler writing to w.
// opts.WordsPerLine must be positive.
func NewLineAssembler(w io.Writer, opts LineOptions) *LineAssembler {
	return &LineAssembler{
		w:      w,
		opts:   opts,
		indent: opts.Indent(),
		buf:    make([]string, 0, min(opts.WordsPerLine, maxInitialWords)),
	}
}

// Append adds a formatted word, writing a line once WordsPerLine words are
// buffered.
func (a *LineAssembler) Append(word string) error {
	a.buf = append(a.buf, word)
	a.words++
	if len(a.buf) >= a.opts.WordsPerLine {
		return a.flush()
	}
	return nil
}

// Finish writes any buffered words as a final, possibly short, line.
func (a *LineAssembler) Finish() error {
	if len(a.buf) == 0 {
		return nil
	}
	return a.flush()
}

// Lines returns the number of lines written.
func (a *LineAssembler) Lines() int {
	return a.lines
}

// Words returns the number of words appended.
func (a *LineAssembler) Words() int {
	return a.words
}

func (a *LineAssembler) flush() error {
	var sb strings.Builder
	sb.WriteString(a.indent)
	for _, w := range a.buf {
		sb.WriteString(w)
		sb.WriteString(a.opts.WordDelim)
	}
	line := sb.String()
	if a.opts.RTrim {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	a.buf = a.buf[:0]
	if _, err := io.WriteString(a.w, line+"\n"); err != nil {
		return err
	}
	a.lines++
	return nil
}
