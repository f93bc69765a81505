package words

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/hexwords/internal/domain"
)

// IndivisibleLengthError reports that a stream ended with a partial word.
// The partial bytes are not carried.
type IndivisibleLengthError struct {
	WordSize int
	// Offset is the stream offset of the partial word.
	Offset int64
	// Remainder is the number of bytes left over.
	Remainder int
}

func (e *IndivisibleLengthError) Error() string {
	return fmt.Sprintf("input length is not a multiple of word size %d (%d trailing bytes at offset %d)",
		e.WordSize, e.Remainder, e.Offset)
}

// Is reports whether target is domain.ErrIndivisibleLength.
func (e *IndivisibleLengthError) Is(target error) bool {
	return target == domain.ErrIndivisibleLength
}

// Reader reads fixed-size words from a byte stream.
// It is finite and cannot be restarted: once Next returns an error every
// later call returns the same error.
type Reader struct {
	r      io.Reader
	size   int
	buf    []byte
	offset int64
	err    error
}

// initialChunk bounds the first buffer allocation. Larger words grow the
// buffer as their bytes arrive.
const initialChunk = 4096

// NewReader returns a Reader producing words of size bytes from r.
// size must be positive.
func NewReader(r io.Reader, size int) *Reader {
	return &Reader{r: r, size: size, buf: make([]byte, 0, min(size, initialChunk))}
}

// Next returns the next word. The returned slice is only valid until the
// next call. Next returns io.EOF at a clean end of stream and an
// *IndivisibleLengthError if the stream ends inside a word.
func (r *Reader) Next() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	n, err := r.fill()
	switch {
	case err == nil:
		r.offset += int64(n)
		return r.buf, nil
	case n == 0 && errors.Is(err, io.EOF):
		r.err = io.EOF
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		r.err = &IndivisibleLengthError{WordSize: r.size, Offset: r.offset, Remainder: n}
	default:
		r.err = fmt.Errorf("read word at offset %d: %w", r.offset, err)
	}
	return nil, r.err
}

// fill reads one word into buf and returns the number of bytes read.
// The buffer doubles up to size, so memory follows the input actually read.
func (r *Reader) fill() (int, error) {
	r.buf = r.buf[:0]
	for len(r.buf) < r.size {
		if len(r.buf) == cap(r.buf) {
			grown := make([]byte, len(r.buf), min(2*cap(r.buf), r.size))
			copy(grown, r.buf)
			r.buf = grown
		}
		n, err := io.ReadFull(r.r, r.buf[len(r.buf):cap(r.buf)])
		r.buf = r.buf[:len(r.buf)+n]
		if err != nil {
			return len(r.buf), err
		}
	}
	return len(r.buf), nil
}

// Offset returns the number of bytes consumed as whole words.
func (r *Reader) Offset() int64 {
	return r.offset
}
