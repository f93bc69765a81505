package ports

import "io"

// StdinName is the input designator for standard input.
const StdinName = "-"

// SourceOpener opens input designators for reading.
// Implementations decide how a designator maps to a byte stream; the
// caller always closes the returned reader.
type SourceOpener interface {
	Open(name string) (io.ReadCloser, error)
}
