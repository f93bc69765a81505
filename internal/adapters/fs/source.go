package fs

import (
	"io"
	"os"

	"github.com/bft-labs/hexwords/internal/ports"
)

// SourceOpener implements ports.SourceOpener over the local file system.
// The designator "-" maps to Stdin.
type SourceOpener struct {
	Stdin io.Reader
}

// NewSourceOpener returns a SourceOpener reading "-" from os.Stdin.
func NewSourceOpener() *SourceOpener {
	return &SourceOpener{Stdin: os.Stdin}
}

// Open opens name for reading. Standard input is wrapped so that closing
// it is a no-op.
func (o *SourceOpener) Open(name string) (io.ReadCloser, error) {
	if name == ports.StdinName {
		return io.NopCloser(o.Stdin), nil
	}
	return os.Open(name)
}

var _ ports.SourceOpener = (*SourceOpener)(nil)
