package hexwords

import (
	"github.com/bft-labs/hexwords/internal/adapters/fs"
	"github.com/bft-labs/hexwords/internal/ports"
	"github.com/bft-labs/hexwords/pkg/log"
)

// DefaultName is the program name used as the message of error logs.
const DefaultName = "hexwords"

// SourceOpener opens input designators for ConvertAll. The caller closes
// the returned reader.
type SourceOpener = ports.SourceOpener

// Option configures optional behavior of a Converter.
type Option func(*options)

type options struct {
	logger log.Logger
	opener SourceOpener
	name   string
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		opener: fs.NewSourceOpener(),
		name:   DefaultName,
	}
}

// WithLogger sets the logger that receives per-input errors and statistics.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOpener sets how input designators are opened.
// If not provided, inputs are opened from the file system and "-" reads
// standard input.
func WithOpener(opener SourceOpener) Option {
	return func(o *options) {
		if opener != nil {
			o.opener = opener
		}
	}
}

// WithName sets the program name that prefixes error reports.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}
