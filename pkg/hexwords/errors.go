package hexwords

import "github.com/bft-labs/hexwords/internal/domain"

// Errors re-exported for callers outside this module.
var (
	ErrInvalidConfig     = domain.ErrInvalidConfig
	ErrIndivisibleLength = domain.ErrIndivisibleLength
	ErrInputFailed       = domain.ErrInputFailed
)
