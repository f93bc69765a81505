// Package domain holds the error values shared by every hexwords layer.
//
// It has no dependencies on infrastructure concerns (file system, logging,
// CLI parsing). Callers check failures with errors.Is against:
//
//   - [ErrInvalidConfig]: configuration rejected before any input is read
//   - [ErrIndivisibleLength]: an input ended with a partial word
//   - [ErrInputFailed]: a batch finished with at least one failed input
package domain
