// Package log provides the logging abstraction used by hexwords.
//
// The converter reports per-input failures and statistics through the
// Logger interface so that library users are not tied to zerolog. Two
// implementations are provided:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger := log.NewNoopLogger() // tests
//
// Implement Logger to route messages to any other logging library.
package log
