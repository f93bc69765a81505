// Package ports defines the interfaces that connect the converter to
// infrastructure adapters.
//
//   - [SourceOpener]: opens an input designator (path or "-")
//
// The converter depends only on these interfaces. Adapters in
// internal/adapters implement them against the file system, so tests can
// substitute in-memory inputs.
package ports
