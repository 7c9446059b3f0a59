// Package domain defines the core types of tabula.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TabDocument: A parsed tab page with metadata and content
//   - ChordSheet: The transposable part of a chords document
//   - TabResults, ArtistResults: Ranked search and explore entries
//   - Browser: The state machine of an interactive browse session
//   - AppSettings: User configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
