// Package file provides the TOML configuration store kept at
// ~/.tabula/config.toml, with change notification for long-running servers.
package file
