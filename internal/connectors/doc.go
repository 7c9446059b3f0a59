// Package connectors holds the site clients tabula fetches pages through.
// Each connector implements driven.PageFetcher and driven.PageParser for
// one site.
package connectors
