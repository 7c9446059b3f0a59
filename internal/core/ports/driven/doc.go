// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PageFetcher: Retrieves the JSON payload embedded in a site page
//   - PageParser: Turns payloads into domain documents and result sets
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PageCache: Stores payloads between fetches. Without it every call hits the site.
//   - UsageRecorder: Counts browse outcomes and transpositions.
//
// # Per-call Interfaces
//
//   - InteractiveSession: The display a single browse session talks to.
package driven
