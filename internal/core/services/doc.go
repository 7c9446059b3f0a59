// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters): fetching pages, parsing them into
// domain models, transposing chord sheets and running browse sessions.
package services
