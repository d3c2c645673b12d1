// Package driving defines the service interfaces the presentation
// layers (CLI and TUI) consume. The core services under
// internal/core/services implement them.
package driving
