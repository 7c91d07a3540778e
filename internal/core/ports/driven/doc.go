// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - ChangeSource: fetches merged changes from a version-control host
//   - Renderer: renders a categorized document in one output format
//   - TokenProvider: supplies host credentials
//   - ConfigStore: user configuration persistence
//   - ChangeCache: cached fetch results for offline re-rendering
package driven
