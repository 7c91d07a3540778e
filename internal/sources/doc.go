// Package sources contains the bundled ChangeSource implementations.
// Each subpackage implements the driven.ChangeSource port for one host
// and owns its own authentication and pagination strategy.
package sources
