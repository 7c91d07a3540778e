// Package file implements the ConfigStore port over a TOML file in the
// user's relnotes directory. Nested tables are flattened to dot-notation
// keys in memory and rebuilt on save.
package file
