// Package services implements the core business logic: the categorization
// function, the renderer registry, and the generation pipeline that wires
// a change source to a renderer.
package services
