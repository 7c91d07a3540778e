// Package domain contains the core business entities for release notes
// generation: changes, category mappings, tag ranges, and the generated
// document. The domain layer depends on nothing outside the standard
// library; adapters translate their provider types into these.
package domain
