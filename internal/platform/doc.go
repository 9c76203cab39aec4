// Package platform provides the small filesystem primitives the generator is
// built on: reads that treat a missing file as an expected outcome, and
// permission changes that degrade to no-ops on Windows.
package platform
