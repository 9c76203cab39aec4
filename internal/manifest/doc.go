// Package manifest models the package.json of a generated program. A
// Manifest is an ordered JSON object: key order and the raw bytes of values
// read from disk are preserved, so merging generated defaults over an
// existing file and writing it back is stable across runs.
//
// The package also validates a manifest against an embedded JSON Schema and
// checks devDependency version specs. Both produce advisory issues rather
// than errors because fields the user already wrote always win.
package manifest
