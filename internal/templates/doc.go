// Package templates is the catalog of files written into a new program. Each
// artifact is a literal file body embedded in the binary; the only variation
// is the test runner the program is generated for, which picks between the
// jest and node-native variants of the affected files.
package templates
