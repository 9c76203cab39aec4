// Package cli defines the Cobra command tree for create-program. The root
// command materializes a program; version, config and doctor are helpers.
// Commands only parse flags and format output, and delegate the work to
// internal packages.
package cli
