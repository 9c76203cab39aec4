// Package project turns a set of options into a program directory on disk:
// it merges generated package.json defaults under any existing manifest,
// writes the starter sources, tests and configs from the template catalog,
// and makes sure node_modules is git-ignored.
//
// Materialization is a fixed sequence of synchronous writes. A failing step
// aborts the run and leaves earlier writes in place; re-running with the
// same options converges on the same files.
package project
