// Package runtime inspects the Node.js toolchain a generated program needs:
// whether node and npm are on PATH and whether the installed node satisfies
// the minimum version the templates target.
package runtime
