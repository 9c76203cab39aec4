// Package gitignore appends entries to a program's .gitignore without
// disturbing the lines already there.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skagedal/create-program/internal/platform"
)

// FileName is the ignore file inside a program directory.
const FileName = ".gitignore"

// NodeModulesEntry is the line added to keep installed packages out of git.
const NodeModulesEntry = "node_modules/"

// nodeModulesPattern decides whether node_modules is already ignored. It is
// deliberately loose: word characters may surround the directory name, so
// lines such as "xnode_modules" or "node_modulesx" count as a match.
var nodeModulesPattern = regexp.MustCompile(`^\w*node_modules/?\w*$`)

// ReadLines returns the lines of the file at path split on "\n". A missing
// file yields an empty list.
func ReadLines(path string) ([]string, error) {
	content, found, err := platform.ReadFileOptional(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !found {
		return []string{}, nil
	}
	return strings.Split(string(content), "\n"), nil
}

// WriteLines joins lines with "\n" and replaces the file at path.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), platform.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IgnoresNodeModules reports whether any line already covers node_modules.
func IgnoresNodeModules(lines []string) bool {
	for _, l := range lines {
		if nodeModulesPattern.MatchString(l) {
			return true
		}
	}
	return false
}

// EnsureNodeModules appends node_modules/ to <dir>/.gitignore unless a line
// already matches. The file is created if missing and left untouched when
// nothing changes.
func EnsureNodeModules(dir string) (changed bool, err error) {
	path := filepath.Join(dir, FileName)

	lines, err := ReadLines(path)
	if err != nil {
		return false, err
	}
	if IgnoresNodeModules(lines) {
		return false, nil
	}

	if err := WriteLines(path, append(lines, NodeModulesEntry)); err != nil {
		return false, err
	}
	return true, nil
}
