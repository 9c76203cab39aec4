package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/skagedal/create-program/internal/templates"
)

// CurrentDir is the path token that selects the short completion message.
const CurrentDir = "."

// Options configures one materialization run.
type Options struct {
	Path       string               // target directory, required
	Name       string               // explicit program name; empty derives it from Path
	TestRunner templates.TestRunner // jest or nodejs
	Quiet      bool                 // suppress the completion message
}

// Validate rejects options the run cannot start with. It touches nothing on
// disk.
func (o Options) Validate() error {
	if o.Path == "" {
		return errors.New("target path is required")
	}
	if !o.TestRunner.Valid() {
		_, err := templates.ParseTestRunner(string(o.TestRunner))
		return err
	}
	return nil
}

// ResolveName returns the explicit name, or the last element of the absolute
// target path.
func (o Options) ResolveName() (string, error) {
	if o.Name != "" {
		return o.Name, nil
	}
	abs, err := filepath.Abs(o.Path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", o.Path, err)
	}
	return filepath.Base(abs), nil
}
