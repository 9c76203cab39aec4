package project

import (
	"fmt"
	"io"
)

// PrintNextSteps writes the completion message and the commands to run
// next. The wording changes when the program was created in ".".
func PrintNextSteps(w io.Writer, path, name string) error {
	header := fmt.Sprintf("Program created in %s, go there and run:", path)
	if path == CurrentDir {
		header = "Program created, now run:"
	}

	lines := []string{
		header,
		"",
		"   npm install",
		"   npm run build",
		"   npm exec " + name,
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("printing next steps: %w", err)
		}
	}
	return nil
}
