package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Permission bits used for generated files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
	ExecPerm os.FileMode = 0755
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MakeExecutable marks a generated script as runnable by its owner, group
// and others, so the shebang line takes effect.
func MakeExecutable(path string) error {
	if err := Chmod(path, ExecPerm); err != nil {
		return fmt.Errorf("making %s executable: %w", path, err)
	}
	return nil
}
