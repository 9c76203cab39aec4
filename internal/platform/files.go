package platform

import (
	"errors"
	"io/fs"
	"os"
)

// ReadFileOptional reads the file at path. A missing file is not an error:
// it is reported as found == false with nil data. Every other failure is
// returned unchanged.
func ReadFileOptional(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
