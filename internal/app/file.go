// internal/app/file.go
package app

import (
	"fmt"
	"os"
)

// loadFile reads the file at path. A path that does not exist yet opens as
// an empty document so "codearea newfile.go" just works.
func loadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}

// saveFile writes text to path, creating the file if needed.
func saveFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
