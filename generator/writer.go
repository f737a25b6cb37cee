package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutput saves a generated module, creating parent directories as needed.
func WriteOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output folder: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing schema file: %w", err)
	}
	return nil
}
