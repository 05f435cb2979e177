package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files into their package directories.
// Directories are created if they don't exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.MkdirAll(file.Dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory %s: %w", file.Dir, err)
		}

		outputPath := filepath.Join(file.Dir, file.Filename)

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
