package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write sends data to outPath. An empty path or "-" means stdout; for file
// targets, parent directories are created first.
func Write(outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write report: %v", err)
		}
	}
	return os.WriteFile(outPath, data, 0o644)
}
