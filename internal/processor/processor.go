package processor

import (
	"fmt"
	"os"
	"path/filepath"
)

// Processor resolves relative filenames against a base directory, performs
// the I/O and keeps an append-only log of every filename it successfully
// touched. Duplicates are recorded as-is; there is no reset. Not safe for
// concurrent use; callers must serialize access.
type Processor struct {
	basePath  string
	processed []string
}

// New returns a Processor with an empty processed log.
func New(basePath string) *Processor {
	return &Processor{basePath: basePath}
}

// ReadFile reads the whole file as text. The filename is appended to the
// processed log only after a successful read, so a failed call leaves the
// log untouched. The underlying OS error is wrapped, not replaced.
func (p *Processor) ReadFile(filename string) (string, error) {
	b, err := os.ReadFile(filepath.Join(p.basePath, filename))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	p.processed = append(p.processed, filename)
	return string(b), nil
}

// WriteFile creates or truncates the file and writes content. Same
// append-after-success rule as ReadFile. A failed write may still leave a
// truncated file behind; that is the platform's create/truncate behavior.
func (p *Processor) WriteFile(filename, content string) error {
	if err := os.WriteFile(filepath.Join(p.basePath, filename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	p.processed = append(p.processed, filename)
	return nil
}

// Stats returns a snapshot of the processor state with three fixed keys:
// base_path, processed_files_count and files. The files entry is a copy in
// recorded order; later calls cannot mutate a snapshot already handed out.
func (p *Processor) Stats() map[string]any {
	files := make([]string, len(p.processed))
	copy(files, p.processed)
	return map[string]any{
		"base_path":             p.basePath,
		"processed_files_count": len(p.processed),
		"files":                 files,
	}
}
