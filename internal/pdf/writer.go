package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// SafeName strips filesystem-hostile characters from an output document
// name.
func SafeName(name string) string {
	sanitized := unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return "document"
	}
	return sanitized
}

// WriteFile writes data to path, replacing any existing file. The bytes go
// through a temp file in the same directory first, so a failed run never
// leaves a partial document behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".collate-*.pdf")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
