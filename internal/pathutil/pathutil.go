// Package pathutil provides name sanitization, path joining, and safe
// directory/file primitives used by the scaffolding creators.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^a-z0-9._-]`)
)

// Sanitize converts a human-readable name into a filesystem-safe
// identifier: trimmed, lower-cased, internal whitespace collapsed to
// hyphens, and every character outside [a-z0-9._-] stripped. An input that
// sanitizes to nothing yields fallback, so the result is always non-empty.
func Sanitize(name, fallback string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = whitespaceRe.ReplaceAllString(normalized, "-")
	normalized = unsafeRe.ReplaceAllString(normalized, "")
	if normalized == "" {
		return fallback
	}
	return normalized
}

// Join concatenates two path fragments and normalizes the result. If one
// side is empty the cleaned form of the other side is returned.
func Join(left, right string) string {
	if left == "" {
		return filepath.Clean(right)
	}
	if right == "" {
		return filepath.Clean(left)
	}
	return filepath.Clean(left + string(filepath.Separator) + right)
}

// EnsureDir creates abs and any missing ancestors. A pre-existing
// directory is not an error.
func EnsureDir(abs string) error {
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("pathutil: create directory %s: %w", abs, err)
	}
	return nil
}

// WriteTextFile writes content to abs atomically: the bytes are staged in
// a temp file in the same directory, fsynced, and renamed over the final
// path. A failed write leaves either the previous file or no file at all.
func WriteTextFile(abs string, content []byte) error {
	dir := filepath.Dir(abs)

	tmp, err := os.CreateTemp(dir, ".whatson-tmp-*")
	if err != nil {
		return fmt.Errorf("pathutil: open %s for writing: %w", abs, err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	n, err := tmp.Write(content)
	if err != nil {
		return fmt.Errorf("pathutil: write %s: %w", abs, err)
	}
	if n != len(content) {
		return fmt.Errorf("pathutil: short write to %s: %d of %d bytes", abs, n, len(content))
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("pathutil: fsync %s: %w", abs, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("pathutil: close %s: %w", abs, err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("pathutil: commit %s: %w", abs, err)
	}
	success = true
	return nil
}
