// Package archive packages a scaffolded hub directory into a single-file
// artifact by shelling out to a platform archival tool.
package archive

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/whatson-app/whatson/internal/apperr"
)

// Command describes one external archival invocation: a program, its
// arguments, and the working directory it runs in.
type Command struct {
	Program string
	Args    []string
	Dir     string
}

// CommandFor returns the archival command for the given GOOS. The command
// runs in the parent of sourceDir, reads the directory by its base name,
// and writes a zip-compatible archive to destPath.
//
// macOS uses the native ditto tool so Finder metadata survives; other
// supported platforms shell out to the general-purpose zip utility.
func CommandFor(goos, sourceDir, destPath string) (Command, error) {
	parent := filepath.Dir(sourceDir)
	name := filepath.Base(sourceDir)

	switch goos {
	case "darwin":
		return Command{
			Program: "/usr/bin/ditto",
			Args:    []string{"-c", "-k", "--sequesterRsrc", "--keepParent", name, destPath},
			Dir:     parent,
		}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "windows":
		return Command{
			Program: "zip",
			Args:    []string{"-r", destPath, name},
			Dir:     parent,
		}, nil
	default:
		return Command{}, fmt.Errorf("archive: no packaging tool for %s: %w", goos, apperr.ErrUnsupportedPlatform)
	}
}

// Archiver packages a directory tree into a single artifact file.
type Archiver interface {
	// Package archives sourceDir into destPath, replacing any existing
	// file there. It returns only after the artifact is on disk.
	Package(sourceDir, destPath string) error
}

// CommandArchiver implements Archiver by running the platform command
// selected by CommandFor and waiting for it to finish.
type CommandArchiver struct {
	goos string
}

// NewCommandArchiver returns an archiver for the current platform.
func NewCommandArchiver() *CommandArchiver {
	return &CommandArchiver{goos: runtime.GOOS}
}

// Package removes any stale artifact at destPath, runs the archival
// command, and classifies success as a zero exit code plus the artifact
// being present afterwards. The wait is unbounded.
func (a *CommandArchiver) Package(sourceDir, destPath string) error {
	spec, err := CommandFor(a.goos, sourceDir, destPath)
	if err != nil {
		return err
	}

	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("archive: remove stale package %s: %w", destPath, err)
	}

	cmd := exec.Command(spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := firstLines(stderr.String(), 3); msg != "" {
			return fmt.Errorf("archive: packaging %s failed: %s: %w", sourceDir, msg, err)
		}
		return fmt.Errorf("archive: packaging %s failed: %w", sourceDir, err)
	}

	if _, err := os.Stat(destPath); err != nil {
		return fmt.Errorf("archive: package file was not created: %s", destPath)
	}
	return nil
}

// firstLines returns up to n non-empty leading lines of s joined by "; ".
func firstLines(s string, n int) string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return strings.Join(out, "; ")
}
