package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Brand Kit!", "my-brand-kit"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER", "upper"},
		{"dots.and_under-scores", "dots.and_under-scores"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"émojis 🎉 stripped", "mojis--stripped"},
		{"!!!", "untitled-hub"},
		{"", "untitled-hub"},
		{"   ", "untitled-hub"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in, "untitled-hub"); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestJoin(t *testing.T) {
	cases := []struct {
		left, right, want string
	}{
		{"/a/b", "c", filepath.Clean("/a/b/c")},
		{"/a/b/", "c/d", filepath.Clean("/a/b/c/d")},
		{"", "rel/path", filepath.Clean("rel/path")},
		{"/a/b", "", filepath.Clean("/a/b")},
		{"/a//b", "./c", filepath.Clean("/a/b/c")},
	}
	for _, c := range cases {
		if got := Join(c.left, c.right); got != c.want {
			t.Errorf("Join(%q, %q) = %q, want %q", c.left, c.right, got, c.want)
		}
	}
}

func TestEnsureDirCreatesAncestors(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")
	if err := EnsureDir(deep); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(deep)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", deep, err)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	root := t.TempDir()
	if err := EnsureDir(root); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
}

func TestEnsureDirFailsOnFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(filepath.Join(file, "child")); err == nil {
		t.Error("expected error creating directory under a file")
	}
}

func TestWriteTextFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "out.json")
	if err := WriteTextFile(path, []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("WriteTextFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != `{"ok":true}` {
		t.Errorf("content = %q", got)
	}

	// Overwrite commits new content and leaves no temp files behind.
	if err := WriteTextFile(path, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "second" {
		t.Errorf("content after overwrite = %q", got)
	}
	matches, _ := filepath.Glob(filepath.Join(root, ".whatson-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestWriteTextFileMissingDir(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "no-such-dir", "out.json")
	if err := WriteTextFile(path, []byte("x")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should exist after a failed write")
	}
}
