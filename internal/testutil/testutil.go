// Package testutil provides shared test helpers for setting up workspaces
// and registries.
package testutil

import (
	"os"
	"testing"

	"github.com/whatson-app/whatson/internal/creator"
	"github.com/whatson-app/whatson/internal/index"
)

// TestDB creates a temporary SQLite registry that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "whatson-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestWorkspace creates a temporary workspace directory with a hub creator
// whose packaging step writes a marker file instead of shelling out.
func TestWorkspace(t *testing.T) (string, *creator.WorkspaceHubCreator) {
	t.Helper()
	ws := t.TempDir()
	hubs := creator.NewWorkspaceHubCreator(ws).WithArchiver(markerArchiver{})
	return ws, hubs
}

type markerArchiver struct{}

func (markerArchiver) Package(sourceDir, destPath string) error {
	return os.WriteFile(destPath, []byte("package"), 0o644)
}
