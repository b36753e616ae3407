package index

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/whatson-app/whatson/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "whatson-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUpsertAndGetHub(t *testing.T) {
	db := testDB(t)

	row := HubRow{
		Name:        "my-hub",
		Directory:   "/ws/hubs/my-hub",
		PackagePath: "/ws/hubs/my-hub.wshub",
		Checksum:    "abc",
		CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := db.UpsertHub(row); err != nil {
		t.Fatalf("UpsertHub: %v", err)
	}

	got, err := db.GetHub("my-hub")
	if err != nil {
		t.Fatalf("GetHub: %v", err)
	}
	if got.Directory != row.Directory || got.PackagePath != row.PackagePath || got.Checksum != "abc" {
		t.Errorf("row = %+v", got)
	}

	// Upsert replaces.
	row.Checksum = "def"
	if err := db.UpsertHub(row); err != nil {
		t.Fatalf("second UpsertHub: %v", err)
	}
	got, _ = db.GetHub("my-hub")
	if got.Checksum != "def" {
		t.Errorf("checksum after upsert = %q", got.Checksum)
	}
}

func TestGetHubNotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.GetHub("nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpsertHubDefaultsCreatedAt(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertHub(HubRow{Name: "h", Directory: "/d"}); err != nil {
		t.Fatalf("UpsertHub: %v", err)
	}
	got, err := db.GetHub("h")
	if err != nil {
		t.Fatal(err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at should default to now")
	}
}

func TestListHubsNewestFirst(t *testing.T) {
	db := testDB(t)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		err := db.UpsertHub(HubRow{
			Name:      name,
			Directory: "/ws/hubs/" + name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	rows, err := db.ListHubs()
	if err != nil {
		t.Fatalf("ListHubs: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d", len(rows))
	}
	if rows[0].Name != "new" || rows[2].Name != "old" {
		t.Errorf("order = %s, %s, %s", rows[0].Name, rows[1].Name, rows[2].Name)
	}
}

func TestDeleteHub(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertHub(HubRow{Name: "gone", Directory: "/d"})
	if err := db.DeleteHub("gone"); err != nil {
		t.Fatalf("DeleteHub: %v", err)
	}
	if _, err := db.GetHub("gone"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is not an error.
	if err := db.DeleteHub("gone"); err != nil {
		t.Errorf("second DeleteHub: %v", err)
	}
}

func TestAllNames(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertHub(HubRow{Name: "a", Directory: "/a"})
	_ = db.UpsertHub(HubRow{Name: "b", Directory: "/b"})
	names, err := db.AllNames()
	if err != nil {
		t.Fatalf("AllNames: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("names = %v", names)
	}
	if _, ok := names["a"]; !ok {
		t.Error("missing a")
	}
}
