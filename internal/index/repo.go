package index

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/whatson-app/whatson/internal/apperr"
)

// HubRow represents a row in the hubs table.
type HubRow struct {
	Name        string
	Directory   string
	PackagePath string
	Checksum    string
	CreatedAt   time.Time
}

// UpsertHub inserts or replaces a hub registration.
func (db *DB) UpsertHub(h HubRow) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	_, err := db.conn.Exec(`
		INSERT INTO hubs (name, directory, package_path, checksum, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			directory    = excluded.directory,
			package_path = excluded.package_path,
			checksum     = excluded.checksum,
			created_at   = excluded.created_at
	`, h.Name, h.Directory, h.PackagePath, h.Checksum, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert hub: %w", err)
	}
	return nil
}

// DeleteHub removes a hub registration. Deleting an unknown hub is not an
// error.
func (db *DB) DeleteHub(name string) error {
	if _, err := db.conn.Exec(`DELETE FROM hubs WHERE name = ?`, name); err != nil {
		return fmt.Errorf("index: delete hub: %w", err)
	}
	return nil
}

// GetHub returns one registered hub, or apperr.ErrNotFound.
func (db *DB) GetHub(name string) (*HubRow, error) {
	var h HubRow
	err := db.conn.QueryRow(`
		SELECT name, directory, package_path, checksum, created_at
		FROM hubs WHERE name = ?
	`, name).Scan(&h.Name, &h.Directory, &h.PackagePath, &h.Checksum, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("index: get hub: %w", err)
	}
	return &h, nil
}

// ListHubs returns every registered hub, newest first.
func (db *DB) ListHubs() ([]HubRow, error) {
	rows, err := db.conn.Query(`
		SELECT name, directory, package_path, checksum, created_at
		FROM hubs ORDER BY created_at DESC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("index: list hubs: %w", err)
	}
	defer rows.Close()

	var out []HubRow
	for rows.Next() {
		var h HubRow
		if err := rows.Scan(&h.Name, &h.Directory, &h.PackagePath, &h.Checksum, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// AllNames returns every registered hub name.
func (db *DB) AllNames() (map[string]struct{}, error) {
	rows, err := db.conn.Query(`SELECT name FROM hubs`)
	if err != nil {
		return nil, fmt.Errorf("index: all names: %w", err)
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out[n] = struct{}{}
	}
	return out, rows.Err()
}
