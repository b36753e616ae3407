// Package models defines the domain types for WhatsOn.
package models

import "time"

// Manifest describes a hub's format, version, and provenance. It is
// written once at hub-creation time under .whatson/hub.json and never
// mutated afterwards.
type Manifest struct {
	Format       string `json:"format"`
	Version      int    `json:"version"`
	Creator      string `json:"creator"`
	Storage      string `json:"storage"`
	NotesRoot    string `json:"notesRoot"`
	CreatedAtUTC string `json:"createdAtUtc"`
	HubDirectory string `json:"hubDirectory"`
}

// Hub is the registry view of one created hub.
type Hub struct {
	Name        string    `json:"name"`
	Directory   string    `json:"directory"`
	PackagePath string    `json:"package_path"`
	Checksum    string    `json:"checksum"`
	CreatedAt   time.Time `json:"created_at"`
}

// NoteScaffold is the declarative contract of one note sub-resource
// creator: its name, the primary path it owns for a note, and the
// directories that must exist before it can write.
type NoteScaffold struct {
	Creator       string   `json:"creator"`
	TargetPath    string   `json:"target_path"`
	RequiredPaths []string `json:"required_paths"`
}
