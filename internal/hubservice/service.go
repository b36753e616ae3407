// Package hubservice coordinates the scaffolding creators and the hub
// registry behind the HTTP and MCP surfaces.
package hubservice

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/whatson-app/whatson/internal/apperr"
	"github.com/whatson-app/whatson/internal/checksum"
	"github.com/whatson-app/whatson/internal/creator"
	"github.com/whatson-app/whatson/internal/index"
	"github.com/whatson-app/whatson/internal/models"
)

// HubDetail is the full representation of a hub: its registry row plus the
// manifest read back from disk.
type HubDetail struct {
	models.Hub
	Manifest *models.Manifest `json:"manifest,omitempty"`
}

// Service coordinates creators and the registry.
type Service struct {
	hubs  creator.HubCreator
	notes []creator.Creator
	db    index.HubIndex
}

// NewService creates a hub service around the given creators and registry.
func NewService(hubs creator.HubCreator, notes []creator.Creator, db index.HubIndex) *Service {
	return &Service{hubs: hubs, notes: notes, db: db}
}

// CreateHub scaffolds and packages a new hub, then registers it. The
// creator call is synchronous and blocks on the external packaging tool.
func (s *Service) CreateHub(_ context.Context, name string) (*models.Hub, error) {
	packagePath, err := s.hubs.CreateHub(name)
	if err != nil {
		return nil, err
	}

	dir := packagePath[:len(packagePath)-len(creator.PackageExtension)]
	row := index.HubRow{
		Name:        filepath.Base(dir),
		Directory:   dir,
		PackagePath: packagePath,
	}
	if cs, csErr := checksum.SumFile(packagePath); csErr == nil {
		row.Checksum = cs
	}
	if err := s.db.UpsertHub(row); err != nil {
		return nil, err
	}

	registered, err := s.db.GetHub(row.Name)
	if err != nil {
		return nil, err
	}
	return hubFromRow(registered), nil
}

// GetHub returns one hub with its manifest read back from disk. A hub
// whose manifest has gone missing is still returned from the registry,
// without manifest.
func (s *Service) GetHub(_ context.Context, name string) (*HubDetail, error) {
	row, err := s.db.GetHub(name)
	if err != nil {
		return nil, err
	}
	detail := &HubDetail{Hub: *hubFromRow(row)}
	if m, mErr := readManifest(row.Directory); mErr == nil {
		detail.Manifest = m
	}
	return detail, nil
}

// ListHubs returns every registered hub, newest first.
func (s *Service) ListHubs(_ context.Context) ([]models.Hub, error) {
	rows, err := s.db.ListHubs()
	if err != nil {
		return nil, err
	}
	out := make([]models.Hub, len(rows))
	for i, r := range rows {
		out[i] = *hubFromRow(&r)
	}
	return out, nil
}

// DeleteHub removes a hub's directory, its package artifact, and its
// registration.
func (s *Service) DeleteHub(_ context.Context, name string) error {
	row, err := s.db.GetHub(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(row.Directory); err != nil {
		return fmt.Errorf("hubservice: remove hub directory: %w", err)
	}
	if row.PackagePath != "" {
		if err := os.Remove(row.PackagePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("hubservice: remove package: %w", err)
		}
	}
	return s.db.DeleteHub(name)
}

// PackagePath returns the artifact path for a registered hub, verifying
// the file is still present.
func (s *Service) PackagePath(_ context.Context, name string) (string, error) {
	row, err := s.db.GetHub(name)
	if err != nil {
		return "", err
	}
	if row.PackagePath == "" {
		return "", apperr.ErrNotFound
	}
	if _, err := os.Stat(row.PackagePath); err != nil {
		return "", apperr.ErrNotFound
	}
	return row.PackagePath, nil
}

// NoteScaffolds returns the declarative contracts of every note
// sub-resource creator for the given note identifier.
func (s *Service) NoteScaffolds(_ context.Context, noteID string) []models.NoteScaffold {
	out := make([]models.NoteScaffold, len(s.notes))
	for i, c := range s.notes {
		out[i] = models.NoteScaffold{
			Creator:       c.Name(),
			TargetPath:    c.TargetPath(noteID),
			RequiredPaths: c.RequiredPaths(),
		}
	}
	return out
}

func hubFromRow(r *index.HubRow) *models.Hub {
	return &models.Hub{
		Name:        r.Name,
		Directory:   r.Directory,
		PackagePath: r.PackagePath,
		Checksum:    r.Checksum,
		CreatedAt:   r.CreatedAt,
	}
}

func readManifest(dir string) (*models.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, creator.MetaDirName, creator.ManifestFileName))
	if err != nil {
		return nil, err
	}
	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
