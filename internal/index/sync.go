package index

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/whatson-app/whatson/internal/checksum"
	"github.com/whatson-app/whatson/internal/creator"
	"github.com/whatson-app/whatson/internal/models"
)

// Reconcile scans the hubs root and brings the registry up to date:
//   - directories carrying a .whatson/hub.json manifest are upserted
//   - registrations whose directories are gone are removed
//
// It returns the names that were added and removed so callers can publish
// change events. A missing hubs root is treated as an empty workspace.
func Reconcile(db HubIndex, hubsRoot string, logger *slog.Logger) (added, removed []string, err error) {
	known, err := db.AllNames()
	if err != nil {
		return nil, nil, err
	}

	onDisk := make(map[string]struct{})
	entries, err := os.ReadDir(hubsRoot)
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, err
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(hubsRoot, e.Name())
		manifest, ok := readManifest(dir)
		if !ok {
			continue
		}

		name := manifest.HubDirectory
		if name == "" {
			name = e.Name()
		}
		onDisk[name] = struct{}{}

		row := HubRow{Name: name, Directory: dir}
		if pkg := dir + creator.PackageExtension; fileExists(pkg) {
			row.PackagePath = pkg
			if cs, csErr := checksum.SumFile(pkg); csErr == nil {
				row.Checksum = cs
			}
		}
		if ts, parseErr := parseManifestTime(manifest); parseErr == nil {
			row.CreatedAt = ts
		}

		if upErr := db.UpsertHub(row); upErr != nil {
			logger.Warn("reconcile: upsert failed", slog.String("hub", name), slog.String("error", upErr.Error()))
			continue
		}
		if _, existed := known[name]; !existed {
			added = append(added, name)
			logger.Debug("reconcile: registered", slog.String("hub", name))
		}
	}

	// Remove stale registrations.
	for name := range known {
		if _, ok := onDisk[name]; !ok {
			if delErr := db.DeleteHub(name); delErr != nil {
				logger.Warn("reconcile: delete failed", slog.String("hub", name), slog.String("error", delErr.Error()))
				continue
			}
			removed = append(removed, name)
			logger.Debug("reconcile: removed stale", slog.String("hub", name))
		}
	}

	return added, removed, nil
}

func parseManifestTime(m models.Manifest) (time.Time, error) {
	return time.Parse(time.RFC3339, m.CreatedAtUTC)
}

func readManifest(hubDir string) (models.Manifest, bool) {
	data, err := os.ReadFile(filepath.Join(hubDir, creator.MetaDirName, creator.ManifestFileName))
	if err != nil {
		return models.Manifest{}, false
	}
	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return models.Manifest{}, false
	}
	return m, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
