package creator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/whatson-app/whatson/internal/apperr"
	"github.com/whatson-app/whatson/internal/archive"
	"github.com/whatson-app/whatson/internal/models"
	"github.com/whatson-app/whatson/internal/pathutil"
)

const (
	// DefaultHubsRoot is the workspace subdirectory that holds hubs.
	DefaultHubsRoot = "hubs"
	// PackageExtension is the suffix of the single-file hub artifact.
	PackageExtension = ".wshub"
	// ManifestFileName is the manifest file written inside .whatson.
	ManifestFileName = "hub.json"
	// MetaDirName is the hidden hub metadata directory.
	MetaDirName = ".whatson"

	manifestFormat  = "wshub"
	manifestVersion = 1
	fallbackHubName = "untitled-hub"
)

// hubRequiredPaths are the directories every hub root must contain, in
// creation order.
var hubRequiredPaths = []string{
	MetaDirName,
	"notes",
	"notes/drafts",
	"attachments",
	"assets",
	"indexes",
}

// Verify the interface is satisfied at compile time.
var _ HubCreator = (*WorkspaceHubCreator)(nil)

// WorkspaceHubCreator creates hubs under <workspaceRoot>/<hubsRoot>. The
// workspace root is externally owned and never created here.
type WorkspaceHubCreator struct {
	workspaceRoot string
	hubsRoot      string
	archiver      archive.Archiver
}

// NewWorkspaceHubCreator returns a hub creator rooted at workspaceRoot
// using the default hubs subdirectory and the platform archiver.
func NewWorkspaceHubCreator(workspaceRoot string) *WorkspaceHubCreator {
	return &WorkspaceHubCreator{
		workspaceRoot: workspaceRoot,
		hubsRoot:      DefaultHubsRoot,
		archiver:      archive.NewCommandArchiver(),
	}
}

// WithHubsRoot overrides the hubs subdirectory name.
func (c *WorkspaceHubCreator) WithHubsRoot(hubsRoot string) *WorkspaceHubCreator {
	c.hubsRoot = hubsRoot
	return c
}

// WithArchiver overrides the packaging backend.
func (c *WorkspaceHubCreator) WithArchiver(a archive.Archiver) *WorkspaceHubCreator {
	c.archiver = a
	return c
}

// WorkspaceRoot returns the workspace root path this creator operates on.
func (c *WorkspaceHubCreator) WorkspaceRoot() string {
	return c.workspaceRoot
}

// Name implements Creator.
func (c *WorkspaceHubCreator) Name() string {
	return "workspace-hub-creator"
}

// TargetPath implements Creator. For the hub creator the target is the
// hub directory derived from the (already sanitized) identifier.
func (c *WorkspaceHubCreator) TargetPath(hubID string) string {
	return pathutil.Join(pathutil.Join(c.workspaceRoot, c.hubsRoot), hubID)
}

// RequiredPaths implements Creator. Paths are relative to the hub root.
func (c *WorkspaceHubCreator) RequiredPaths() []string {
	out := make([]string, len(hubRequiredPaths))
	copy(out, hubRequiredPaths)
	return out
}

// HubDirectoryPath returns the directory a hub with the given
// human-readable name would occupy.
func (c *WorkspaceHubCreator) HubDirectoryPath(hubName string) string {
	return c.TargetPath(pathutil.Sanitize(hubName, fallbackHubName))
}

// CreateHub materializes a hub: it sanitizes hubName into a directory
// name, scaffolds the required tree, writes the manifest, and packages the
// result into <hubRoot>.wshub. It returns the package path on success.
//
// Every step runs sequentially and the first failure aborts the whole
// operation. Directories already created by a failed run are left in
// place for inspection; there is no rollback and no retry. The
// exists-then-create duplicate check is not atomic across processes, so
// two racing callers for the same name can both pass the check; one of
// them will then fail in EnsureDir or scaffolding.
func (c *WorkspaceHubCreator) CreateHub(hubName string) (string, error) {
	if strings.TrimSpace(c.workspaceRoot) == "" {
		return "", fmt.Errorf("creator: workspace root must not be empty")
	}

	hubsRootAbs := pathutil.Join(c.workspaceRoot, c.hubsRoot)
	if err := pathutil.EnsureDir(hubsRootAbs); err != nil {
		return "", err
	}

	hubRoot := c.HubDirectoryPath(hubName)
	if _, err := os.Stat(hubRoot); err == nil {
		return "", fmt.Errorf("creator: hub %s: %w", hubRoot, apperr.ErrAlreadyExists)
	}
	if err := pathutil.EnsureDir(hubRoot); err != nil {
		return "", err
	}

	if err := c.createScaffold(hubRoot); err != nil {
		return "", err
	}

	packagePath := hubRoot + PackageExtension
	if err := c.archiver.Package(hubRoot, packagePath); err != nil {
		return "", err
	}

	return packagePath, nil
}

// createScaffold ensures every required directory exists under hubRoot and
// writes the manifest. The first directory failure aborts; partial
// scaffolding stays on disk.
func (c *WorkspaceHubCreator) createScaffold(hubRoot string) error {
	for _, rel := range hubRequiredPaths {
		if err := pathutil.EnsureDir(pathutil.Join(hubRoot, rel)); err != nil {
			return err
		}
	}

	manifest := models.Manifest{
		Format:       manifestFormat,
		Version:      manifestVersion,
		Creator:      c.Name(),
		Storage:      "filesystem",
		NotesRoot:    DefaultNotesRoot,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
		HubDirectory: filepath.Base(hubRoot),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("creator: encode manifest: %w", err)
	}
	data = append(data, '\n')

	manifestPath := pathutil.Join(pathutil.Join(hubRoot, MetaDirName), ManifestFileName)
	return pathutil.WriteTextFile(manifestPath, data)
}
