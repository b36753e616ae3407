// Package creator implements the workspace scaffolding creators: a hub
// creator that materializes and packages a full hub directory tree, and a
// closed set of note creators that declare the per-note sub-resources
// (body, header, attachments, links) an orchestrator populates.
package creator

// Creator is the common contract for all scaffolding creators. Given an
// entity identifier it reports its stable name, the primary path it is
// responsible for, and the relative directories that must exist before its
// files can be written.
//
// Note identifiers are treated as opaque keys; callers resolve and
// sanitize them upstream.
type Creator interface {
	// Name returns a stable identifier used in diagnostics and manifests.
	Name() string
	// TargetPath returns the primary file or directory this creator owns
	// for the given note identifier.
	TargetPath(noteID string) string
	// RequiredPaths returns the ordered relative directories this creator
	// needs to exist before its target file(s) can be written.
	RequiredPaths() []string
}

// HubCreator extends Creator with the operation that materializes a full
// hub: directory scaffold, manifest, and single-file package artifact.
type HubCreator interface {
	Creator
	// CreateHub scaffolds and packages a hub for the given human-readable
	// name and returns the absolute package artifact path.
	CreateHub(hubName string) (string, error)
}
