package creator

import "github.com/whatson-app/whatson/internal/pathutil"

// DefaultNotesRoot is the workspace subdirectory that holds notes.
const DefaultNotesRoot = "notes"

var (
	_ Creator = (*NoteBodyCreator)(nil)
	_ Creator = (*NoteHeaderCreator)(nil)
	_ Creator = (*NoteAttachManagerCreator)(nil)
	_ Creator = (*NoteLinkManagerCreator)(nil)
)

// noteCreator carries the workspace/notes-root convention shared by every
// note sub-resource creator. None of the variants owns the per-note
// directory itself; they write disjoint files under it and are composed by
// an orchestrator to fully populate one note.
type noteCreator struct {
	workspaceRoot string
	notesRoot     string
}

func newNoteCreator(workspaceRoot, notesRoot string) noteCreator {
	if notesRoot == "" {
		notesRoot = DefaultNotesRoot
	}
	return noteCreator{workspaceRoot: workspaceRoot, notesRoot: notesRoot}
}

// noteDir returns the shared per-note directory for a note identifier.
// The identifier is trusted as an opaque key.
func (n noteCreator) noteDir(noteID string) string {
	return pathutil.Join(pathutil.Join(n.workspaceRoot, n.notesRoot), noteID)
}

// NoteBodyCreator declares the body and draft-body files of a note.
type NoteBodyCreator struct {
	noteCreator
}

// NewNoteBodyCreator returns a body creator; notesRoot defaults to "notes".
func NewNoteBodyCreator(workspaceRoot, notesRoot string) *NoteBodyCreator {
	return &NoteBodyCreator{newNoteCreator(workspaceRoot, notesRoot)}
}

func (c *NoteBodyCreator) Name() string { return "note-body-creator" }

func (c *NoteBodyCreator) TargetPath(noteID string) string {
	return pathutil.Join(c.noteDir(noteID), c.BodyFileName())
}

func (c *NoteBodyCreator) RequiredPaths() []string {
	return []string{c.notesRoot, pathutil.Join(c.notesRoot, "drafts")}
}

func (c *NoteBodyCreator) BodyFileName() string { return "body.md" }

func (c *NoteBodyCreator) DraftBodyFileName() string { return "body.draft.md" }

// NoteHeaderCreator declares the header/metadata file of a note.
type NoteHeaderCreator struct {
	noteCreator
}

// NewNoteHeaderCreator returns a header creator; notesRoot defaults to "notes".
func NewNoteHeaderCreator(workspaceRoot, notesRoot string) *NoteHeaderCreator {
	return &NoteHeaderCreator{newNoteCreator(workspaceRoot, notesRoot)}
}

func (c *NoteHeaderCreator) Name() string { return "note-header-creator" }

func (c *NoteHeaderCreator) TargetPath(noteID string) string {
	return pathutil.Join(pathutil.Join(c.noteDir(noteID), c.MetadataDirectoryName()), c.HeaderFileName())
}

func (c *NoteHeaderCreator) RequiredPaths() []string {
	return []string{c.notesRoot}
}

func (c *NoteHeaderCreator) HeaderFileName() string { return "header.json" }

func (c *NoteHeaderCreator) MetadataDirectoryName() string { return "meta" }

// NoteAttachManagerCreator declares the attachment subdirectory and its
// manifest for a note.
type NoteAttachManagerCreator struct {
	noteCreator
}

// NewNoteAttachManagerCreator returns an attachments creator; notesRoot
// defaults to "notes".
func NewNoteAttachManagerCreator(workspaceRoot, notesRoot string) *NoteAttachManagerCreator {
	return &NoteAttachManagerCreator{newNoteCreator(workspaceRoot, notesRoot)}
}

func (c *NoteAttachManagerCreator) Name() string { return "note-attachments-creator" }

func (c *NoteAttachManagerCreator) TargetPath(noteID string) string {
	return pathutil.Join(c.noteDir(noteID), c.AttachmentDirectoryName())
}

func (c *NoteAttachManagerCreator) RequiredPaths() []string {
	return []string{c.notesRoot, "attachments"}
}

func (c *NoteAttachManagerCreator) AttachmentDirectoryName() string { return "attachments" }

func (c *NoteAttachManagerCreator) AttachmentManifestFileName() string { return "attachments.json" }

// NoteLinkManagerCreator declares the links and backlinks files of a note.
type NoteLinkManagerCreator struct {
	noteCreator
}

// NewNoteLinkManagerCreator returns a links creator; notesRoot defaults to
// "notes".
func NewNoteLinkManagerCreator(workspaceRoot, notesRoot string) *NoteLinkManagerCreator {
	return &NoteLinkManagerCreator{newNoteCreator(workspaceRoot, notesRoot)}
}

func (c *NoteLinkManagerCreator) Name() string { return "note-links-creator" }

func (c *NoteLinkManagerCreator) TargetPath(noteID string) string {
	return pathutil.Join(c.noteDir(noteID), c.LinksFileName())
}

func (c *NoteLinkManagerCreator) RequiredPaths() []string {
	return []string{c.notesRoot, "indexes"}
}

func (c *NoteLinkManagerCreator) LinksFileName() string { return "links.json" }

func (c *NoteLinkManagerCreator) BacklinksFileName() string { return "backlinks.json" }

// NoteCreators returns every note sub-resource creator for the given
// workspace, in a stable order.
func NoteCreators(workspaceRoot, notesRoot string) []Creator {
	return []Creator{
		NewNoteBodyCreator(workspaceRoot, notesRoot),
		NewNoteHeaderCreator(workspaceRoot, notesRoot),
		NewNoteAttachManagerCreator(workspaceRoot, notesRoot),
		NewNoteLinkManagerCreator(workspaceRoot, notesRoot),
	}
}
