package mcpserver

// HubFormatContract is the canonical description of the wshub on-disk
// format, exposed to MCP clients as a tool and a resource.
const HubFormatContract = `# WhatsOn Hub Format (wshub)

A hub is a packaged collection of notes and assets inside a workspace.

## Directory layout

Every hub directory under <workspace>/hubs/<hub-name>/ contains:

- .whatson/        hidden metadata directory
- notes/           note content
- notes/drafts/    draft note bodies
- attachments/     binary attachments
- assets/          brand/creative assets
- indexes/         derived index data

## Manifest

.whatson/hub.json is written once at creation time and never mutated:

` + "```json" + `
{
  "format": "wshub",
  "version": 1,
  "creator": "workspace-hub-creator",
  "storage": "filesystem",
  "notesRoot": "notes",
  "createdAtUtc": "2026-08-30T12:00:00Z",
  "hubDirectory": "my-brand-kit"
}
` + "```" + `

## Naming

Hub names are sanitized before use as directory names: lower-cased,
whitespace collapsed to hyphens, characters outside [a-z0-9._-] stripped.
A name with no usable characters becomes "untitled-hub".

## Package artifact

A successful creation also produces <hub-name>.wshub next to the hub
directory: a zip-compatible archive of the full hub tree.
`
