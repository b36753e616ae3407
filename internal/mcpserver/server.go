// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes WhatsOn hub tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/whatson-app/whatson/internal/apperr"
	"github.com/whatson-app/whatson/internal/hubservice"
)

// Server wraps the MCP server with WhatsOn tools.
type Server struct {
	mcp *server.MCPServer
	svc *hubservice.Service
}

// New creates a new MCP server with all WhatsOn tools registered.
func New(svc *hubservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"WhatsOn",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("create_hub",
		mcp.WithDescription("Create a new hub in the workspace: scaffolds the directory tree, "+
			"writes the manifest, and packages the result into a .wshub artifact. "+
			"The name is sanitized into a directory name; creating an existing hub fails."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Human-readable hub name (e.g. \"My Brand Kit\")")),
	), s.createHub)

	s.mcp.AddTool(mcp.NewTool("list_hubs",
		mcp.WithDescription("List every hub registered in the workspace."),
	), s.listHubs)

	s.mcp.AddTool(mcp.NewTool("read_hub_manifest",
		mcp.WithDescription("Read the .whatson/hub.json manifest of a hub."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Sanitized hub name (directory name)")),
	), s.readHubManifest)

	s.mcp.AddTool(mcp.NewTool("note_scaffold",
		mcp.WithDescription("Return the declarative scaffolding contracts (creator name, target "+
			"path, required directories) for one note identifier."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Opaque note identifier")),
	), s.noteScaffold)

	// Resource: hub format contract.
	s.mcp.AddResource(
		mcp.NewResource("whatson://hub-format", "Hub Format Contract",
			mcp.WithResourceDescription("Canonical wshub directory layout and manifest format."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readHubFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) createHub(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	hub, err := s.svc.CreateHub(ctx, name)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return mcp.NewToolResultError(fmt.Sprintf("hub already exists: %s", name)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(hub, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listHubs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hubs, err := s.svc.ListHubs(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(hubs) == 0 {
		return mcp.NewToolResultText("no hubs in workspace"), nil
	}
	var lines []string
	for _, h := range hubs {
		lines = append(lines, fmt.Sprintf("%s\t%s", h.Name, h.PackagePath))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) readHubManifest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.GetHub(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	if detail.Manifest == nil {
		return mcp.NewToolResultError(fmt.Sprintf("hub %s has no readable manifest", name)), nil
	}
	out, _ := json.MarshalIndent(detail.Manifest, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) noteScaffold(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(s.svc.NoteScaffolds(ctx, id), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readHubFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "whatson://hub-format",
			MIMEType: "text/markdown",
			Text:     HubFormatContract,
		},
	}, nil
}
