package api

import (
	"github.com/whatson-app/whatson/internal/hubservice"
	"github.com/whatson-app/whatson/internal/models"
)

// CreateHubRequest is the request body for creating a hub.
type CreateHubRequest struct {
	Name string `json:"name"`
}

// Hub is the hub response type (aliased from the domain layer).
type Hub = models.Hub

// HubDetail is the single-hub response type (aliased from the service layer).
type HubDetail = hubservice.HubDetail

// HubListResponse wraps hub listings.
type HubListResponse struct {
	Hubs []Hub `json:"hubs"`
}

// CreateHubResponse is returned after a successful hub creation.
type CreateHubResponse struct {
	Hub         Hub    `json:"hub"`
	PackagePath string `json:"package_path"`
}

// NoteScaffoldResponse wraps the note sub-resource creator contracts.
type NoteScaffoldResponse struct {
	NoteID    string                `json:"note_id"`
	Scaffolds []models.NoteScaffold `json:"scaffolds"`
}
