// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/phoenix-field/backend/internal/application/usecase/directory"
)

// DirectoryEntryResponse represents one roster entry in API responses.
type DirectoryEntryResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Team  string `json:"team"`
	Tier  string `json:"tier"`
}

// DirectoryResponse represents the response for the directory endpoint.
type DirectoryResponse struct {
	Entries []DirectoryEntryResponse `json:"entries"`
}

// ToDirectoryResponse converts a ListDirectoryOutput to a DirectoryResponse DTO.
func ToDirectoryResponse(output *directory.ListDirectoryOutput) DirectoryResponse {
	resp := DirectoryResponse{Entries: make([]DirectoryEntryResponse, len(output.Entries))}
	for i, entry := range output.Entries {
		resp.Entries[i] = DirectoryEntryResponse{
			Name:  entry.Name,
			Email: entry.Email,
			Role:  entry.Role,
			Team:  entry.Team,
			Tier:  string(entry.Tier),
		}
	}
	return resp
}
