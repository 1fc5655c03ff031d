// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// UpdateResponse represents one announcement in API responses.
type UpdateResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Target    string `json:"target"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// UpdatesResponse represents the response for the updates endpoint.
type UpdatesResponse struct {
	Updates []UpdateResponse `json:"updates"`
}

// ToUpdatesResponse converts domain updates to an UpdatesResponse DTO.
func ToUpdatesResponse(updates []entity.Update) UpdatesResponse {
	resp := UpdatesResponse{Updates: make([]UpdateResponse, len(updates))}
	for i, u := range updates {
		resp.Updates[i] = UpdateResponse{
			ID:        u.ID,
			Message:   u.Message,
			Target:    u.Target,
			StartDate: formatDate(u.StartDate),
			EndDate:   formatDate(u.EndDate),
		}
	}
	return resp
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
