// Package directory contains the team roster listing use case.
package directory

import (
	"context"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// DirectoryEntry is a roster row safe to expose: credentials are never
// carried past this boundary.
type DirectoryEntry struct {
	Name  string
	Email string
	Role  string
	Team  string
	Tier  entity.Tier
}

// ListDirectoryInput represents the input for listing the roster.
type ListDirectoryInput struct {
	// Actor is the effective viewer (after any view-as resolution).
	Actor entity.ActorProfile
}

// ListDirectoryOutput represents the tier-scoped roster.
type ListDirectoryOutput struct {
	Entries []DirectoryEntry
}

// ListDirectoryUseCase lists the employee roster scoped by tier: executives
// see everyone, everyone else sees their own team.
type ListDirectoryUseCase struct {
	store adapter.SheetStore
}

// NewListDirectoryUseCase creates a new ListDirectoryUseCase instance.
func NewListDirectoryUseCase(store adapter.SheetStore) *ListDirectoryUseCase {
	return &ListDirectoryUseCase{store: store}
}

// Execute lists the visible roster in sheet order.
func (uc *ListDirectoryUseCase) Execute(ctx context.Context, input ListDirectoryInput) (*ListDirectoryOutput, error) {
	employees, err := uc.store.Employees(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(employees))
	for _, emp := range employees {
		if !input.Actor.Tier.CanSeeAllTeams() && emp.Team != input.Actor.Team {
			continue
		}
		entries = append(entries, DirectoryEntry{
			Name:  emp.Name,
			Email: emp.Email,
			Role:  emp.Role,
			Team:  emp.Team,
			Tier:  entity.ClassifyRole(emp.Role),
		})
	}

	return &ListDirectoryOutput{Entries: entries}, nil
}
