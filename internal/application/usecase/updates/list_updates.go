// Package updates contains the announcement listing use case.
package updates

import (
	"context"
	"time"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// ListUpdatesInput represents the input for listing announcements.
type ListUpdatesInput struct {
	// Actor is the effective viewer (after any view-as resolution).
	Actor entity.ActorProfile
}

// ListUpdatesOutput represents the announcements visible to the actor.
type ListUpdatesOutput struct {
	Updates []entity.Update
}

// ListUpdatesUseCase returns the announcements addressed to an actor and
// active at the time of the call. Sheet order is preserved.
type ListUpdatesUseCase struct {
	store adapter.SheetStore
	now   func() time.Time
}

// NewListUpdatesUseCase creates a new ListUpdatesUseCase instance.
func NewListUpdatesUseCase(store adapter.SheetStore) *ListUpdatesUseCase {
	return &ListUpdatesUseCase{store: store, now: time.Now}
}

// Execute lists the visible, active announcements.
func (uc *ListUpdatesUseCase) Execute(ctx context.Context, input ListUpdatesInput) (*ListUpdatesOutput, error) {
	all, err := uc.store.Updates(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	visible := make([]entity.Update, 0, len(all))
	for _, u := range all {
		if u.VisibleTo(input.Actor) && u.ActiveAt(now) {
			visible = append(visible, u)
		}
	}

	return &ListUpdatesOutput{Updates: visible}, nil
}
