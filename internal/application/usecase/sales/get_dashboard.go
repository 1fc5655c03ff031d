package sales

import (
	"context"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// GetDashboardInput represents the input for the sales dashboard.
type GetDashboardInput struct {
	// Actor is the effective viewer (after any view-as resolution).
	Actor entity.ActorProfile
	// Window is a month label or the all-sales sentinel. Empty selects
	// the default window for the current data.
	Window string
}

// GetDashboardOutput represents the role-scoped dashboard.
type GetDashboardOutput struct {
	Window          string
	AvailableMonths []string
	View            DashboardView
}

// GetDashboardUseCase builds the sales dashboard for one effective actor:
// window resolution, aggregation, then tier projection. All derived state
// is recomputed from the current snapshot on every call.
type GetDashboardUseCase struct {
	store adapter.SheetStore
	topN  int
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
// topN sizes the executive global ranking.
func NewGetDashboardUseCase(store adapter.SheetStore, topN int) *GetDashboardUseCase {
	return &GetDashboardUseCase{store: store, topN: topN}
}

// Execute builds the dashboard. An empty transaction set produces empty
// summaries and a "no data" view, never an error.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	transactions, err := uc.store.Sales(ctx)
	if err != nil {
		return nil, err
	}

	months := AvailableMonths(transactions)
	window := input.Window
	if window == "" {
		window = DefaultWindow(months)
	}

	reps, teams := Aggregate(transactions, window)
	view := Visible(input.Actor, reps, teams, uc.topN)

	return &GetDashboardOutput{
		Window:          window,
		AvailableMonths: months,
		View:            view,
	}, nil
}

// ListMonthsInput represents the input for listing report months.
type ListMonthsInput struct{}

// ListMonthsOutput represents the available report months.
type ListMonthsOutput struct {
	Months        []string
	DefaultWindow string
}

// ListMonthsUseCase exposes the month navigation data: the distinct months
// present in the sales data and the default selection.
type ListMonthsUseCase struct {
	store adapter.SheetStore
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(store adapter.SheetStore) *ListMonthsUseCase {
	return &ListMonthsUseCase{store: store}
}

// Execute lists the available months.
func (uc *ListMonthsUseCase) Execute(ctx context.Context, _ ListMonthsInput) (*ListMonthsOutput, error) {
	transactions, err := uc.store.Sales(ctx)
	if err != nil {
		return nil, err
	}
	months := AvailableMonths(transactions)
	return &ListMonthsOutput{
		Months:        months,
		DefaultWindow: DefaultWindow(months),
	}, nil
}
