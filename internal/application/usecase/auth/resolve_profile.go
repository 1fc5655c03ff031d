// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// ResolveProfileInput represents the input for profile resolution.
type ResolveProfileInput struct {
	// AuthenticatedEmail is the principal from the access token.
	AuthenticatedEmail string
	// ViewAsEmail optionally selects another identity to view the app as.
	// Honored only for tiers allowed to switch profiles.
	ViewAsEmail string
}

// ResolveProfileOutput carries both identities. Visibility decisions read
// Effective; Authenticated is kept for auditing and the profile endpoint.
type ResolveProfileOutput struct {
	Authenticated entity.ActorProfile
	Effective     entity.ActorProfile
}

// ResolveProfileUseCase resolves a token principal against the roster and
// applies an optional view-as selection. The roster is the authority for
// identity and role: an authenticated email that is no longer on the sheet
// is an access-denied state, distinct from a failed login.
type ResolveProfileUseCase struct {
	store adapter.SheetStore
}

// NewResolveProfileUseCase creates a new ResolveProfileUseCase instance.
func NewResolveProfileUseCase(store adapter.SheetStore) *ResolveProfileUseCase {
	return &ResolveProfileUseCase{store: store}
}

// Execute resolves the authenticated and effective actor profiles.
func (uc *ResolveProfileUseCase) Execute(ctx context.Context, input ResolveProfileInput) (*ResolveProfileOutput, error) {
	employees, err := uc.store.Employees(ctx)
	if err != nil {
		return nil, err
	}

	authEmp, ok := findEmployee(employees, input.AuthenticatedEmail)
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccessDenied,
			"account is not in the employee roster",
			domainerror.ErrAccessDenied,
		)
	}
	authenticated := entity.NewActorProfile(authEmp)
	effective := authenticated

	if input.ViewAsEmail != "" && !authenticated.SameIdentity(input.ViewAsEmail) {
		if !authenticated.Tier.CanSwitchProfiles() {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeViewAsNotPermitted,
				"profile switching is not permitted for this role",
				domainerror.ErrViewAsNotPermitted,
			)
		}
		targetEmp, ok := findEmployee(employees, input.ViewAsEmail)
		if !ok {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeViewAsUnknownTarget,
				"view-as target is not in the employee roster",
				domainerror.ErrAccessDenied,
			)
		}
		effective = entity.NewActorProfile(targetEmp)
	}

	return &ResolveProfileOutput{
		Authenticated: authenticated,
		Effective:     effective,
	}, nil
}

func findEmployee(employees []entity.Employee, email string) (entity.Employee, bool) {
	for _, emp := range employees {
		if emp.SameEmail(email) {
			return emp, true
		}
	}
	return entity.Employee{}, false
}
