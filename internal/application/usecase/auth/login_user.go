// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      entity.ActorProfile
}

// LoginUserUseCase validates credentials against the roster sheet and
// issues a token pair. The Logins sheet is the credential authority.
type LoginUserUseCase struct {
	store        adapter.SheetStore
	verifier     adapter.CredentialVerifier
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	store adapter.SheetStore,
	verifier adapter.CredentialVerifier,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		store:        store,
		verifier:     verifier,
		tokenService: tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	employees, err := uc.store.Employees(ctx)
	if err != nil {
		// Transport failure, not a rejection: surfaced as-is so the
		// client can distinguish "sheet unreachable" from "bad password".
		return nil, err
	}

	var match *entity.Employee
	for i := range employees {
		if employees[i].SameEmail(input.Email) && employees[i].Password != "" {
			match = &employees[i]
			break
		}
	}

	// A generic error either way, to prevent roster email enumeration.
	if match == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	if err := uc.verifier.Verify(match.Password, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, match.Email, match.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Profile:      entity.NewActorProfile(*match),
	}, nil
}
