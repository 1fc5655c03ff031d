package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// fakeStore serves a fixed roster; the other sheets are empty.
type fakeStore struct {
	employees []entity.Employee
	err       error
}

func (f *fakeStore) Employees(ctx context.Context) ([]entity.Employee, error) {
	return f.employees, f.err
}
func (f *fakeStore) Sales(ctx context.Context) ([]entity.SaleTransaction, error) { return nil, f.err }
func (f *fakeStore) Flights(ctx context.Context) ([]entity.Flight, error)        { return nil, f.err }
func (f *fakeStore) RentalCars(ctx context.Context) ([]entity.RentalCar, error)  { return nil, f.err }
func (f *fakeStore) Hotels(ctx context.Context) ([]entity.HotelStay, error)      { return nil, f.err }
func (f *fakeStore) Updates(ctx context.Context) ([]entity.Update, error)        { return nil, f.err }
func (f *fakeStore) Refresh(ctx context.Context) error                           { return f.err }

// fakeVerifier accepts only an exact match.
type fakeVerifier struct{}

func (fakeVerifier) Verify(stored, presented string) error {
	if stored != presented {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// fakeTokenService issues fixed tokens and records invalidations.
type fakeTokenService struct {
	invalidated []string
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, email, name string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access-" + email, RefreshToken: "refresh-" + email}, nil
}
func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated = append(f.invalidated, token)
	return nil
}
func (f *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return true, nil
}

func roster() []entity.Employee {
	return []entity.Employee{
		{Name: "Casey Lin", Email: "casey@phoenix.test", Password: "pw1", Role: "Rep", Team: "KYT1"},
		{Name: "Jordan Reed", Email: "jordan@phoenix.test", Password: "pw2", Role: "Team Lead KYT2", Team: "KYT2"},
		{Name: "Avery Cole", Email: "avery@phoenix.test", Password: "", Role: "Rep", Team: "KYT1"},
		{Name: "Sam Barnes", Email: "sam@phoenix.test", Password: "pw4", Role: "Owner", Team: ""},
	}
}

func TestLoginUser(t *testing.T) {
	uc := NewLoginUserUseCase(&fakeStore{employees: roster()}, fakeVerifier{}, &fakeTokenService{})

	t.Run("valid credentials", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), LoginUserInput{
			Email: "casey@phoenix.test", Password: "pw1",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected token pair")
		}
		if out.Profile.Tier != entity.TierRepresentative {
			t.Errorf("Tier = %q", out.Profile.Tier)
		}
	})

	t.Run("email matching is case-insensitive", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email: "CASEY@PHOENIX.TEST", Password: "pw1",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPw := uc.Execute(context.Background(), LoginUserInput{
			Email: "casey@phoenix.test", Password: "nope",
		})
		_, errUnknown := uc.Execute(context.Background(), LoginUserInput{
			Email: "ghost@phoenix.test", Password: "pw1",
		})

		for _, err := range []error{errWrongPw, errUnknown} {
			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("code = %s", authErr.Code)
			}
		}
		if errWrongPw.Error() != errUnknown.Error() {
			t.Error("error messages differ; roster emails can be enumerated")
		}
	})

	t.Run("roster row without password cannot log in", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email: "avery@phoenix.test", Password: "",
		})
		if err == nil {
			t.Fatal("expected rejection for credential-less roster row")
		}
	})

	t.Run("sheet failure is not a credential rejection", func(t *testing.T) {
		broken := NewLoginUserUseCase(&fakeStore{err: errors.New("unreachable")}, fakeVerifier{}, &fakeTokenService{})
		_, err := broken.Execute(context.Background(), LoginUserInput{
			Email: "casey@phoenix.test", Password: "pw1",
		})
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			t.Errorf("transport failure misreported as auth error: %v", err)
		}
	})
}
