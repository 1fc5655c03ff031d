package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

func TestResolveProfile(t *testing.T) {
	uc := NewResolveProfileUseCase(&fakeStore{employees: roster()})

	t.Run("own identity", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "casey@phoenix.test",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Effective.Email != out.Authenticated.Email {
			t.Error("effective should default to the authenticated identity")
		}
	})

	t.Run("email removed from roster is denied", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "former@phoenix.test",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeAccessDenied {
			t.Fatalf("expected access denied, got %v", err)
		}
	})

	t.Run("executive may view as anyone", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "sam@phoenix.test",
			ViewAsEmail:        "casey@phoenix.test",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Authenticated.Tier != entity.TierExecutive {
			t.Errorf("authenticated tier = %q", out.Authenticated.Tier)
		}
		if out.Effective.Email != "casey@phoenix.test" || out.Effective.Tier != entity.TierRepresentative {
			t.Errorf("effective = %+v", out.Effective)
		}
	})

	t.Run("team lead may view as another identity", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "jordan@phoenix.test",
			ViewAsEmail:        "casey@phoenix.test",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Effective.Email != "casey@phoenix.test" {
			t.Errorf("effective = %+v", out.Effective)
		}
	})

	t.Run("representative may not switch profiles", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "casey@phoenix.test",
			ViewAsEmail:        "jordan@phoenix.test",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeViewAsNotPermitted {
			t.Fatalf("expected view-as rejection, got %v", err)
		}
	})

	t.Run("view as self is a no-op for any tier", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "casey@phoenix.test",
			ViewAsEmail:        "Casey@Phoenix.test",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.Effective.Email != "casey@phoenix.test" {
			t.Errorf("effective = %+v", out.Effective)
		}
	})

	t.Run("unknown view-as target", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResolveProfileInput{
			AuthenticatedEmail: "sam@phoenix.test",
			ViewAsEmail:        "ghost@phoenix.test",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeViewAsUnknownTarget {
			t.Fatalf("expected unknown target rejection, got %v", err)
		}
	})
}
