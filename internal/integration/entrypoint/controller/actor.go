// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/middleware"
)

// resolveActor resolves the effective actor for a protected request: the
// token principal checked against the roster, plus the optional view_as
// query parameter. On failure it writes the error response and returns
// ok=false.
func resolveActor(ctx *gin.Context, resolveUseCase *auth.ResolveProfileUseCase) (*auth.ResolveProfileOutput, bool) {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return nil, false
	}

	output, err := resolveUseCase.Execute(ctx.Request.Context(), auth.ResolveProfileInput{
		AuthenticatedEmail: email,
		ViewAsEmail:        ctx.Query("view_as"),
	})
	if err != nil {
		respondError(ctx, err)
		return nil, false
	}

	return output, true
}
