// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/updates"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// UpdatesController handles the announcements endpoint.
type UpdatesController struct {
	resolveUseCase *auth.ResolveProfileUseCase
	listUseCase    *updates.ListUpdatesUseCase
}

// NewUpdatesController creates a new updates controller instance.
func NewUpdatesController(
	resolveUseCase *auth.ResolveProfileUseCase,
	listUseCase *updates.ListUpdatesUseCase,
) *UpdatesController {
	return &UpdatesController{
		resolveUseCase: resolveUseCase,
		listUseCase:    listUseCase,
	}
}

// Updates handles GET /updates requests.
func (c *UpdatesController) Updates(ctx *gin.Context) {
	resolved, ok := resolveActor(ctx, c.resolveUseCase)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), updates.ListUpdatesInput{
		Actor: resolved.Effective,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpdatesResponse(output.Updates))
}
