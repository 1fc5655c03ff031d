// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/directory"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// DirectoryController handles the team directory endpoint.
type DirectoryController struct {
	resolveUseCase *auth.ResolveProfileUseCase
	listUseCase    *directory.ListDirectoryUseCase
}

// NewDirectoryController creates a new directory controller instance.
func NewDirectoryController(
	resolveUseCase *auth.ResolveProfileUseCase,
	listUseCase *directory.ListDirectoryUseCase,
) *DirectoryController {
	return &DirectoryController{
		resolveUseCase: resolveUseCase,
		listUseCase:    listUseCase,
	}
}

// Directory handles GET /directory requests.
func (c *DirectoryController) Directory(ctx *gin.Context) {
	resolved, ok := resolveActor(ctx, c.resolveUseCase)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), directory.ListDirectoryInput{
		Actor: resolved.Effective,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDirectoryResponse(output))
}
