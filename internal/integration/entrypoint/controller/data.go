// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// DataController handles the manual snapshot refresh endpoint.
type DataController struct {
	resolveUseCase *auth.ResolveProfileUseCase
	store          adapter.SheetStore
}

// NewDataController creates a new data controller instance.
func NewDataController(resolveUseCase *auth.ResolveProfileUseCase, store adapter.SheetStore) *DataController {
	return &DataController{
		resolveUseCase: resolveUseCase,
		store:          store,
	}
}

// Refresh handles POST /refresh-data requests. A fetch superseded by a
// newer one still leaves fresh data in place, so it reports success.
func (c *DataController) Refresh(ctx *gin.Context) {
	if _, ok := resolveActor(ctx, c.resolveUseCase); !ok {
		return
	}

	if err := c.store.Refresh(ctx.Request.Context()); err != nil {
		if errors.Is(err, domainerror.ErrStaleFetch) {
			ctx.JSON(http.StatusOK, dto.MessageResponse{
				Message: "Data already refreshed by a newer fetch",
			})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Data refreshed",
	})
}
