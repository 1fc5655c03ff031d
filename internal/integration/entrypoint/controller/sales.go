// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/sales"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// SalesController handles the sales dashboard endpoints.
type SalesController struct {
	resolveUseCase   *auth.ResolveProfileUseCase
	dashboardUseCase *sales.GetDashboardUseCase
	monthsUseCase    *sales.ListMonthsUseCase
}

// NewSalesController creates a new sales controller instance.
func NewSalesController(
	resolveUseCase *auth.ResolveProfileUseCase,
	dashboardUseCase *sales.GetDashboardUseCase,
	monthsUseCase *sales.ListMonthsUseCase,
) *SalesController {
	return &SalesController{
		resolveUseCase:   resolveUseCase,
		dashboardUseCase: dashboardUseCase,
		monthsUseCase:    monthsUseCase,
	}
}

// Dashboard handles GET /sales/dashboard requests. The month query
// parameter selects the report window; view_as selects the effective actor.
func (c *SalesController) Dashboard(ctx *gin.Context) {
	resolved, ok := resolveActor(ctx, c.resolveUseCase)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), sales.GetDashboardInput{
		Actor:  resolved.Effective,
		Window: ctx.Query("month"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Months handles GET /sales/months requests.
func (c *SalesController) Months(ctx *gin.Context) {
	if _, ok := resolveActor(ctx, c.resolveUseCase); !ok {
		return
	}

	output, err := c.monthsUseCase.Execute(ctx.Request.Context(), sales.ListMonthsInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthsResponse{
		Months:        output.Months,
		DefaultWindow: output.DefaultWindow,
	})
}
