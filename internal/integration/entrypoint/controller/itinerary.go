// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/itinerary"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// ItineraryController handles the travel itinerary endpoint.
type ItineraryController struct {
	resolveUseCase   *auth.ResolveProfileUseCase
	itineraryUseCase *itinerary.GetItineraryUseCase
}

// NewItineraryController creates a new itinerary controller instance.
func NewItineraryController(
	resolveUseCase *auth.ResolveProfileUseCase,
	itineraryUseCase *itinerary.GetItineraryUseCase,
) *ItineraryController {
	return &ItineraryController{
		resolveUseCase:   resolveUseCase,
		itineraryUseCase: itineraryUseCase,
	}
}

// Itinerary handles GET /itinerary requests. The week query parameter
// selects a single trip week; omitted or zero returns all weeks.
func (c *ItineraryController) Itinerary(ctx *gin.Context) {
	resolved, ok := resolveActor(ctx, c.resolveUseCase)
	if !ok {
		return
	}

	week := 0
	if raw := ctx.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > entity.TripWeeks {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "week must be between 1 and " + strconv.Itoa(entity.TripWeeks),
				Code:  string(domainerror.ErrCodeMissingFields),
			})
			return
		}
		week = parsed
	}

	output, err := c.itineraryUseCase.Execute(ctx.Request.Context(), itinerary.GetItineraryInput{
		Actor: resolved.Effective,
		Week:  week,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItineraryResponse(output))
}
