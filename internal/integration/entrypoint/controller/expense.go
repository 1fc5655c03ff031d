// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/phoenix-field/backend/internal/application/usecase/auth"
	"github.com/phoenix-field/backend/internal/application/usecase/expense"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles the expense submission endpoint.
type ExpenseController struct {
	resolveUseCase *auth.ResolveProfileUseCase
	submitUseCase  *expense.SubmitExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	resolveUseCase *auth.ResolveProfileUseCase,
	submitUseCase *expense.SubmitExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		resolveUseCase: resolveUseCase,
		submitUseCase:  submitUseCase,
	}
}

// Submit handles POST /expenses requests. Expenses are always filed under
// the authenticated identity, never the view-as identity.
func (c *ExpenseController) Submit(ctx *gin.Context) {
	resolved, ok := resolveActor(ctx, c.resolveUseCase)
	if !ok {
		return
	}

	var req dto.SubmitExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeExpenseInvalid),
		})
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), expense.SubmitExpenseInput{
		Actor:           resolved.Authenticated,
		Date:            req.Date,
		Category:        req.Category,
		Amount:          decimal.NewFromFloat(req.Amount),
		PaymentMethod:   req.PaymentMethod,
		Description:     req.Description,
		ReceiptImageURI: req.ReceiptImage,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitExpenseResponse{
		Reference: output.Reference,
		Message:   output.Message,
	})
}
