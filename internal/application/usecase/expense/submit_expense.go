// Package expense contains the field-expense submission use case.
package expense

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// SubmitExpenseInput represents the input for submitting an expense.
type SubmitExpenseInput struct {
	// Actor is the authenticated submitter; identity fields on the expense
	// are taken from the actor, never from the request body.
	Actor           entity.ActorProfile
	Date            string
	Category        string
	Amount          decimal.Decimal
	PaymentMethod   string
	Description     string
	ReceiptImageURI string
}

// SubmitExpenseOutput represents the webhook acknowledgement.
type SubmitExpenseOutput struct {
	Reference string
	Message   string
}

// SubmitExpenseUseCase validates an expense and relays it to the intake
// webhook. Submissions are not stored locally.
type SubmitExpenseUseCase struct {
	gateway adapter.ExpenseGateway
}

// NewSubmitExpenseUseCase creates a new SubmitExpenseUseCase instance.
func NewSubmitExpenseUseCase(gateway adapter.ExpenseGateway) *SubmitExpenseUseCase {
	return &SubmitExpenseUseCase{gateway: gateway}
}

// Execute submits the expense. A webhook acknowledgement with success=false
// is surfaced as a rejection, not a transport error.
func (uc *SubmitExpenseUseCase) Execute(ctx context.Context, input SubmitExpenseInput) (*SubmitExpenseOutput, error) {
	if input.Date == "" || input.Category == "" || !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseInvalid,
			"date, category and a positive amount are required",
			nil,
		)
	}

	exp := entity.NewExpense(input.Actor.Name, input.Actor.Email, input.Actor.Team)
	exp.Date = input.Date
	exp.Category = input.Category
	exp.Amount = input.Amount
	exp.PaymentMethod = input.PaymentMethod
	exp.Description = input.Description
	exp.ReceiptImageURI = input.ReceiptImageURI

	receipt, err := uc.gateway.Submit(ctx, exp)
	if err != nil {
		return nil, err
	}
	if !receipt.Success {
		slog.Warn("expense rejected by webhook",
			"reference", exp.Reference.String(),
			"message", receipt.Message)
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseRejected,
			receipt.Message,
			domainerror.ErrExpenseRejected,
		)
	}

	slog.Info("expense submitted", "reference", exp.Reference.String(), "category", exp.Category)

	return &SubmitExpenseOutput{
		Reference: exp.Reference.String(),
		Message:   receipt.Message,
	}, nil
}
