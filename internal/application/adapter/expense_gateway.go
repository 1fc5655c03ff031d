// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// ExpenseGateway relays an expense submission to the spreadsheet's intake
// webhook. Fire-and-forget: no retry, no local persistence.
type ExpenseGateway interface {
	Submit(ctx context.Context, expense entity.Expense) (*entity.ExpenseReceipt, error)
}
