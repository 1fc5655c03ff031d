// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a field expense submitted by an employee. It is relayed to the
// spreadsheet's Apps Script webhook and never stored locally.
type Expense struct {
	Reference       uuid.UUID
	EmployeeName    string
	EmployeeEmail   string
	Team            string
	Date            string
	Category        string
	Amount          decimal.Decimal
	PaymentMethod   string
	Description     string
	ReceiptImageURI string
}

// NewExpense assigns a submission reference for log correlation.
func NewExpense(name, email, team string) Expense {
	return Expense{
		Reference:     uuid.New(),
		EmployeeName:  name,
		EmployeeEmail: email,
		Team:          team,
	}
}

// ExpenseReceipt is the webhook's acknowledgement.
type ExpenseReceipt struct {
	Success bool
	Message string
}
