// Package webhook relays expense submissions to the spreadsheet's Apps
// Script intake endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phoenix-field/backend/internal/application/adapter"
	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// AppsScriptClient implements the adapter.ExpenseGateway interface against a
// Google Apps Script web app deployment.
type AppsScriptClient struct {
	httpClient *http.Client
	webhookURL string
}

// NewAppsScriptClient creates a new Apps Script webhook client. An empty
// webhookURL yields a client whose submissions fail with a configuration
// error rather than a transport error.
func NewAppsScriptClient(webhookURL string, timeout time.Duration) *AppsScriptClient {
	return &AppsScriptClient{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
	}
}

// expensePayload is the webhook's expected request body.
type expensePayload struct {
	Reference     string `json:"reference"`
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
	Team          string `json:"team"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	Description   string `json:"description"`
	ReceiptImage  string `json:"receiptImage,omitempty"`
}

// expenseAck is the webhook's response body.
type expenseAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit posts the expense and returns the webhook's acknowledgement.
func (c *AppsScriptClient) Submit(ctx context.Context, expense entity.Expense) (*entity.ExpenseReceipt, error) {
	if c.webhookURL == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotConfigured,
			"expense webhook URL is not configured",
			domainerror.ErrExpenseWebhookNotConfigured,
		)
	}

	payload := expensePayload{
		Reference:     expense.Reference.String(),
		EmployeeName:  expense.EmployeeName,
		EmployeeEmail: expense.EmployeeEmail,
		Team:          expense.Team,
		Date:          expense.Date,
		Category:      expense.Category,
		Amount:        expense.Amount.String(),
		PaymentMethod: expense.PaymentMethod,
		Description:   expense.Description,
		ReceiptImage:  expense.ReceiptImageURI,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode expense payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDelivery,
			"failed to reach expense webhook",
			err,
		)
	}
	defer resp.Body.Close()

	// Apps Script web apps answer redirected POSTs with 200 or 302; anything
	// in the 4xx/5xx range is a delivery failure.
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDelivery,
			fmt.Sprintf("expense webhook returned status %d", resp.StatusCode),
			nil,
		)
	}

	var ack expenseAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDelivery,
			"failed to decode webhook response",
			err,
		)
	}

	return &entity.ExpenseReceipt{
		Success: ack.Success,
		Message: ack.Message,
	}, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.ExpenseGateway = (*AppsScriptClient)(nil)
