// Package dto defines data transfer objects for API requests and responses.
package dto

// SubmitExpenseRequest represents the request body for expense submission.
// The submitter's identity comes from the access token, not the body.
type SubmitExpenseRequest struct {
	Date          string  `json:"date" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method"`
	Description   string  `json:"description"`
	ReceiptImage  string  `json:"receipt_image"`
}

// SubmitExpenseResponse represents the webhook acknowledgement.
type SubmitExpenseResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
