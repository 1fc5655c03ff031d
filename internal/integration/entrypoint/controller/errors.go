// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/phoenix-field/backend/internal/domain/error"
	"github.com/phoenix-field/backend/internal/integration/entrypoint/dto"
)

// respondError maps a use case error to an HTTP response. Unrecognized
// errors become a generic 500 without leaking internals.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var sheetErr *domainerror.SheetError
	if errors.As(err, &sheetErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: sheetErr.Message,
			Code:  string(sheetErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(statusForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrNoSnapshot) || errors.Is(err, domainerror.ErrSheetFetchFailed) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Sheet data is currently unavailable",
			Code:  string(domainerror.ErrCodeSheetUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeViewAsUnknownTarget:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeAccessDenied,
		domainerror.ErrCodeViewAsNotPermitted:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusForExpenseError maps expense error codes to HTTP status codes.
func statusForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseInvalid:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeExpenseRejected:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeExpenseDelivery:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
