package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phoenix-field/backend/internal/domain/entity"
	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

func sampleExpense() entity.Expense {
	return entity.Expense{
		Reference:     uuid.New(),
		EmployeeName:  "Casey Lin",
		EmployeeEmail: "casey@phoenix.test",
		Team:          "KYT1",
		Date:          "2025-06-12",
		Category:      "Meals",
		Amount:        decimal.NewFromFloat(42.50),
		PaymentMethod: "Company Card",
		Description:   "Client dinner",
	}
}

func TestAppsScriptClient_Submit(t *testing.T) {
	t.Run("delivers payload and returns acknowledgement", func(t *testing.T) {
		var got expensePayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %s", ct)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			json.NewEncoder(w).Encode(expenseAck{Success: true, Message: "recorded"})
		}))
		defer server.Close()

		client := NewAppsScriptClient(server.URL, 5*time.Second)
		expense := sampleExpense()
		receipt, err := client.Submit(context.Background(), expense)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if !receipt.Success || receipt.Message != "recorded" {
			t.Errorf("receipt = %+v", receipt)
		}
		if got.Amount != "42.5" {
			t.Errorf("amount = %q", got.Amount)
		}
		if got.Reference != expense.Reference.String() {
			t.Errorf("reference = %q", got.Reference)
		}
		if got.EmployeeEmail != "casey@phoenix.test" {
			t.Errorf("employee email = %q", got.EmployeeEmail)
		}
	})

	t.Run("relays rejection without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(expenseAck{Success: false, Message: "duplicate submission"})
		}))
		defer server.Close()

		client := NewAppsScriptClient(server.URL, 5*time.Second)
		receipt, err := client.Submit(context.Background(), sampleExpense())
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if receipt.Success {
			t.Error("receipt.Success = true, want false")
		}
	})

	t.Run("error status is a delivery failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "script error", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewAppsScriptClient(server.URL, 5*time.Second)
		_, err := client.Submit(context.Background(), sampleExpense())
		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("err = %v, want ExpenseError", err)
		}
		if expErr.Code != domainerror.ErrCodeExpenseDelivery {
			t.Errorf("code = %s", expErr.Code)
		}
	})

	t.Run("missing URL is a configuration error", func(t *testing.T) {
		client := NewAppsScriptClient("", 5*time.Second)
		_, err := client.Submit(context.Background(), sampleExpense())
		var expErr *domainerror.ExpenseError
		if !errors.As(err, &expErr) {
			t.Fatalf("err = %v, want ExpenseError", err)
		}
		if expErr.Code != domainerror.ErrCodeExpenseNotConfigured {
			t.Errorf("code = %s", expErr.Code)
		}
	})
}
