package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Webhook fakes the Apps Script expense intake endpoint. It records every
// payload it receives and answers with a configurable acknowledgement.
type Webhook struct {
	mu       sync.Mutex
	server   *httptest.Server
	payloads []map[string]any
	success  bool
	message  string
	status   int
}

func NewWebhook() *Webhook {
	w := &Webhook{}
	w.ResetAck()
	w.server = httptest.NewServer(http.HandlerFunc(w.handle))
	return w
}

func (w *Webhook) handle(rw http.ResponseWriter, r *http.Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var payload map[string]any
	_ = json.NewDecoder(r.Body).Decode(&payload)
	w.payloads = append(w.payloads, payload)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(w.status)
	_ = json.NewEncoder(rw).Encode(map[string]any{
		"success": w.success,
		"message": w.message,
	})
}

// URL is the endpoint to configure the expense gateway with.
func (w *Webhook) URL() string {
	return w.server.URL
}

// SetAck controls the acknowledgement returned to subsequent submissions.
func (w *Webhook) SetAck(success bool, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.success = success
	w.message = message
}

// SetStatus forces an HTTP status on subsequent responses.
func (w *Webhook) SetStatus(status int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
}

// ResetAck restores the default successful acknowledgement and clears the
// recorded payloads.
func (w *Webhook) ResetAck() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.success = true
	w.message = "Expense recorded"
	w.status = http.StatusOK
	w.payloads = nil
}

// LastPayload returns the most recently received payload, or nil.
func (w *Webhook) LastPayload() map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.payloads) == 0 {
		return nil
	}
	return w.payloads[len(w.payloads)-1]
}

// Close shuts the underlying server down.
func (w *Webhook) Close() {
	w.server.Close()
}
