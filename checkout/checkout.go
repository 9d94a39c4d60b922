// Package checkout implements the client-side flow that takes a plan choice
// to the hosted payment page: request a checkout session from the API, then
// hand the session handle to the processor's redirect step.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Twosense-Dev/BizBot/app/models"
)

// Redirector is the seam for the payment processor's client library.
type Redirector interface {
	Redirect(ctx context.Context, sessionID, url string) error
}

// RedirectorFunc adapts a function to the Redirector interface.
type RedirectorFunc func(ctx context.Context, sessionID, url string) error

func (f RedirectorFunc) Redirect(ctx context.Context, sessionID, url string) error {
	return f(ctx, sessionID, url)
}

var defaultHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Hook drives one checkout attempt at a time. Failures at any step are
// logged and leave the caller where they were; there is no retry.
type Hook struct {
	APIBaseURL string
	HTTPClient *http.Client
	Redirector Redirector

	loading atomic.Bool
}

// IsLoading reports whether a checkout attempt is in flight. Callers disable
// their trigger control while true.
func (h *Hook) IsLoading() bool {
	return h.loading.Load()
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Error     string `json:"error"`
}

// Begin runs the checkout sequence for a plan: create the session, then
// redirect. It is fire-and-forget; callers watch IsLoading. A second Begin
// while one is in flight is dropped.
func (h *Hook) Begin(ctx context.Context, plan models.Plan) {
	if !h.loading.CompareAndSwap(false, true) {
		return
	}
	defer h.loading.Store(false)

	sess, err := h.createSession(ctx, plan)
	if err != nil {
		log.Printf("checkout session request failed plan=%s: %v", plan, err)
		return
	}

	if h.Redirector == nil {
		log.Printf("checkout redirect skipped: no redirector configured")
		return
	}
	if err := h.Redirector.Redirect(ctx, sess.SessionID, sess.URL); err != nil {
		log.Printf("checkout redirect failed plan=%s: %v", plan, err)
	}
}

func (h *Hook) createSession(ctx context.Context, plan models.Plan) (sessionResponse, error) {
	body, err := json.Marshal(map[string]string{"plan": string(plan)})
	if err != nil {
		return sessionResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.APIBaseURL+"/api/create-checkout-session", bytes.NewReader(body))
	if err != nil {
		return sessionResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.HTTPClient
	if client == nil {
		client = defaultHTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return sessionResponse{}, err
	}
	defer resp.Body.Close()

	var out sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return sessionResponse{}, err
	}
	if out.Error != "" {
		return sessionResponse{}, fmt.Errorf("api error: %s", out.Error)
	}
	if out.SessionID == "" {
		return sessionResponse{}, fmt.Errorf("missing session id in response")
	}
	return out, nil
}
