package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Twosense-Dev/BizBot/app/models"
)

type recordingRedirector struct {
	mu        sync.Mutex
	sessionID string
	url       string
	calls     int
	err       error
}

func (r *recordingRedirector) Redirect(_ context.Context, sessionID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.sessionID = sessionID
	r.url = url
	return r.err
}

func TestBeginRedirectsWithSessionHandle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/create-checkout-session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessionId":"cs_test_123","url":"https://checkout.example/cs_test_123"}`))
	}))
	defer server.Close()

	redirector := &recordingRedirector{}
	hook := &Hook{
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
		Redirector: redirector,
	}

	hook.Begin(context.Background(), models.PlanBasic)

	if redirector.calls != 1 {
		t.Fatalf("expected 1 redirect, got %d", redirector.calls)
	}
	if redirector.sessionID != "cs_test_123" {
		t.Fatalf("sessionID = %q", redirector.sessionID)
	}
	if hook.IsLoading() {
		t.Fatalf("loading flag must reset after Begin")
	}
}

func TestBeginAPIErrorSkipsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid plan"}`))
	}))
	defer server.Close()

	redirector := &recordingRedirector{}
	hook := &Hook{
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
		Redirector: redirector,
	}

	hook.Begin(context.Background(), models.Plan("enterprise"))

	if redirector.calls != 0 {
		t.Fatalf("redirect must not run after API error, got %d calls", redirector.calls)
	}
	if hook.IsLoading() {
		t.Fatalf("loading flag must reset after failure")
	}
}

func TestBeginMissingSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	redirector := &recordingRedirector{}
	hook := &Hook{
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
		Redirector: redirector,
	}

	hook.Begin(context.Background(), models.PlanPro)

	if redirector.calls != 0 {
		t.Fatalf("redirect must not run without a session handle")
	}
}

func TestBeginNetworkFailureResetsLoading(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	hook := &Hook{
		APIBaseURL: url,
		Redirector: &recordingRedirector{},
	}

	hook.Begin(context.Background(), models.PlanBasic)

	if hook.IsLoading() {
		t.Fatalf("loading flag must reset after network failure")
	}
}

func TestBeginSerializesAttempts(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(`{"sessionId":"cs_test_123","url":"u"}`))
	}))
	defer server.Close()

	redirector := &recordingRedirector{}
	hook := &Hook{
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
		Redirector: redirector,
	}

	done := make(chan struct{})
	go func() {
		hook.Begin(context.Background(), models.PlanBasic)
		close(done)
	}()

	<-started
	if !hook.IsLoading() {
		t.Fatalf("expected loading flag while in flight")
	}

	// Second attempt while in flight is dropped.
	hook.Begin(context.Background(), models.PlanPro)

	close(release)
	<-done

	if redirector.calls != 1 {
		t.Fatalf("expected exactly 1 redirect, got %d", redirector.calls)
	}
}

func TestRedirectorFunc(t *testing.T) {
	called := false
	f := RedirectorFunc(func(ctx context.Context, sessionID, url string) error {
		called = true
		return nil
	})
	if err := f.Redirect(context.Background(), "cs", "u"); err != nil || !called {
		t.Fatalf("RedirectorFunc not invoked")
	}
}
