package webhook

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMiddlewareForwardsCreatedBody(t *testing.T) {
	received := make(chan []byte, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	n := NewNotifier(hook.URL, hook.Client())

	const body = `{"id":"507f1f77bcf86cd799439011","nome":"Ana Silva"}`
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(body))
	})

	req := httptest.NewRequest("POST", "/api/v1/contas/receber", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	Middleware(n)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 passed through, got %d", rr.Code)
	}
	if rr.Body.String() != body {
		t.Fatalf("client body changed by middleware: %q", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("header lost in replay: %q", ct)
	}

	select {
	case got := <-received:
		if string(got) != body {
			t.Fatalf("webhook got %q, want %q", got, body)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("webhook was never called")
	}
}

func TestMiddlewareSkipsNonCreatedResponses(t *testing.T) {
	called := make(chan struct{}, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- struct{}{}
	}))
	defer hook.Close()

	n := NewNotifier(hook.URL, hook.Client())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"nome is required"}`))
	})

	req := httptest.NewRequest("POST", "/api/v1/contas/receber", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	Middleware(n)(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 passed through, got %d", rr.Code)
	}

	select {
	case <-called:
		t.Fatalf("webhook must not fire for non-201 responses")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotifierReportsNon2xx(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer hook.Close()

	n := NewNotifier(hook.URL, hook.Client())
	if err := n.Send(t.Context(), []byte(`{}`)); err == nil {
		t.Fatalf("expected error on 502 from webhook endpoint")
	}
}
