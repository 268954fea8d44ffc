package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"receivables_api/internal/handlers"
	"receivables_api/internal/transport/webhook"
)

const basePath = "/api/v1/contas/receber"

type Server struct {
	httpServer *http.Server
}

// NewServer wires the receivables routes. The webhook middleware wraps only
// the create route; every other response goes straight to the client.
func NewServer(port string, h *handlers.Handlers, notifier *webhook.Notifier) *Server {
	mux := http.NewServeMux()

	if h != nil {
		mux.HandleFunc("GET /health", h.Health)

		create := http.Handler(http.HandlerFunc(h.Create))
		if notifier != nil {
			create = webhook.Middleware(notifier)(create)
		}
		mux.Handle("POST "+basePath, create)

		mux.HandleFunc("GET "+basePath, h.List)
		mux.HandleFunc("GET "+basePath+"/{id}", h.Get)
		mux.HandleFunc("PUT "+basePath+"/{id}", h.Update)
		mux.HandleFunc("DELETE "+basePath+"/{id}", h.Delete)
		mux.HandleFunc("DELETE "+basePath+"/drop", h.DropAll)
		mux.HandleFunc("POST "+basePath+"/export", h.Export)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
