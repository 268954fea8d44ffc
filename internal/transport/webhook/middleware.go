package webhook

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

// Middleware buffers the wrapped handler's response, replays it to the client
// unchanged, and when the handler produced a 201 forwards a copy of the body
// to the notifier from a detached goroutine. Delivery outcome is logged only
// and never reaches the original caller.
func Middleware(n *Notifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := newBufferedResponse()
			next.ServeHTTP(buf, r)

			for k, vs := range buf.header {
				for _, v := range vs {
					w.Header().Add(k, v)
				}
			}
			w.WriteHeader(buf.status)
			_, _ = w.Write(buf.body.Bytes())

			if buf.status != http.StatusCreated {
				return
			}

			payload := bytes.Clone(buf.body.Bytes())
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := n.Send(ctx, payload); err != nil {
					n.Logger.Printf("[WEBHOOK][ERR] url=%q err=%v", n.URL, err)
					return
				}
				n.Logger.Printf("[WEBHOOK][OK] url=%q bytes=%d", n.URL, len(payload))
			}()
		})
	}
}

type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: http.Header{}, status: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) { b.status = code }

func (b *bufferedResponse) Write(p []byte) (int, error) { return b.body.Write(p) }
