package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
)

// Notifier delivers a created record to the configured webhook endpoint.
// One attempt per record, no retries.
type Notifier struct {
	URL    string
	Client *http.Client
	Logger *log.Logger
}

func NewNotifier(url string, cli *http.Client) *Notifier {
	if cli == nil {
		cli = &http.Client{}
	}
	return &Notifier{URL: url, Client: cli, Logger: log.Default()}
}

func (n *Notifier) Send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}
