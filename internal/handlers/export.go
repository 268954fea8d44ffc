package handlers

import (
	"context"
	"net/http"
	"time"
)

// Export snapshots the collection into an xlsx workbook and uploads it to the
// bucket. The work runs in the background; the caller gets 202 immediately.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	if h.Exporter == nil {
		h.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "export storage not configured"})
		return
	}

	go func() {
		start := time.Now()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		recs, err := h.Store.FindAll(ctx, "nome")
		if err != nil {
			h.Logger.Printf("[EXPORT][ERR][BG] find: %v took=%s", err, time.Since(start))
			return
		}

		path, err := h.Exporter.Export(ctx, recs)
		if err != nil {
			h.Logger.Printf("[EXPORT][ERR][BG] rows=%d err=%v took=%s", len(recs), err, time.Since(start))
			return
		}

		h.Logger.Printf("[EXPORT][OK][BG] rows=%d path=%s took=%s", len(recs), path, time.Since(start))
	}()

	h.JSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}
