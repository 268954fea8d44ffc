package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResp struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []string

	if h.Mongo == nil || h.Mongo.Client == nil {
		errs = append(errs, "mongo not initialized")
	} else if err := h.Mongo.Client.Ping(ctx, nil); err != nil {
		errs = append(errs, "mongo ping failed: "+err.Error())
	}

	// S3 is optional; only checked when the export feature is wired up.
	if h.S3 != nil && h.S3.Client != nil {
		if ok, err := h.S3.Client.BucketExists(ctx, h.S3.Bucket); err != nil {
			errs = append(errs, "s3 bucket check failed: "+err.Error())
		} else if !ok {
			errs = append(errs, `s3 bucket "`+h.S3.Bucket+`" not found`)
		}
	}

	resp := healthResp{OK: len(errs) == 0}
	code := http.StatusOK
	if len(errs) > 0 {
		resp.Errors = errs
		code = http.StatusInternalServerError
	}
	h.JSON(w, code, resp)
}
