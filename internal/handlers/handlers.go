package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	mg "receivables_api/internal/config/connections/mongo"
	"receivables_api/internal/config/connections/s3"
	"receivables_api/internal/ports"
	"receivables_api/internal/services/exporter"
)

type Handlers struct {
	Store    ports.ReceivableStore
	Mongo    *mg.Mongo
	S3       *s3.S3
	Exporter *exporter.Service

	Logger *log.Logger
}

func New(store ports.ReceivableStore, mgc *mg.Mongo, s3c *s3.S3) *Handlers {
	h := &Handlers{
		Store:  store,
		Mongo:  mgc,
		S3:     s3c,
		Logger: log.Default(),
	}
	if s3c != nil {
		h.Exporter = exporter.New(s3c)
	}
	return h
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
