package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"receivables_api/internal/models"
	"receivables_api/internal/repository/receivables"
)

func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, req *receivableRequest) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(req); err != nil {
		if errors.Is(err, models.ErrInvalidDate) {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": models.ErrInvalidDate.Error()})
			return false
		}
		h.Logger.Printf("[RECEIVABLES][ERR] bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return false
	}
	return true
}

// Create validates and normalizes the body, stamps cadastro with the server
// clock and inserts the record. The 201 body carries the store-assigned id.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req receivableRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	rec, err := req.toRecord()
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rec.CreatedAt = time.Now()

	oid, err := h.Store.Insert(r.Context(), rec)
	if err != nil {
		h.Logger.Printf("[CREATE][ERR] insert: %v", err)
		h.JSON(w, http.StatusNotImplemented, map[string]string{"error": "error creating conta a receber: " + err.Error()})
		return
	}
	rec.ID = oid

	h.Logger.Printf("[CREATE][OK] id=%s", oid.Hex())
	h.JSON(w, http.StatusCreated, toResponse(rec))
}

// List returns every record, ascending by the ?sort= field when given
// (e.g. ?sort=nome).
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.FindAll(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		h.Logger.Printf("[LIST][ERR] find: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "error listing contas a receber: " + err.Error()})
		return
	}

	out := make([]receivableResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	h.JSON(w, http.StatusOK, out)
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	oid, err := receivables.ParseID(r.PathValue("id"))
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	rec, err := h.Store.FindOne(r.Context(), oid)
	if errors.Is(err, receivables.ErrNotFound) {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": "conta a receber not found"})
		return
	}
	if err != nil {
		h.Logger.Printf("[GET][ERR] id=%s find: %v", oid.Hex(), err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "error fetching conta a receber: " + err.Error()})
		return
	}

	h.JSON(w, http.StatusOK, toResponse(rec))
}

// Update replaces every writable field of an existing record. cadastro is
// kept from the stored document and the body's id field is discarded. A
// write that modifies nothing answers 304; any store failure during the
// write answers 501, so a lost update is never reported as success.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	oid, err := receivables.ParseID(r.PathValue("id"))
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.Store.FindOne(r.Context(), oid)
	if errors.Is(err, receivables.ErrNotFound) {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": "conta a receber not found"})
		return
	}
	if err != nil {
		h.Logger.Printf("[UPDATE][ERR] id=%s find: %v", oid.Hex(), err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "error fetching conta a receber: " + err.Error()})
		return
	}

	var req receivableRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	rec, err := req.toRecord()
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	modified, err := h.Store.UpdateOne(r.Context(), oid, rec)
	if err != nil {
		h.Logger.Printf("[UPDATE][ERR] id=%s update: %v", oid.Hex(), err)
		h.JSON(w, http.StatusNotImplemented, map[string]string{"error": "error updating conta a receber: " + err.Error()})
		return
	}
	if modified == 0 {
		h.Logger.Printf("[UPDATE][SKIP] id=%s not modified", oid.Hex())
		w.WriteHeader(http.StatusNotModified)
		return
	}

	rec.ID = oid
	rec.CreatedAt = existing.CreatedAt
	h.Logger.Printf("[UPDATE][OK] id=%s", oid.Hex())
	h.JSON(w, http.StatusAccepted, toResponse(rec))
}

// Delete removes one record. A zero deleted count after a successful round
// trip answers 404, same as a missing record.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	oid, err := receivables.ParseID(r.PathValue("id"))
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if _, err := h.Store.FindOne(r.Context(), oid); err != nil {
		if errors.Is(err, receivables.ErrNotFound) {
			h.JSON(w, http.StatusNotFound, map[string]string{"error": "conta a receber not found"})
			return
		}
		h.Logger.Printf("[DELETE][ERR] id=%s find: %v", oid.Hex(), err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "error fetching conta a receber: " + err.Error()})
		return
	}

	deleted, err := h.Store.DeleteOne(r.Context(), oid)
	if err != nil {
		h.Logger.Printf("[DELETE][ERR] id=%s delete: %v", oid.Hex(), err)
		h.JSON(w, http.StatusNotImplemented, map[string]string{"error": "error deleting conta a receber: " + err.Error()})
		return
	}
	if deleted == 0 {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": "conta a receber not found"})
		return
	}

	h.Logger.Printf("[DELETE][OK] id=%s", oid.Hex())
	w.WriteHeader(http.StatusNoContent)
}

// DropAll empties the collection. 204 regardless of how many records
// existed, including none.
func (h *Handlers) DropAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteAll(r.Context())
	if err != nil {
		h.Logger.Printf("[DROP][ERR] delete all: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "error deleting contas a receber: " + err.Error()})
		return
	}

	h.Logger.Printf("[DROP][OK] deleted=%d", deleted)
	w.WriteHeader(http.StatusNoContent)
}
