package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/go-chi/chi/v5"
)

// Document routes run behind ownScope, so the scope is already validated.

func (h *Handler) insertDocument(w http.ResponseWriter, r *http.Request) {
	scope, _ := scopeFromRequest(r)

	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	id, err := h.services.DocumentService.Insert(r.Context(), scope, fields)
	if err != nil {
		writeError(w, r, err, "error inserting document")
		return
	}

	utils.WriteJSON(w, models.InsertResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	scope, _ := scopeFromRequest(r)

	snapshot, err := h.services.DocumentService.List(r.Context(), scope)
	if err != nil {
		writeError(w, r, err, "error listing documents")
		return
	}
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}

	utils.WriteJSON(w, models.ListResponse{Records: snapshot, Length: len(snapshot)}, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	scope, _ := scopeFromRequest(r)

	record, err := h.services.DocumentService.Get(r.Context(), scope, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error getting document")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) patchDocument(w http.ResponseWriter, r *http.Request) {
	scope, _ := scopeFromRequest(r)

	patch, ok := decodeFields(w, r)
	if !ok {
		return
	}

	if err := h.services.DocumentService.Patch(r.Context(), scope, chi.URLParam(r, "id"), patch); err != nil {
		writeError(w, r, err, "error patching document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	scope, _ := scopeFromRequest(r)

	if err := h.services.DocumentService.Delete(r.Context(), scope, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeFields(w http.ResponseWriter, r *http.Request) (models.Fields, bool) {
	var fields models.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return nil, false
	}
	return fields, true
}
