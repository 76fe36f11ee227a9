package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const blobsPrefix = "/api/blobs/"

func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	path := blobPath(r)

	subject, _ := utils.GetSubjectFromContext(r.Context())
	if !ownsPath(path, subject) {
		log.Warn().Str("path", path).Str("subject", subject).Msg("upload to foreign blob path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("path", path).Msg("failed to read blob body")
		http.Error(w, "failed to read blob body", http.StatusRequestEntityTooLarge)
		return
	}

	ref, err := h.services.BlobService.Put(r.Context(), path, data, r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, err, "error storing blob")
		return
	}

	utils.WriteJSON(w, ref, http.StatusOK)
}

func (h *Handler) blobURL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var ref models.BlobRef
	if err := utils.ReadJSON(r, &ref); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	if !ownsPath(ref.Path, subject) {
		log.Warn().Str("path", ref.Path).Str("subject", subject).Msg("url for foreign blob path")
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	url, err := h.services.BlobService.URLFor(r.Context(), ref)
	if err != nil {
		writeError(w, r, err, "error building blob url")
		return
	}

	utils.WriteJSON(w, models.BlobURLResponse{URL: url}, http.StatusOK)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	path := blobPath(r)

	rc, info, err := h.services.BlobService.Open(r.Context(), path, r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err, "error opening blob")
		return
	}
	defer rc.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("ETag", strconv.Quote(strconv.FormatInt(info.Generation, 10)))
	// the generation in the URL changes on overwrite, so a URL never goes stale
	if r.URL.Query().Get("v") != "" {
		w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	}
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Err(err).Str("path", path).Msg("error streaming blob")
	}
}

// blobPath returns the decoded blob path following /api/blobs/.
func blobPath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, blobsPrefix)
}
