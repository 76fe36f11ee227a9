package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func digestOf(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ── PUT /api/blobs/* ──

func TestPutBlob(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	ref := models.BlobRef{Path: "notes/u1/r1", Generation: "1"}
	deps.blobs.EXPECT().Put(gomock.Any(), "notes/u1/r1", []byte("png-bytes"), "image/png").Return(ref, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/blobs/notes/u1/r1", strings.NewReader("png-bytes"))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "image/png")
	req.Header.Set(contentDigestHeader, digestOf("png-bytes"))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.BlobRef
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, ref, got)
}

func TestPutBlob_DigestMismatch(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	req := httptest.NewRequest(http.MethodPut, "/api/blobs/notes/u1/r1", strings.NewReader("png-bytes"))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(contentDigestHeader, digestOf("other"))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrDigestMismatch.Error())
}

func TestPutBlob_ForeignPath(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	rr := serve(h.Init(), http.MethodPut, "/api/blobs/notes/u2/r1", token, strings.NewReader("x"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPutBlob_TooLarge(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	rr := serve(h.Init(), http.MethodPut, "/api/blobs/profiles/u1", token, strings.NewReader(strings.Repeat("x", maxBlobSize+1)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestPutBlob_InvalidPath(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.blobs.EXPECT().Put(gomock.Any(), "notes/u1/.upload-x", gomock.Any(), gomock.Any()).
		Return(models.BlobRef{}, store.ErrInvalidBlobPath)

	rr := serve(h.Init(), http.MethodPut, "/api/blobs/notes/u1/.upload-x", token, strings.NewReader("x"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── POST /api/blobs/url ──

func TestBlobURL(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	ref := models.BlobRef{Path: "profiles/u1", Generation: "2"}
	deps.blobs.EXPECT().URLFor(gomock.Any(), ref).Return("http://srv/api/blobs/profiles/u1?token=t&v=2", nil)

	rr := serve(h.Init(), http.MethodPost, "/api/blobs/url", token, jsonBody(`{"path":"profiles/u1","generation":"2"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"url":"http://srv/api/blobs/profiles/u1?token=t&v=2"}`, rr.Body.String())
}

func TestBlobURL_ForeignPath(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	rr := serve(h.Init(), http.MethodPost, "/api/blobs/url", token, jsonBody(`{"path":"profiles/u2","generation":"1"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBlobURL_UnknownField(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	rr := serve(h.Init(), http.MethodPost, "/api/blobs/url", token, jsonBody(`{"path":"profiles/u1","extra":1}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── GET /api/blobs/* ──

func TestGetBlob(t *testing.T) {
	h, deps := newTestHandler(t)
	info := store.BlobInfo{Path: "notes/u1/r1", Generation: 3, ContentType: "image/png"}
	deps.blobs.EXPECT().Open(gomock.Any(), "notes/u1/r1", "sig").
		Return(io.NopCloser(strings.NewReader("png-bytes")), info, nil)

	rr := serve(h.Init(), http.MethodGet, "/api/blobs/notes/u1/r1?v=3&token=sig", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png-bytes", rr.Body.String())
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, `"3"`, rr.Header().Get("ETag"))
	assert.Contains(t, rr.Header().Get("Cache-Control"), "immutable")
}

func TestGetBlob_BadToken(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.blobs.EXPECT().Open(gomock.Any(), "notes/u1/r1", "forged").Return(nil, store.BlobInfo{}, service.ErrInvalidBlobToken)

	rr := serve(h.Init(), http.MethodGet, "/api/blobs/notes/u1/r1?token=forged", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetBlob_Missing(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.blobs.EXPECT().Open(gomock.Any(), "notes/u1/r1", "sig").Return(nil, store.BlobInfo{}, store.ErrBlobNotFound)

	rr := serve(h.Init(), http.MethodGet, "/api/blobs/notes/u1/r1?token=sig", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
