package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const notesScope = models.Scope("users/u1/notes")

func TestInsertDocument(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Insert(gomock.Any(), notesScope, models.Fields{"title": "a", "imageUrl": ""}).Return("r1", nil)

	rr := serve(h.Init(), http.MethodPost, "/api/documents/users/u1/notes", token, jsonBody(`{"title":"a","imageUrl":""}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp models.InsertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ID)
}

func TestInsertDocument_InvalidBody(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")

	for _, body := range []string{`{`, `null`, `[1,2]`} {
		rr := serve(h.Init(), http.MethodPost, "/api/documents/users/u1/notes", token, jsonBody(body))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestInsertDocument_InvalidRecord(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Insert(gomock.Any(), notesScope, gomock.Any()).Return("", service.ErrInvalidRecord)

	rr := serve(h.Init(), http.MethodPost, "/api/documents/users/u1/notes", token, jsonBody(`{"title":{"nested":true}}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDocuments_ForeignScopeIsNotFound(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	router := h.Init()

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/documents/users/u2/notes", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/api/documents/users/u2/notes", token, jsonBody(`{"title":"x"}`)).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/api/documents/users/u2/notes/r1", token, nil).Code)
}

func TestListDocuments(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	snapshot := models.Snapshot{
		{ID: "r1", Fields: models.Fields{"title": "a"}},
		{ID: "r2", Fields: models.Fields{"title": "b"}},
	}
	deps.docs.EXPECT().List(gomock.Any(), notesScope).Return(snapshot, nil)

	rr := serve(h.Init(), http.MethodGet, "/api/documents/users/u1/notes", token, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, "r2", resp.Records[1].ID)
}

func TestListDocuments_EmptyIsArray(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().List(gomock.Any(), notesScope).Return(nil, nil)

	rr := serve(h.Init(), http.MethodGet, "/api/documents/users/u1/notes", token, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"records":[],"length":0}`, rr.Body.String())
}

func TestGetDocument(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Get(gomock.Any(), notesScope, "r1").Return(models.Record{ID: "r1", Fields: models.Fields{"title": "a"}}, nil)

	rr := serve(h.Init(), http.MethodGet, "/api/documents/users/u1/notes/r1", token, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"r1","fields":{"title":"a"}}`, rr.Body.String())
}

func TestGetDocument_NotFound(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Get(gomock.Any(), notesScope, "gone").Return(models.Record{}, store.ErrRecordNotFound)

	rr := serve(h.Init(), http.MethodGet, "/api/documents/users/u1/notes/gone", token, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPatchDocument(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Patch(gomock.Any(), notesScope, "r1", models.Fields{"imageUrl": "http://x"}).Return(nil)

	rr := serve(h.Init(), http.MethodPatch, "/api/documents/users/u1/notes/r1", token, jsonBody(`{"imageUrl":"http://x"}`))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestPatchDocument_NotFound(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Patch(gomock.Any(), notesScope, "gone", gomock.Any()).Return(store.ErrRecordNotFound)

	rr := serve(h.Init(), http.MethodPatch, "/api/documents/users/u1/notes/gone", token, jsonBody(`{"title":"b"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteDocument(t *testing.T) {
	h, deps := newTestHandler(t)
	token := deps.signedIn("u1")
	deps.docs.EXPECT().Delete(gomock.Any(), notesScope, "r1").Return(nil)

	rr := serve(h.Init(), http.MethodDelete, "/api/documents/users/u1/notes/r1", token, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
