// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScope = models.Scope("users/u1/notes")

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	token, err := utils.GenerateJWTToken("iss", "subject-1", time.Hour, "key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Login)

		w.Header().Set("Authorization", "Bearer "+token.SignedString)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignUp(context.Background(), models.Credentials{Login: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "subject-1", got.Subject)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestSignIn_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.Credentials{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestSignIn_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.Credentials{Login: "alice"})

	assert.Error(t, err)
}

// ── Documents ────────────────────────────────────────────────────────────────

func TestInsert_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/documents/users/u1/notes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var fields models.Fields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, models.Fields{"title": "x", "content": "y", "imageUrl": ""}, fields)

		writeJSON(t, w, http.StatusCreated, models.InsertResponse{ID: "n1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	id, err := a.Insert(context.Background(), testScope, models.Fields{"title": "x", "content": "y", "imageUrl": ""})

	require.NoError(t, err)
	assert.Equal(t, "n1", id)
}

func TestInsert_EmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.InsertResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Insert(context.Background(), testScope, models.Fields{"title": "x"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestPatch_SendsOnlySuppliedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/documents/users/u1/notes/42", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"new"}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Patch(context.Background(), testScope, "42", models.Fields{"title": "new"})

	assert.NoError(t, err)
}

func TestPatch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Patch(context.Background(), testScope, "gone", models.Fields{"title": "new"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/documents/users/u1/notes/a%2Fb", r.URL.RawPath)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Remove(context.Background(), testScope, "a/b"))
}

func TestGet_Success(t *testing.T) {
	want := models.Record{ID: "n1", Fields: models.Fields{"title": "x", "imageUrl": "http://blob"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/users/u1/notes/n1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Get(context.Background(), testScope, "n1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Blobs ────────────────────────────────────────────────────────────────────

func TestPut_SendsRawBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/blobs/notes/u1/n1", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body)
		sum := sha256.Sum256(body)
		assert.Equal(t, hex.EncodeToString(sum[:]), r.Header.Get("X-Content-SHA256"))

		writeJSON(t, w, http.StatusOK, models.BlobRef{Path: "notes/u1/n1", Generation: "3"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ref, err := a.Put(context.Background(), "notes/u1/n1", []byte{0x89, 'P', 'N', 'G'}, "image/png")

	require.NoError(t, err)
	assert.Equal(t, models.BlobRef{Path: "notes/u1/n1", Generation: "3"}, ref)
}

func TestPut_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Put(context.Background(), "notes/u1/n1", []byte("x"), "")

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestURLFor_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blobs/url", r.URL.Path)

		var ref models.BlobRef
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ref))
		assert.Equal(t, "profiles/u1", ref.Path)

		writeJSON(t, w, http.StatusOK, models.BlobURLResponse{URL: "http://store/api/blobs/profiles/u1?v=1&token=abc"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.URLFor(context.Background(), models.BlobRef{Path: "profiles/u1", Generation: "1"})

	require.NoError(t, err)
	assert.Equal(t, "http://store/api/blobs/profiles/u1?v=1&token=abc", got)
}

// ── mapStatus ────────────────────────────────────────────────────────────────

func TestMapStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.ErrorIs(t, mapStatus(tt.status, []byte("boom")), tt.want)
		})
	}

	assert.NoError(t, mapStatus(http.StatusNoContent, nil))
	assert.EqualError(t, mapStatus(http.StatusTeapot, nil), "http 418: I'm a teapot")
}
