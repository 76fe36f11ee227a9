package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var annCreds = models.Credentials{Login: "ann", Password: "secret123"}

// ── register ──

func TestRegister_Success(t *testing.T) {
	h, deps := newTestHandler(t)
	user := models.User{UserID: "u1", Login: "ann"}
	gomock.InOrder(
		deps.auth.EXPECT().RegisterUser(gomock.Any(), annCreds).Return(user, nil),
		deps.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt", Subject: "u1"}, nil),
	)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/register", "", jsonBody(`{"login":"ann","password":"secret123"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"login taken", store.ErrLoginAlreadyExists, http.StatusConflict},
		{"storage failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.auth.EXPECT().RegisterUser(gomock.Any(), annCreds).Return(models.User{}, tt.err)

			rr := serve(h.Init(), http.MethodPost, "/api/auth/register", "", jsonBody(`{"login":"ann","password":"secret123"}`))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/register", "", jsonBody(`{`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_TokenFailure(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().RegisterUser(gomock.Any(), annCreds).Return(models.User{UserID: "u1"}, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/register", "", jsonBody(`{"login":"ann","password":"secret123"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── login ──

func TestLogin_Success(t *testing.T) {
	h, deps := newTestHandler(t)
	user := models.User{UserID: "u1", Login: "ann"}
	deps.auth.EXPECT().Login(gomock.Any(), annCreds).Return(user, nil)
	deps.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt"}, nil)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/login", "", jsonBody(`{"login":"ann","password":"secret123"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer jwt", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.auth.EXPECT().Login(gomock.Any(), annCreds).Return(models.User{}, service.ErrWrongPassword)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/login", "", jsonBody(`{"login":"ann","password":"secret123"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.Init(), http.MethodPost, "/api/auth/login", "", jsonBody(`nope`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
