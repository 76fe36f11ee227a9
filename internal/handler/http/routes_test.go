package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/documents/users/u1/notes"},
		{http.MethodGet, "/api/documents/users/u1/notes"},
		{http.MethodGet, "/api/documents/users/u1/notes/r1"},
		{http.MethodPatch, "/api/documents/users/u1/notes/r1"},
		{http.MethodDelete, "/api/documents/users/u1/notes/r1"},
		{http.MethodPut, "/api/blobs/notes/u1/r1"},
		{http.MethodPost, "/api/blobs/url"},
		{http.MethodGet, "/api/watch?scope=users/u1/notes"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := serve(router, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_PublicRoutes(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	router := h.Init()

	rr := serve(router, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestInit_UnknownRouteIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.Init(), http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, path := range []string{"/api/version", "/api/auth/login"} {
		rr := serve(router, http.MethodDelete, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestInit_ResponsesCarryTraceID(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := serve(h.Init(), http.MethodGet, "/api/version", "", nil)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RequestTimeoutBoundsContext(t *testing.T) {
	h, deps := newTestHandler(t)
	h.requestTimeout = time.Second

	var hasDeadline bool
	deps.info.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(ctx context.Context) string {
		_, hasDeadline = ctx.Deadline()
		return "1.2.3"
	})

	rr := serve(h.Init(), http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, hasDeadline)
}

func TestInit_NoRequestTimeoutByDefault(t *testing.T) {
	h, deps := newTestHandler(t)

	var hasDeadline bool
	deps.info.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(ctx context.Context) string {
		_, hasDeadline = ctx.Deadline()
		return "1.2.3"
	})

	serve(h.Init(), http.MethodGet, "/api/version", "", nil)

	assert.False(t, hasDeadline)
}
