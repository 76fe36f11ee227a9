package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/websocket implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

// SetToken implements [AuthAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [AuthAdapter]. The server answers with the bearer token
// in the Authorization header; its subject becomes the session identity.
func (h *httpServerAdapter) SignUp(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", creds)
}

// SignIn implements [AuthAdapter].
func (h *httpServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	subject, err := utils.ParseSubjectFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse subject: %w", err)
	}

	h.SetToken(signed)
	return models.Token{SignedString: signed, Subject: subject}, nil
}

// Insert implements [DocumentStore].
func (h *httpServerAdapter) Insert(ctx context.Context, scope models.Scope, fields models.Fields) (string, error) {
	var inserted models.InsertResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		SetResult(&inserted).
		Post(documentsPath(scope))
	if err != nil {
		return "", fmt.Errorf("insert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if inserted.ID == "" {
		return "", fmt.Errorf("%w: empty id in insert response", ErrInternalServerError)
	}

	return inserted.ID, nil
}

// Patch implements [DocumentStore].
func (h *httpServerAdapter) Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(documentsPath(scope, id))
	if err != nil {
		return fmt.Errorf("patch request: %w", err)
	}

	return mapHTTPError(resp)
}

// Remove implements [DocumentStore].
func (h *httpServerAdapter) Remove(ctx context.Context, scope models.Scope, id string) error {
	resp, err := h.authedRequest(ctx).Delete(documentsPath(scope, id))
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}

	return mapHTTPError(resp)
}

// Get implements [DocumentStore].
func (h *httpServerAdapter) Get(ctx context.Context, scope models.Scope, id string) (models.Record, error) {
	var record models.Record
	resp, err := h.authedRequest(ctx).
		SetResult(&record).
		Get(documentsPath(scope, id))
	if err != nil {
		return models.Record{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return record, nil
}

// Put implements [BlobStore].
func (h *httpServerAdapter) Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var ref models.BlobRef
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader(contentDigestHeader, contentDigest(data)).
		SetBody(data).
		SetResult(&ref).
		Put("/api/blobs/" + escapePath(path))
	if err != nil {
		return models.BlobRef{}, fmt.Errorf("put blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlobRef{}, err
	}

	return ref, nil
}

// URLFor implements [BlobStore].
func (h *httpServerAdapter) URLFor(ctx context.Context, ref models.BlobRef) (string, error) {
	var out models.BlobURLResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(ref).
		SetResult(&out).
		Post("/api/blobs/url")
	if err != nil {
		return "", fmt.Errorf("blob url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("%w: empty blob url", ErrInternalServerError)
	}

	return out.URL, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// documentsPath builds /api/documents/users/{subject}/{collection}[/{id}]
// with every segment escaped.
func documentsPath(scope models.Scope, id ...string) string {
	path := "/api/documents/" + escapePath(scope.String())
	for _, segment := range id {
		path += "/" + url.PathEscape(segment)
	}
	return path
}

// contentDigestHeader lets the store reject uploads corrupted in transit.
const contentDigestHeader = "X-Content-SHA256"

func contentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func escapePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
