package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token subject in the
// request context before delegating to the next handler. Every failure
// answers 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(ctx, token.Subject)))
	})
}

// ownScope rejects document requests whose {subject} path segment differs
// from the authenticated subject. Foreign scopes answer 404 so that their
// existence is not revealed.
func (h *Handler) ownScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		scope, err := scopeFromRequest(r)
		if err != nil {
			log.Err(err).Msg("invalid scope")
			http.Error(w, "invalid scope", http.StatusBadRequest)
			return
		}

		subject, _ := utils.GetSubjectFromContext(r.Context())
		if scope.Owner() != subject {
			log.Warn().Str("scope", scope.String()).Str("subject", subject).Msg("access to foreign scope")
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// scopeFromRequest builds the scope from the {subject} and {collection}
// route parameters.
func scopeFromRequest(r *http.Request) (models.Scope, error) {
	return models.ParseScope("users/" + chi.URLParam(r, "subject") + "/" + chi.URLParam(r, "collection"))
}

// ownsPath reports whether the blob path belongs to subject. Blob paths are
// "{prefix}/{subject}[/{record}]".
func ownsPath(path, subject string) bool {
	segments := strings.Split(path, "/")
	return subject != "" && len(segments) >= 2 && segments[1] == subject
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the token part is missing
// and [ErrEmptyToken] when it is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
