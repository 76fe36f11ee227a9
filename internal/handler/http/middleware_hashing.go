package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
)

const contentDigestHeader = "X-Content-SHA256"

// verifyContentDigest checks an upload body against the hex SHA-256 in the
// X-Content-SHA256 header. Requests without the header pass unchecked; the
// body is restored for the next handler either way.
func (h *Handler) verifyContentDigest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.ToLower(strings.TrimSpace(r.Header.Get(contentDigestHeader)))
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifyContentDigest").Msg("failed to read request body")
			http.Error(w, "failed to read request body", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := sha256.Sum256(body)
		got := hex.EncodeToString(sum[:])
		if got != want {
			h.logger.Error().Str("func", "*Handler.verifyContentDigest").
				Str("digest from request", want).
				Str("digest of body", got).
				Msg("digests are not equal")
			http.Error(w, ErrDigestMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
