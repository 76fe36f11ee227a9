package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Signer produces and checks keyed HMAC-SHA256 signatures. It keeps a pool of
// hash instances bound to its key so that hot paths (signing blob URLs for
// every snapshot) do not allocate a new HMAC per call.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer using key for every HMAC operation.
//
// Example usage:
//
//	signer := utils.NewSigner("my-secret-key")
//	sig := signer.Sign("profiles/alice")
func NewSigner(key string) *Signer {
	s := &Signer{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return s
}

// Sign returns the hex-encoded HMAC-SHA256 of data.
func (s *Signer) Sign(data string) string {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(data))
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return hex.EncodeToString(sum)
}

// Verify reports whether signature is the hex HMAC of data. The comparison
// runs in constant time.
func (s *Signer) Verify(data, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(s.Sign(data))
	return hmac.Equal(got, want)
}
