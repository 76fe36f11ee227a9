// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity owns the client's authenticated session: who is signed
// in, and who wants to know when that changes.
package identity

import "github.com/MKhiriev/go-note-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_mock.go -package=mock

// Provider yields the current identity and pushes changes to it.
type Provider interface {
	// Current returns the signed-in identity or [models.NoIdentity].
	Current() models.Identity

	// OnChange registers fn. fn is invoked once immediately with the current
	// identity and then after every sign-in and sign-out. Listeners must not
	// sign in or out from inside fn.
	OnChange(fn func(models.Identity)) models.CancelToken
}
