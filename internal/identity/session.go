// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

// Session is the client's [Provider]. It signs in against the remote store,
// installs the issued token on the transport and broadcasts identity
// changes to registered listeners.
type Session struct {
	auth      adapter.AuthAdapter
	validator validators.Validator
	logger    *logger.Logger

	// notifyMu serializes identity transitions with their notifications so
	// that listeners observe changes in order.
	notifyMu sync.Mutex

	mu        sync.Mutex
	current   models.Identity
	listeners map[uint64]func(models.Identity)
	nextID    uint64
}

func NewSession(auth adapter.AuthAdapter, validator validators.Validator, logger *logger.Logger) *Session {
	return &Session{
		auth:      auth,
		validator: validator,
		logger:    logger,
		current:   models.NoIdentity,
		listeners: make(map[uint64]func(models.Identity)),
	}
}

// Current implements [Provider].
func (s *Session) Current() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OnChange implements [Provider].
func (s *Session) OnChange(fn func(models.Identity)) models.CancelToken {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return models.NewCancelToken(func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	})
}

// SignUp registers a new account and signs it in.
func (s *Session) SignUp(ctx context.Context, creds models.Credentials) error {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	token, err := s.auth.SignUp(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("login", creds.Login).Msg("sign up failed")
		if errors.Is(err, adapter.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrLoginTaken, err)
		}
		return fmt.Errorf("%w: %w", ErrSignUpFailed, err)
	}

	s.setIdentity(models.NewIdentity(token.Subject))
	return nil
}

// SignIn authenticates an existing account.
func (s *Session) SignIn(ctx context.Context, creds models.Credentials) error {
	if err := s.validator.Validate(ctx, creds, validators.FieldLogin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if creds.Password == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, validators.ErrEmptyPassword)
	}

	token, err := s.auth.SignIn(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("login", creds.Login).Msg("sign in failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrSignInFailed, err)
	}

	s.setIdentity(models.NewIdentity(token.Subject))
	return nil
}

// SignOut drops the token and tells every listener the identity is gone.
func (s *Session) SignOut() {
	s.auth.SetToken("")
	s.setIdentity(models.NoIdentity)
}

func (s *Session) setIdentity(next models.Identity) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = next
	listeners := make([]func(models.Identity), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.logger.Info().Str("identity", next.String()).Msg("identity changed")
	for _, fn := range listeners {
		fn(next)
	}
}
