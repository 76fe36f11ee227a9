// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording of client outcomes.
//
// All Msg* constants are the strings shown in the terminal UI. Describe maps
// an error returned by the client services to one of them, so every screen
// reports the same failure the same way.
package app

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/gateway"
	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/validators"
)

const (
	// MsgServerUnavailable is shown when the store cannot be reached.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgNotSignedIn is shown when an operation needs an identity and none
	// is present.
	MsgNotSignedIn = "you are not signed in"

	// MsgWrongCredentials is shown when the login/password pair is rejected.
	MsgWrongCredentials = "invalid login/password"

	// MsgLoginTaken is shown when registration hits an existing login.
	MsgLoginTaken = "login already exists"

	// MsgSaveFailed is shown when the store rejects a write.
	MsgSaveFailed = "could not save, please try again"

	// MsgLoadFailed is shown when a record could not be fetched.
	MsgLoadFailed = "could not load, please try again"

	// MsgRecordNotFound is shown when the target record no longer exists.
	MsgRecordNotFound = "the record no longer exists"

	// MsgNotInView is shown when a selection targets a record that left the
	// live view.
	MsgNotInView = "the record is no longer in the list"

	// MsgUploadFailed is shown when an image could not be uploaded.
	MsgUploadFailed = "image upload failed"

	// MsgImageNotLinked is shown for a partial commit: the record is saved
	// but its image is not.
	MsgImageNotLinked = "saved, but the image could not be attached; save again to retry"

	// MsgLiveUpdatesLost is shown when the push subscription breaks.
	MsgLiveUpdatesLost = "live updates interrupted, reconnecting"

	// MsgUnexpected is the fallback.
	MsgUnexpected = "something went wrong"
)

// Describe returns the message to show for err, or "" for a nil error.
// Validation failures keep their own wording since it names the field.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var validation string
	switch {
	case errors.Is(err, service.ErrAssetNotLinked):
		return MsgImageNotLinked
	case errors.Is(err, service.ErrNotInView):
		return MsgNotInView
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, identity.ErrInvalidCredentials):
		validation = validationText(err)
	case errors.Is(err, identity.ErrWrongCredentials):
		return MsgWrongCredentials
	case errors.Is(err, identity.ErrLoginTaken):
		return MsgLoginTaken
	case errors.Is(err, gateway.ErrUnauthenticated):
		return MsgNotSignedIn
	case isUnreachable(err):
		return MsgServerUnavailable
	case errors.Is(err, gateway.ErrNotFound):
		return MsgRecordNotFound
	case errors.Is(err, gateway.ErrUploadFailed),
		errors.Is(err, gateway.ErrInvalidAssetKey):
		return MsgUploadFailed
	case errors.Is(err, gateway.ErrSubscribeFailed):
		return MsgLiveUpdatesLost
	case errors.Is(err, gateway.ErrRemoteReadFailed):
		return MsgLoadFailed
	case errors.Is(err, gateway.ErrRemoteWriteFailed),
		errors.Is(err, identity.ErrSignUpFailed),
		errors.Is(err, identity.ErrSignInFailed):
		return MsgSaveFailed
	default:
		return MsgUnexpected
	}

	return validation
}

var validationErrors = []error{
	validators.ErrRequiredField,
	validators.ErrInvalidFieldValue,
	validators.ErrEmptyLogin,
	validators.ErrInvalidLogin,
	validators.ErrEmptyPassword,
	validators.ErrPasswordTooShort,
}

// validationText returns the most specific validator wording found in err.
func validationText(err error) string {
	for _, target := range validationErrors {
		if !errors.Is(err, target) {
			continue
		}
		// the detail after the sentinel names the offending field
		msg := err.Error()
		if i := strings.Index(msg, target.Error()); i >= 0 {
			return msg[i:]
		}
		return target.Error()
	}
	return err.Error()
}

func isUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable")
}
