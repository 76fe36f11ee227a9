package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"

	minPasswordLength = 6
)

// CredentialsValidator validates sign-up and sign-in input.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(creds.Login) == "" {
				return ErrEmptyLogin
			}
			if strings.ContainsAny(creds.Login, " \t\n/") {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
