package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField     = errors.New("field is required")
	ErrInvalidFieldValue = errors.New("invalid field value")

	ErrEmptyLogin       = errors.New("login is required")
	ErrInvalidLogin     = errors.New("login must not contain whitespace or '/'")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
)
