package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidRecord is returned for writes whose fields are not a flat map
	// of scalar values.
	ErrInvalidRecord = errors.New("record fields must be scalar values")

	// ErrInvalidBlobToken means the token of a blob retrieval URL does not
	// match its path.
	ErrInvalidBlobToken = errors.New("invalid blob token")
)
