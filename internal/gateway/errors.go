package gateway

import "errors"

var (
	// ErrUnauthenticated means no identity was signed in at call time, or the
	// store rejected the session.
	ErrUnauthenticated = errors.New("not signed in")
	// ErrRemoteWriteFailed means the store rejected or could not perform a
	// write.
	ErrRemoteWriteFailed = errors.New("remote write failed")
	// ErrRemoteReadFailed means a single record could not be fetched.
	ErrRemoteReadFailed = errors.New("remote read failed")
	// ErrNotFound means the identity's scope does not contain the record.
	ErrNotFound = errors.New("record not found")
	// ErrSubscribeFailed means the push subscription could not be opened.
	ErrSubscribeFailed = errors.New("subscription failed")
	// ErrUploadFailed means the local file could not be read or the blob
	// store rejected it.
	ErrUploadFailed = errors.New("upload failed")
	// ErrInvalidAssetKey means a path segment of an asset key is unusable.
	ErrInvalidAssetKey = errors.New("invalid asset key")
)
