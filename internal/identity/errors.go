package identity

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginTaken         = errors.New("login is already taken")
	ErrWrongCredentials   = errors.New("wrong login or password")
	ErrSignUpFailed       = errors.New("sign up failed")
	ErrSignInFailed       = errors.New("sign in failed")
)
