// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials are the login/password pair submitted on sign-up and sign-in.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// User is an account known to the remote store.
// PasswordHash never leaves the server.
type User struct {
	// UserID is the opaque subject identifier bound to sessions of this user.
	UserID string `json:"user_id"`

	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
