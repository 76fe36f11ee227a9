// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is an optional subject identifier bound to the active session.
// The zero value is "none": no user is signed in.
type Identity struct {
	subject string
}

// NoIdentity is the signed-out identity.
var NoIdentity = Identity{}

// NewIdentity returns an identity for subject. An empty subject yields
// [NoIdentity].
func NewIdentity(subject string) Identity {
	return Identity{subject: subject}
}

// Subject returns the subject identifier and true, or "" and false when no
// identity is present.
func (i Identity) Subject() (string, bool) {
	return i.subject, i.subject != ""
}

// IsNone reports whether i carries no subject.
func (i Identity) IsNone() bool {
	return i.subject == ""
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	if i.IsNone() {
		return "none"
	}
	return i.subject
}
