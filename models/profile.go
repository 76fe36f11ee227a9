// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the typed view of the singleton profile record of a user.
type Profile struct {
	UserID          string
	Name            string
	PhoneNumber     string
	ProfileImageURL string
}

// ProfileFromRecord maps a record of the [Profiles] collection.
func ProfileFromRecord(r Record) Profile {
	return Profile{
		UserID:          r.ID,
		Name:            r.Fields.String("name"),
		PhoneNumber:     r.Fields.String("phoneNumber"),
		ProfileImageURL: r.Fields.String(Profiles.AssetField),
	}
}

// TextFields returns the editable fields of p.
func (p Profile) TextFields() Fields {
	return Fields{"name": p.Name, "phoneNumber": p.PhoneNumber}
}
