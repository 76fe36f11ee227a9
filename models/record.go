// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Fields maps field names of a record to scalar or string values.
// Values decoded from JSON carry float64 for numbers.
type Fields map[string]any

// Clone returns a shallow copy of f. Field values are scalars, so the copy
// never aliases mutable state of the original. A nil map clones to an empty one.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	maps.Copy(out, f)
	return out
}

// String returns the value of name as a string, or "" when it is absent or
// not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Has reports whether name is present in f.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Record is one synchronized entity owned by the remote store.
type Record struct {
	// ID is assigned by the remote store on creation and is never reused.
	ID string `json:"id"`

	// Fields holds the record's named values (title/content/imageUrl for
	// notes, name/age for people, ...).
	Fields Fields `json:"fields"`
}

// Clone returns a deep copy of r suitable for holding outside the snapshot
// it came from.
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: r.Fields.Clone()}
}

// Snapshot is the complete ordered membership of a collection at one point in
// time. A new snapshot replaces the previous one wholesale; ordering is
// whatever the store returned and must not be used for identity.
type Snapshot []Record

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	out := make(Snapshot, len(s))
	for i, r := range s {
		out[i] = r.Clone()
	}
	return out
}

// Find returns the record with the given id.
func (s Snapshot) Find(id string) (Record, bool) {
	for _, r := range s {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Contains reports whether a record with the given id is a member of s.
func (s Snapshot) Contains(id string) bool {
	_, ok := s.Find(id)
	return ok
}
