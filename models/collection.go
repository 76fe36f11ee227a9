// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldKind is the value type of a collection field.
type FieldKind string

const (
	FieldText FieldKind = "text"
	FieldInt  FieldKind = "int"
)

// FieldSpec describes a single text field of a collection.
type FieldSpec struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

// Collection describes one record variant and where it lives remotely.
type Collection struct {
	// Name is the sub-collection name under the identity scope.
	Name string

	// Fields lists the editable text fields in display order.
	Fields []FieldSpec

	// AssetField is the name of the field holding a blob URL, or "" when the
	// collection carries no asset.
	AssetField string

	// AssetPrefix is the first path segment of blobs uploaded for this
	// collection.
	AssetPrefix string
}

// Built-in collections.
var (
	Notes = Collection{
		Name: "notes",
		Fields: []FieldSpec{
			{Name: "title", Label: "Title", Kind: FieldText, Required: true},
			{Name: "content", Label: "Content", Kind: FieldText},
		},
		AssetField:  "imageUrl",
		AssetPrefix: "notes",
	}

	People = Collection{
		Name: "people",
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "age", Label: "Age", Kind: FieldInt, Required: true},
		},
	}

	Profiles = Collection{
		Name: "profile",
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Kind: FieldText, Required: true},
			{Name: "phoneNumber", Label: "Phone", Kind: FieldText, Required: true},
		},
		AssetField:  "profileImageUrl",
		AssetPrefix: "profiles",
	}
)

// Scope returns the identity-bound path of the collection for subject.
func (c Collection) Scope(subject string) Scope {
	return Scope("users/" + subject + "/" + c.Name)
}

// HasAsset reports whether the collection has an asset field.
func (c Collection) HasAsset() bool {
	return c.AssetField != ""
}

// Field returns the definition of the named field.
func (c Collection) Field(name string) (FieldSpec, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// TextFields returns the subset of f that belongs to the collection's
// declared fields. The asset field and unknown keys are dropped.
func (c Collection) TextFields(f Fields) Fields {
	out := make(Fields, len(c.Fields))
	for _, spec := range c.Fields {
		if v, ok := f[spec.Name]; ok {
			out[spec.Name] = v
		}
	}
	return out
}

// ParseInput converts raw user input for the named field into its stored
// value type.
func (c Collection) ParseInput(name, raw string) (any, error) {
	spec, ok := c.Field(name)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", name)
	}

	switch spec.Kind {
	case FieldInt:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// FormatValue renders a stored value of the named field for display or
// editing.
func (c Collection) FormatValue(name string, v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Title returns the display label of r: the value of its first field.
func (c Collection) Title(r Record) string {
	if len(c.Fields) == 0 {
		return r.ID
	}
	return c.FormatValue(c.Fields[0].Name, r.Fields[c.Fields[0].Name])
}

// Scope is the identity-bound sub-collection path a record belongs to,
// e.g. "users/{subject}/notes".
type Scope string

// String implements fmt.Stringer.
func (s Scope) String() string {
	return string(s)
}

// Owner returns the subject segment of s, or "" when s is not an identity
// scope.
func (s Scope) Owner() string {
	parts := strings.Split(string(s), "/")
	if len(parts) < 3 || parts[0] != "users" {
		return ""
	}
	return parts[1]
}

// CollectionName returns the last segment of s, or "" when s is not an
// identity scope.
func (s Scope) CollectionName() string {
	parts := strings.Split(string(s), "/")
	if len(parts) != 3 || parts[0] != "users" {
		return ""
	}
	return parts[2]
}

// ErrInvalidScope is returned by ParseScope for paths that are not of the
// form "users/{subject}/{collection}".
var ErrInvalidScope = errors.New("invalid scope")

// ParseScope validates raw as an identity scope.
func ParseScope(raw string) (Scope, error) {
	parts := strings.Split(strings.Trim(raw, "/"), "/")
	if len(parts) != 3 || parts[0] != "users" || parts[1] == "" || parts[2] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, raw)
	}
	return Scope(strings.Join(parts, "/")), nil
}
