// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AssetAction tells the submit protocol what to do with a record's asset.
type AssetAction int

const (
	// AssetUnchanged omits the asset field from any patch.
	AssetUnchanged AssetAction = iota
	// AssetReplace uploads LocalRef and links the resulting URL.
	AssetReplace
	// AssetRemove sets the asset field to "".
	AssetRemove
)

// AssetEdit is the pending asset change of a draft or selection.
type AssetEdit struct {
	Action AssetAction

	// LocalRef is an opaque reference to a local file; only meaningful for
	// AssetReplace.
	LocalRef string
}

// Draft holds the form state for a record that does not exist yet.
type Draft struct {
	Fields Fields
	Asset  AssetEdit
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	return Draft{Fields: d.Fields.Clone(), Asset: d.Asset}
}

// Selection is the single record staged for editing. It is a value copy of
// the record taken at select time and never aliases a snapshot.
type Selection struct {
	ID     string
	Fields Fields

	// Original holds the field values the record had when selected. Only
	// fields that differ from it are sent on update.
	Original Fields

	// OriginalAsset is the remote asset URL the record had when selected.
	OriginalAsset string

	Asset AssetEdit
}

// Clone returns a deep copy of s.
func (s Selection) Clone() Selection {
	return Selection{
		ID:            s.ID,
		Fields:        s.Fields.Clone(),
		Original:      s.Original.Clone(),
		OriginalAsset: s.OriginalAsset,
		Asset:         s.Asset,
	}
}
