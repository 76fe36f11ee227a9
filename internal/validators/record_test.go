// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordValidator(t *testing.T) {
	v := NewRecordValidator(models.Notes)
	require.NotNil(t, v)
}

func TestRecordValidator_Notes(t *testing.T) {
	v := NewRecordValidator(models.Notes)
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "title and content", obj: models.Fields{"title": "x", "content": "y"}},
		{name: "title only", obj: models.Fields{"title": "x"}},
		{name: "asset field ignored", obj: models.Fields{"title": "x", "imageUrl": ""}},
		{name: "missing title", obj: models.Fields{"content": "y"}, wantErr: ErrRequiredField},
		{name: "blank title", obj: models.Fields{"title": "   "}, wantErr: ErrRequiredField},
		{name: "non text title", obj: models.Fields{"title": 5}, wantErr: ErrInvalidFieldValue},
		{name: "draft", obj: models.Draft{Fields: models.Fields{"title": "x"}}},
		{name: "draft pointer missing title", obj: &models.Draft{Fields: models.Fields{}}, wantErr: ErrRequiredField},
		{name: "selection", obj: models.Selection{ID: "42", Fields: models.Fields{"title": "new"}}},
		{name: "record pointer", obj: &models.Record{ID: "1", Fields: models.Fields{"title": "x"}}},
		{name: "unsupported type", obj: "title", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_People(t *testing.T) {
	v := NewRecordValidator(models.People)
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Fields{"name": "Ann", "age": 31}))
	assert.NoError(t, v.Validate(ctx, models.Fields{"name": "Ann", "age": float64(31)}))
	assert.ErrorIs(t, v.Validate(ctx, models.Fields{"name": "Ann"}), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(ctx, models.Fields{"name": "Ann", "age": 31.5}), ErrInvalidFieldValue)
	assert.ErrorIs(t, v.Validate(ctx, models.Fields{"name": "Ann", "age": "31"}), ErrInvalidFieldValue)
}

func TestRecordValidator_FieldScoping(t *testing.T) {
	v := NewRecordValidator(models.Profiles)
	ctx := context.Background()

	fields := models.Fields{"name": "Ann"}
	assert.NoError(t, v.Validate(ctx, fields, "name"))
	assert.ErrorIs(t, v.Validate(ctx, fields), ErrRequiredField)
	assert.ErrorIs(t, v.Validate(ctx, fields, "nickname"), ErrUnknownField)
}

func TestRecordValidator_ErrorNamesField(t *testing.T) {
	v := NewRecordValidator(models.Profiles)

	err := v.Validate(context.Background(), models.Fields{"name": "Ann"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone")
}
