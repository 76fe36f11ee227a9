// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// RecordValidator checks record field values against the schema of one
// [models.Collection]. With no field names it checks every declared field;
// otherwise only the named ones.
type RecordValidator struct {
	collection models.Collection
}

// NewRecordValidator constructs a RecordValidator for collection and returns
// it as the Validator interface.
func NewRecordValidator(collection models.Collection) Validator {
	return &RecordValidator{collection: collection}
}

// Validate accepts [models.Fields], [models.Draft], [models.Selection] and
// [models.Record], by value or pointer.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Fields:
		return v.validateFields(value, fields...)
	case *models.Fields:
		return v.validateFields(*value, fields...)
	case models.Draft:
		return v.validateFields(value.Fields, fields...)
	case *models.Draft:
		return v.validateFields(value.Fields, fields...)
	case models.Selection:
		return v.validateFields(value.Fields, fields...)
	case *models.Selection:
		return v.validateFields(value.Fields, fields...)
	case models.Record:
		return v.validateFields(value.Fields, fields...)
	case *models.Record:
		return v.validateFields(value.Fields, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateFields(values models.Fields, fields ...string) error {
	if len(fields) == 0 {
		for _, spec := range v.collection.Fields {
			fields = append(fields, spec.Name)
		}
	}

	for _, name := range fields {
		spec, ok := v.collection.Field(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}

		value := values[name]
		if isBlank(value) {
			if spec.Required {
				return fmt.Errorf("%w: %s", ErrRequiredField, spec.Label)
			}
			continue
		}

		switch spec.Kind {
		case models.FieldInt:
			if !isInteger(value) {
				return fmt.Errorf("%w: %s must be a whole number", ErrInvalidFieldValue, spec.Label)
			}
		case models.FieldText:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%w: %s must be text", ErrInvalidFieldValue, spec.Label)
			}
		}
	}

	return nil
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// isInteger accepts Go integers and JSON-decoded float64 values without a
// fractional part.
func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v) == math.Trunc(float64(v))
	default:
		return false
	}
}
