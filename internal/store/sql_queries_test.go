// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListDocumentsQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		dialect     Dialect
		placeholder string
	}{
		{name: "postgres", dialect: DialectPostgres, placeholder: "$1"},
		{name: "sqlite", dialect: DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListDocumentsQuery(statementBuilder(tt.dialect), "users/u1/notes")
			require.NoError(t, err)

			assert.Contains(t, query, "scope = "+tt.placeholder)
			assert.Contains(t, query, "ORDER BY created_at, id")
			assert.Equal(t, []any{"users/u1/notes"}, args)
		})
	}
}

func Test_buildUpdateDocumentQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpdateDocumentQuery(statementBuilder(DialectPostgres), "users/u1/notes", "n1", []byte(`{"title":"x"}`), now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE documents SET fields = $1, updated_at = $2 WHERE id = $3 AND scope = $4", query)
	assert.Equal(t, []any{`{"title":"x"}`, now, "n1", "users/u1/notes"}, args)
}

func Test_buildBumpBlobQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildBumpBlobQuery(statementBuilder(DialectSQLite), "notes/u1/n1", "image/png", now)
	require.NoError(t, err)

	q := strings.Join(strings.Fields(query), " ")
	assert.True(t, strings.HasPrefix(q, "INSERT INTO blobs (path,generation,content_type,updated_at) VALUES (?,?,?,?)"))
	assert.Contains(t, q, "ON CONFLICT (path) DO UPDATE SET generation = blobs.generation + 1")
	assert.Contains(t, q, "RETURNING generation")
	assert.Equal(t, []any{"notes/u1/n1", 1, "image/png", now}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{UserID: "u1", Login: "ann", PasswordHash: "h", CreatedAt: time.Unix(0, 0)}

	query, args, err := buildInsertUserQuery(statementBuilder(DialectPostgres), user)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (user_id,login,password_hash,created_at) VALUES ($1,$2,$3,$4)", query)
	assert.Len(t, args, 4)
}
