package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	usersTable     = "users"
	documentsTable = "documents"
	blobsTable     = "blobs"
)

var (
	userColumns     = []string{"user_id", "login", "password_hash", "created_at"}
	documentColumns = []string{"id", "fields"}
	blobColumns     = []string{"path", "generation", "content_type", "updated_at"}
)

// upsertBlobSuffix bumps the generation of an existing path. Both SQLite
// (3.35+) and PostgreSQL accept this ON CONFLICT ... RETURNING form.
const upsertBlobSuffix = `ON CONFLICT (path) DO UPDATE SET
		generation = blobs.generation + 1,
		content_type = excluded.content_type,
		updated_at = excluded.updated_at
	RETURNING generation`

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, scope models.Scope, id string, fields []byte, now time.Time) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns("scope", "id", "fields", "created_at", "updated_at").
		Values(scope.String(), id, string(fields), now, now).
		ToSql()
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, scope models.Scope, id string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"scope": scope.String(), "id": id}).
		ToSql()
}

func buildListDocumentsQuery(b sq.StatementBuilderType, scope models.Scope) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"scope": scope.String()}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpdateDocumentQuery(b sq.StatementBuilderType, scope models.Scope, id string, fields []byte, now time.Time) (string, []any, error) {
	return b.Update(documentsTable).
		Set("fields", string(fields)).
		Set("updated_at", now).
		Where(sq.Eq{"scope": scope.String(), "id": id}).
		ToSql()
}

func buildDeleteDocumentQuery(b sq.StatementBuilderType, scope models.Scope, id string) (string, []any, error) {
	return b.Delete(documentsTable).
		Where(sq.Eq{"scope": scope.String(), "id": id}).
		ToSql()
}

func buildBumpBlobQuery(b sq.StatementBuilderType, path, contentType string, now time.Time) (string, []any, error) {
	return b.Insert(blobsTable).
		Columns(blobColumns...).
		Values(path, 1, contentType, now).
		Suffix(upsertBlobSuffix).
		ToSql()
}

func buildFindBlobQuery(b sq.StatementBuilderType, path string) (string, []any, error) {
	return b.Select(blobColumns...).
		From(blobsTable).
		Where(sq.Eq{"path": path}).
		ToSql()
}
