// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// documentRepository implements [DocumentRepository] against the "documents"
// table. A record is keyed by (scope, id) and its fields live in one JSON
// text column.
type documentRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *documentRepository) Insert(ctx context.Context, scope models.Scope, record models.Record) error {
	log := logger.FromContext(ctx)

	fields, err := encodeFields(record.Fields)
	if err != nil {
		return err
	}

	query, args, err := buildInsertDocumentQuery(r.db.builder(), scope, record.ID, fields, r.now())
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Insert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		log.Err(err).Str("func", "documentRepository.Insert").Str("scope", scope.String()).Msg("error inserting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error {
	log := logger.FromContext(ctx).WithStr("scope", scope.String())

	return r.db.withRetry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "documentRepository.Patch").Msg("error beginning transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		selectQuery := r.db.builder().
			Select("fields").
			From(documentsTable).
			Where("scope = ? AND id = ?", scope.String(), id)
		if r.db.dialect == DialectPostgres {
			selectQuery = selectQuery.Suffix("FOR UPDATE")
		}
		query, args, err := selectQuery.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var raw string
		err = tx.QueryRowContext(ctx, query, args...).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		if err != nil {
			log.Err(err).Str("func", "documentRepository.Patch").Str("id", id).Msg("error reading record")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		fields, err := decodeFields(raw)
		if err != nil {
			return err
		}
		maps.Copy(fields, patch)

		encoded, err := encodeFields(fields)
		if err != nil {
			return err
		}

		query, args, err = buildUpdateDocumentQuery(r.db.builder(), scope, id, encoded, r.now())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "documentRepository.Patch").Str("id", id).Msg("error updating record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

func (r *documentRepository) Delete(ctx context.Context, scope models.Scope, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(r.db.builder(), scope, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Delete").Str("id", id).Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *documentRepository) Get(ctx context.Context, scope models.Scope, id string) (models.Record, error) {
	query, args, err := buildSelectDocumentQuery(r.db.builder(), scope, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record models.Record
		raw    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentRepository.Get").Str("id", id).Msg("error reading record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if record.Fields, err = decodeFields(raw); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (r *documentRepository) List(ctx context.Context, scope models.Scope) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(r.db.builder(), scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.List").Str("scope", scope.String()).Msg("error listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshot := models.Snapshot{}
	for rows.Next() {
		var (
			record models.Record
			raw    string
		)
		if err = rows.Scan(&record.ID, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if record.Fields, err = decodeFields(raw); err != nil {
			return nil, err
		}
		snapshot = append(snapshot, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshot, nil
}

func encodeFields(fields models.Fields) ([]byte, error) {
	if fields == nil {
		fields = models.Fields{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return data, nil
}

func decodeFields(raw string) (models.Fields, error) {
	fields := models.Fields{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return fields, nil
}
