package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps each entity kind in its own (id, doc jsonb) table.
// Table names come from the fixed set in stores.go, never from input.
type PostgresStore[E Record[E], P Patch[E]] struct {
	db    *sqlx.DB
	table string
}

// NewPostgresStore builds a store over the named table, creating it when
// missing.
func NewPostgresStore[E Record[E], P Patch[E]](db *sqlx.DB, table string) (*PostgresStore[E, P], error) {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`, table)
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return &PostgresStore[E, P]{db: db, table: table}, nil
}

func (s *PostgresStore[E, P]) Create(ctx context.Context, input E) (E, error) {
	var zero E
	rec := input.WithID(uuid.NewString())
	doc, err := marshalRecord(rec)
	if err != nil {
		return zero, err
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, s.table)
	if _, err := s.db.ExecContext(ctx, query, rec.RecordID(), doc); err != nil {
		return zero, fmt.Errorf("failed to insert into %s: %w", s.table, err)
	}
	return rec, nil
}

func (s *PostgresStore[E, P]) GetAll(ctx context.Context) ([]E, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s`, s.table)
	return s.selectDocs(ctx, query)
}

func (s *PostgresStore[E, P]) GetByID(ctx context.Context, id string) (E, bool, error) {
	var zero E
	var doc []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.table)
	err := s.db.GetContext(ctx, &doc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to read from %s: %w", s.table, err)
	}
	var rec E
	if err := unmarshalRecord(doc, &rec); err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (s *PostgresStore[E, P]) GetByField(ctx context.Context, field, value string) ([]E, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE doc->>$1 = $2`, s.table)
	return s.selectDocs(ctx, query, field, value)
}

// Update merges inside a transaction so the read-merge-write step is atomic
// per call.
func (s *PostgresStore[E, P]) Update(ctx context.Context, id string, patch P) (E, bool, error) {
	var zero E
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return zero, false, fmt.Errorf("failed to begin update on %s: %w", s.table, err)
	}
	defer tx.Rollback()

	var doc []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1 FOR UPDATE`, s.table)
	err = tx.GetContext(ctx, &doc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to read from %s: %w", s.table, err)
	}

	var rec E
	if err := unmarshalRecord(doc, &rec); err != nil {
		return zero, false, err
	}
	updated := patch.Apply(rec)
	newDoc, err := marshalRecord(updated)
	if err != nil {
		return zero, false, err
	}

	query = fmt.Sprintf(`UPDATE %s SET doc = $1 WHERE id = $2`, s.table)
	if _, err := tx.ExecContext(ctx, query, newDoc, id); err != nil {
		return zero, false, fmt.Errorf("failed to update %s: %w", s.table, err)
	}
	if err := tx.Commit(); err != nil {
		return zero, false, fmt.Errorf("failed to commit update on %s: %w", s.table, err)
	}
	return updated, true, nil
}

func (s *PostgresStore[E, P]) Delete(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", s.table, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", s.table, err)
	}
	return removed > 0, nil
}

func (s *PostgresStore[E, P]) selectDocs(ctx context.Context, query string, args ...any) ([]E, error) {
	var docs [][]byte
	if err := s.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to read from %s: %w", s.table, err)
	}
	out := make([]E, 0, len(docs))
	for _, doc := range docs {
		var rec E
		if err := unmarshalRecord(doc, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
