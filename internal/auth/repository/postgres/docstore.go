package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
)

// PgxIface is the subset of pgxpool.Pool the store needs. pgxmock satisfies
// it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentStore keeps every collection in one table of JSONB documents:
//
//	documents(collection text, key text, fields jsonb, primary key (collection, key))
//
// Set is a full overwrite of fields, and BatchDelete is a single DELETE
// statement, which gives the per-document atomicity the callers rely on.
type DocumentStore struct {
	db PgxIface
}

func NewDocumentStore(db PgxIface) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Get(ctx context.Context, collection, key string) (map[string]any, error) {
	query := `
		SELECT fields
		FROM documents
		WHERE collection = $1 AND key = $2
		LIMIT 1;
	`
	row := s.db.QueryRow(ctx, query, collection, key)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, key, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document %s/%s: %w", collection, key, err)
	}

	return fields, nil
}

func (s *DocumentStore) Set(ctx context.Context, collection, key string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, key, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (collection, key, fields)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, key)
		DO UPDATE SET fields = EXCLUDED.fields
	`, collection, key, raw)

	return err
}

func (s *DocumentStore) Delete(ctx context.Context, collection, key string) error {
	// Deleting an absent document is a no-op.
	_, err := s.db.Exec(ctx, `
		DELETE FROM documents WHERE collection = $1 AND key = $2
	`, collection, key)

	return err
}

func (s *DocumentStore) Query(ctx context.Context, q domain.Query) ([]domain.Document, error) {
	sql, args, err := buildWhere(`SELECT key, fields FROM documents`, q.Collection, q.Filters)
	if err != nil {
		return nil, err
	}

	switch {
	case q.OrderBy == "" && q.Descending:
		sql += ` ORDER BY key DESC`
	case q.OrderBy == "":
		sql += ` ORDER BY key`
	default:
		args = append(args, q.OrderBy)
		sql += fmt.Sprintf(` ORDER BY fields->>$%d`, len(args))
		if q.Descending {
			sql += ` DESC`
		}
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Collection, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			key string
			raw []byte
		)
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", q.Collection, err)
		}

		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %s/%s: %w", q.Collection, key, err)
		}

		docs = append(docs, domain.Document{Key: key, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", q.Collection, err)
	}

	return docs, nil
}

func (s *DocumentStore) Count(ctx context.Context, collection string, filters []domain.Filter) (int, error) {
	sql, args, err := buildWhere(`SELECT COUNT(*) FROM documents`, collection, filters)
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}

	return count, nil
}

func (s *DocumentStore) BatchDelete(ctx context.Context, collection string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.db.Exec(ctx, `
		DELETE FROM documents WHERE collection = $1 AND key = ANY($2)
	`, collection, keys)

	return err
}

func buildWhere(selectClause, collection string, filters []domain.Filter) (string, []any, error) {
	sql := selectClause + ` WHERE collection = $1`
	args := []any{collection}

	for _, f := range filters {
		op, ok := sqlOp(f.Op)
		if !ok {
			return "", nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}

		args = append(args, f.Field)
		fieldExpr := fmt.Sprintf("fields->>$%d", len(args))

		// Timestamps are stored as RFC 3339 strings; compare them as
		// timestamps so mixed precision still orders correctly.
		if t, isTime := f.Value.(time.Time); isTime {
			args = append(args, t)
			sql += fmt.Sprintf(" AND (%s)::timestamptz %s $%d", fieldExpr, op, len(args))
			continue
		}

		args = append(args, fmt.Sprint(f.Value))
		sql += fmt.Sprintf(" AND %s %s $%d", fieldExpr, op, len(args))
	}

	return sql, args, nil
}

func sqlOp(op string) (string, bool) {
	switch op {
	case "==":
		return "=", true
	case ">=", "<", "<=", ">":
		return op, true
	}

	return "", false
}
