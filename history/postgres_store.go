package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store backed by PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL-backed history store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts a new history record.
func (s *PostgresStore) Append(ctx context.Context, record *Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculation_history (id, expression, result, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.Expression, record.Result, string(record.Category), record.Timestamp)

	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

// List returns records newest-first, filtered by category when non-empty,
// capped at limit.
func (s *PostgresStore) List(ctx context.Context, category Category, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `
		SELECT id, expression, result, category, created_at
		FROM calculation_history
	`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, string(category))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var cat string
		if err := rows.Scan(&r.ID, &r.Expression, &r.Result, &cat, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		r.Category = Category(cat)
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history records: %w", err)
	}

	return records, nil
}
