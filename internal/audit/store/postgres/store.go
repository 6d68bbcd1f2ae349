// Package postgres persists audit events to a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"sortcheck/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the audit_events table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS audit_events (
			id UUID PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			sort_code TEXT NOT NULL,
			account_hash TEXT NOT NULL,
			verdict TEXT NOT NULL,
			attempts INT NOT NULL,
			request_id TEXT NOT NULL DEFAULT '',
			client_ip TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create audit_events table: %w", err)
	}
	return nil
}

// Append inserts an audit event. Duplicate IDs are ignored so redelivery
// from the async publisher stays idempotent.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events (
			id, timestamp, sort_code, account_hash,
			verdict, attempts, request_id, client_ip
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Timestamp,
		event.SortCode,
		event.AccountHash,
		event.Verdict,
		event.Attempts,
		event.RequestID,
		event.ClientIP,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListRecent returns the N most recent events.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT id, timestamp, sort_code, account_hash,
			   verdict, attempts, request_id, client_ip
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var event audit.Event
		err := rows.Scan(
			&event.ID,
			&event.Timestamp,
			&event.SortCode,
			&event.AccountHash,
			&event.Verdict,
			&event.Attempts,
			&event.RequestID,
			&event.ClientIP,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
