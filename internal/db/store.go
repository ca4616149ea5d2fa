package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cases (
	id             TEXT NOT NULL,
	seq            INTEGER NOT NULL,
	schema_name    TEXT NOT NULL,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL DEFAULT '',
	platform       TEXT NOT NULL DEFAULT '',
	priority       TEXT NOT NULL,
	status         TEXT NOT NULL,
	reported_by    TEXT NOT NULL DEFAULT '',
	affected_group TEXT NOT NULL DEFAULT '',
	assigned_to    TEXT NOT NULL DEFAULT 'unassigned',
	resolution     TEXT NOT NULL DEFAULT '',
	severity_score INTEGER NOT NULL,
	affected_count INTEGER NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL,
	resolved_at    TIMESTAMPTZ,
	actions        JSONB NOT NULL DEFAULT '[]',
	chat           JSONB NOT NULL DEFAULT '[]',
	PRIMARY KEY (schema_name, id)
);
CREATE INDEX IF NOT EXISTS cases_schema_seq_idx ON cases (schema_name, seq);
`

// Store mirrors registry cases into Postgres so a restart can restore them.
type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schemaSQL)
	return err
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SaveCase upserts the full case row. Both schemas number from the same
// first id, so rows are keyed by schema too. A snapshot older than the
// stored row is ignored.
func (s *Store) SaveCase(ctx context.Context, c models.Case) error {
	actions, err := json.Marshal(c.AdvocacyActions)
	if err != nil {
		return fmt.Errorf("encode actions: %w", err)
	}
	chat, err := json.Marshal(c.ChatHistory)
	if err != nil {
		return fmt.Errorf("encode chat: %w", err)
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO cases (id, seq, schema_name, title, description, category, platform, priority, status,
			reported_by, affected_group, assigned_to, resolution, severity_score, affected_count,
			created_at, updated_at, resolved_at, actions, chat)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (schema_name, id) DO UPDATE SET
			status = EXCLUDED.status,
			assigned_to = EXCLUDED.assigned_to,
			resolution = EXCLUDED.resolution,
			updated_at = EXCLUDED.updated_at,
			resolved_at = EXCLUDED.resolved_at,
			actions = EXCLUDED.actions,
			chat = EXCLUDED.chat
		WHERE cases.updated_at <= EXCLUDED.updated_at
	`, c.ID, c.Seq, c.Schema, c.Title, c.Description, c.Category, c.Platform, c.Priority, c.Status,
		c.ReportedBy, c.AffectedGroup, c.AssignedTo, c.Resolution, c.SeverityScore, c.AffectedCount,
		c.CreatedAt, c.UpdatedAt, c.ResolvedAt, actions, chat)
	return err
}

// ListCases returns the archived cases of one schema in id order.
func (s *Store) ListCases(ctx context.Context, schemaName string) ([]models.Case, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, seq, schema_name, title, description, category, platform, priority, status,
			reported_by, affected_group, assigned_to, resolution, severity_score, affected_count,
			created_at, updated_at, resolved_at, actions, chat
		FROM cases
		WHERE schema_name = $1
		ORDER BY seq ASC
	`, schemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Case
	for rows.Next() {
		var (
			c          models.Case
			resolvedAt *time.Time
			actions    []byte
			chat       []byte
		)
		if err := rows.Scan(
			&c.ID, &c.Seq, &c.Schema, &c.Title, &c.Description, &c.Category, &c.Platform, &c.Priority, &c.Status,
			&c.ReportedBy, &c.AffectedGroup, &c.AssignedTo, &c.Resolution, &c.SeverityScore, &c.AffectedCount,
			&c.CreatedAt, &c.UpdatedAt, &resolvedAt, &actions, &chat,
		); err != nil {
			return nil, err
		}
		c.ResolvedAt = resolvedAt
		if err := json.Unmarshal(actions, &c.AdvocacyActions); err != nil {
			return nil, fmt.Errorf("case %s: decode actions: %w", c.ID, err)
		}
		if err := json.Unmarshal(chat, &c.ChatHistory); err != nil {
			return nil, fmt.Errorf("case %s: decode chat: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Truncate drops every archived case. Used by tests and resets.
func (s *Store) Truncate(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `TRUNCATE cases`)
		return err
	})
}
