// Package db provides PostgreSQL storage for resume sessions, their
// artifacts, and user accounts.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateSession creates a new session record and returns its ID. userID may
// be nil for anonymous sessions.
func (db *DB) CreateSession(ctx context.Context, userID *uuid.UUID, filename, template string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sessions (user_id, filename, template, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, filename, template, StatusParsed,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// UpdateSessionStatus advances a session through the workflow
func (db *DB) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sessions SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID, returning nil when not found
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, template, status, created_at, updated_at
		 FROM sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.UserID, &s.Filename, &s.Template, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// SessionFilters holds optional filters for listing sessions
type SessionFilters struct {
	UserID uuid.UUID
	Status string
	Limit  int
}

// ListSessions retrieves recent sessions with optional filters
func (db *DB) ListSessions(ctx context.Context, filters SessionFilters) ([]Session, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, filename, template, status, created_at, updated_at
		FROM sessions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Filename, &s.Template, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// DeleteSession deletes a session and all its artifacts (via cascade)
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	return nil
}

// SaveArtifact stores a JSON artifact for a session, replacing any existing
// artifact of the same kind
func (db *DB) SaveArtifact(ctx context.Context, sessionID uuid.UUID, kind string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO session_artifacts (session_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET content = $3, text_content = NULL, created_at = NOW()`,
		sessionID, kind, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", kind, err)
	}
	return nil
}

// SaveTextArtifact stores a text artifact (raw resume text, job description)
// for a session
func (db *DB) SaveTextArtifact(ctx context.Context, sessionID uuid.UUID, kind, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO session_artifacts (session_id, kind, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET text_content = $3, content = NULL, created_at = NOW()`,
		sessionID, kind, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text artifact %s: %w", kind, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by session ID and kind, returning
// nil when absent
func (db *DB) GetArtifact(ctx context.Context, sessionID uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM session_artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", kind, err)
	}
	return content, nil
}

// GetTextArtifact retrieves a text artifact by session ID and kind
func (db *DB) GetTextArtifact(ctx context.Context, sessionID uuid.UUID, kind string) (string, error) {
	var text *string
	err := db.pool.QueryRow(ctx,
		`SELECT text_content FROM session_artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get text artifact %s: %w", kind, err)
	}
	if text == nil {
		return "", nil
	}
	return *text, nil
}

// GetArtifactInto retrieves a JSON artifact and unmarshals it into dest.
// Returns false when the artifact does not exist.
func (db *DB) GetArtifactInto(ctx context.Context, sessionID uuid.UUID, kind string, dest any) (bool, error) {
	content, err := db.GetArtifact(ctx, sessionID, kind)
	if err != nil {
		return false, err
	}
	if content == nil {
		return false, nil
	}
	if err := json.Unmarshal(content, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal artifact %s: %w", kind, err)
	}
	return true, nil
}
