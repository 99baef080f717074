// Package history records answered consultations in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"afyabuddy/internal/models"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultLimit is used by Recent when the caller passes a non-positive limit
const DefaultLimit = 20

// Store manages the consultation log.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens a consultation log at dbPath and applies the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: dbPath}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS consultations (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT,
		query TEXT NOT NULL,
		language TEXT NOT NULL,
		category TEXT NOT NULL,
		urgency TEXT NOT NULL,
		confidence REAL NOT NULL,
		advice TEXT NOT NULL,
		content TEXT NOT NULL,
		recommendations_json TEXT,
		clinics_json TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_consultations_session ON consultations(session_id);
	CREATE INDEX IF NOT EXISTS idx_consultations_category ON consultations(category);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Record stores a consultation.
func (s *Store) Record(ctx context.Context, c *models.Consultation) error {
	recs, err := json.Marshal(c.Result.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	clinics, err := json.Marshal(c.Clinics)
	if err != nil {
		return fmt.Errorf("failed to marshal clinics: %w", err)
	}

	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO consultations
			(id, session_id, query, language, category, urgency, confidence, advice, content,
			 recommendations_json, clinics_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.SessionID, c.Query, c.Language,
		c.Result.Category, string(c.Result.UrgencyLevel), c.Result.Confidence, c.Result.Content, c.Content,
		string(recs), string(clinics), created.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record consultation: %w", err)
	}
	return nil
}

// Recent returns up to limit consultations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Consultation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, query, language, category, urgency, confidence, advice, content,
		       recommendations_json, clinics_json, created_at
		FROM consultations
		ORDER BY seq DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}
	defer rows.Close()

	var out []models.Consultation
	for rows.Next() {
		var (
			c                   models.Consultation
			sessionID           sql.NullString
			urgency             string
			recsJSON, clinicsJS sql.NullString
			created             string
		)
		if err := rows.Scan(&c.ID, &sessionID, &c.Query, &c.Language,
			&c.Result.Category, &urgency, &c.Result.Confidence, &c.Result.Content, &c.Content,
			&recsJSON, &clinicsJS, &created); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}

		c.SessionID = sessionID.String
		c.Result.UrgencyLevel = models.ParseUrgency(urgency)
		if recsJSON.Valid {
			if err := json.Unmarshal([]byte(recsJSON.String), &c.Result.Recommendations); err != nil {
				return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
			}
		}
		if clinicsJS.Valid {
			if err := json.Unmarshal([]byte(clinicsJS.String), &c.Clinics); err != nil {
				return nil, fmt.Errorf("failed to unmarshal clinics: %w", err)
			}
		}
		if c.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByCategory returns how many consultations fell into each triage category.
func (s *Store) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM consultations GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			category string
			n        int
		)
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[category] = n
	}
	return counts, rows.Err()
}
