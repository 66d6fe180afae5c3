package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetResumeDocument retrieves the resume document for a user.
// Returns nil, nil when the user has none.
func (db *DB) GetResumeDocument(ctx context.Context, userID string) (*ResumeDocument, error) {
	var doc ResumeDocument
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, document, created_at, updated_at
		 FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&doc.UserID, &doc.Document, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume document: %w", err)
	}
	return &doc, nil
}

// MergeResumeDocument writes document for a user with merge semantics: top-level keys
// present in document replace the stored ones, keys absent from it are kept.
func (db *DB) MergeResumeDocument(ctx context.Context, userID string, document json.RawMessage) error {
	if !json.Valid(document) {
		return fmt.Errorf("resume document for %s is not valid JSON", userID)
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO resumes (user_id, document)
		 VALUES ($1, $2::jsonb)
		 ON CONFLICT (user_id) DO UPDATE
		 SET document = resumes.document || EXCLUDED.document, updated_at = NOW()`,
		userID, []byte(document),
	)
	if err != nil {
		return fmt.Errorf("failed to merge resume document: %w", err)
	}
	return nil
}
