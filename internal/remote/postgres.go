package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-craft/internal/db"
	"github.com/jonathan/resume-craft/internal/types"
)

// documentStore is the slice of *db.DB the Postgres backend needs.
type documentStore interface {
	GetResumeDocument(ctx context.Context, userID string) (*db.ResumeDocument, error)
	MergeResumeDocument(ctx context.Context, userID string, document json.RawMessage) error
}

// PostgresBackend stores documents in the resumes table.
// The JSONB || operator provides the merge semantics.
type PostgresBackend struct {
	db documentStore
}

// NewPostgresBackend creates a backend on top of an open database.
func NewPostgresBackend(database *db.DB) *PostgresBackend {
	return &PostgresBackend{db: database}
}

// Fetch returns the user's document or ErrNotFound.
func (b *PostgresBackend) Fetch(ctx context.Context, userID string) (*types.ResumeData, error) {
	doc, err := b.db.GetResumeDocument(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return decodeDocument(doc.Document)
}

// Merge writes data into the user's row.
func (b *PostgresBackend) Merge(ctx context.Context, userID string, data types.ResumeData) error {
	document, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	return b.db.MergeResumeDocument(ctx, userID, document)
}
