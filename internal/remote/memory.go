package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/resume-craft/internal/types"
)

// MemoryBackend keeps documents in memory. Useful in tests and for a session without a server.
type MemoryBackend struct {
	mu     sync.RWMutex
	docs   map[string][]byte
	merges int

	// FetchErr and MergeErr, when set, are returned instead of touching the store.
	FetchErr error
	MergeErr error
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Fetch returns the user's document or ErrNotFound.
func (b *MemoryBackend) Fetch(ctx context.Context, userID string) (*types.ResumeData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.FetchErr != nil {
		return nil, b.FetchErr
	}
	raw, ok := b.docs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return decodeDocument(raw)
}

// Merge shallow-merges data into the user's document.
func (b *MemoryBackend) Merge(ctx context.Context, userID string, data types.ResumeData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	incoming, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	return b.MergeRaw(ctx, userID, incoming)
}

// MergeRaw shallow-merges a raw JSON object into the user's document.
func (b *MemoryBackend) MergeRaw(_ context.Context, userID string, incoming []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.MergeErr != nil {
		return b.MergeErr
	}
	merged, err := mergeDocuments(b.docs[userID], incoming)
	if err != nil {
		return err
	}
	b.docs[userID] = merged
	b.merges++
	return nil
}

// Raw returns the stored document for userID, if any.
func (b *MemoryBackend) Raw(userID string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	raw, ok := b.docs[userID]
	return raw, ok
}

// Merges returns how many merges succeeded.
func (b *MemoryBackend) Merges() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.merges
}
