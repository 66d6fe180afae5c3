// Package remote provides the optional per-user remote copy of the resume.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-craft/internal/types"
)

// ErrNotFound is returned by Fetch when the user has no remote document.
var ErrNotFound = errors.New("remote resume not found")

// Backend stores one resume document per user identity.
//
// Merge writes with merge semantics: top-level keys of the incoming aggregate
// replace stored ones and unknown stored keys survive. Callers always send the
// full aggregate, so in practice a merge is a full overwrite.
type Backend interface {
	Fetch(ctx context.Context, userID string) (*types.ResumeData, error)
	Merge(ctx context.Context, userID string, data types.ResumeData) error
}

// decodeDocument turns a stored document into an aggregate, backfilling defaults.
func decodeDocument(raw []byte) (*types.ResumeData, error) {
	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode remote document: %w", err)
	}
	data = types.WithDefaults(data)
	return &data, nil
}

// mergeDocuments shallow-merges incoming over existing at the top level.
func mergeDocuments(existing, incoming []byte) ([]byte, error) {
	if len(existing) == 0 {
		return incoming, nil
	}

	var base map[string]json.RawMessage
	if err := json.Unmarshal(existing, &base); err != nil {
		// an unreadable stored document is replaced outright
		return incoming, nil
	}
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(incoming, &patch); err != nil {
		return nil, fmt.Errorf("failed to decode incoming document: %w", err)
	}
	if base == nil {
		base = make(map[string]json.RawMessage, len(patch))
	}
	for k, v := range patch {
		base[k] = v
	}
	return json.Marshal(base)
}
