package db

import (
	"encoding/json"
	"time"
)

// ResumeDocument is one user's remote copy of the resume aggregate.
// Document holds the raw JSON object so that fields this build does not know about survive.
type ResumeDocument struct {
	UserID    string          `json:"user_id"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
