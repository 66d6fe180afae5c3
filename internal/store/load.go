package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-craft/internal/remote"
	"github.com/jonathan/resume-craft/internal/schemas"
	"github.com/jonathan/resume-craft/internal/types"
)

// Load adopts the persisted resume for identity (nil when signed out).
//
// The local slot is read first and adopted immediately. With an identity and a
// remote backend the remote copy is then fetched: when present it replaces the
// snapshot and the local slot; when absent and local data existed, the local data
// seeds the remote once. Loading() is true for the whole call.
func (s *Store) Load(ctx context.Context, identity *types.Identity) {
	gen, local, hadLocal := s.beginLoad(ctx, identity)
	s.finishLoad(ctx, gen, identity, local, hadLocal)
}

// LoadAsync reads the local slot before returning and runs the remote step in the
// background. The returned channel is closed when loading has finished. After Close
// nothing is loaded and the channel is returned already closed.
func (s *Store) LoadAsync(ctx context.Context, identity *types.Identity) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return done
	}
	// Close sets closed under mu before waiting, so no Add can race its Wait.
	s.loads.Add(1)
	s.mu.Unlock()

	gen, local, hadLocal := s.beginLoad(ctx, identity)
	go func() {
		defer s.loads.Done()
		defer close(done)
		s.finishLoad(ctx, gen, identity, local, hadLocal)
	}()
	return done
}

// SetIdentity records a sign-in, sign-out or profile change. When the user id
// changes the resume is reloaded, and a remote copy replaces the local one.
func (s *Store) SetIdentity(ctx context.Context, identity *types.Identity) {
	s.mu.Lock()
	same := types.SameIdentity(s.identity, identity)
	if same {
		s.identity = cloneIdentity(identity)
	}
	s.mu.Unlock()

	if same {
		return
	}
	s.Load(ctx, identity)
}

func (s *Store) beginLoad(ctx context.Context, identity *types.Identity) (uint64, types.ResumeData, bool) {
	// edits made under the previous identity are written before anything is replaced
	s.saver.Flush()

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.loading = true
	s.identity = cloneIdentity(identity)
	s.mu.Unlock()

	local, hadLocal := s.readLocal(ctx)
	if s.isCurrent(gen) {
		s.replace(local.Clone())
	}
	return gen, local, hadLocal
}

func (s *Store) finishLoad(ctx context.Context, gen uint64, identity *types.Identity, local types.ResumeData, hadLocal bool) {
	defer func() {
		s.mu.Lock()
		if gen == s.loadGen {
			s.loading = false
		}
		s.mu.Unlock()
	}()

	if identity == nil || s.remote == nil {
		return
	}

	fetched, err := s.remote.Fetch(ctx, identity.ID)
	switch {
	case err == nil:
		if !s.isCurrent(gen) {
			return
		}
		data := types.WithDefaults(*fetched)
		s.replace(data.Clone())
		if err := s.writeLocal(data); err != nil {
			s.logger.Printf("[store] failed to cache remote resume locally: %v", err)
		}

	case errors.Is(err, remote.ErrNotFound):
		if !hadLocal {
			return
		}
		if err := s.remote.Merge(ctx, identity.ID, local); err != nil {
			s.logger.Printf("[store] failed to seed remote resume for user %s: %v", identity.ID, err)
			return
		}
		s.mu.Lock()
		s.lastCloudSync = s.clock()
		s.mu.Unlock()

	default:
		s.logger.Printf("[store] failed to fetch remote resume for user %s: %v", identity.ID, err)
	}
}

func (s *Store) isCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.loadGen
}

// readLocal returns the slot contents over defaults. An empty, unreadable or
// incompatible slot yields defaults and hadLocal=false.
func (s *Store) readLocal(ctx context.Context) (types.ResumeData, bool) {
	raw, ok, err := s.slot.Get(ctx, s.storageKey)
	if err != nil {
		s.logger.Printf("[store] failed to read slot %q: %v", s.storageKey, err)
		return types.DefaultResumeData(), false
	}
	if !ok {
		return types.DefaultResumeData(), false
	}

	data, err := DecodeResume(raw)
	if err != nil {
		s.logger.Printf("[store] ignoring saved resume: %v", err)
		return types.DefaultResumeData(), false
	}
	return data, true
}

// DecodeResume parses a serialized resume, checking it against the resume schema
// and backfilling everything an older shape lacks.
func DecodeResume(raw []byte) (types.ResumeData, error) {
	if err := schemas.ValidateResumeJSON(raw); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to validate resume: %w", err)
	}
	data := types.DefaultResumeData()
	if err := json.Unmarshal(raw, &data); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to decode resume: %w", err)
	}
	return types.WithDefaults(data), nil
}
