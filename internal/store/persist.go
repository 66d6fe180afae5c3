package store

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-craft/internal/types"
)

// save writes the current snapshot locally, then merges it remotely when signed in.
// Failures are logged; nothing is retried or rolled back.
func (s *Store) save() {
	s.mu.Lock()
	snapshot := s.data.Clone()
	identity := cloneIdentity(s.identity)
	s.mu.Unlock()

	if err := s.writeLocal(snapshot); err != nil {
		s.logger.Printf("[store] failed to save locally: %v", err)
	} else {
		s.mu.Lock()
		s.lastSaved = s.clock()
		s.mu.Unlock()
	}

	if identity == nil || s.remote == nil {
		return
	}
	if err := s.remote.Merge(s.ctx, identity.ID, snapshot); err != nil {
		s.logger.Printf("[store] failed to sync resume for user %s: %v", identity.ID, err)
		return
	}
	s.mu.Lock()
	s.lastCloudSync = s.clock()
	s.mu.Unlock()
}

func (s *Store) writeLocal(data types.ResumeData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := s.slot.Set(s.ctx, s.storageKey, raw); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.storageKey, err)
	}
	return nil
}

// Flush runs a pending save immediately and reports whether there was one.
func (s *Store) Flush() bool {
	return s.saver.Flush()
}

// Close flushes any pending save and waits for saves and loads in flight.
// Background loads cannot be started afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.saver.Flush()
	s.saver.Wait()
	s.loads.Wait()
}

// ClearData drops the pending save, resets the snapshot to defaults and removes the
// local slot. The remote copy is left as it is, so the next signed-in load brings it back.
func (s *Store) ClearData() error {
	s.saver.Cancel()
	s.saver.Wait()

	s.replace(types.DefaultResumeData())

	if err := s.slot.Remove(s.ctx, s.storageKey); err != nil {
		return fmt.Errorf("failed to remove slot %q: %w", s.storageKey, err)
	}
	return nil
}
