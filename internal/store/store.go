// Package store holds the working resume snapshot and applies every edit to it.
//
// Mutations are synchronous and each one replaces the snapshot with a fresh copy.
// Persistence is a trailing debounce: rapid edits coalesce into one local write,
// followed by a remote merge when a user identity is present.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jonathan/resume-craft/internal/debounce"
	"github.com/jonathan/resume-craft/internal/localstore"
	"github.com/jonathan/resume-craft/internal/remote"
	"github.com/jonathan/resume-craft/internal/types"
)

// DefaultStorageKey is the local slot key the snapshot is persisted under.
const DefaultStorageKey = "resume_craft_data"

// DefaultDebounce is the quiet period before a save.
const DefaultDebounce = time.Second

// Options configures a Store.
type Options struct {
	// Slot is the local durable slot. Defaults to an in-memory slot.
	Slot localstore.Slot
	// Remote is the optional per-user remote copy.
	Remote remote.Backend

	StorageKey string
	Debounce   time.Duration

	// Clock returns the current time for LastSaved and LastCloudSync.
	Clock func() time.Time
	// Context is used for I/O started by the debounce timer.
	Context context.Context
	// Logger receives recovered failures. Defaults to the standard logger.
	Logger *log.Logger
	// NewID generates record ids. Defaults to random UUIDs.
	NewID func() string
}

// Listener receives every new snapshot.
type Listener func(types.ResumeData)

// Store owns one resume aggregate. Instances are independent; there is no package state.
type Store struct {
	slot       localstore.Slot
	remote     remote.Backend
	storageKey string
	clock      func() time.Time
	ctx        context.Context
	logger     *log.Logger
	newID      func() string

	saver *debounce.Debouncer
	loads sync.WaitGroup

	mu            sync.Mutex
	data          types.ResumeData
	identity      *types.Identity
	loading       bool
	loadGen       uint64
	closed        bool
	lastSaved     time.Time
	lastCloudSync time.Time
	listeners     map[int]Listener
	nextListener  int
}

// New creates a Store holding the default resume. Call Load to adopt persisted data.
func New(opts Options) *Store {
	if opts.Slot == nil {
		opts.Slot = localstore.NewMemorySlot()
	}
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.NewID == nil {
		opts.NewID = newRecordID
	}

	s := &Store{
		slot:       opts.Slot,
		remote:     opts.Remote,
		storageKey: opts.StorageKey,
		clock:      opts.Clock,
		ctx:        opts.Context,
		logger:     opts.Logger,
		newID:      opts.NewID,
		data:       types.DefaultResumeData(),
		listeners:  make(map[int]Listener),
	}
	s.saver = debounce.New(opts.Debounce, s.save)
	return s
}

// Snapshot returns a copy of the current aggregate.
func (s *Store) Snapshot() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// CompletionScore scores the current snapshot.
func (s *Store) CompletionScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.CompletionScore(s.data)
}

// Loading reports whether a load is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastSaved returns when the snapshot was last written to the local slot.
func (s *Store) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// LastCloudSync returns when the snapshot was last merged into the remote copy.
func (s *Store) LastCloudSync() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCloudSync
}

// Identity returns the current user identity, or nil when signed out.
func (s *Store) Identity() *types.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIdentity(s.identity)
}

// PendingSave reports whether a debounced save is armed.
func (s *Store) PendingSave() bool {
	return s.saver.Pending()
}

// Subscribe registers fn to receive each new snapshot. The returned func unregisters it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// commit replaces the snapshot with fn applied to a copy of it and arms the save.
func (s *Store) commit(fn func(*types.ResumeData)) {
	_ = s.tryCommit(func(d *types.ResumeData) error {
		fn(d)
		return nil
	})
}

// tryCommit is commit for edits that can be rejected. On error the snapshot is untouched.
func (s *Store) tryCommit(fn func(*types.ResumeData) error) error {
	s.mu.Lock()
	next := s.data.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.data = next
	snapshot, listeners := s.data.Clone(), s.listenersLocked()
	s.mu.Unlock()

	s.saver.Trigger()
	notify(listeners, snapshot)
	return nil
}

// replace swaps in data without arming a save.
func (s *Store) replace(data types.ResumeData) {
	s.mu.Lock()
	s.data = data
	snapshot, listeners := s.data.Clone(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextListener; i++ {
		if fn, ok := s.listeners[i]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []Listener, snapshot types.ResumeData) {
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}

func cloneIdentity(id *types.Identity) *types.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
