package remote

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-craft/internal/types"
)

// Mirror reads from a primary backend and writes to the primary and every replica.
// Writes run concurrently; the first failure is returned once all have finished.
type Mirror struct {
	primary  Backend
	replicas []Backend
}

// NewMirror creates a Mirror. With no replicas it behaves exactly like primary.
func NewMirror(primary Backend, replicas ...Backend) *Mirror {
	return &Mirror{primary: primary, replicas: replicas}
}

// Fetch reads from the primary only.
func (m *Mirror) Fetch(ctx context.Context, userID string) (*types.ResumeData, error) {
	return m.primary.Fetch(ctx, userID)
}

// Merge writes data to all backends.
func (m *Mirror) Merge(ctx context.Context, userID string, data types.ResumeData) error {
	// a plain group: one failing backend must not cancel writes to the others
	var g errgroup.Group

	g.Go(func() error {
		if err := m.primary.Merge(ctx, userID, data); err != nil {
			return fmt.Errorf("primary: %w", err)
		}
		return nil
	})
	for i, replica := range m.replicas {
		g.Go(func() error {
			if err := replica.Merge(ctx, userID, data); err != nil {
				return fmt.Errorf("replica %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}
