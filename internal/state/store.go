package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/alertface/internal/appmsg"
)

// Snapshot is the latest companion link state available to the UI.
type Snapshot struct {
	Status              appmsg.CompanionStatus
	HasStatus           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the companion has been unreachable for
// multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll result. When err is non-nil the previous status is
// kept but the error is recorded for visibility.
func (s *Store) Update(status *appmsg.CompanionStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.Status = appmsg.CompanionStatus{}
		s.snapshot.HasStatus = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
