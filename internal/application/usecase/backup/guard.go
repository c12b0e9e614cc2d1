// Package backup contains the snapshot export and restore use cases.
package backup

import (
	"sync"

	domainerror "github.com/percetakan-pos/backend/internal/domain/error"
)

// Guard serializes export and restore: the two operations write and read the
// same collections, so a second request while one is in flight is rejected
// rather than queued.
type Guard struct {
	mu sync.Mutex
}

// NewGuard creates a new Guard instance shared by export and restore.
func NewGuard() *Guard {
	return &Guard{}
}

// Acquire claims the guard or reports that another operation is running.
func (g *Guard) Acquire() error {
	if !g.mu.TryLock() {
		return domainerror.ErrBackupInProgress
	}
	return nil
}

// Release frees the guard after Acquire succeeded.
func (g *Guard) Release() {
	g.mu.Unlock()
}
