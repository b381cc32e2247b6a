package revocations

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory jti set. Entries are kept for the process
// lifetime; an expired token is already invalid, so eviction is unnecessary
// at this scope, though the set grows with every logout.
type MemoryRepository struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{revoked: make(map[string]struct{})}
}

func (r *MemoryRepository) Revoke(ctx context.Context, jti string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = struct{}{}
	return nil
}

func (r *MemoryRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[jti]
	return ok, nil
}

// Count returns the number of revoked token identifiers.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.revoked)
}
