package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
)

// firstUserID is where id assignment starts.
const firstUserID int64 = 1000

// MemoryRepository is the in-memory user directory. A single mutex guards
// the uniqueness check, the id counter, and the append, so check-then-insert
// is one atomic step under concurrent requests.
type MemoryRepository struct {
	mu         sync.Mutex
	users      []*models.User
	byUsername map[string]*models.User
	nextID     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUsername: make(map[string]*models.User),
		nextID:     firstUserID,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++

	r.users = append(r.users, &stored)
	r.byUsername[stored.Username] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}

// Count returns the number of registered users.
func (r *MemoryRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
