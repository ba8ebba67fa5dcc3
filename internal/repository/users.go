package repository

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/amirulafiq/kerjago/internal/models"
)

// MemoryUserRepository keeps user rows in a map; the auth middleware's
// in-memory counterpart of the Postgres user table.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) EnsureUser(ctx context.Context, id, email, name string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	u := models.User{ID: id, Email: email, Name: name, Role: "EMPLOYER"}
	r.users[id] = u
	return &u, nil
}

// GormUserRepository stores users in Postgres.
type GormUserRepository struct {
	DB *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

// EnsureUser creates the row on first sight and leaves an existing row
// untouched, mirroring an upsert with an empty update set.
func (r *GormUserRepository) EnsureUser(ctx context.Context, id, email, name string) (*models.User, error) {
	user := models.User{ID: id, Email: email, Name: name, Role: "EMPLOYER"}
	err := r.DB.WithContext(ctx).
		Where(models.User{ID: id}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
