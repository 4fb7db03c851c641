package repo

import (
	"context"
	"database/sql"
	"fmt"
	"placelists/gen/placelists_dev/public/model"
	"sort"
	"sync"
	"time"
)

// NewMemory returns a Repository backed by in-process maps. It exists for
// handler and service tests that should not require a database.
func NewMemory() Repository {
	return &memoryRepository{
		users: make(map[int64]model.Users),
		lists: make(map[int64]model.Lists),
	}
}

type memoryRepository struct {
	mu         sync.Mutex
	users      map[int64]model.Users
	lists      map[int64]model.Lists
	nextUserID int64
	nextListID int64
}

func (r *memoryRepository) CreateUser(_ context.Context, username, email, passwordHash string) (model.Users, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return model.Users{}, fmt.Errorf("duplicate key value violates unique constraint %q", "users_username_key")
		}
	}

	r.nextUserID++
	now := time.Now()
	user := model.Users{
		UserID:       r.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    &now,
	}
	r.users[user.UserID] = user
	return user, nil
}

func (r *memoryRepository) GetUserByUsername(_ context.Context, username string) (model.Users, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.Users{}, sql.ErrNoRows
}

func (r *memoryRepository) UserExists(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) FilterLists(_ context.Context, userID int64) ([]model.Lists, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]model.Lists, 0)
	for _, l := range r.lists {
		if l.UserID == userID {
			results = append(results, l)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

func (r *memoryRepository) GetListById(_ context.Context, userID, id int64) (model.Lists, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[id]
	if !ok || l.UserID != userID {
		return model.Lists{}, sql.ErrNoRows
	}
	return l, nil
}

func (r *memoryRepository) CreateList(_ context.Context, userID int64, name string) (model.Lists, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextListID++
	now := time.Now()
	list := model.Lists{
		ID:        r.nextListID,
		UserID:    userID,
		Name:      name,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	r.lists[list.ID] = list
	return list, nil
}

func (r *memoryRepository) UpdateListById(_ context.Context, userID, id int64, name string) (model.Lists, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[id]
	if !ok || l.UserID != userID {
		return model.Lists{}, sql.ErrNoRows
	}
	now := time.Now()
	l.Name = name
	l.UpdatedAt = &now
	r.lists[id] = l
	return l, nil
}

func (r *memoryRepository) DeleteListById(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lists[id]
	if !ok || l.UserID != userID {
		return sql.ErrNoRows
	}
	delete(r.lists, id)
	return nil
}
