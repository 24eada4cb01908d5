package memstore

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

type userRepository struct {
	s *Store
}

// conflict checks uniqueness against every user except excludeID (caller holds lock)
func (r *userRepository) conflict(u *model.User) error {
	for id, existing := range r.s.users {
		if id == u.ID {
			continue
		}
		if sameEmail(existing.Email, u.Email) {
			return model.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return model.ErrUsernameTaken
		}
	}
	return nil
}

func (r *userRepository) Create(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.conflict(u); err != nil {
		return err
	}
	r.s.users[u.ID] = u.Clone()
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if sameEmail(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *userRepository) Update(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	if err := r.conflict(u); err != nil {
		return err
	}
	r.s.users[u.ID] = u.Clone()
	return nil
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, u := range r.s.users {
		if id != excludeID && sameEmail(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *userRepository) ExistsByUsername(_ context.Context, username string, excludeID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for id, u := range r.s.users {
		if id != excludeID && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}
