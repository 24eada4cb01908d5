package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

// =====================================================
// USER REPOSITORY INTERFACE
// =====================================================

type UserRepository interface {
	// Create inserts u; duplicate email/username → model.ErrEmailTaken / model.ErrUsernameTaken
	Create(ctx context.Context, u *model.User) error

	// GetByID returns model.ErrUserNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail, email so sánh không phân biệt hoa thường
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update persists email, username, password hash and role
	Update(ctx context.Context, u *model.User) error

	// ExistsByEmail / ExistsByUsername bỏ qua user excludeID (uuid.Nil = không bỏ qua)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
}
