package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared/auth"
)

// ServiceInterface định nghĩa business logic cho user + authentication
type ServiceInterface interface {
	// ========================================
	// USER OPERATIONS
	// ========================================

	// CreateUser - public registration
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error)

	// GetUser - public profile kèm danh sách article
	GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)

	// UpdateUser - self-service patch (email, username, password)
	UpdateUser(ctx context.Context, actor *auth.Principal, id uuid.UUID, req model.UpdateUserRequest) (*model.UserResponse, error)

	// ========================================
	// AUTHENTICATION
	// ========================================

	// Authenticate checks credentials; wrong email or password → model.ErrInvalidCredentials
	Authenticate(ctx context.Context, req model.LoginRequest) (*model.User, error)

	// IssueToken authenticates and returns a bearer token
	IssueToken(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error)

	// Me returns the current principal's account
	Me(ctx context.Context, actor *auth.Principal) (*model.MeResponse, error)

	// ========================================
	// OPERATOR
	// ========================================

	// EnsureAdmin creates an admin account, or promotes the existing account with that email.
	// created=false means an existing user was promoted.
	EnsureAdmin(ctx context.Context, req model.CreateUserRequest) (resp *model.UserResponse, created bool, err error)
}
