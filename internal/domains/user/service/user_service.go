package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	articleRepo "blog-backend/internal/domains/article/repository"
	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/repository"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/policy"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/password"
)

// userService implement ServiceInterface
type userService struct {
	repo        repository.UserRepository
	articleRepo articleRepo.ArticleRepository
	hasher      password.Hasher
	tokens      *jwt.Manager
	now         func() time.Time
}

// NewUserService tạo service instance
// Inject repository qua constructor (Dependency Injection)
func NewUserService(
	repo repository.UserRepository,
	articleRepo articleRepo.ArticleRepository,
	hasher password.Hasher,
	tokens *jwt.Manager,
) ServiceInterface {
	return &userService{
		repo:        repo,
		articleRepo: articleRepo,
		hasher:      hasher,
		tokens:      tokens,
		now:         time.Now,
	}
}

// ========================================
// USER OPERATIONS
// ========================================

// CreateUser tạo user mới với role user
func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, error) {
	u, err := s.register(ctx, req, auth.RoleUser)
	if err != nil {
		return nil, err
	}

	response := model.ToUserResponse(u, nil)
	return &response, nil
}

func (s *userService) register(ctx context.Context, req model.CreateUserRequest, role auth.Role) (*model.User, error) {
	// 1. POLICY: registration is public
	if err := policy.Authorize(policy.OpCreate, nil, policy.User(uuid.Nil)); err != nil {
		return nil, err
	}

	// 2. VALIDATE INPUT
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// 3. BUSINESS RULE: email và username unique
	if err := s.checkUnique(ctx, req.Email, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	// 4. HASH PASSWORD
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. CREATE USER ENTITY
	now := s.now()
	newUser := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 6. SAVE TO DATABASE (unique index vẫn là chốt chặn cuối khi race)
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().
		Str("user_id", newUser.ID.String()).
		Str("username", newUser.Username).
		Str("role", role.String()).
		Msg("User registered")

	return newUser, nil
}

// GetUser trả về profile kèm articles của user
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	articles, err := s.articleRepo.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list user articles: %w", err)
	}

	response := model.ToUserResponse(u, articles)
	return &response, nil
}

// UpdateUser cập nhật account của chính mình
func (s *userService) UpdateUser(
	ctx context.Context,
	actor *auth.Principal,
	id uuid.UUID,
	req model.UpdateUserRequest,
) (*model.UserResponse, error) {
	// 1. LOAD USER
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	// 2. POLICY: self only
	if err := policy.Authorize(policy.OpUpdate, actor, policy.User(u.ID)); err != nil {
		return nil, err
	}

	// 3. VALIDATE INPUT
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// 4. BUSINESS RULE: unique, bỏ qua chính user này
	email, username := u.Email, u.Username
	if req.Email != nil {
		email = *req.Email
	}
	if req.Username != nil {
		username = *req.Username
	}
	if err := s.checkUnique(ctx, email, username, u.ID); err != nil {
		return nil, err
	}

	// 5. APPLY PATCH
	u.Email = email
	u.Username = username
	if req.Password != nil {
		passwordHash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = passwordHash
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	log.Info().
		Str("user_id", u.ID.String()).
		Bool("password_changed", req.Password != nil).
		Msg("User updated")

	return s.GetUser(ctx, u.ID)
}

func (s *userService) checkUnique(ctx context.Context, email, username string, excludeID uuid.UUID) error {
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return model.ErrEmailTaken
	}

	exists, err = s.repo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return model.ErrUsernameTaken
	}
	return nil
}

// ========================================
// AUTHENTICATION
// ========================================

// Authenticate xác thực email + password
func (s *userService) Authenticate(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// 2. GET USER BY EMAIL
	// Không tiết lộ email có tồn tại hay không
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	// 3. VERIFY PASSWORD
	if err := s.hasher.Compare(u.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			log.Warn().Str("user_id", u.ID.String()).Msg("Failed login attempt")
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return u, nil
}

// IssueToken trả về access token cho API clients
func (s *userService) IssueToken(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	u, err := s.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *userService) Me(ctx context.Context, actor *auth.Principal) (*model.MeResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperr.ErrUnauthorized
	}

	u, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		// Session trỏ tới user không còn tồn tại
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	response := model.ToMeResponse(u)
	return &response, nil
}

// ========================================
// OPERATOR
// ========================================

func (s *userService) EnsureAdmin(ctx context.Context, req model.CreateUserRequest) (*model.UserResponse, bool, error) {
	req.Normalize()

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		// Promote user có sẵn
		existing.Role = auth.RoleAdmin
		existing.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("promote user: %w", err)
		}
		log.Info().Str("user_id", existing.ID.String()).Msg("User promoted to admin")

		response := model.ToUserResponse(existing, nil)
		return &response, false, nil

	case errors.Is(err, model.ErrUserNotFound):
		u, err := s.register(ctx, req, auth.RoleAdmin)
		if err != nil {
			return nil, false, err
		}
		response := model.ToUserResponse(u, nil)
		return &response, true, nil

	default:
		return nil, false, fmt.Errorf("get user by email: %w", err)
	}
}
