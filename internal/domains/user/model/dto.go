package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	articleModel "blog-backend/internal/domains/article/model"
	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/utils"
)

// ========================================
// USER DTOs (user:write)
// ========================================

// CreateUserRequest - public registration
type CreateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Username, usernameRules()...),
		validation.Field(&r.Password, passwordRules()...),
	)
}

// Normalize trims email/username before validation and uniqueness checks
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.TrimSpace(r.Username)
}

// UpdateUserRequest - self-service patch, nil fields giữ nguyên
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.When(r.Email != nil, emailRules()...)),
		validation.Field(&r.Username, validation.When(r.Username != nil, usernameRules()...)),
		validation.Field(&r.Password, validation.When(r.Password != nil, passwordRules()...)),
	)
}

func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
	if r.Username != nil {
		username := strings.TrimSpace(*r.Username)
		r.Username = &username
	}
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(3, MaxEmailLength),
		is.EmailFormat,
	}
}

func usernameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		utils.NotBlank,
		validation.RuneLength(MinUsernameLength, MaxUsernameLength),
	}
}

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(1, MaxPasswordLength),
	}
}

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest - POST /login, POST /api/token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse - bearer token cho API clients
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// MeResponse - principal hiện tại
type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Role     auth.Role `json:"role"`
}

// ========================================
// RESPONSE DTOs (user:read)
// ========================================

type UserResponse struct {
	ID        uuid.UUID                     `json:"id"`
	Email     string                        `json:"email"`
	Username  string                        `json:"username"`
	Role      auth.Role                     `json:"role"`
	CreatedAt time.Time                     `json:"createdAt"`
	Articles  []articleModel.ArticleSummary `json:"articles"`
}

func ToUserResponse(u *User, articles []*articleModel.Article) UserResponse {
	summaries := make([]articleModel.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, articleModel.ToArticleSummary(a))
	}

	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		Articles:  summaries,
	}
}

func ToMeResponse(u *User) MeResponse {
	return MeResponse{ID: u.ID, Email: u.Email, Username: u.Username, Role: u.Role}
}
