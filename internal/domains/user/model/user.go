package model

import (
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/shared/auth"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         auth.Role `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == auth.RoleAdmin
}

// Principal trả về principal đại diện cho user đã đăng nhập
func (u *User) Principal() auth.Principal {
	return auth.Principal{UserID: u.ID, Role: u.Role}
}

func (u *User) Clone() *User {
	cp := *u
	return &cp
}
