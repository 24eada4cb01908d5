package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role của user, lưu trong DB và trong session
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid kiểm tra role hợp lệ
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated caller of a request. A nil *Principal is anonymous.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UserID != uuid.Nil
}

func (p *Principal) IsAdmin() bool {
	return p.IsAuthenticated() && p.Role == RoleAdmin
}

type principalKey struct{}

// WithPrincipal gắn principal vào context
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext trả về principal hoặc nil nếu request chưa đăng nhập
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
