package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"blog-backend/internal/config"
	"blog-backend/internal/shared/auth"
)

const (
	keyUserID = "user_id"
	keyRole   = "role"
)

// NewManager cấu hình scs SessionManager cho login cookie.
// store nil → scs dùng memstore mặc định
func NewManager(cfg config.SessionConfig, store scs.Store) *scs.SessionManager {
	sm := scs.New()
	if store != nil {
		sm.Store = store
	}

	sm.Lifetime = cfg.Lifetime
	sm.Cookie.Name = cfg.CookieName
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Persist = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.CookieSecure
	return sm
}

// Login stores p in the session, rotating the token to prevent fixation
func Login(ctx context.Context, sm *scs.SessionManager, p auth.Principal) error {
	if err := sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}

	sm.Put(ctx, keyUserID, p.UserID.String())
	sm.Put(ctx, keyRole, p.Role.String())
	return nil
}

// Logout huỷ session hiện tại
func Logout(ctx context.Context, sm *scs.SessionManager) error {
	if err := sm.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Principal đọc principal từ session, ok=false nếu chưa login
func Principal(ctx context.Context, sm *scs.SessionManager) (*auth.Principal, bool) {
	raw := sm.GetString(ctx, keyUserID)
	if raw == "" {
		return nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}

	role := auth.Role(sm.GetString(ctx, keyRole))
	if !role.IsValid() {
		role = auth.RoleUser
	}
	return &auth.Principal{UserID: userID, Role: role}, true
}
