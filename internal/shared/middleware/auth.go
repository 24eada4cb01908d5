package middleware

import (
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/infrastructure/session"
	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
)

// Authenticate resolves the request principal and stores it in the request context.
// A Bearer token wins over the session cookie; requests with neither stay anonymous.
func Authenticate(tokens *jwt.Manager, sessions *scs.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorization: Bearer <token>
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Unauthorized(c, "invalid authorization header format")
				c.Abort()
				return
			}

			userID, claims, err := tokens.ValidateAccessToken(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Str("request_id", c.GetString("request_id")).Msg("Bearer token rejected")
				response.Unauthorized(c, "invalid token")
				c.Abort()
				return
			}

			role := auth.Role(claims.Role)
			if !role.IsValid() {
				role = auth.RoleUser
			}
			setPrincipal(c, &auth.Principal{UserID: userID, Role: role})
			c.Next()
			return
		}

		// 2. Session cookie
		if p, ok := session.Principal(c.Request.Context(), sessions); ok {
			setPrincipal(c, p)
		}

		c.Next()
	}
}

// RequireAuth chặn request chưa đăng nhập với 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.FromContext(c.Request.Context()).IsAuthenticated() {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, p *auth.Principal) {
	c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
	c.Set("userID", p.UserID)
	c.Set("role", p.Role.String())
}
