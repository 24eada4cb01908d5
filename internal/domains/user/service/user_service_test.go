package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	articleModel "blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/password"
)

func newService(t *testing.T) (*memstore.Store, ServiceInterface, *jwt.Manager) {
	t.Helper()

	store := memstore.New()
	tokens := jwt.NewManager("test-secret", "blog-backend", time.Hour)
	svc := NewUserService(store.Users(), store.Articles(), password.NewBcryptHasher(bcrypt.MinCost), tokens)
	return store, svc, tokens
}

func register(t *testing.T, svc ServiceInterface, email, username string) *model.UserResponse {
	t.Helper()

	u, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Email:    email,
		Username: username,
		Password: "1234",
	})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func principal(u *model.UserResponse) *auth.Principal {
	return &auth.Principal{UserID: u.ID, Role: u.Role}
}

func TestCreateUser(t *testing.T) {
	store, svc, _ := newService(t)
	ctx := context.Background()

	created := register(t, svc, "  Alice@Example.com ", "alice")
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, auth.RoleUser, created.Role)
	assert.Empty(t, created.Articles)

	stored, err := store.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "1234", stored.PasswordHash)

	_, err = svc.CreateUser(ctx, model.CreateUserRequest{Email: "alice@example.com", Username: "other", Password: "x"})
	assert.True(t, errors.Is(err, model.ErrEmailTaken))
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = svc.CreateUser(ctx, model.CreateUserRequest{Email: "new@example.com", Username: "alice", Password: "x"})
	assert.True(t, errors.Is(err, model.ErrUsernameTaken))

	_, err = svc.CreateUser(ctx, model.CreateUserRequest{Email: "not-an-email", Username: "a", Password: ""})
	require.True(t, errors.Is(err, apperr.ErrValidation))

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Fields, 3)
}

func TestAuthenticate(t *testing.T) {
	_, svc, tokens := newService(t)
	ctx := context.Background()
	created := register(t, svc, "bob@example.com", "bob")

	u, err := svc.Authenticate(ctx, model.LoginRequest{Email: "BOB@example.com", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Authenticate(ctx, model.LoginRequest{Email: "bob@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = svc.Authenticate(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "1234"})
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))

	token, err := svc.IssueToken(ctx, model.LoginRequest{Email: "bob@example.com", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	userID, claims, err := tokens.ValidateAccessToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "user", claims.Role)

	me, err := svc.Me(ctx, principal(created))
	require.NoError(t, err)
	assert.Equal(t, "bob", me.Username)

	_, err = svc.Me(ctx, nil)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestUpdateUser(t *testing.T) {
	_, svc, _ := newService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice@example.com", "alice")
	bob := register(t, svc, "bob@example.com", "bob")

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, principal(alice), uuid.New(), model.UpdateUserRequest{})
		assert.True(t, errors.Is(err, model.ErrUserNotFound))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, nil, alice.ID, model.UpdateUserRequest{Username: strPtr("x")})
		assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, principal(bob), alice.ID, model.UpdateUserRequest{Username: strPtr("x")})
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("taken username", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, principal(alice), alice.ID, model.UpdateUserRequest{Username: strPtr("bob")})
		assert.True(t, errors.Is(err, model.ErrUsernameTaken))
	})

	t.Run("keeping own username is not a conflict", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, principal(alice), alice.ID, model.UpdateUserRequest{Username: strPtr("alice")})
		assert.NoError(t, err)
	})

	t.Run("own username and password", func(t *testing.T) {
		updated, err := svc.UpdateUser(ctx, principal(alice), alice.ID, model.UpdateUserRequest{
			Username: strPtr("alice2"),
			Password: strPtr("new-secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)

		_, err = svc.Authenticate(ctx, model.LoginRequest{Email: "alice@example.com", Password: "new-secret"})
		assert.NoError(t, err)
		_, err = svc.Authenticate(ctx, model.LoginRequest{Email: "alice@example.com", Password: "1234"})
		assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
	})
}

func TestGetUserListsArticles(t *testing.T) {
	store, svc, _ := newService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice@example.com", "alice")

	a := articleModel.NewArticle(alice.ID, "My first post", time.Now())
	require.NoError(t, store.Articles().Create(ctx, a))

	got, err := svc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, "my-first-post", got.Articles[0].Slug)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.True(t, errors.Is(err, model.ErrUserNotFound))
}

func TestEnsureAdmin(t *testing.T) {
	_, svc, _ := newService(t)
	ctx := context.Background()

	created, isNew, err := svc.EnsureAdmin(ctx, model.CreateUserRequest{Email: "root@example.com", Username: "root", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, auth.RoleAdmin, created.Role)

	register(t, svc, "carol@example.com", "carol")
	promoted, isNew, err := svc.EnsureAdmin(ctx, model.CreateUserRequest{Email: "carol@example.com"})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, auth.RoleAdmin, promoted.Role)
}
