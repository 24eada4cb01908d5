package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articleModel "blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/comment/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

func addUser(t *testing.T, store *memstore.Store, username string, role auth.Role) *auth.Principal {
	t.Helper()

	u := &userModel.User{
		ID:           uuid.New(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, store.Users().Create(context.Background(), u))

	p := u.Principal()
	return &p
}

func setup(t *testing.T) (*memstore.Store, ServiceInterface, *articleModel.Article) {
	t.Helper()

	store := memstore.New()
	owner := addUser(t, store, "owner", auth.RoleUser)

	article := articleModel.NewArticle(owner.UserID, "Commented", time.Now())
	require.NoError(t, store.Articles().Create(context.Background(), article))

	return store, NewCommentService(store.Comments(), store.Articles()), article
}

func TestCreateComment(t *testing.T) {
	store, svc, article := setup(t)
	ctx := context.Background()
	reader := addUser(t, store, "reader", auth.RoleUser)

	_, err := svc.CreateComment(ctx, nil, article.ID, model.CreateCommentRequest{Body: "hi"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = svc.CreateComment(ctx, reader, uuid.New(), model.CreateCommentRequest{Body: "hi"})
	assert.True(t, errors.Is(err, articleModel.ErrArticleNotFound))

	ghost := &auth.Principal{UserID: uuid.New(), Role: auth.RoleUser}
	_, err = svc.CreateComment(ctx, ghost, article.ID, model.CreateCommentRequest{Body: "hi"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = svc.CreateComment(ctx, reader, article.ID, model.CreateCommentRequest{Body: "   "})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	created, err := svc.CreateComment(ctx, reader, article.ID, model.CreateCommentRequest{Body: "Nice post"})
	require.NoError(t, err)
	assert.Equal(t, "reader", created.Author.Username)
	require.NotNil(t, created.ArticleID)
	assert.Equal(t, article.ID, *created.ArticleID)

	loaded, err := store.Articles().GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{created.ID}, loaded.CommentIDs)

	comments, err := svc.ListComments(ctx, article.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Nice post", comments[0].Body)

	_, err = svc.ListComments(ctx, uuid.New())
	assert.True(t, errors.Is(err, articleModel.ErrArticleNotFound))
}

func TestDeleteComment(t *testing.T) {
	store, svc, article := setup(t)
	ctx := context.Background()
	author := addUser(t, store, "author", auth.RoleUser)
	stranger := addUser(t, store, "stranger", auth.RoleUser)
	admin := addUser(t, store, "admin", auth.RoleAdmin)

	first, err := svc.CreateComment(ctx, author, article.ID, model.CreateCommentRequest{Body: "first"})
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, author, article.ID, model.CreateCommentRequest{Body: "second"})
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, nil, first.ID)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	err = svc.DeleteComment(ctx, stranger, first.ID)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	require.NoError(t, svc.DeleteComment(ctx, author, first.ID))
	require.NoError(t, svc.DeleteComment(ctx, admin, second.ID))

	err = svc.DeleteComment(ctx, author, first.ID)
	assert.True(t, errors.Is(err, model.ErrCommentNotFound))

	loaded, err := store.Articles().GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.CommentIDs)
}
