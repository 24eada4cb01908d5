package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/article/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

type fixture struct {
	store *memstore.Store
	svc   *articleService
	owner *auth.Principal
	other *auth.Principal
	admin *auth.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{
		store: store,
		svc:   NewArticleService(store.Articles()).(*articleService),
		owner: addUser(t, store, "alice", auth.RoleUser),
		other: addUser(t, store, "bob", auth.RoleUser),
		admin: addUser(t, store, "root", auth.RoleAdmin),
	}
	return f
}

func addUser(t *testing.T, store *memstore.Store, username string, role auth.Role) *auth.Principal {
	t.Helper()

	now := time.Now()
	u := &userModel.User{
		ID:           uuid.New(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Users().Create(context.Background(), u))

	p := u.Principal()
	return &p
}

func strPtr(s string) *string { return &s }

func (f *fixture) create(t *testing.T, title string) *model.ArticleResponse {
	t.Helper()

	a, err := f.svc.CreateArticle(context.Background(), f.owner, model.CreateArticleRequest{Title: title})
	require.NoError(t, err)
	return a
}

func TestCreateArticle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("anonymous is unauthorized even with invalid payload", func(t *testing.T) {
		_, err := f.svc.CreateArticle(ctx, nil, model.CreateArticleRequest{})
		assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	})

	t.Run("empty payload is a validation error", func(t *testing.T) {
		_, err := f.svc.CreateArticle(ctx, f.owner, model.CreateArticleRequest{})
		require.True(t, errors.Is(err, apperr.ErrValidation))

		var appErr *apperr.Error
		require.True(t, errors.As(err, &appErr))
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "title", appErr.Fields[0].Field)
	})

	t.Run("padded title below min length", func(t *testing.T) {
		_, err := f.svc.CreateArticle(ctx, f.owner, model.CreateArticleRequest{Title: " a "})
		assert.True(t, errors.Is(err, apperr.ErrValidation))

		list, err := f.svc.ListArticles(ctx, model.ListArticlesRequest{})
		require.NoError(t, err)
		assert.Zero(t, list.Total)
	})

	t.Run("title stored trimmed", func(t *testing.T) {
		a, err := f.svc.CreateArticle(ctx, f.owner, model.CreateArticleRequest{Title: "  Go  "})
		require.NoError(t, err)
		assert.Equal(t, "Go", a.Title)
		assert.Equal(t, "go", a.Slug)
	})

	t.Run("success", func(t *testing.T) {
		text := "line one\nline two"
		a, err := f.svc.CreateArticle(ctx, f.owner, model.CreateArticleRequest{
			Title:           "Hello World",
			ShortContent:    strPtr("intro"),
			LongContent:     strPtr("ignored"),
			TextLongContent: &text,
		})
		require.NoError(t, err)

		assert.Equal(t, "hello-world", a.Slug)
		assert.False(t, a.IsPublished)
		assert.Equal(t, f.owner.UserID, a.Owner.ID)
		assert.Equal(t, "alice", a.Owner.Username)
		require.NotNil(t, a.LongContent)
		assert.Equal(t, "line one<br />\nline two", *a.LongContent)
		assert.Equal(t, 0, a.CommentCount)
	})
}

func TestUpdateArticle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.create(t, "First draft")

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, f.owner, uuid.New(), model.UpdateArticleRequest{})
		assert.True(t, errors.Is(err, model.ErrArticleNotFound))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, nil, created.ID, model.UpdateArticleRequest{})
		assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, f.other, created.ID, model.UpdateArticleRequest{Title: strPtr("Hijack")})
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("admin is not the owner", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, f.admin, created.ID, model.UpdateArticleRequest{})
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("invalid title", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, f.owner, created.ID, model.UpdateArticleRequest{Title: strPtr(" ")})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("padded title below min length", func(t *testing.T) {
		_, err := f.svc.UpdateArticle(ctx, f.owner, created.ID, model.UpdateArticleRequest{Title: strPtr("   z   ")})
		assert.True(t, errors.Is(err, apperr.ErrValidation))

		reloaded, err := f.svc.GetArticle(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "First draft", reloaded.Title)
	})

	t.Run("owner publishes and renames", func(t *testing.T) {
		published := true
		updated, err := f.svc.UpdateArticle(ctx, f.owner, created.ID, model.UpdateArticleRequest{
			Title:       strPtr("Final version"),
			LongContent: strPtr("<p>kept</p>\n"),
			IsPublished: &published,
		})
		require.NoError(t, err)

		assert.Equal(t, "Final version", updated.Title)
		assert.Equal(t, "first-draft", updated.Slug, "slug is not regenerated")
		assert.True(t, updated.IsPublished)
		assert.Equal(t, "<p>kept</p>\n", *updated.LongContent)

		reloaded, err := f.svc.GetArticle(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Final version", reloaded.Title)
		assert.True(t, reloaded.IsPublished)
		assert.Equal(t, created.CreatedAt, reloaded.CreatedAt)
	})
}

func TestDeleteArticle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.create(t, "To be removed")

	err := f.svc.DeleteArticle(ctx, nil, created.ID)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	err = f.svc.DeleteArticle(ctx, f.owner, created.ID)
	assert.True(t, errors.Is(err, apperr.ErrForbidden), "owners cannot delete")

	require.NoError(t, f.svc.DeleteArticle(ctx, f.admin, created.ID))

	_, err = f.svc.GetArticle(ctx, created.ID)
	assert.True(t, errors.Is(err, model.ErrArticleNotFound))

	err = f.svc.DeleteArticle(ctx, f.admin, created.ID)
	assert.True(t, errors.Is(err, model.ErrArticleNotFound))
}

func TestListArticles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	f.svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	for i := 0; i < 12; i++ {
		f.create(t, "Post number "+string(rune('a'+i)))
	}
	golang := f.create(t, "Learning Golang")
	published := true
	_, err := f.svc.UpdateArticle(ctx, f.owner, golang.ID, model.UpdateArticleRequest{IsPublished: &published})
	require.NoError(t, err)

	t.Run("first page newest first", func(t *testing.T) {
		page, err := f.svc.ListArticles(ctx, model.ListArticlesRequest{})
		require.NoError(t, err)

		assert.Equal(t, 13, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, model.ItemsPerPage, page.Limit)
		require.Len(t, page.Articles, model.ItemsPerPage)
		assert.Equal(t, "Learning Golang", page.Articles[0].Title)
	})

	t.Run("second page", func(t *testing.T) {
		page, err := f.svc.ListArticles(ctx, model.ListArticlesRequest{Page: 2})
		require.NoError(t, err)
		assert.Len(t, page.Articles, 3)
		assert.Equal(t, "Post number a", page.Articles[2].Title)
	})

	t.Run("title filter is case insensitive", func(t *testing.T) {
		page, err := f.svc.ListArticles(ctx, model.ListArticlesRequest{Title: "GOLANG"})
		require.NoError(t, err)
		require.Len(t, page.Articles, 1)
		assert.Equal(t, golang.ID, page.Articles[0].ID)
	})

	t.Run("isPublished filter", func(t *testing.T) {
		drafts := false
		page, err := f.svc.ListArticles(ctx, model.ListArticlesRequest{IsPublished: &drafts})
		require.NoError(t, err)
		assert.Equal(t, 12, page.Total)

		page, err = f.svc.ListArticles(ctx, model.ListArticlesRequest{IsPublished: &published})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	})
}
