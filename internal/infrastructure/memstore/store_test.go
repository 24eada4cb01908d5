package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articleModel "blog-backend/internal/domains/article/model"
	commentModel "blog-backend/internal/domains/comment/model"
	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

func strPtr(s string) *string { return &s }

func newUser(email, username string) *userModel.User {
	now := time.Now()
	return &userModel.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: "hash",
		Role:         auth.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersUniqueness(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	alice := newUser("alice@example.com", "alice")
	require.NoError(t, users.Create(ctx, alice))

	err := users.Create(ctx, newUser("ALICE@example.com", "other"))
	assert.True(t, errors.Is(err, userModel.ErrEmailTaken))

	err = users.Create(ctx, newUser("new@example.com", "alice"))
	assert.True(t, errors.Is(err, userModel.ErrUsernameTaken))

	found, err := users.GetByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	exists, err := users.ExistsByEmail(ctx, "alice@example.com", alice.ID)
	require.NoError(t, err)
	assert.False(t, exists, "own row is excluded")

	exists, err = users.ExistsByUsername(ctx, "alice", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = users.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, userModel.ErrUserNotFound))
}

func TestUsersReturnCopies(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	u := newUser("a@example.com", "a")
	require.NoError(t, users.Create(ctx, u))
	u.Username = "mutated"

	found, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", found.Username)
}

func TestArticleComments(t *testing.T) {
	ctx := context.Background()
	store := New()

	owner := newUser("owner@example.com", "owner")
	require.NoError(t, store.Users().Create(ctx, owner))

	a := articleModel.NewArticle(owner.ID, "With comments", time.Now())
	require.NoError(t, store.Articles().Create(ctx, a))

	c1 := commentModel.NewComment(owner.ID, "first", time.Now())
	c2 := commentModel.NewComment(owner.ID, "second", time.Now())
	require.NoError(t, store.Articles().AddComment(ctx, a.ID, c1))
	require.NoError(t, store.Articles().AddComment(ctx, a.ID, c2))
	require.NoError(t, store.Articles().AddComment(ctx, a.ID, c1), "adding twice is a no-op")

	loaded, err := store.Articles().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", loaded.OwnerUsername)
	assert.Equal(t, []uuid.UUID{c1.ID, c2.ID}, loaded.CommentIDs)

	comments, err := store.Comments().ListByArticle(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "owner", comments[0].AuthorUsername)
	assert.True(t, comments[0].BelongsTo(a.ID))

	require.NoError(t, store.Articles().RemoveComment(ctx, a.ID, c1.ID))
	err = store.Articles().RemoveComment(ctx, a.ID, c1.ID)
	assert.True(t, errors.Is(err, commentModel.ErrCommentNotFound))

	_, err = store.Comments().GetByID(ctx, c1.ID)
	assert.True(t, errors.Is(err, commentModel.ErrCommentNotFound))

	require.NoError(t, store.Articles().Delete(ctx, a.ID))
	_, err = store.Comments().GetByID(ctx, c2.ID)
	assert.True(t, errors.Is(err, commentModel.ErrCommentNotFound), "comments cascade")

	err = store.Articles().AddComment(ctx, a.ID, commentModel.NewComment(owner.ID, "late", time.Now()))
	assert.True(t, errors.Is(err, articleModel.ErrArticleNotFound))
}

func TestUnknownOwnerAndAuthor(t *testing.T) {
	ctx := context.Background()
	store := New()

	err := store.Articles().Create(ctx, articleModel.NewArticle(uuid.New(), "Orphan", time.Now()))
	assert.True(t, errors.Is(err, articleModel.ErrOwnerNotFound))
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	owner := newUser("owner@example.com", "owner")
	require.NoError(t, store.Users().Create(ctx, owner))
	a := articleModel.NewArticle(owner.ID, "Owned", time.Now())
	require.NoError(t, store.Articles().Create(ctx, a))

	err = store.Articles().AddComment(ctx, a.ID, commentModel.NewComment(uuid.New(), "ghost", time.Now()))
	assert.True(t, errors.Is(err, commentModel.ErrAuthorNotFound))
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	loaded, err := store.Articles().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.CommentIDs)
}

func TestArticleListFilters(t *testing.T) {
	ctx := context.Background()
	store := New()
	articles := store.Articles()

	owner := newUser("owner@example.com", "owner")
	require.NoError(t, store.Users().Create(ctx, owner))

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	titles := []string{"Go tips", "Rust notes", "More GO"}
	for i, title := range titles {
		a := articleModel.NewArticle(owner.ID, title, base.Add(time.Duration(i)*time.Hour))
		a.SetLongContent(strPtr("body of " + title))
		a.IsPublished = i != 1
		require.NoError(t, articles.Create(ctx, a))
	}

	all, total, err := articles.List(ctx, articleModel.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "More GO", all[0].Title)

	found, total, err := articles.List(ctx, articleModel.ListFilter{Title: "go"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, found, 2)

	_, total, err = articles.List(ctx, articleModel.ListFilter{LongContent: "RUST"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	published := true
	_, total, err = articles.List(ctx, articleModel.ListFilter{IsPublished: &published})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	paged, total, err := articles.List(ctx, articleModel.ListFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, paged, 1)
	assert.Equal(t, "Go tips", paged[0].Title)

	empty, _, err := articles.List(ctx, articleModel.ListFilter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)

	mine, err := articles.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}
