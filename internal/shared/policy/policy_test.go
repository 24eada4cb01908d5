package policy

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

func TestCanPerform(t *testing.T) {
	ownerID := uuid.New()
	owner := &auth.Principal{UserID: ownerID, Role: auth.RoleUser}
	stranger := &auth.Principal{UserID: uuid.New(), Role: auth.RoleUser}
	admin := &auth.Principal{UserID: uuid.New(), Role: auth.RoleAdmin}

	items := []struct {
		name  string
		op    Operation
		actor *auth.Principal
		res   Resource
		ok    bool
	}{
		{"article list anonymous", OpList, nil, Article(uuid.Nil), true},
		{"article read anonymous", OpRead, nil, Article(ownerID), true},
		{"article create anonymous", OpCreate, nil, Article(uuid.Nil), false},
		{"article create user", OpCreate, stranger, Article(uuid.Nil), true},
		{"article update owner", OpUpdate, owner, Article(ownerID), true},
		{"article update stranger", OpUpdate, stranger, Article(ownerID), false},
		{"article update admin", OpUpdate, admin, Article(ownerID), false},
		{"article update anonymous", OpUpdate, nil, Article(ownerID), false},
		{"article delete owner", OpDelete, owner, Article(ownerID), false},
		{"article delete admin", OpDelete, admin, Article(ownerID), true},
		{"user create anonymous", OpCreate, nil, User(uuid.Nil), true},
		{"user update self", OpUpdate, owner, User(ownerID), true},
		{"user update other", OpUpdate, stranger, User(ownerID), false},
		{"user delete admin", OpDelete, admin, User(ownerID), false},
		{"comment create user", OpCreate, stranger, Comment(uuid.Nil), true},
		{"comment delete author", OpDelete, owner, Comment(ownerID), true},
		{"comment delete admin", OpDelete, admin, Comment(ownerID), true},
		{"comment delete stranger", OpDelete, stranger, Comment(ownerID), false},
	}

	for _, item := range items {
		t.Run(item.name, func(t *testing.T) {
			assert.Equal(t, item.ok, CanPerform(item.op, item.actor, item.res))
		})
	}
}

func TestAuthorize(t *testing.T) {
	ownerID := uuid.New()
	stranger := &auth.Principal{UserID: uuid.New(), Role: auth.RoleUser}

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		err := Authorize(OpUpdate, nil, Article(ownerID))
		assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
		assert.False(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("authenticated non-owner is forbidden", func(t *testing.T) {
		err := Authorize(OpUpdate, stranger, Article(ownerID))
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
		assert.False(t, errors.Is(err, apperr.ErrUnauthorized))
		assert.Equal(t, "only the creator can edit post", err.Error())
	})

	t.Run("non-admin delete is forbidden", func(t *testing.T) {
		err := Authorize(OpDelete, stranger, Article(ownerID))
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("allowed returns nil", func(t *testing.T) {
		assert.NoError(t, Authorize(OpCreate, stranger, Article(uuid.Nil)))
	})
}
