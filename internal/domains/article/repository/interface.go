package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	commentModel "blog-backend/internal/domains/comment/model"
)

// =====================================================
// ARTICLE REPOSITORY INTERFACE
// =====================================================

type ArticleRepository interface {
	// ========================================
	// CRUD Operations
	// ========================================

	Create(ctx context.Context, a *model.Article) error

	// GetByID loads the article with OwnerUsername and CommentIDs filled.
	// Returns model.ErrArticleNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)

	// Update persists title, contents and isPublished. Slug, owner and createdAt are immutable.
	Update(ctx context.Context, a *model.Article) error

	// Delete removes the article and its comments in one transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// ========================================
	// LIST Operations
	// ========================================

	// List returns one page matching filter, newest first, plus the total match count
	List(ctx context.Context, filter model.ListFilter) ([]*model.Article, int, error)

	// ListByOwner returns every article of ownerID, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Article, error)

	// ========================================
	// COMMENT COLLECTION
	// ========================================

	// AddComment persists c as a member of articleID's collection
	AddComment(ctx context.Context, articleID uuid.UUID, c *commentModel.Comment) error

	// RemoveComment deletes comment commentID from articleID's collection.
	// Returns commentModel.ErrCommentNotFound if it is not a member.
	RemoveComment(ctx context.Context, articleID, commentID uuid.UUID) error
}
