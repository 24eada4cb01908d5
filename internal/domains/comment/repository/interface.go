package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
)

// CommentRepository is read-only: comments are written through the article
// repository, which owns collection membership.
type CommentRepository interface {
	// GetByID returns model.ErrCommentNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByArticle returns the comments of articleID, oldest first
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error)
}
