package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/shared/auth"
)

// =====================================================
// COMMENT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// CreateComment adds a comment to articleID's collection
	CreateComment(ctx context.Context, actor *auth.Principal, articleID uuid.UUID, req model.CreateCommentRequest) (*model.CommentResponse, error)

	// ListComments lists comments of an article in insertion order
	ListComments(ctx context.Context, articleID uuid.UUID) ([]model.CommentResponse, error)

	// DeleteComment removes a comment; author or admin
	DeleteComment(ctx context.Context, actor *auth.Principal, id uuid.UUID) error
}
