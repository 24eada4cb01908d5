package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/shared/auth"
)

// =====================================================
// ARTICLE SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// ========================================
	// PUBLIC OPERATIONS
	// ========================================

	// GetArticle gets article by ID
	GetArticle(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error)

	// ListArticles lists one page of articles with filters
	ListArticles(ctx context.Context, req model.ListArticlesRequest) (*model.ListArticlesResponse, error)

	// ========================================
	// AUTHENTICATED OPERATIONS
	// ========================================

	// CreateArticle creates a draft owned by actor
	CreateArticle(ctx context.Context, actor *auth.Principal, req model.CreateArticleRequest) (*model.ArticleResponse, error)

	// UpdateArticle patches an article; owner only
	UpdateArticle(ctx context.Context, actor *auth.Principal, id uuid.UUID, req model.UpdateArticleRequest) (*model.ArticleResponse, error)

	// DeleteArticle deletes an article and its comments; admin only
	DeleteArticle(ctx context.Context, actor *auth.Principal, id uuid.UUID) error
}
