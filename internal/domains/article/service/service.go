package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/repository"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/policy"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type articleService struct {
	articleRepo repository.ArticleRepository
	now         func() time.Time
}

func NewArticleService(articleRepo repository.ArticleRepository) ServiceInterface {
	return &articleService{
		articleRepo: articleRepo,
		now:         time.Now,
	}
}

// =====================================================
// CREATE ARTICLE
// =====================================================

func (s *articleService) CreateArticle(
	ctx context.Context,
	actor *auth.Principal,
	req model.CreateArticleRequest,
) (*model.ArticleResponse, error) {
	// Step 1: Check authentication trước khi validate payload
	if err := policy.Authorize(policy.OpCreate, actor, policy.Article(uuid.Nil)); err != nil {
		return nil, err
	}

	// Step 2: Normalize + validate request
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// Step 3: Build entity (slug, createdAt, isPublished=false)
	article := model.NewArticle(actor.UserID, req.Title, s.now())
	article.ShortContent = req.ShortContent
	applyLongContent(article, req.LongContent, req.TextLongContent)

	// Step 4: Save
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	log.Info().
		Str("article_id", article.ID.String()).
		Str("owner_id", actor.UserID.String()).
		Str("slug", article.Slug).
		Msg("Article created")

	// Step 5: Reload để có owner username
	return s.GetArticle(ctx, article.ID)
}

// =====================================================
// GET / LIST
// =====================================================

func (s *articleService) GetArticle(ctx context.Context, id uuid.UUID) (*model.ArticleResponse, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	response := model.ToArticleResponse(article)
	return &response, nil
}

func (s *articleService) ListArticles(
	ctx context.Context,
	req model.ListArticlesRequest,
) (*model.ListArticlesResponse, error) {
	req.Normalize()
	filter := req.ToFilter()

	articles, total, err := s.articleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	items := make([]model.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, model.ToArticleResponse(a))
	}

	return &model.ListArticlesResponse{
		Articles: items,
		Total:    total,
		Page:     req.Page,
		Limit:    filter.Limit,
	}, nil
}

// =====================================================
// UPDATE ARTICLE
// =====================================================

func (s *articleService) UpdateArticle(
	ctx context.Context,
	actor *auth.Principal,
	id uuid.UUID,
	req model.UpdateArticleRequest,
) (*model.ArticleResponse, error) {
	// Step 1: Load article
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	// Step 2: Chỉ owner được sửa
	if err := policy.Authorize(policy.OpUpdate, actor, policy.Article(article.OwnerID)); err != nil {
		return nil, err
	}

	// Step 3: Normalize + validate patch
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// Step 4: Apply patch; slug giữ nguyên
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.ShortContent != nil {
		article.ShortContent = req.ShortContent
	}
	if req.LongContent != nil || req.TextLongContent != nil {
		applyLongContent(article, req.LongContent, req.TextLongContent)
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
	}
	article.UpdatedAt = s.now()

	// Step 5: Save
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	log.Info().
		Str("article_id", article.ID.String()).
		Bool("is_published", article.IsPublished).
		Msg("Article updated")

	response := model.ToArticleResponse(article)
	return &response, nil
}

// =====================================================
// DELETE ARTICLE
// =====================================================

func (s *articleService) DeleteArticle(ctx context.Context, actor *auth.Principal, id uuid.UUID) error {
	// Step 1: Load article
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}

	// Step 2: Admin only
	if err := policy.Authorize(policy.OpDelete, actor, policy.Article(article.OwnerID)); err != nil {
		return err
	}

	// Step 3: Delete (comments xoá cùng transaction)
	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	log.Info().
		Str("article_id", article.ID.String()).
		Str("admin_id", actor.UserID.String()).
		Int("comments", article.CommentCount()).
		Msg("Article deleted")

	return nil
}

// applyLongContent: textLongContent (raw text) wins over longContent (pre-formatted)
func applyLongContent(article *model.Article, longContent, textLongContent *string) {
	if textLongContent != nil {
		article.SetTextLongContent(textLongContent)
		return
	}
	article.SetLongContent(longContent)
}
