package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	articleRepo "blog-backend/internal/domains/article/repository"
	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/policy"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo articleRepo.ArticleRepository
	now         func() time.Time
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo articleRepo.ArticleRepository,
) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		now:         time.Now,
	}
}

// =====================================================
// CREATE COMMENT
// =====================================================

func (s *commentService) CreateComment(
	ctx context.Context,
	actor *auth.Principal,
	articleID uuid.UUID,
	req model.CreateCommentRequest,
) (*model.CommentResponse, error) {
	// Step 1: Check authentication
	if err := policy.Authorize(policy.OpCreate, actor, policy.Comment(uuid.Nil)); err != nil {
		return nil, err
	}

	// Step 2: Load article
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	// Step 3: Validate request
	if err := req.Validate(); err != nil {
		return nil, apperr.FromValidation(err)
	}

	// Step 4: Gắn comment vào article (set back-reference) rồi persist
	comment := model.NewComment(actor.UserID, req.Body, s.now())
	article.AddComment(comment)

	if err := s.articleRepo.AddComment(ctx, article.ID, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	log.Info().
		Str("comment_id", comment.ID.String()).
		Str("article_id", article.ID.String()).
		Str("author_id", actor.UserID.String()).
		Msg("Comment created")

	// Step 5: Reload để có author username
	saved, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	response := model.ToCommentResponse(saved)
	return &response, nil
}

// =====================================================
// LIST COMMENTS
// =====================================================

func (s *commentService) ListComments(ctx context.Context, articleID uuid.UUID) ([]model.CommentResponse, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return model.ToCommentResponses(comments), nil
}

// =====================================================
// DELETE COMMENT
// =====================================================

func (s *commentService) DeleteComment(ctx context.Context, actor *auth.Principal, id uuid.UUID) error {
	// Step 1: Load comment
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}

	// Step 2: Author hoặc admin
	if err := policy.Authorize(policy.OpDelete, actor, policy.Comment(comment.AuthorID)); err != nil {
		return err
	}

	// Comment không còn gắn với article nào thì coi như không tồn tại
	if comment.ArticleID == nil {
		return model.ErrCommentNotFound
	}

	// Step 3: Load article sở hữu comment
	article, err := s.articleRepo.GetByID(ctx, *comment.ArticleID)
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}

	// Step 4: Gỡ cả hai phía rồi persist
	if !article.RemoveComment(comment) {
		return model.ErrCommentNotFound
	}
	if err := s.articleRepo.RemoveComment(ctx, article.ID, comment.ID); err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}

	log.Info().
		Str("comment_id", comment.ID.String()).
		Str("article_id", article.ID.String()).
		Str("actor_id", actor.UserID.String()).
		Msg("Comment deleted")

	return nil
}
