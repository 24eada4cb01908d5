package memstore

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
)

type commentRepository struct {
	s *Store
}

func (r *commentRepository) view(c *model.Comment) *model.Comment {
	cp := *c
	if c.ArticleID != nil {
		id := *c.ArticleID
		cp.ArticleID = &id
	}
	cp.AuthorUsername = r.s.username(c.AuthorID)
	return &cp
}

func (r *commentRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	return r.view(c), nil
}

func (r *commentRepository) ListByArticle(_ context.Context, articleID uuid.UUID) ([]*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := make([]*model.Comment, 0)
	for _, id := range r.s.commentIDs(articleID) {
		comments = append(comments, r.view(r.s.comments[id]))
	}
	return comments, nil
}
