package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"blog-backend/internal/domains/article/model"
	commentModel "blog-backend/internal/domains/comment/model"
)

type articleRepository struct {
	s *Store
}

// view builds the returned copy with joined owner username and comment ids (caller holds lock)
func (r *articleRepository) view(row *articleRow) *model.Article {
	a := row.article.Clone()
	a.OwnerUsername = r.s.username(a.OwnerID)
	a.CommentIDs = r.s.commentIDs(a.ID)
	return a
}

func (r *articleRepository) Create(_ context.Context, a *model.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[a.OwnerID]; !ok {
		return model.ErrOwnerNotFound
	}

	stored := a.Clone()
	stored.CommentIDs = nil
	r.s.articles[a.ID] = &articleRow{article: stored, seq: r.s.nextSeq()}
	return nil
}

func (r *articleRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.articles[id]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	return r.view(row), nil
}

func (r *articleRepository) Update(_ context.Context, a *model.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.articles[a.ID]
	if !ok {
		return model.ErrArticleNotFound
	}

	updated := row.article.Clone()
	patch := a.Clone()
	updated.Title = patch.Title
	updated.ShortContent = patch.ShortContent
	updated.LongContent = patch.LongContent
	updated.IsPublished = patch.IsPublished
	updated.UpdatedAt = patch.UpdatedAt
	row.article = updated
	return nil
}

func (r *articleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[id]; !ok {
		return model.ErrArticleNotFound
	}

	for commentID, c := range r.s.comments {
		if c.BelongsTo(id) {
			delete(r.s.comments, commentID)
			r.s.removeCommentOrder(commentID)
		}
	}
	delete(r.s.articles, id)
	return nil
}

func (r *articleRepository) List(_ context.Context, filter model.ListFilter) ([]*model.Article, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]*articleRow, 0)
	for _, row := range r.s.articles {
		if matches(row.article, filter) {
			matched = append(matched, row)
		}
	}
	sortNewestFirst(matched)

	total := len(matched)
	start := min(filter.Offset, total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	page := make([]*model.Article, 0, end-start)
	for _, row := range matched[start:end] {
		page = append(page, r.view(row))
	}
	return page, total, nil
}

func (r *articleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Article, error) {
	articles, _, err := r.List(ctx, model.ListFilter{OwnerID: &ownerID})
	return articles, err
}

func (r *articleRepository) AddComment(_ context.Context, articleID uuid.UUID, c *commentModel.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[articleID]; !ok {
		return model.ErrArticleNotFound
	}
	if _, exists := r.s.comments[c.ID]; exists {
		return nil
	}
	if _, ok := r.s.users[c.AuthorID]; !ok {
		return commentModel.ErrAuthorNotFound
	}

	stored := *c
	id := articleID
	stored.ArticleID = &id
	r.s.comments[c.ID] = &stored
	r.s.commentOrder = append(r.s.commentOrder, c.ID)
	return nil
}

func (r *articleRepository) RemoveComment(_ context.Context, articleID, commentID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.articles[articleID]; !ok {
		return model.ErrArticleNotFound
	}

	c, ok := r.s.comments[commentID]
	if !ok || !c.BelongsTo(articleID) {
		return commentModel.ErrCommentNotFound
	}

	delete(r.s.comments, commentID)
	r.s.removeCommentOrder(commentID)
	return nil
}

func matches(a *model.Article, f model.ListFilter) bool {
	if f.IsPublished != nil && a.IsPublished != *f.IsPublished {
		return false
	}
	if f.OwnerID != nil && a.OwnerID != *f.OwnerID {
		return false
	}
	if f.Title != "" && !containsFold(a.Title, f.Title) {
		return false
	}
	if f.LongContent != "" && (a.LongContent == nil || !containsFold(*a.LongContent, f.LongContent)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortNewestFirst(rows []*articleRow) {
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := rows[i].article, rows[j].article
		if !ai.CreatedAt.Equal(aj.CreatedAt) {
			return ai.CreatedAt.After(aj.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
}
