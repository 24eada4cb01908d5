package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to at most one Article. ArticleID is the back-reference kept
// in sync by the article's AddComment/RemoveComment, never set directly.
type Comment struct {
	ID             uuid.UUID  `json:"id"`
	ArticleID      *uuid.UUID `json:"articleId"`
	AuthorID       uuid.UUID  `json:"authorId"`
	AuthorUsername string     `json:"authorUsername"`
	Body           string     `json:"body"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// NewComment tạo comment chưa gắn vào article nào
func NewComment(authorID uuid.UUID, body string, now time.Time) *Comment {
	return &Comment{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
	}
}

// BelongsTo reports whether the back-reference points at articleID
func (c *Comment) BelongsTo(articleID uuid.UUID) bool {
	return c.ArticleID != nil && *c.ArticleID == articleID
}
