package model

import (
	"time"

	"github.com/google/uuid"

	commentModel "blog-backend/internal/domains/comment/model"
	"blog-backend/internal/shared/utils"
)

// Article is a blog post owned by exactly one user
type Article struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"ownerId"`
	OwnerUsername string    `json:"ownerUsername"`

	// Content
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	ShortContent *string `json:"shortContent"`
	LongContent  *string `json:"longContent"`
	IsPublished  bool    `json:"isPublished"`

	// Comment ids in insertion order, each at most once
	CommentIDs []uuid.UUID `json:"commentIds"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewArticle builds a draft owned by ownerID. The slug is derived from title here
// and never regenerated.
func NewArticle(ownerID uuid.UUID, title string, now time.Time) *Article {
	return &Article{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Slug:        utils.GenerateSlug(title),
		IsPublished: false,
		CommentIDs:  []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetTextLongContent stores raw text converted to markup; SetLongContent stores as is
func (a *Article) SetTextLongContent(raw *string) {
	a.LongContent = utils.NormalizeContent(raw)
}

func (a *Article) SetLongContent(content *string) {
	a.LongContent = content
}

// HasComment kiểm tra comment id đã có trong collection chưa
func (a *Article) HasComment(commentID uuid.UUID) bool {
	for _, id := range a.CommentIDs {
		if id == commentID {
			return true
		}
	}
	return false
}

// AddComment appends c if not already present and points its back-reference here.
// Returns false when c was already in the collection.
func (a *Article) AddComment(c *commentModel.Comment) bool {
	if a.HasComment(c.ID) {
		return false
	}

	a.CommentIDs = append(a.CommentIDs, c.ID)
	articleID := a.ID
	c.ArticleID = &articleID
	return true
}

// RemoveComment removes c from the collection. The back-reference is cleared only
// if it still points at this article. Returns false when c was not in the collection.
func (a *Article) RemoveComment(c *commentModel.Comment) bool {
	idx := -1
	for i, id := range a.CommentIDs {
		if id == c.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	a.CommentIDs = append(a.CommentIDs[:idx], a.CommentIDs[idx+1:]...)
	if c.BelongsTo(a.ID) {
		c.ArticleID = nil
	}
	return true
}

func (a *Article) CommentCount() int {
	return len(a.CommentIDs)
}

// Clone trả về bản copy độc lập (slices và pointers không share)
func (a *Article) Clone() *Article {
	cp := *a
	cp.CommentIDs = append([]uuid.UUID{}, a.CommentIDs...)
	if a.ShortContent != nil {
		s := *a.ShortContent
		cp.ShortContent = &s
	}
	if a.LongContent != nil {
		s := *a.LongContent
		cp.LongContent = &s
	}
	return &cp
}
