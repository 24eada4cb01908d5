package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateCommentRequest request to comment on an article
type CreateCommentRequest struct {
	Body string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required,
			utils.NotBlank,
			validation.RuneLength(MinBodyLength, MaxBodyLength),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type AuthorInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// CommentResponse là comment:read representation
type CommentResponse struct {
	ID           uuid.UUID  `json:"id"`
	ArticleID    *uuid.UUID `json:"articleId"`
	Author       AuthorInfo `json:"author"`
	Body         string     `json:"body"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedAtAgo string     `json:"createdAtAgo"`
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:           c.ID,
		ArticleID:    c.ArticleID,
		Author:       AuthorInfo{ID: c.AuthorID, Username: c.AuthorUsername},
		Body:         c.Body,
		CreatedAt:    c.CreatedAt,
		CreatedAtAgo: utils.TimeAgo(c.CreatedAt),
	}
}

func ToCommentResponses(comments []*Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
