package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared/utils"
)

// =====================================================
// REQUEST DTOs (article:write)
// =====================================================

// CreateArticleRequest request to create article.
// textLongContent is raw text and wins over longContent when both are sent.
type CreateArticleRequest struct {
	Title           string  `json:"title"`
	ShortContent    *string `json:"shortContent"`
	LongContent     *string `json:"longContent"`
	TextLongContent *string `json:"textLongContent"`
}

// Normalize trims title trước khi validate để length check đúng với giá trị được lưu
func (r *CreateArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules()...),
	)
}

// UpdateArticleRequest là patch: field nil thì giữ nguyên
type UpdateArticleRequest struct {
	Title           *string `json:"title"`
	ShortContent    *string `json:"shortContent"`
	LongContent     *string `json:"longContent"`
	TextLongContent *string `json:"textLongContent"`
	IsPublished     *bool   `json:"isPublished"`
}

func (r *UpdateArticleRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		r.Title = &title
	}
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, titleRules()...)),
	)
}

func titleRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		utils.NotBlank,
		validation.RuneLength(MinTitleLength, MaxTitleLength),
	}
}

// ListArticlesRequest: ?isPublished=true&title=go&longContent=pgx&page=2
type ListArticlesRequest struct {
	IsPublished *bool  `form:"isPublished"`
	Title       string `form:"title"`
	LongContent string `form:"longContent"`
	Page        int    `form:"page"`
}

func (r *ListArticlesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	r.Title = strings.TrimSpace(r.Title)
	r.LongContent = strings.TrimSpace(r.LongContent)
}

// ListFilter là điều kiện truy vấn cho repository
type ListFilter struct {
	IsPublished *bool
	Title       string
	LongContent string
	OwnerID     *uuid.UUID
	Limit       int
	Offset      int
}

func (r ListArticlesRequest) ToFilter() ListFilter {
	return ListFilter{
		IsPublished: r.IsPublished,
		Title:       r.Title,
		LongContent: r.LongContent,
		Limit:       ItemsPerPage,
		Offset:      (r.Page - 1) * ItemsPerPage,
	}
}

// =====================================================
// RESPONSE DTOs (article:read)
// =====================================================

type OwnerInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type ArticleResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	ShortContent *string   `json:"shortContent"`
	LongContent  *string   `json:"longContent"`
	IsPublished  bool      `json:"isPublished"`
	Owner        OwnerInfo `json:"owner"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedAtAgo string    `json:"createdAtAgo"`
}

type ListArticlesResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func ToArticleResponse(a *Article) ArticleResponse {
	return ArticleResponse{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		ShortContent: a.ShortContent,
		LongContent:  a.LongContent,
		IsPublished:  a.IsPublished,
		Owner:        OwnerInfo{ID: a.OwnerID, Username: a.OwnerUsername},
		CommentCount: a.CommentCount(),
		CreatedAt:    a.CreatedAt,
		CreatedAtAgo: utils.TimeAgo(a.CreatedAt),
	}
}

// ArticleSummary là article trong user:read (title, slug, shortContent, isPublished)
type ArticleSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	ShortContent *string   `json:"shortContent"`
	IsPublished  bool      `json:"isPublished"`
}

func ToArticleSummary(a *Article) ArticleSummary {
	return ArticleSummary{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		ShortContent: a.ShortContent,
		IsPublished:  a.IsPublished,
	}
}
