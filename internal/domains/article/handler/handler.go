package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/domains/article/service"
	"blog-backend/internal/shared/request"
	"blog-backend/internal/shared/response"
)

// =====================================================
// ARTICLE HANDLER
// =====================================================

type ArticleHandler struct {
	articleService service.ServiceInterface
}

func NewArticleHandler(articleService service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListArticles lists articles with filters
// GET /api/articles?isPublished=true&title=go&longContent=pgx&page=2
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	// Step 1: Bind query
	var req model.ListArticlesRequest
	if err := request.BindQuery(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 2: Call service
	result, err := h.articleService.ListArticles(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 3: Return with pagination meta
	response.SuccessWithMeta(c, http.StatusOK, result.Articles, response.NewMeta(result.Page, result.Limit, result.Total))
}

// GetArticle gets article by ID
// GET /api/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := h.articleService.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// =====================================================
// AUTHENTICATED ENDPOINTS
// =====================================================

// CreateArticle creates new article
// POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateArticleRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 2: Call service (auth → validate → save)
	result, err := h.articleService.CreateArticle(c.Request.Context(), request.Principal(c), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 3: Return created
	response.Success(c, http.StatusCreated, result)
}

// UpdateArticle patches an article
// PUT /api/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	// Step 1: Parse article ID
	articleID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 2: Bind request body
	var req model.UpdateArticleRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 3: Call service
	result, err := h.articleService.UpdateArticle(c.Request.Context(), request.Principal(c), articleID, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteArticle deletes an article
// DELETE /api/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), request.Principal(c), articleID); err != nil {
		response.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
