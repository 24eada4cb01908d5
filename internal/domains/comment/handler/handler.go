package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	"blog-backend/internal/shared/request"
	"blog-backend/internal/shared/response"
)

// =====================================================
// COMMENT HANDLER
// =====================================================

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments lists comments of an article
// GET /api/articles/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	result, err := h.commentService.ListComments(c.Request.Context(), articleID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreateComment comments on an article
// POST /api/articles/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	// Step 1: Parse article ID
	articleID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 2: Bind request body
	var req model.CreateCommentRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// Step 3: Call service
	result, err := h.commentService.CreateComment(c.Request.Context(), request.Principal(c), articleID, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// DeleteComment removes a comment
// DELETE /api/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), request.Principal(c), commentID); err != nil {
		response.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
