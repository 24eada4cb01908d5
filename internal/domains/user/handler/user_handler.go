package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/service"
	"blog-backend/internal/infrastructure/session"
	"blog-backend/internal/shared/request"
	"blog-backend/internal/shared/response"
)

// UserHandler xử lý HTTP requests cho user domain
// Struct này là stateless - chỉ chứa dependencies
type UserHandler struct {
	service  service.ServiceInterface
	sessions *scs.SessionManager
}

// NewUserHandler tạo handler instance
func NewUserHandler(service service.ServiceInterface, sessions *scs.SessionManager) *UserHandler {
	return &UserHandler{
		service:  service,
		sessions: sessions,
	}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Login xử lý POST /login
// Credentials đúng → session cookie, 204 No Content
func (h *UserHandler) Login(c *gin.Context) {
	// STEP 1: PARSE REQUEST BODY
	var req model.LoginRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 2: VERIFY CREDENTIALS
	u, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 3: STORE PRINCIPAL IN SESSION
	if err := session.Login(c.Request.Context(), h.sessions, u.Principal()); err != nil {
		response.HandleError(c, err)
		return
	}

	log.Info().
		Str("user_id", u.ID.String()).
		Str("request_id", c.GetString("request_id")).
		Msg("User logged in")

	c.Status(http.StatusNoContent)
}

// Logout xử lý POST /logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := session.Logout(c.Request.Context(), h.sessions); err != nil {
		response.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IssueToken xử lý POST /api/token
// Dành cho API clients dùng Authorization: Bearer
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req model.LoginRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, token)
}

// Me xử lý GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	me, err := h.service.Me(c.Request.Context(), request.Principal(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, me)
}

// ========================================
// USER ENDPOINTS
// ========================================

// CreateUser xử lý POST /api/users - public registration
func (h *UserHandler) CreateUser(c *gin.Context) {
	// STEP 1: PARSE REQUEST BODY
	var req model.CreateUserRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 2: CALL SERVICE (validate → unique check → hash → save)
	created, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 3: RETURN RESPONSE
	response.Success(c, http.StatusCreated, created)
}

// GetUser xử lý GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateUser xử lý PUT /api/users/:id - chỉ chính user đó
func (h *UserHandler) UpdateUser(c *gin.Context) {
	// STEP 1: PARSE USER ID
	userID, err := request.ParamUUID(c, "id")
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 2: PARSE REQUEST BODY
	var req model.UpdateUserRequest
	if err := request.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	// STEP 3: CALL SERVICE
	updated, err := h.service.UpdateUser(c.Request.Context(), request.Principal(c), userID, req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}
