// Package request holds the binding helpers shared by the HTTP handlers.
package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

// ParamUUID parses the :name path parameter; a malformed id is a bad request
func ParamUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid "+name, err)
	}
	return id, nil
}

// BindJSON decodes the body into dst. An empty body leaves dst at its zero value
// so that the validation layer reports missing fields.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.BadRequest("malformed JSON body", err)
	}
	return nil
}

// BindQuery decodes query parameters into dst
func BindQuery(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return apperr.BadRequest("invalid query parameters", err)
	}
	return nil
}

// Principal trả về principal của request, nil nếu anonymous
func Principal(c *gin.Context) *auth.Principal {
	return auth.FromContext(c.Request.Context())
}
