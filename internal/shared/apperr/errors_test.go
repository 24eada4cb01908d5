package apperr

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	errArticleNotFound := NotFound("ARTICLE_NOT_FOUND", "article not found")
	wrapped := fmt.Errorf("get article: %w", errArticleNotFound)

	assert.True(t, errors.Is(wrapped, errArticleNotFound))
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrForbidden))
	assert.False(t, errors.Is(wrapped, NotFound("USER_NOT_FOUND", "user not found")))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
}

type createRequest struct {
	Title string `json:"title"`
	Email string `json:"email"`
}

func TestFromValidation(t *testing.T) {
	req := createRequest{Title: "a"}
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.RuneLength(2, 100)),
		validation.Field(&req.Email, validation.Required),
	)
	require.Error(t, err)

	converted := FromValidation(err)
	require.True(t, errors.Is(converted, ErrValidation))

	var appErr *Error
	require.True(t, errors.As(converted, &appErr))
	require.Len(t, appErr.Fields, 2)

	assert.Equal(t, "email", appErr.Fields[0].Field)
	assert.Equal(t, "validation_required", appErr.Fields[0].Constraint)
	assert.Equal(t, "title", appErr.Fields[1].Field)
	assert.Equal(t, "validation_length_out_of_range", appErr.Fields[1].Constraint)
}

func TestFromValidationNil(t *testing.T) {
	assert.NoError(t, FromValidation(nil))
}
