package model

import "blog-backend/internal/shared/apperr"

// Error codes
const (
	ErrCodeArticleNotFound = "ARTICLE_NOT_FOUND"
)

var ErrArticleNotFound = apperr.NotFound(ErrCodeArticleNotFound, "article not found")

// ErrOwnerNotFound: token/session còn hạn nhưng user đã không còn trong DB
var ErrOwnerNotFound = apperr.Unauthorized("account no longer exists")
