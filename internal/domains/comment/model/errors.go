package model

import "blog-backend/internal/shared/apperr"

// Error codes
const (
	ErrCodeCommentNotFound = "COMMENT_NOT_FOUND"
)

var ErrCommentNotFound = apperr.NotFound(ErrCodeCommentNotFound, "comment not found")

// ErrAuthorNotFound: author_id không tham chiếu tới user nào
var ErrAuthorNotFound = apperr.Unauthorized("account no longer exists")
