package model

import "blog-backend/internal/shared/apperr"

// Error codes
const (
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

var (
	ErrUserNotFound       = apperr.NotFound(ErrCodeUserNotFound, "user not found")
	ErrEmailTaken         = apperr.Conflict(ErrCodeEmailTaken, "email already registered")
	ErrUsernameTaken      = apperr.Conflict(ErrCodeUsernameTaken, "username already taken")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, ErrCodeInvalidCredentials, "invalid email or password")
)
