package models

import (
	"errors"
)

var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrTypeNotFound       = errors.New("type not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrDuplicateCategory  = errors.New("category with this value already exists")
	ErrDuplicateType      = errors.New("type with this value already exists")
	ErrVersionConflict    = errors.New("property was modified by another request")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
