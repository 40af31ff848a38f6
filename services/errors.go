package services

import "errors"

// Sentinel errors the handlers translate into HTTP envelopes.
var (
	ErrArticleNotFound    = errors.New("Article not found")
	ErrCategoryNotFound   = errors.New("Category not found")
	ErrTagNotFound        = errors.New("Tag not found")
	ErrCommentNotFound    = errors.New("Comment not found")
	ErrMediaNotFound      = errors.New("Media not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidStatus      = errors.New("Invalid status value")
	ErrInvalidReference   = errors.New("Referenced category or tag not found")
	ErrCategoryInUse      = errors.New("Cannot delete category with articles")
	ErrCategoryExists     = errors.New("Category already exists")
	ErrTagExists          = errors.New("Tag already exists")
	ErrEmailExists        = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAdminRequired      = errors.New("Admin access required")
)
