package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"newsroom-cms/helper"
	"newsroom-cms/services"
)

// sendServiceError translates a service sentinel into its response envelope.
// Anything unrecognized is an upstream failure: logged in full, reported as
// a generic 500.
func sendServiceError(h *helper.HTTPHelper, c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrArticleNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrMediaNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrInvalidReference):
		h.SendNotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrCategoryInUse),
		errors.Is(err, services.ErrCategoryExists),
		errors.Is(err, services.ErrTagExists),
		errors.Is(err, services.ErrEmailExists):
		h.SendBadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		h.SendUnauthorized(c, err.Error())
	case errors.Is(err, services.ErrAdminRequired):
		h.SendForbidden(c, err.Error())
	default:
		h.SendServerError(c, err)
	}
}
