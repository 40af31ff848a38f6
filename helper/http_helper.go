package helper

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"newsroom-cms/logger"
	"newsroom-cms/models"
)

// HTTPHelper centralizes response envelopes and payload validation.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with an English-translated validator.
func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
	}
}

// SendMessage writes the `{message}` envelope used for every non-list
// success and error body.
func (u *HTTPHelper) SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusBadRequest, message)
}

func (u *HTTPHelper) SendNotFound(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusNotFound, message)
}

func (u *HTTPHelper) SendUnauthorized(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusUnauthorized, message)
}

func (u *HTTPHelper) SendForbidden(c *gin.Context, message string) {
	u.SendMessage(c, http.StatusForbidden, message)
}

// SendServerError logs the full error server-side and returns the generic
// message to the client.
func (u *HTTPHelper) SendServerError(c *gin.Context, err error) {
	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	u.SendMessage(c, http.StatusInternalServerError, "Server error")
}

// SendBindError maps a body-binding failure to 413 when the size ceiling was
// hit, 400 otherwise.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		u.SendMessage(c, http.StatusRequestEntityTooLarge,
			"File too large. Maximum size is 50MB. Please compress your image or video.")
		return
	}
	u.SendBadRequest(c, err.Error())
}

// SendCreated writes the `{id, message}` envelope for create operations.
func (u *HTTPHelper) SendCreated(c *gin.Context, id uint, message string) {
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": message})
}

// ValidateVar runs a single-value validation rule, e.g. "required,email".
func (u *HTTPHelper) ValidateVar(value interface{}, rule string) error {
	return u.Validate.Var(value, rule)
}

// TranslateValidationError renders the first field error in English, or the
// raw error text when it is not a validator error.
func (u *HTTPHelper) TranslateValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Translate(u.Translator)
	}
	return err.Error()
}

// GeneratePaging builds the list-envelope pagination block.
func (u *HTTPHelper) GeneratePaging(page, limit int, total int64) models.Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
