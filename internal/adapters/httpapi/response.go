package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"volleyhub/internal/domain"
)

type translator interface {
	Error(locale string, err error) string
	Match(acceptLanguage string) string
}

type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func ok(c *gin.Context, status int, data any, message string) {
	c.JSON(status, ApiResponse{Success: true, Data: data, Message: message})
}

// fail renders err in the caller's language. Errors without a domain code
// are logged and reported as a generic 500.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	if code == "" {
		code = "generic"
	}
	if status == http.StatusInternalServerError {
		log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("❌ request failed")
	}
	c.JSON(status, ApiResponse{Success: false, Error: message(c, err), Code: code})
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrNotAuthorized) {
		return http.StatusUnauthorized
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func message(c *gin.Context, err error) string {
	tr, found := c.Get(ctxTranslator)
	if !found {
		if domain.Code(err) != "" {
			return err.Error()
		}
		return "internal error"
	}
	return tr.(translator).Error(c.GetString(ctxLocale), err)
}
