package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inkwell/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// BindURI binds path parameters into req, answering 400 on failure.
func BindURI(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contract.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, contract.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, contract.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, contract.ErrInvalidValue),
		errors.Is(err, contract.ErrBadRequest),
		errors.Is(err, contract.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status of its sentinel. Unknown errors are not echoed.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	if status == http.StatusInternalServerError {
		ErrorHandler(c, status, "internal server error")
		return
	}
	ErrorHandler(c, status, err.Error())
}

func identity(c *gin.Context) entity.Identity {
	return middleware.IdentityFrom(c)
}
