package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "wardrobe-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response, mapping the error type to an HTTP status.
func Error(c *gin.Context, err error) {
	c.JSON(statusFor(err), Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// statusFor maps domain error types to HTTP status codes.
func statusFor(err error) int {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode()
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var quotaErr *pkgErrors.QuotaExceededError
	if errors.As(err, &quotaErr) {
		return http.StatusForbidden
	}

	var providerErr *pkgErrors.ProviderUnavailableError
	if errors.As(err, &providerErr) {
		return http.StatusBadGateway
	}

	var persistenceErr *pkgErrors.PersistenceError
	if errors.As(err, &persistenceErr) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
