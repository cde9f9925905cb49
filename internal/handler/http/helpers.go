package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

const (
	msgServerError     = "Server error"
	msgTimeout         = "Request timed out"
	msgInvalidReaction = "Invalid type. Must be LIKE or DISLIKE."
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Envelope{Success: false, Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Success: true, Message: message, Data: data})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request body")
		return err
	}
	return nil
}

// currentUserID reads the identity stored by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// baseHandler carries what every handler needs besides its usecase.
type baseHandler struct {
	timeout time.Duration
	logger  usecasecontract.IAppLogger
}

// requestContext derives the per-request deadline.
func (h baseHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func (h baseHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		if h.logger != nil {
			h.logger.Warnf("%s timed out: %v", op, err)
		}
		ErrorHandler(c, http.StatusGatewayTimeout, msgTimeout)
	case errors.Is(err, domain.ErrInvalidReactionType):
		ErrorHandler(c, http.StatusBadRequest, msgInvalidReaction)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidProductData):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrProductNotFound):
		ErrorHandler(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrEmailTaken):
		ErrorHandler(c, http.StatusConflict, "Email already exists")
	default:
		if h.logger != nil {
			h.logger.Errorf("%s failed: %v", op, err)
		}
		ErrorHandler(c, http.StatusInternalServerError, msgServerError)
	}
}
