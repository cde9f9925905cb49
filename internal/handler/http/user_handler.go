package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	ListUsers(*gin.Context)
	GetCurrentUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	baseHandler
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, timeout time.Duration, logger usecasecontract.IAppLogger) *UserHandler {
	return &UserHandler{
		baseHandler: baseHandler{timeout: timeout, logger: logger},
		userUsecase: userUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.userUsecase.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.respondError(c, "register", err)
		return
	}

	SuccessHandler(c, http.StatusCreated, "Register successful", dto.RegisterResponse{ID: user.ID, Email: user.Email})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	_, token, err := h.userUsecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.respondError(c, "login", err)
		return
	}

	SuccessHandler(c, http.StatusOK, "Login successful", dto.LoginResponse{Token: token})
}

// ListUsers returns every registered user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	users, err := h.userUsecase.ListUsers(ctx)
	if err != nil {
		h.respondError(c, "list users", err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Fetched users", dto.ToUserResponses(users))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.userUsecase.GetUserByID(ctx, userID)
	if err != nil {
		h.respondError(c, "get current user", err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Fetched user", dto.ToUserResponse(*user))
}
