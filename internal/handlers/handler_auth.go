package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	portssvc "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/dto"
	"github.com/muhammadanas3/currency-exchange-api/internal/middleware"
	"github.com/muhammadanas3/currency-exchange-api/pkg/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited harder than the rest of the API.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth", middleware.RateLimit(ipLimiter))
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns a bearer token carrying the caller's role
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		logger.Error("Login error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	logger.Info("User logged in", slog.String("username", req.Username))
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Register a user
// @Description Creates a new user account with the given role
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "User details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid input or username taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Registration error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, gin.H{"userID": user.UserID})
}
