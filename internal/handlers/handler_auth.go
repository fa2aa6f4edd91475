package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/techhype/cardlink_backend/internal/apperrors"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/dto"
	"github.com/techhype/cardlink_backend/internal/middleware"
	"github.com/techhype/cardlink_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		cfg:         cfg,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService, cfg)

	// Rate limit: 5 requests per minute, applied to the credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/signup", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.GET("/verify/:token", h.VerifyEmail)
		auth.POST("/forgotpassword", limitMiddleware, h.ForgotPassword)
		auth.POST("/resetpassword/:token", limitMiddleware, h.ResetPassword)
		auth.POST("/refresh-token", h.RefreshToken)
		auth.POST("/logout", h.Logout)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates an unverified account and sends a verification email.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email is already registered"})
		default:
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user via the selected strategy and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Email not verified"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	creds := portssvc.AuthCredentials{Email: req.Email, Password: req.Password, IDToken: req.IDToken}
	user, pair, err := h.authService.Login(c.Request.Context(), req.Strategy, creds)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrUnverified):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Email is not verified"})
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrBadCredentials):
			// Unknown email and wrong password produce the same message so the
			// endpoint does not leak which emails exist.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		default:
			logger.Error("Failed to login user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to login"})
		}
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:           user.UserID,
		Email:        user.Email,
		Name:         user.FirstName + " " + user.LastName,
		Role:         user.Role,
		Verified:     user.Verified,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// VerifyEmail godoc
// @Summary Verify email address
// @Description Consumes a verification token and marks the account verified.
// @Tags auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Failure 500 {object} ErrorResponse
// @Router /auth/verify/{token} [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	user, err := h.authService.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		logger.Error("Failed to verify email", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify email"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a reset email if the address is registered. Always returns 200.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to request password reset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to request password reset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Consumes a reset token and replaces the account password.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param reset body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid token or weak password"
// @Failure 500 {object} ErrorResponse
// @Router /auth/resetpassword/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), token, req.NewPassword); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidOrExpiredToken):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired token"})
		default:
			logger.Error("Failed to reset password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

// RefreshToken godoc
// @Summary Rotate tokens
// @Description Validates a refresh token (cookie or body) and returns a fresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse "Invalid refresh token"
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refreshToken")
	if err != nil || refreshToken == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token required"})
		return
	}

	pair, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		logger.Error("Failed to refresh tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to refresh tokens"})
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken)
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("refreshToken", "", -1, "/", "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// setRefreshCookie stores the refresh token as an http-only cookie scoped to
// the whole site. Secure is only set in production so local development over
// plain HTTP keeps working.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetCookie("refreshToken", refreshToken, maxAge, "/", "", h.cfg.IsProduction, true)
}
