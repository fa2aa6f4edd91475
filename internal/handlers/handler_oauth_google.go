package handlers

import (
	"net/http"
	"strings"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"log/slog"
)

// GoogleOAuthHandler handles the server-side half of the Google OAuth code
// flow: the frontend sends the authorization code, we exchange and validate
// it, provision the account and return our own token pair.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse defines the successful response for the /google/exchange-code endpoint.
type ExchangeCodeResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for tokens
// @Description Exchanges a Google authorization code for an application token pair
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} ExchangeCodeResponse
// @Failure 400 {object} map[string]string "Invalid authorization code"
// @Failure 401 {object} map[string]string "Invalid Google ID token"
// @Failure 500 {object} map[string]string "Failed to process authentication"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.ErrorContext(ctx, "ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.ErrorContext(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" || payload.Subject == "" {
		logger.ErrorContext(ctx, "Essential claims missing from Google ID token payload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.FindOrCreateFederatedUser(ctx, domain.ProviderGoogle, &domain.GoogleUserInfo{
		ID:         payload.Subject,
		Email:      email,
		GivenName:  givenName,
		FamilyName: familyName,
		Picture:    picture,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to provision federated user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process user authentication"})
		return
	}

	pair, err := h.tokenService.IssueTokenPair(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token pair", slog.String("error", err.Error()), slog.Int64("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ExchangeCodeResponse{
			Token:        pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	})
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.Token)
	googleRoutes := rg.Group("/api/v1/auth/google")
	{
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}
