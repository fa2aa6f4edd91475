package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/dto"
	"github.com/techhype/cardlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cardHandler handles HTTP requests related to cards.
type cardHandler struct {
	cardService portssvc.CardSvcFacade
}

func newCardHandler(cs portssvc.CardSvcFacade) *cardHandler {
	return &cardHandler{
		cardService: cs,
	}
}

// registerCardRoutes registers all card-related routes.
func registerCardRoutes(rg *gin.RouterGroup, cardService portssvc.CardSvcFacade) {
	h := newCardHandler(cardService)

	cards := rg.Group("/cards")
	{
		cards.POST("", h.createCard)
		cards.GET("", h.listCards)
		cards.GET("/:id", h.getCard)
		cards.PUT("/:id", h.updateCard)
		cards.DELETE("/:id", h.deleteCard)
	}
}

// createCard godoc
// @Summary Create a card
// @Description Creates a card for the authenticated user and mints its shareable URL
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   card body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create card"
// @Security BearerAuth
// @Router /cards [post]
func (h *cardHandler) createCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	card, cardURL, err := h.cardService.CreateCard(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create card", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardResponse(card, cardURL))
}

// listCards godoc
// @Summary List cards
// @Description Retrieves all cards owned by the authenticated user
// @Tags cards
// @Produce  json
// @Success 200 {array} dto.CardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cards"
// @Security BearerAuth
// @Router /cards [get]
func (h *cardHandler) listCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cards, err := h.cardService.ListCards(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list cards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCardListResponse(cards))
}

// getCard godoc
// @Summary Get a card
// @Description Retrieves one of the authenticated user's cards
// @Tags cards
// @Produce  json
// @Param   id path int true "Card ID"
// @Success 200 {object} dto.CardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve card"
// @Security BearerAuth
// @Router /cards/{id} [get]
func (h *cardHandler) getCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	card, err := h.cardService.GetCard(c.Request.Context(), userID, cardID)
	if err != nil {
		respondCardError(c, logger, err, "Failed to retrieve card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card, nil))
}

// updateCard godoc
// @Summary Update a card
// @Description Updates a card's name/active/designed flags. Designed latches true.
// @Tags cards
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   card body dto.UpdateCardRequest true "Fields to update"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to update card"
// @Security BearerAuth
// @Router /cards/{id} [put]
func (h *cardHandler) updateCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), userID, cardID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondCardError(c, logger, err, "Failed to update card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardResponse(card, nil))
}

// deleteCard godoc
// @Summary Delete a card
// @Description Removes a card and its profiles
// @Tags cards
// @Produce  json
// @Param   id path int true "Card ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to delete card"
// @Security BearerAuth
// @Router /cards/{id} [delete]
func (h *cardHandler) deleteCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cardID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), userID, cardID); err != nil {
		respondCardError(c, logger, err, "Failed to delete card")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondCardError maps the shared card error cases to HTTP responses.
func respondCardError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
