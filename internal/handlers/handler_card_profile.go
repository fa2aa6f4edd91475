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

// cardProfileHandler handles HTTP requests for card profiles and their
// address/work/social sub-records.
type cardProfileHandler struct {
	profileService portssvc.CardProfileSvcFacade
}

func newCardProfileHandler(ps portssvc.CardProfileSvcFacade) *cardProfileHandler {
	return &cardProfileHandler{
		profileService: ps,
	}
}

// registerCardProfileRoutes registers profile routes. Creation and listing
// hang off the owning card; everything else addresses the profile directly.
func registerCardProfileRoutes(rg *gin.RouterGroup, profileService portssvc.CardProfileSvcFacade) {
	h := newCardProfileHandler(profileService)

	cards := rg.Group("/cards/:id/profiles")
	{
		cards.POST("", h.createProfile)
		cards.GET("", h.listProfiles)
	}

	profiles := rg.Group("/profiles")
	{
		profiles.GET("/:id", h.getProfile)
		profiles.PUT("/:id", h.updateProfile)
		profiles.DELETE("/:id", h.deleteProfile)
		profiles.POST("/:id/activate", h.activateProfile)
		profiles.PUT("/:id/address", h.upsertAddress)
		profiles.DELETE("/:id/address", h.deleteAddress)
		profiles.PUT("/:id/workinfo", h.upsertWorkInfo)
		profiles.DELETE("/:id/workinfo", h.deleteWorkInfo)
		profiles.PUT("/:id/socialmedia", h.upsertSocialMedia)
		profiles.DELETE("/:id/socialmedia", h.deleteSocialMedia)
	}
}

// createProfile godoc
// @Summary Create a profile
// @Description Attaches a profile to a card. The card's first profile becomes active.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id path int true "Card ID"
// @Param   profile body dto.CardProfileRequest true "Profile details"
// @Success 201 {object} dto.CardProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to create profile"
// @Security BearerAuth
// @Router /cards/{id}/profiles [post]
func (h *cardProfileHandler) createProfile(c *gin.Context) {
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

	var req dto.CardProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), userID, cardID, req)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardProfileResponse(profile))
}

// listProfiles godoc
// @Summary List profiles
// @Description Retrieves all profiles attached to one of the user's cards
// @Tags profiles
// @Produce  json
// @Param   id path int true "Card ID"
// @Success 200 {array} dto.CardProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Failed to list profiles"
// @Security BearerAuth
// @Router /cards/{id}/profiles [get]
func (h *cardProfileHandler) listProfiles(c *gin.Context) {
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

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), userID, cardID)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardProfileListResponse(profiles))
}

// getProfile godoc
// @Summary Get a profile
// @Description Retrieves a profile with its address, work and social sub-records
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 200 {object} dto.CardProfileDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (h *cardProfileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	detail, err := h.profileService.GetProfile(c.Request.Context(), userID, profileID)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardProfileDetailResponse(detail))
}

// updateProfile godoc
// @Summary Update a profile
// @Description Updates a profile's presentational fields
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id path int true "Profile ID"
// @Param   profile body dto.CardProfileRequest true "Profile details"
// @Success 200 {object} dto.CardProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to update profile"
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (h *cardProfileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	var req dto.CardProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, profileID, req)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToCardProfileResponse(profile))
}

// activateProfile godoc
// @Summary Activate a profile
// @Description Makes the profile the card's single active one, deactivating its siblings
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to activate profile"
// @Security BearerAuth
// @Router /profiles/{id}/activate [post]
func (h *cardProfileHandler) activateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	if err := h.profileService.SetActiveProfile(c.Request.Context(), userID, profileID); err != nil {
		respondProfileError(c, logger, err, "Failed to activate profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile activated"})
}

// deleteProfile godoc
// @Summary Delete a profile
// @Description Removes a profile and its sub-records
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to delete profile"
// @Security BearerAuth
// @Router /profiles/{id} [delete]
func (h *cardProfileHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), userID, profileID); err != nil {
		respondProfileError(c, logger, err, "Failed to delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}

// upsertAddress godoc
// @Summary Upsert the profile address
// @Description Creates or replaces the profile's single postal address
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id path int true "Profile ID"
// @Param   address body dto.AddressRequest true "Address details"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to save address"
// @Security BearerAuth
// @Router /profiles/{id}/address [put]
func (h *cardProfileHandler) upsertAddress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	address, err := h.profileService.UpsertAddress(c.Request.Context(), userID, profileID, req)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to save address")
		return
	}

	c.JSON(http.StatusOK, dto.AddressResponse{
		Country:    address.Country,
		Street:     address.Street,
		PostalCode: address.PostalCode,
		State:      address.State,
		City:       address.City,
	})
}

// upsertWorkInfo godoc
// @Summary Upsert the profile work record
// @Description Creates or replaces the profile's single employment record
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id path int true "Profile ID"
// @Param   workinfo body dto.WorkInfoRequest true "Work details"
// @Success 200 {object} dto.WorkInfoResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to save work info"
// @Security BearerAuth
// @Router /profiles/{id}/workinfo [put]
func (h *cardProfileHandler) upsertWorkInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	var req dto.WorkInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	workInfo, err := h.profileService.UpsertWorkInfo(c.Request.Context(), userID, profileID, req)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to save work info")
		return
	}

	c.JSON(http.StatusOK, dto.WorkInfoResponse{
		Company:   workInfo.Company,
		Position:  workInfo.Position,
		WorkPhone: workInfo.WorkPhone,
		WorkEmail: workInfo.WorkEmail,
	})
}

// upsertSocialMedia godoc
// @Summary Upsert the profile social links
// @Description Creates or replaces the profile's single set of social links
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   id path int true "Profile ID"
// @Param   socialmedia body dto.SocialMediaRequest true "Social links"
// @Success 200 {object} dto.SocialMediaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to save social links"
// @Security BearerAuth
// @Router /profiles/{id}/socialmedia [put]
func (h *cardProfileHandler) upsertSocialMedia(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	var req dto.SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	socialMedia, err := h.profileService.UpsertSocialMedia(c.Request.Context(), userID, profileID, req)
	if err != nil {
		respondProfileError(c, logger, err, "Failed to save social links")
		return
	}

	c.JSON(http.StatusOK, dto.SocialMediaResponse{
		FacebookLink:  socialMedia.FacebookLink,
		LinkedinLink:  socialMedia.LinkedinLink,
		SnapLink:      socialMedia.SnapLink,
		InstagramLink: socialMedia.InstagramLink,
	})
}

// deleteAddress godoc
// @Summary Delete the profile address
// @Description Removes the profile's postal address
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Failed to delete address"
// @Security BearerAuth
// @Router /profiles/{id}/address [delete]
func (h *cardProfileHandler) deleteAddress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteAddress(c.Request.Context(), userID, profileID); err != nil {
		respondProfileError(c, logger, err, "Failed to delete address")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteWorkInfo godoc
// @Summary Delete the profile work record
// @Description Removes the profile's employment record
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Failed to delete work info"
// @Security BearerAuth
// @Router /profiles/{id}/workinfo [delete]
func (h *cardProfileHandler) deleteWorkInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteWorkInfo(c.Request.Context(), userID, profileID); err != nil {
		respondProfileError(c, logger, err, "Failed to delete work info")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteSocialMedia godoc
// @Summary Delete the profile social links
// @Description Removes the profile's social links
// @Tags profiles
// @Produce  json
// @Param   id path int true "Profile ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Failed to delete social links"
// @Security BearerAuth
// @Router /profiles/{id}/socialmedia [delete]
func (h *cardProfileHandler) deleteSocialMedia(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profileID, userID, ok := h.profileRequestIDs(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteSocialMedia(c.Request.Context(), userID, profileID); err != nil {
		respondProfileError(c, logger, err, "Failed to delete social links")
		return
	}

	c.Status(http.StatusNoContent)
}

// profileRequestIDs extracts the profile ID from the path and the caller's
// user ID from the context, writing the error response itself on failure.
func (h *cardProfileHandler) profileRequestIDs(c *gin.Context) (profileID, userID int64, ok bool) {
	profileID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return 0, 0, false
	}
	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, 0, false
	}
	return profileID, userID, true
}

// respondProfileError maps the shared profile error cases to HTTP responses.
func respondProfileError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
