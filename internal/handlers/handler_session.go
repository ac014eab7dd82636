package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karunya-trust/donation_backend/internal/apperrors"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/karunya-trust/donation_backend/internal/middleware"
)

// sessionHandler exposes the session state manager to browsing and
// donation-form UIs.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers routes related to the session state manager.
func registerSessionRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade) {
	h := newSessionHandler(ss)

	session := rg.Group("/session")
	{
		session.GET("", h.getState)
		session.POST("/refresh", h.refresh)
		session.POST("/donations", h.createDonation)
		session.PUT("/campaigns/:id/select", h.selectCampaign)
	}
}

// getState godoc
// @Summary Current session state
// @Description Returns a snapshot of the session's donations, campaigns, selection and loading/error flags
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionStateResponse
// @Router /session [get]
func (h *sessionHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.State()))
}

// refresh godoc
// @Summary Reload donations and campaigns into the session
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionStateResponse
// @Failure 502 {object} map[string]string "Backing services unavailable"
// @Router /session/refresh [post]
func (h *sessionHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.sessionService.FetchCampaigns(c.Request.Context()); err != nil {
		logger.Error("Failed to refresh session state", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": apperrors.ErrFetchFailure.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.State()))
}

// createDonation godoc
// @Summary Record a donation through the session manager
// @Description Records the donation and appends it to session state
// @Tags session
// @Accept  json
// @Produce  json
// @Param   donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record donation"
// @Router /session/donations [post]
func (h *sessionHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for session CreateDonation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.sessionService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsValidation(err) {
			logger.Warn("Validation error creating session donation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create session donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// selectCampaign godoc
// @Summary Select the current campaign
// @Description Marks the campaign as current; an unknown ID leaves the selection unchanged
// @Tags session
// @Produce  json
// @Param   id path string true "Campaign ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} map[string]string "Campaign not in session"
// @Router /session/campaigns/{id}/select [put]
func (h *sessionHandler) selectCampaign(c *gin.Context) {
	campaignID := c.Param("id")

	// Tolerant lookup in the manager itself; the HTTP surface still reports
	// the miss so form UIs can react.
	if !h.sessionService.SelectCampaign(campaignID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not in session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.State()))
}
