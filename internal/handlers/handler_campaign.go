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

// campaignHandler handles HTTP requests related to campaigns.
type campaignHandler struct {
	campaignService portssvc.CampaignSvcFacade
}

func newCampaignHandler(cs portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignService: cs}
}

// registerCampaignRoutes registers routes related to campaigns.
func registerCampaignRoutes(rg *gin.RouterGroup, cs portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(cs)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.createCampaign)
		campaigns.GET("", h.listCampaigns)
		campaigns.GET("/:id", h.getCampaign)
	}
}

// createCampaign godoc
// @Summary Create a new campaign
// @Tags campaigns
// @Accept  json
// @Produce  json
// @Param   campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create campaign"
// @Router /campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCampaign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create campaign in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}

	logger.Info("Campaign created successfully", slog.String("campaign_id", campaign.CampaignID))
	c.JSON(http.StatusCreated, dto.ToCampaignResponse(campaign))
}

// listCampaigns godoc
// @Summary List all campaigns
// @Tags campaigns
// @Produce  json
// @Success 200 {object} dto.ListCampaignsResponse
// @Failure 500 {object} map[string]string "Failed to list campaigns"
// @Router /campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	campaigns, err := h.campaignService.ListCampaigns(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list campaigns from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list campaigns"})
		return
	}

	c.JSON(http.StatusOK, dto.ListCampaignsResponse{Campaigns: dto.ToListCampaignResponse(campaigns)})
}

// getCampaign godoc
// @Summary Get a campaign by ID
// @Tags campaigns
// @Produce  json
// @Param   id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} map[string]string "Campaign not found"
// @Failure 500 {object} map[string]string "Failed to retrieve campaign"
// @Router /campaigns/{id} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	campaignID := c.Param("id")

	campaign, err := h.campaignService.GetCampaignByID(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Campaign not found", slog.String("campaign_id", campaignID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		} else {
			logger.Error("Failed to get campaign from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCampaignResponse(campaign))
}
