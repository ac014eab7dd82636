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

// donationHandler handles HTTP requests related to donations.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
	receiptService  portssvc.ReceiptSvcFacade
}

// newDonationHandler creates a new donationHandler.
func newDonationHandler(ds portssvc.DonationSvcFacade, rs portssvc.ReceiptSvcFacade) *donationHandler {
	return &donationHandler{
		donationService: ds,
		receiptService:  rs,
	}
}

// registerDonationRoutes registers routes related to donations.
func registerDonationRoutes(rg *gin.RouterGroup, ds portssvc.DonationSvcFacade, rs portssvc.ReceiptSvcFacade, createLimiter gin.HandlerFunc) {
	h := newDonationHandler(ds, rs)

	donations := rg.Group("/donations")
	{
		if createLimiter != nil {
			donations.POST("", createLimiter, h.createDonation)
		} else {
			donations.POST("", h.createDonation)
		}
		donations.GET("", h.listDonations)
		donations.GET("/stats", h.getDonationStats)
		donations.GET("/:id", h.getDonation)
		donations.POST("/:id/receipt", h.generateReceipt)
	}
}

// createDonation godoc
// @Summary Record a new donation
// @Description Validates and records a donation submitted from the donation form
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.DonationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record donation"
// @Router /donations [post]
func (h *donationHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDonation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsValidation(err) {
			logger.Warn("Validation error creating donation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create donation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		}
		return
	}

	logger.Info("Donation recorded successfully", slog.String("donation_id", donation.DonationID))
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

// listDonations godoc
// @Summary List all donations
// @Description Retrieves all recorded donations in creation order
// @Tags donations
// @Produce  json
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 500 {object} map[string]string "Failed to list donations"
// @Router /donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	donations, err := h.donationService.ListDonations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list donations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donations"})
		return
	}

	c.JSON(http.StatusOK, dto.ListDonationsResponse{Donations: dto.ToListDonationResponse(donations)})
}

// getDonation godoc
// @Summary Get a donation by ID
// @Tags donations
// @Produce  json
// @Param   id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve donation"
// @Router /donations/{id} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	donation, err := h.donationService.GetDonationByID(c.Request.Context(), donationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Donation not found", slog.String("donation_id", donationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to get donation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// getDonationStats godoc
// @Summary Donation aggregates
// @Description Returns count, total and average over all recorded donations
// @Tags donations
// @Produce  json
// @Success 200 {object} dto.DonationStatsResponse
// @Failure 500 {object} map[string]string "Failed to aggregate donations"
// @Router /donations/stats [get]
func (h *donationHandler) getDonationStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.donationService.GetDonationStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get donation stats from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate donations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationStatsResponse(stats))
}

// generateReceipt godoc
// @Summary Generate a donation receipt
// @Description Derives a printable receipt for a completed donation
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   id path string true "Donation ID"
// @Param   extras body dto.GenerateReceiptRequest true "Donor-supplied receipt fields"
// @Success 200 {object} domain.Receipt
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 500 {object} map[string]string "Failed to generate receipt"
// @Router /donations/{id}/receipt [post]
func (h *donationHandler) generateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	var req dto.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.GenerateReceipt(c.Request.Context(), donationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Donation not found for receipt", slog.String("donation_id", donationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to generate receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, receipt)
}
