package services

import (
	"context"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/dto"
)

// ReceiptSvcFacade derives printable receipts for completed donations.
type ReceiptSvcFacade interface {
	// GenerateReceipt looks up the donation and maps it, together with the
	// issuing-organization constants and donor-supplied extras, to a complete
	// receipt record. Pure derivation: identical input yields identical output.
	GenerateReceipt(ctx context.Context, donationID string, req dto.GenerateReceiptRequest) (*domain.Receipt, error)
}
