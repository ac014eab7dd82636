package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/karunya-trust/donation_backend/internal/utils"
)

// receiptDateLayout is the fixed date format printed on receipts.
const receiptDateLayout = "02/01/2006"

// BuildReceipt maps a completed donation plus the issuing-organization
// constants and donor-supplied extras to a complete receipt record. Pure and
// deterministic: identical input yields identical output, and every layout
// field is populated (empty string is a valid value for optional fields).
//
// Caller-supplied extras are preserved verbatim; the only default applied is
// Representative, and only when the caller omitted the field entirely.
func BuildReceipt(donation domain.Donation, org domain.Organization, extras dto.ReceiptExtras) domain.Receipt {
	representative := org.Representative
	if extras.Representative != nil {
		representative = *extras.Representative
	}

	return domain.Receipt{
		ReceiptNo:     receiptNo(donation),
		Date:          donation.CreatedAt.Format(receiptDateLayout),
		DonorName:     donation.Name,
		DonorAddress:  extras.DonorAddress,
		DonorContact:  extras.DonorContact,
		DonorEmail:    donation.Email,
		Amount:        utils.FormatAmount(donation.Amount),
		PaymentMode:   extras.PaymentMode,
		TransactionID: extras.TransactionID,
		PAN:           extras.PAN,

		OrgName:           org.Name,
		OrgAddress:        org.Address,
		OrgContact:        org.Contact,
		OrgEmail:          org.Email,
		OrgTaxPAN:         org.TaxPAN,
		OrgRegistrationNo: org.RegistrationNo,
		Representative:    representative,
	}
}

// receiptNo derives a stable receipt number from the donation identity, so
// regenerating a receipt never assigns a new number.
func receiptNo(donation domain.Donation) string {
	id := strings.ToUpper(strings.ReplaceAll(donation.DonationID, "-", ""))
	if len(id) > 12 {
		id = id[:12]
	}
	return "RCPT-" + id
}

type receiptService struct {
	donationSvc portssvc.DonationReaderSvc
	org         domain.Organization
}

// NewReceiptService creates the receipt facade bound to the fixed
// issuing-organization details.
func NewReceiptService(donationSvc portssvc.DonationReaderSvc, org domain.Organization) portssvc.ReceiptSvcFacade {
	return &receiptService{donationSvc: donationSvc, org: org}
}

// Ensure implementation matches interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// GenerateReceipt looks up the donation and applies the pure builder.
func (s *receiptService) GenerateReceipt(ctx context.Context, donationID string, req dto.GenerateReceiptRequest) (*domain.Receipt, error) {
	donation, err := s.donationSvc.GetDonationByID(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donation for receipt: %w", err)
	}

	receipt := BuildReceipt(*donation, s.org, req.ReceiptExtras)
	return &receipt, nil
}
