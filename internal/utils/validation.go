package utils

import (
	"strings"

	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ValidateDonationAmount checks that a donation amount is strictly positive.
// Non-numeric input never reaches this point: decimal parsing fails at the
// binding layer. Side-effect-free.
func ValidateDonationAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

// ValidateDonorInfo checks that the donor supplied both a name and an email.
// Whitespace-only values count as empty.
func ValidateDonorInfo(name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return apperrors.ErrMissingDonorInfo
	}
	return nil
}
