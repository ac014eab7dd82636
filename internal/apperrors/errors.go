package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidAmount indicates a donation amount that is missing or not greater than zero.
var ErrInvalidAmount = errors.New("invalid donation amount: must be greater than zero")

// ErrMissingDonorInfo indicates a donation without the required donor name or email.
var ErrMissingDonorInfo = errors.New("donor name and email are required")

// ErrFetchFailure indicates that loading donation/campaign data from the backing store failed.
var ErrFetchFailure = errors.New("failed to fetch campaign data")

// ErrCreateFailure indicates that persisting a new donation failed.
var ErrCreateFailure = errors.New("failed to create donation")

// IsValidation reports whether err belongs to the validation family
// (generic validation, invalid amount, or missing donor info).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrMissingDonorInfo)
}
