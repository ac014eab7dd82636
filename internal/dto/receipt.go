package dto

// ReceiptExtras carries donor-supplied fields that are not modeled on the
// Donation record but appear on the printed receipt. Pointers distinguish
// fields the caller omitted (default applies) from fields deliberately set to
// an empty value (preserved verbatim).
type ReceiptExtras struct {
	DonorAddress   string  `json:"donorAddress"`
	DonorContact   string  `json:"donorContact"`
	PAN            string  `json:"pan"`
	PaymentMode    string  `json:"paymentMode"`
	TransactionID  string  `json:"transactionID"`
	Representative *string `json:"representative"`
}

// GenerateReceiptRequest is the body of the receipt generation endpoint.
type GenerateReceiptRequest struct {
	ReceiptExtras
}
