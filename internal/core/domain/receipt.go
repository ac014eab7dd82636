package domain

// Organization holds the fixed issuing-organization details printed on every
// donation receipt. Loaded once from configuration at startup.
type Organization struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	TaxPAN         string `json:"taxPAN"`
	RegistrationNo string `json:"registrationNo"`
	Representative string `json:"representative"`
}

// Receipt is a derived, printable record summarizing a completed donation.
// It is never stored; every field required by the receipt layout is present,
// with empty string as the valid default for optional fields.
type Receipt struct {
	ReceiptNo     string `json:"receiptNo"`
	Date          string `json:"date"`
	DonorName     string `json:"donorName"`
	DonorAddress  string `json:"donorAddress"`
	DonorContact  string `json:"donorContact"`
	DonorEmail    string `json:"donorEmail"`
	Amount        string `json:"amount"` // Formatted, fixed locale
	PaymentMode   string `json:"paymentMode"`
	TransactionID string `json:"transactionID"`
	PAN           string `json:"pan"` // Donor tax PAN

	OrgName           string `json:"orgName"`
	OrgAddress        string `json:"orgAddress"`
	OrgContact        string `json:"orgContact"`
	OrgEmail          string `json:"orgEmail"`
	OrgTaxPAN         string `json:"orgTaxPAN"`
	OrgRegistrationNo string `json:"orgRegistrationNo"`
	Representative    string `json:"representative"`
}
