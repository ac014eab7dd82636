package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	"github.com/karunya-trust/donation_backend/internal/core/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReceiptServiceTestSuite struct {
	suite.Suite
	org      domain.Organization
	donation domain.Donation
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.org = domain.Organization{
		Name:           "Karunya Charitable Trust",
		Address:        "12 Temple Road, Chennai 600004",
		Contact:        "+91 44 2498 1234",
		Email:          "office@karunyatrust.org",
		TaxPAN:         "AAATK1234F",
		RegistrationNo: "TN/2008/0042315",
		Representative: "R. Subramanian",
	}
	suite.donation = domain.Donation{
		DonationID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Amount:     decimal.NewFromFloat(1500.50),
		CreatedAt:  time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_AllFieldsPopulated() {
	extras := dto.ReceiptExtras{
		DonorAddress:  "45 Lake View, Bengaluru",
		DonorContact:  "+91 98765 43210",
		PAN:           "ABCPR1234K",
		PaymentMode:   "UPI",
		TransactionID: "TXN0042",
	}

	receipt := services.BuildReceipt(suite.donation, suite.org, extras)

	suite.Equal("RCPT-A1B2C3D4E5F6", receipt.ReceiptNo)
	suite.Equal("15/03/2026", receipt.Date)
	suite.Equal("Asha Rao", receipt.DonorName)
	suite.Equal("45 Lake View, Bengaluru", receipt.DonorAddress)
	suite.Equal("+91 98765 43210", receipt.DonorContact)
	suite.Equal("asha@example.com", receipt.DonorEmail)
	suite.Equal("₹1,500.50", receipt.Amount)
	suite.Equal("UPI", receipt.PaymentMode)
	suite.Equal("TXN0042", receipt.TransactionID)
	suite.Equal("ABCPR1234K", receipt.PAN)
	suite.Equal(suite.org.Name, receipt.OrgName)
	suite.Equal(suite.org.Address, receipt.OrgAddress)
	suite.Equal(suite.org.Contact, receipt.OrgContact)
	suite.Equal(suite.org.Email, receipt.OrgEmail)
	suite.Equal(suite.org.TaxPAN, receipt.OrgTaxPAN)
	suite.Equal(suite.org.RegistrationNo, receipt.OrgRegistrationNo)
	suite.Equal("R. Subramanian", receipt.Representative)
}

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_Deterministic() {
	extras := dto.ReceiptExtras{PaymentMode: "Cheque", TransactionID: "CHQ-118"}

	first := services.BuildReceipt(suite.donation, suite.org, extras)
	second := services.BuildReceipt(suite.donation, suite.org, extras)

	suite.Equal(first, second)
}

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_RepresentativeDefaultsWhenOmitted() {
	receipt := services.BuildReceipt(suite.donation, suite.org, dto.ReceiptExtras{})

	suite.Equal("R. Subramanian", receipt.Representative)
}

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_ExplicitEmptyRepresentativePreserved() {
	empty := ""
	extras := dto.ReceiptExtras{Representative: &empty}

	receipt := services.BuildReceipt(suite.donation, suite.org, extras)

	suite.Equal("", receipt.Representative)
}

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_ExplicitRepresentativeOverrides() {
	name := "K. Lakshmi"
	extras := dto.ReceiptExtras{Representative: &name}

	receipt := services.BuildReceipt(suite.donation, suite.org, extras)

	suite.Equal("K. Lakshmi", receipt.Representative)
}

func (suite *ReceiptServiceTestSuite) TestBuildReceipt_OmittedExtrasAreEmptyStrings() {
	receipt := services.BuildReceipt(suite.donation, suite.org, dto.ReceiptExtras{})

	suite.Equal("", receipt.DonorAddress)
	suite.Equal("", receipt.DonorContact)
	suite.Equal("", receipt.PAN)
	suite.Equal("", receipt.PaymentMode)
	suite.Equal("", receipt.TransactionID)
}

func (suite *ReceiptServiceTestSuite) TestGenerateReceipt_Success() {
	ctx := context.Background()
	mockSvc := new(MockDonationSvc)
	mockSvc.On("GetDonationByID", ctx, suite.donation.DonationID).Return(&suite.donation, nil).Once()

	service := services.NewReceiptService(mockSvc, suite.org)

	receipt, err := service.GenerateReceipt(ctx, suite.donation.DonationID, dto.GenerateReceiptRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal("RCPT-A1B2C3D4E5F6", receipt.ReceiptNo)
	suite.Equal("₹1,500.50", receipt.Amount)
	mockSvc.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestGenerateReceipt_RegenerationKeepsReceiptNo() {
	ctx := context.Background()
	mockSvc := new(MockDonationSvc)
	mockSvc.On("GetDonationByID", ctx, suite.donation.DonationID).Return(&suite.donation, nil).Twice()

	service := services.NewReceiptService(mockSvc, suite.org)

	first, err := service.GenerateReceipt(ctx, suite.donation.DonationID, dto.GenerateReceiptRequest{})
	suite.Require().NoError(err)
	second, err := service.GenerateReceipt(ctx, suite.donation.DonationID, dto.GenerateReceiptRequest{})
	suite.Require().NoError(err)

	suite.Equal(first.ReceiptNo, second.ReceiptNo)
	mockSvc.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestGenerateReceipt_DonationNotFound() {
	ctx := context.Background()
	mockSvc := new(MockDonationSvc)
	mockSvc.On("GetDonationByID", ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	service := services.NewReceiptService(mockSvc, suite.org)

	receipt, err := service.GenerateReceipt(ctx, "missing-id", dto.GenerateReceiptRequest{})

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	mockSvc.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReceiptService(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
