package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/karunya-trust/donation_backend/internal/apperrors"
	"github.com/karunya-trust/donation_backend/internal/core/domain"
	portssvc "github.com/karunya-trust/donation_backend/internal/core/ports/services"
	"github.com/karunya-trust/donation_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionSvc ---
type MockSessionSvc struct {
	mock.Mock
}

func (m *MockSessionSvc) FetchCampaigns(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionSvc) CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockSessionSvc) SelectCampaign(campaignID string) bool {
	args := m.Called(campaignID)
	return args.Bool(0)
}

func (m *MockSessionSvc) State() domain.SessionState {
	args := m.Called()
	return args.Get(0).(domain.SessionState)
}

var _ portssvc.SessionSvcFacade = (*MockSessionSvc)(nil)

// --- Test Suite ---
type SessionHandlerTestSuite struct {
	suite.Suite
	mockSvc *MockSessionSvc
	router  *gin.Engine
}

func (suite *SessionHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	suite.mockSvc = new(MockSessionSvc)
	suite.router = gin.New()
	registerSessionRoutes(suite.router.Group("/api/v1"), suite.mockSvc)
}

func (suite *SessionHandlerTestSuite) serve(method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) sampleState() domain.SessionState {
	current := domain.Campaign{CampaignID: "c1", Title: "Mid-Day Meals"}
	return domain.SessionState{
		Donations:       []domain.Donation{{DonationID: "d1", Name: "Asha", Email: "asha@example.com", Amount: decimal.NewFromInt(50)}},
		Campaigns:       []domain.Campaign{current},
		CurrentCampaign: &current,
	}
}

// --- Test Cases ---

func (suite *SessionHandlerTestSuite) TestGetState() {
	suite.mockSvc.On("State").Return(suite.sampleState()).Once()

	w := suite.serve(http.MethodGet, "/api/v1/session", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SessionStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Donations, 1)
	suite.Len(resp.Campaigns, 1)
	suite.Require().NotNil(resp.CurrentCampaign)
	suite.Equal("c1", resp.CurrentCampaign.CampaignID)
	suite.False(resp.Loading)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestRefresh_Success() {
	suite.mockSvc.On("FetchCampaigns", mock.Anything).Return(nil).Once()
	suite.mockSvc.On("State").Return(suite.sampleState()).Once()

	w := suite.serve(http.MethodPost, "/api/v1/session/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestRefresh_FetchFailure() {
	suite.mockSvc.On("FetchCampaigns", mock.Anything).Return(apperrors.ErrFetchFailure).Once()

	w := suite.serve(http.MethodPost, "/api/v1/session/refresh", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "error")
	suite.mockSvc.AssertNotCalled(suite.T(), "State")
}

func (suite *SessionHandlerTestSuite) TestCreateDonation_Success() {
	created := &domain.Donation{
		DonationID: "d2",
		Name:       "Asha",
		Email:      "asha@example.com",
		Amount:     decimal.NewFromInt(100),
	}
	suite.mockSvc.On("CreateDonation", mock.Anything, mock.MatchedBy(func(req dto.CreateDonationRequest) bool {
		return req.Name == "Asha" && req.Amount.Equal(decimal.NewFromInt(100))
	})).Return(created, nil).Once()

	body := []byte(`{"name":"Asha","email":"asha@example.com","amount":100}`)
	w := suite.serve(http.MethodPost, "/api/v1/session/donations", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DonationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("d2", resp.DonationID)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestCreateDonation_BindingRejectsZeroAmount() {
	body := []byte(`{"name":"Asha","email":"asha@example.com","amount":0}`)
	w := suite.serve(http.MethodPost, "/api/v1/session/donations", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateDonation", mock.Anything, mock.Anything)
}

func (suite *SessionHandlerTestSuite) TestCreateDonation_BindingRejectsBadEmail() {
	body := []byte(`{"name":"Asha","email":"not-an-email","amount":50}`)
	w := suite.serve(http.MethodPost, "/api/v1/session/donations", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateDonation", mock.Anything, mock.Anything)
}

func (suite *SessionHandlerTestSuite) TestCreateDonation_ValidationErrorFromService() {
	suite.mockSvc.On("CreateDonation", mock.Anything, mock.Anything).Return(nil, apperrors.ErrMissingDonorInfo).Once()

	body := []byte(`{"name":"   ","email":"asha@example.com","amount":50}`)
	w := suite.serve(http.MethodPost, "/api/v1/session/donations", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestCreateDonation_InternalError() {
	suite.mockSvc.On("CreateDonation", mock.Anything, mock.Anything).Return(nil, apperrors.ErrCreateFailure).Once()

	body := []byte(`{"name":"Asha","email":"asha@example.com","amount":50}`)
	w := suite.serve(http.MethodPost, "/api/v1/session/donations", body)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestSelectCampaign_Known() {
	suite.mockSvc.On("SelectCampaign", "c1").Return(true).Once()
	suite.mockSvc.On("State").Return(suite.sampleState()).Once()

	w := suite.serve(http.MethodPut, "/api/v1/session/campaigns/c1/select", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *SessionHandlerTestSuite) TestSelectCampaign_Unknown() {
	suite.mockSvc.On("SelectCampaign", "missing").Return(false).Once()

	w := suite.serve(http.MethodPut, "/api/v1/session/campaigns/missing/select", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "State")
}

// --- Run Suite ---
func TestSessionHandler(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
