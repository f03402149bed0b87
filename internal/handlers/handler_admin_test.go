package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	mockProfileSvc   *MockProfileService
	mockReportingSvc *MockReportingService
	router           http.Handler
	callerID         string
	rangeStart       time.Time
	rangeEnd         time.Time
}

func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.mockProfileSvc = new(MockProfileService)
	suite.mockReportingSvc = new(MockReportingService)

	container := &portssvc.ServiceContainer{
		Profile:   suite.mockProfileSvc,
		Contract:  new(MockContractService),
		Job:       new(MockJobService),
		Balance:   new(MockBalanceService),
		Reporting: suite.mockReportingSvc,
		Token:     new(MockTokenService),
	}
	suite.router = testRouter(container)

	suite.callerID = uuid.NewString()
	caller := &domain.Profile{ProfileID: suite.callerID, Type: domain.ProfileTypeClient}
	suite.mockProfileSvc.On("GetProfileByID", mock.Anything, suite.callerID).Return(caller, nil)

	// 2023-01-01 through the last instant of 2023-12-31.
	suite.rangeStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.rangeEnd = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
}

func (suite *AdminHandlerTestSuite) newRequest(target string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, target, nil)
	suite.Require().NoError(err)
	req.Header.Set("profile_id", suite.callerID)
	return req
}

func (suite *AdminHandlerTestSuite) messageFrom(body []byte) string {
	var resp struct {
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(body, &resp))
	return resp.Message
}

func (suite *AdminHandlerTestSuite) TestBestProfession() {
	best := &domain.ProfessionEarnings{Profession: "Programmer", TotalEarned: decimal.NewFromInt(5000)}
	suite.mockReportingSvc.On("GetBestProfession", mock.Anything, suite.rangeStart, suite.rangeEnd).Return(best, nil).Once()

	w := performRequest(suite.router, suite.newRequest("/admin/best-profession?start=2023-01-01&end=2023-12-31"))

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Profession string `json:"profession"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Programmer", resp.Profession)
}

func (suite *AdminHandlerTestSuite) TestBestProfessionMissingDates() {
	w := performRequest(suite.router, suite.newRequest("/admin/best-profession?start=2023-01-01"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Start and End date is not present. Please provide it in YYYY-MM-DD format", suite.messageFrom(w.Body.Bytes()))
	suite.mockReportingSvc.AssertNotCalled(suite.T(), "GetBestProfession", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminHandlerTestSuite) TestBestProfessionEmptyRange() {
	suite.mockReportingSvc.On("GetBestProfession", mock.Anything, suite.rangeStart, suite.rangeEnd).Return(nil, apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, suite.newRequest("/admin/best-profession?start=2023-01-01&end=2023-12-31"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No profession found with given date range", suite.messageFrom(w.Body.Bytes()))
}

func (suite *AdminHandlerTestSuite) TestBestClients() {
	clients := []domain.ClientSpend{
		{ProfileID: uuid.NewString(), FullName: "Harry Potter", Paid: decimal.NewFromInt(402)},
	}
	suite.mockReportingSvc.On("GetBestClients", mock.Anything, suite.rangeStart, suite.rangeEnd, 0).Return(clients, nil).Once()

	w := performRequest(suite.router, suite.newRequest("/admin/best-clients?start=2023-01-01&end=2023-12-31"))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestBestClientsExplicitLimit() {
	suite.mockReportingSvc.On("GetBestClients", mock.Anything, suite.rangeStart, suite.rangeEnd, 5).Return([]domain.ClientSpend{
		{ProfileID: uuid.NewString(), FullName: "Mr Robot", Paid: decimal.NewFromInt(200)},
	}, nil).Once()

	w := performRequest(suite.router, suite.newRequest("/admin/best-clients?start=2023-01-01&end=2023-12-31&limit=5"))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingSvc.AssertExpectations(suite.T())
}

func (suite *AdminHandlerTestSuite) TestBestClientsEmptyRange() {
	suite.mockReportingSvc.On("GetBestClients", mock.Anything, suite.rangeStart, suite.rangeEnd, 0).Return([]domain.ClientSpend{}, nil).Once()

	w := performRequest(suite.router, suite.newRequest("/admin/best-clients?start=2023-01-01&end=2023-12-31"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No clients found with given date range", suite.messageFrom(w.Body.Bytes()))
}

func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
