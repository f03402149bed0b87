package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JobHandlerTestSuite struct {
	suite.Suite
	mockProfileSvc *MockProfileService
	mockJobSvc     *MockJobService
	router         http.Handler
	clientID       string
	client         *domain.Profile
}

func (suite *JobHandlerTestSuite) SetupTest() {
	suite.mockProfileSvc = new(MockProfileService)
	suite.mockJobSvc = new(MockJobService)

	container := &portssvc.ServiceContainer{
		Profile:   suite.mockProfileSvc,
		Contract:  new(MockContractService),
		Job:       suite.mockJobSvc,
		Balance:   new(MockBalanceService),
		Reporting: new(MockReportingService),
		Token:     new(MockTokenService),
	}
	suite.router = testRouter(container)

	suite.clientID = uuid.NewString()
	suite.client = &domain.Profile{
		ProfileID: suite.clientID,
		Type:      domain.ProfileTypeClient,
		Balance:   decimal.NewFromInt(500),
	}
	suite.mockProfileSvc.On("GetProfileByID", mock.Anything, suite.clientID).Return(suite.client, nil)
}

func (suite *JobHandlerTestSuite) newRequest(method, target string) *http.Request {
	req, err := http.NewRequest(method, target, nil)
	suite.Require().NoError(err)
	req.Header.Set("profile_id", suite.clientID)
	return req
}

func (suite *JobHandlerTestSuite) messageFrom(body []byte) string {
	var resp struct {
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(body, &resp))
	return resp.Message
}

func (suite *JobHandlerTestSuite) TestPayJobSuccess() {
	jobID := uuid.NewString()
	suite.mockJobSvc.On("PayJob", mock.Anything, jobID, suite.clientID).Return(nil).Once()

	w := performRequest(suite.router, suite.newRequest(http.MethodPost, "/jobs/"+jobID+"/pay"))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Payment successful", suite.messageFrom(w.Body.Bytes()))
	suite.mockJobSvc.AssertExpectations(suite.T())
}

func (suite *JobHandlerTestSuite) TestPayJobNotFound() {
	jobID := uuid.NewString()
	suite.mockJobSvc.On("PayJob", mock.Anything, jobID, suite.clientID).Return(apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, suite.newRequest(http.MethodPost, "/jobs/"+jobID+"/pay"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Job not found or already paid", suite.messageFrom(w.Body.Bytes()))
}

func (suite *JobHandlerTestSuite) TestPayJobInsufficientBalance() {
	jobID := uuid.NewString()
	suite.mockJobSvc.On("PayJob", mock.Anything, jobID, suite.clientID).Return(apperrors.ErrInsufficientBalance).Once()

	w := performRequest(suite.router, suite.newRequest(http.MethodPost, "/jobs/"+jobID+"/pay"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Insufficient balance", suite.messageFrom(w.Body.Bytes()))
}

func (suite *JobHandlerTestSuite) TestPayJobWithoutIdentity() {
	req, err := http.NewRequest(http.MethodPost, "/jobs/"+uuid.NewString()+"/pay", nil)
	suite.Require().NoError(err)

	w := performRequest(suite.router, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJobSvc.AssertNotCalled(suite.T(), "PayJob", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JobHandlerTestSuite) TestListUnpaidJobs() {
	jobs := []domain.Job{
		{JobID: uuid.NewString(), Price: decimal.NewFromInt(201)},
		{JobID: uuid.NewString(), Price: decimal.NewFromInt(21)},
	}
	suite.mockJobSvc.On("ListUnpaidJobs", mock.Anything, suite.clientID, domain.ProfileTypeClient).Return(jobs, nil).Once()

	w := performRequest(suite.router, suite.newRequest(http.MethodGet, "/jobs/unpaid"))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *JobHandlerTestSuite) TestListUnpaidJobsEmpty() {
	suite.mockJobSvc.On("ListUnpaidJobs", mock.Anything, suite.clientID, domain.ProfileTypeClient).Return([]domain.Job{}, nil).Once()

	w := performRequest(suite.router, suite.newRequest(http.MethodGet, "/jobs/unpaid"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No unpaid jobs found", suite.messageFrom(w.Body.Bytes()))
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
