package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockTokenSvc *MockTokenService
	router       http.Handler
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.mockTokenSvc = new(MockTokenService)

	container := &portssvc.ServiceContainer{
		Profile:   new(MockProfileService),
		Contract:  new(MockContractService),
		Job:       new(MockJobService),
		Balance:   new(MockBalanceService),
		Reporting: new(MockReportingService),
		Token:     suite.mockTokenSvc,
	}
	suite.router = testRouter(container)
}

func (suite *AuthHandlerTestSuite) loginRequest(body string) *http.Request {
	req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	profileID := uuid.NewString()
	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	suite.mockTokenSvc.On("GenerateToken", mock.Anything, profileID).Return("signed-token", expiresAt, nil).Once()

	w := performRequest(suite.router, suite.loginRequest(`{"profileId": "`+profileID+`"}`))

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
}

func (suite *AuthHandlerTestSuite) TestLoginRejectsNonUUID() {
	w := performRequest(suite.router, suite.loginRequest(`{"profileId": "not-a-uuid"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "GenerateToken", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLoginUnknownProfile() {
	profileID := uuid.NewString()
	suite.mockTokenSvc.On("GenerateToken", mock.Anything, profileID).Return("", time.Time{}, apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, suite.loginRequest(`{"profileId": "`+profileID+`"}`))

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
