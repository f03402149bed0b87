package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/core/services"
	"github.com/amitpoitrix/contract-job-application/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProfileService ---
type MockProfileSvc struct {
	mock.Mock
}

var _ portssvc.ProfileSvcFacade = (*MockProfileSvc)(nil)

func (m *MockProfileSvc) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Test Suite Setup ---
type TokenServiceTestSuite struct {
	suite.Suite
	mockProfileSvc *MockProfileSvc
	cfg            *config.Config
	service        portssvc.TokenSvcFacade
	profileID      string
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockProfileSvc = new(MockProfileSvc)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "contract-job-application",
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockProfileSvc)
	suite.profileID = uuid.NewString()
}

func (suite *TokenServiceTestSuite) TestGenerateToken() {
	ctx := context.Background()
	profile := &domain.Profile{ProfileID: suite.profileID, Type: domain.ProfileTypeClient}

	suite.mockProfileSvc.On("GetProfileByID", ctx, suite.profileID).Return(profile, nil).Once()

	signed, expiresAt, err := suite.service.GenerateToken(ctx, suite.profileID)

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), signed)
	assert.WithinDuration(suite.T(), time.Now().UTC().Add(time.Hour), expiresAt, time.Minute)

	// The subject round-trips as the profile id under the configured key.
	token, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	require.NoError(suite.T(), err)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), suite.profileID, claims.Subject)
	assert.Equal(suite.T(), suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateTokenUnknownProfile() {
	ctx := context.Background()

	suite.mockProfileSvc.On("GetProfileByID", ctx, suite.profileID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GenerateToken(ctx, suite.profileID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
