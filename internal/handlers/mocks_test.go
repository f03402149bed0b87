package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/handlers"
	"github.com/amitpoitrix/contract-job-application/internal/middleware"
	"github.com/amitpoitrix/contract-job-application/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

var _ portssvc.ContractSvcFacade = (*MockContractService)(nil)

func (m *MockContractService) GetContractByID(ctx context.Context, contractID string, callerID string, callerType domain.ProfileType) (*domain.Contract, error) {
	args := m.Called(ctx, contractID, callerID, callerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractService) ListContracts(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Contract, error) {
	args := m.Called(ctx, callerID, callerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// --- Mock JobService ---
type MockJobService struct {
	mock.Mock
}

var _ portssvc.JobSvcFacade = (*MockJobService)(nil)

func (m *MockJobService) ListUnpaidJobs(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Job, error) {
	args := m.Called(ctx, callerID, callerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobService) PayJob(ctx context.Context, jobID string, requestingClientID string) error {
	args := m.Called(ctx, jobID, requestingClientID)
	return args.Error(0)
}

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

func (m *MockBalanceService) MaxDeposit(ctx context.Context, clientID string) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceService) Deposit(ctx context.Context, clientID string, amount decimal.Decimal) error {
	args := m.Called(ctx, clientID, amount)
	return args.Error(0)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) GetBestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfessionEarnings), args.Error(1)
}

func (m *MockReportingService) GetBestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientSpend), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateToken(ctx context.Context, profileID string) (string, time.Time, error) {
	args := m.Called(ctx, profileID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// testRouter wires a gin engine with the full route table over mocked
// services. Auth runs for real: the profile_id header is resolved through
// the mock profile service.
func testRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		RateLimit: "1000-M",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func performRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
