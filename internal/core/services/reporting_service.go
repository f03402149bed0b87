package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
)

// defaultBestClientsLimit caps the best-clients report when the caller does
// not ask for a specific size.
const defaultBestClientsLimit = 2

// reportingService implements the ReportingSvcFacade interface. It only
// reads the paid-job dataset; aggregation happens in the store.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetBestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date precedes start date: %w", apperrors.ErrValidation)
	}

	best, err := s.reportingRepo.GetBestProfession(ctx, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get best profession: %w", err)
	}
	return best, nil
}

func (s *reportingService) GetBestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date precedes start date: %w", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = defaultBestClientsLimit
	}

	clients, err := s.reportingRepo.GetBestClients(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get best clients: %w", err)
	}
	return clients, nil
}
