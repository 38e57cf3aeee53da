package impl

import (
	"context"
	"strings"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{reportRepo: params.ReportRepo}
}

// CreateReport files a report and returns the backend id.
func (s *reportService) CreateReport(ctx context.Context, input usecase.CreateReportInput) (entity.ID, error) {
	id, err := s.reportRepo.CreateReport(ctx, &entity.Report{
		VendorID: input.VendorID,
		Reason:   strings.TrimSpace(input.Reason),
		Details:  strings.TrimSpace(input.Details),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create report")
	}

	return id, nil
}
