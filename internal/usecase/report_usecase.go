package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
)

// CreateReportInput carries the report form.
type CreateReportInput struct {
	VendorID entity.ID `json:"vendorId"`
	Reason   string    `json:"reason" validate:"required,max=100"`
	Details  string    `json:"details" validate:"max=2000"`
}

// ReportUsecase files user reports.
type ReportUsecase interface {
	CreateReport(ctx context.Context, input CreateReportInput) (entity.ID, error)
}
