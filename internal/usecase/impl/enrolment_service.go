package impl

import (
	"context"
	"fmt"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/domain/service"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
)

type enrolmentService struct {
	*CRUDService[entity.Enrolment, usecase.EnrolmentCreate, usecase.EnrolmentUpdate]
	qrService service.QRCodeService
}

// NewEnrolmentService creates the enrolment service.
func NewEnrolmentService(
	params CRUDParams,
	repo repository.Repository[entity.Enrolment],
	qrService service.QRCodeService,
) usecase.EnrolmentUsecase {
	return &enrolmentService{
		CRUDService: NewCRUDService[entity.Enrolment, usecase.EnrolmentCreate, usecase.EnrolmentUpdate](params, repo, "Enrolment"),
		qrService:   qrService,
	}
}

func (s *enrolmentService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	enrolment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateEnrolmentQR(&entity.EnrolmentQRPayload{
		EnrolmentID: enrolment.ID,
		UserID:      enrolment.UserID,
		VendorID:    enrolment.VendorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate enrolment QR code: %w", err)
	}

	return png, nil
}
