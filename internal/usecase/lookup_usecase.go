package usecase

import (
	"context"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
)

// EnrolmentUsecase manages enrolments and their provisioning QR codes.
type EnrolmentUsecase interface {
	CRUDUsecase[entity.Enrolment, EnrolmentCreate, EnrolmentUpdate]

	// QRCode renders the enrolment's provisioning payload as a PNG.
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// SimUsecase adds device and phone-number lookups.
type SimUsecase interface {
	CRUDUsecase[entity.Sim, SimCreate, SimUpdate]

	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Sim, error)

	// GetByNumber returns ErrNotFound when no sim carries the number.
	GetByNumber(ctx context.Context, number string) (*entity.Sim, error)
}

// FactoryResetProtectionUsecase adds a lookup by Google account id.
type FactoryResetProtectionUsecase interface {
	CRUDUsecase[entity.FactoryResetProtection, FactoryResetProtectionCreate, FactoryResetProtectionUpdate]

	GetByAccount(ctx context.Context, accountID string) (*entity.FactoryResetProtection, error)
}
