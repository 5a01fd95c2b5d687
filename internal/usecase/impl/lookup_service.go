package impl

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
)

type simService struct {
	*CRUDService[entity.Sim, usecase.SimCreate, usecase.SimUpdate]
}

// NewSimService creates the sim service.
func NewSimService(params CRUDParams, repo repository.Repository[entity.Sim]) usecase.SimUsecase {
	return &simService{
		CRUDService: NewCRUDService[entity.Sim, usecase.SimCreate, usecase.SimUpdate](params, repo, "Sim"),
	}
}

func (s *simService) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Sim, error) {
	return s.List(ctx, repository.ListOptions{
		Limit:   s.pagination.MaxLimit,
		Filters: repository.Filters{"device_id": deviceID},
	})
}

func (s *simService) GetByNumber(ctx context.Context, number string) (*entity.Sim, error) {
	return firstOrNotFound(ctx, s.CRUDService, repository.Filters{"number": number})
}

type factoryResetProtectionService struct {
	*CRUDService[entity.FactoryResetProtection, usecase.FactoryResetProtectionCreate, usecase.FactoryResetProtectionUpdate]
}

// NewFactoryResetProtectionService creates the factory reset protection service.
func NewFactoryResetProtectionService(
	params CRUDParams,
	repo repository.Repository[entity.FactoryResetProtection],
) usecase.FactoryResetProtectionUsecase {
	return &factoryResetProtectionService{
		CRUDService: NewCRUDService[entity.FactoryResetProtection, usecase.FactoryResetProtectionCreate, usecase.FactoryResetProtectionUpdate](
			params, repo, "Factory reset protection",
		),
	}
}

func (s *factoryResetProtectionService) GetByAccount(ctx context.Context, accountID string) (*entity.FactoryResetProtection, error) {
	return firstOrNotFound(ctx, s.CRUDService, repository.Filters{"account_id": accountID})
}

// firstOrNotFound looks up a row by a unique column.
func firstOrNotFound[E any, C usecase.CreateInput[E], U usecase.UpdateInput](
	ctx context.Context,
	s *CRUDService[E, C, U],
	filters repository.Filters,
) (*E, error) {
	found, err := s.List(ctx, repository.ListOptions{Limit: 1, Filters: filters})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, s.notFound()
	}

	return found[0], nil
}
