package impl

import (
	"context"
	"slices"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
)

type accountTypeService struct {
	*CRUDService[entity.AccountType, usecase.AccountTypeCreate, usecase.AccountTypeUpdate]
	accountTypeRepo repository.AccountTypeRepository
}

// NewAccountTypeService creates the account type service.
func NewAccountTypeService(params CRUDParams, accountTypeRepo repository.AccountTypeRepository) usecase.AccountTypeUsecase {
	return &accountTypeService{
		CRUDService:     NewCRUDService[entity.AccountType, usecase.AccountTypeCreate, usecase.AccountTypeUpdate](params, accountTypeRepo, "Account type"),
		accountTypeRepo: accountTypeRepo,
	}
}

func (s *accountTypeService) ListForCountry(
	ctx context.Context,
	countryID uuid.UUID,
	categories []entity.AccountCategory,
) ([]*entity.AccountType, error) {
	accountTypes, err := s.accountTypeRepo.ListForCountry(ctx, countryID, categories)
	if err != nil {
		return nil, translateError(s.resource, "list", err)
	}

	return accountTypes, nil
}

func (s *accountTypeService) Categories() []entity.AccountCategory {
	return slices.Clone(entity.AccountCategories)
}
