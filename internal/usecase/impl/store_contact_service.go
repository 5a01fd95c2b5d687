package impl

import (
	"context"

	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/domain/service"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type storeContactService struct {
	*CRUDService[entity.StoreContact, usecase.StoreContactCreate, usecase.StoreContactUpdate]
	storeContactRepo repository.StoreContactRepository
	accountTypeRepo  repository.AccountTypeRepository
	formValidator    service.FormSchemaValidator
}

// StoreContactServiceParams holds dependencies for StoreContactService, injected by Fx.
type StoreContactServiceParams struct {
	fx.In

	CRUDParams
	StoreContactRepo repository.StoreContactRepository
	AccountTypeRepo  repository.AccountTypeRepository
	FormValidator    service.FormSchemaValidator
}

// NewStoreContactService creates the store contact service.
func NewStoreContactService(params StoreContactServiceParams) usecase.StoreContactUsecase {
	return &storeContactService{
		CRUDService: NewCRUDService[entity.StoreContact, usecase.StoreContactCreate, usecase.StoreContactUpdate](
			params.CRUDParams, params.StoreContactRepo, "Store contact",
		),
		storeContactRepo: params.StoreContactRepo,
		accountTypeRepo:  params.AccountTypeRepo,
		formValidator:    params.FormValidator,
	}
}

// Create validates the contact details against the account type's form first.
func (s *storeContactService) Create(ctx context.Context, in usecase.StoreContactCreate) (*entity.StoreContact, error) {
	if err := s.validateDetails(ctx, in.AccountTypeID, in.ContactDetails); err != nil {
		return nil, err
	}

	return s.CRUDService.Create(ctx, in)
}

// Update revalidates when either the account type or the details change, combining the
// stored value of whichever one was not sent.
func (s *storeContactService) Update(ctx context.Context, id uuid.UUID, in usecase.StoreContactUpdate) (*entity.StoreContact, error) {
	if in.AccountTypeID.Present() || in.ContactDetails.Set {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		accountTypeID := current.AccountTypeID
		if in.AccountTypeID.Present() {
			accountTypeID = in.AccountTypeID.Value
		}
		details := current.ContactDetails
		if in.ContactDetails.Set {
			details = in.ContactDetails.Value
		}

		if err := s.validateDetails(ctx, accountTypeID, details); err != nil {
			return nil, err
		}
	}

	return s.CRUDService.Update(ctx, id, in)
}

func (s *storeContactService) ListByStore(
	ctx context.Context,
	storeID uuid.UUID,
	categories []entity.AccountCategory,
) ([]*entity.StoreContact, error) {
	contacts, err := s.storeContactRepo.ListByStore(ctx, storeID, categories)
	if err != nil {
		return nil, translateError(s.resource, "list", err)
	}

	return contacts, nil
}

func (s *storeContactService) validateDetails(ctx context.Context, accountTypeID uuid.UUID, details map[string]any) error {
	accountType, err := s.accountTypeRepo.Get(ctx, accountTypeID)
	if err != nil {
		return translateError("Account type", "get", err)
	}
	if accountType == nil {
		return domainerrors.ErrNotFound.WithMessage("Account type not found")
	}

	return s.formValidator.Validate(accountType.FormSchema, details)
}
