package impl

import (
	"context"
	"testing"

	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	mockRepo "smartpay/internal/mocks/repository"
	mockSvc "smartpay/internal/mocks/service"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeContactFixtures struct {
	service          usecase.StoreContactUsecase
	storeContactRepo *mockRepo.MockStoreContactRepository
	accountTypeRepo  *mockRepo.MockAccountTypeRepository
	formValidator    *mockSvc.MockFormSchemaValidator
}

func createTestStoreContactService(t *testing.T) storeContactFixtures {
	storeContactRepo := mockRepo.NewMockStoreContactRepository(t)
	accountTypeRepo := mockRepo.NewMockAccountTypeRepository(t)
	formValidator := mockSvc.NewMockFormSchemaValidator(t)

	return storeContactFixtures{
		service: NewStoreContactService(StoreContactServiceParams{
			CRUDParams:       newTestCRUDParams(t),
			StoreContactRepo: storeContactRepo,
			AccountTypeRepo:  accountTypeRepo,
			FormValidator:    formValidator,
		}),
		storeContactRepo: storeContactRepo,
		accountTypeRepo:  accountTypeRepo,
		formValidator:    formValidator,
	}
}

var phoneForm = []entity.FormField{{Name: "phone", Type: entity.FieldTypeString, Required: true}}

func TestStoreContactService_Create(t *testing.T) {
	ctx := context.Background()
	accountType := &entity.AccountType{ID: uuid.New(), Name: "Nequi", FormSchema: phoneForm}
	in := usecase.StoreContactCreate{
		StoreID:        uuid.New(),
		AccountTypeID:  accountType.ID,
		ContactDetails: map[string]any{"phone": "3001234567"},
	}

	t.Run("valid details are stored", func(t *testing.T) {
		fx := createTestStoreContactService(t)
		fx.accountTypeRepo.EXPECT().Get(ctx, accountType.ID).Return(accountType, nil)
		fx.formValidator.EXPECT().Validate(phoneForm, in.ContactDetails).Return(nil)
		fx.storeContactRepo.EXPECT().Create(ctx, in.ToEntity()).Return(&entity.StoreContact{ID: uuid.New()}, nil)

		got, err := fx.service.Create(ctx, in)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("invalid details are rejected before insert", func(t *testing.T) {
		fx := createTestStoreContactService(t)
		fx.accountTypeRepo.EXPECT().Get(ctx, accountType.ID).Return(accountType, nil)
		fx.formValidator.EXPECT().Validate(phoneForm, in.ContactDetails).
			Return(domainerrors.ErrValidation.WithMessage("Invalid contact_details: phone is required"))

		_, err := fx.service.Create(ctx, in)
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
		fx.storeContactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown account type", func(t *testing.T) {
		fx := createTestStoreContactService(t)
		fx.accountTypeRepo.EXPECT().Get(ctx, accountType.ID).Return(nil, nil)

		_, err := fx.service.Create(ctx, in)
		require.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Equal(t, "Account type not found", err.Error())
	})
}

func TestStoreContactService_UpdateRevalidatesWithStoredValues(t *testing.T) {
	ctx := context.Background()
	accountType := &entity.AccountType{ID: uuid.New(), FormSchema: phoneForm}
	current := &entity.StoreContact{
		ID:             uuid.New(),
		AccountTypeID:  accountType.ID,
		ContactDetails: map[string]any{"phone": "300"},
	}

	t.Run("new details checked against stored account type", func(t *testing.T) {
		fx := createTestStoreContactService(t)
		details := map[string]any{"phone": "311"}

		fx.storeContactRepo.EXPECT().Get(ctx, current.ID).Return(current, nil)
		fx.accountTypeRepo.EXPECT().Get(ctx, accountType.ID).Return(accountType, nil)
		fx.formValidator.EXPECT().Validate(phoneForm, details).Return(nil)
		fx.storeContactRepo.EXPECT().
			Update(mock.Anything, current.ID, mock.Anything).
			Return(&entity.StoreContact{ID: current.ID, ContactDetails: details}, nil)

		got, err := fx.service.Update(ctx, current.ID, usecase.StoreContactUpdate{ContactDetails: entity.Some(details)})
		require.NoError(t, err)
		assert.Equal(t, details, got.ContactDetails)
	})

	t.Run("new account type checked against stored details", func(t *testing.T) {
		fx := createTestStoreContactService(t)
		other := &entity.AccountType{ID: uuid.New(), FormSchema: []entity.FormField{{Name: "email", Required: true}}}

		fx.storeContactRepo.EXPECT().Get(ctx, current.ID).Return(current, nil)
		fx.accountTypeRepo.EXPECT().Get(ctx, other.ID).Return(other, nil)
		fx.formValidator.EXPECT().Validate(other.FormSchema, current.ContactDetails).
			Return(domainerrors.ErrValidation.WithMessage("Invalid contact_details: email is required"))

		_, err := fx.service.Update(ctx, current.ID, usecase.StoreContactUpdate{AccountTypeID: entity.Some(other.ID)})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("description only skips validation", func(t *testing.T) {
		fx := createTestStoreContactService(t)

		fx.storeContactRepo.EXPECT().Update(mock.Anything, current.ID, mock.Anything).Return(current, nil)

		_, err := fx.service.Update(ctx, current.ID, usecase.StoreContactUpdate{Description: entity.Some("main")})
		require.NoError(t, err)
	})
}
