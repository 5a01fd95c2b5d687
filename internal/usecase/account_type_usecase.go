package usecase

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type AccountTypeCreate struct {
	Name            string             `json:"name" validate:"required,max=50"`
	Description     *string            `json:"description" validate:"omitempty,max=255"`
	IconURL         *string            `json:"icon_url" validate:"omitempty,max=255"`
	IsInternational bool               `json:"is_international"`
	Category        string             `json:"category" validate:"required,oneof=CONTACT BANK_ACCOUNT MOBILE_PAYMENT PAYMENT_GATEWAY PUBLIC_PROFILE WEBHOOK LOCATION"`
	FormSchema      []entity.FormField `json:"form_schema" validate:"dive"`
	CountryIDs      []uuid.UUID        `json:"country_ids" validate:"dive,required"`
}

func (in AccountTypeCreate) ToEntity() *entity.AccountType {
	return &entity.AccountType{
		Name:            in.Name,
		Description:     in.Description,
		IconURL:         in.IconURL,
		IsInternational: in.IsInternational,
		Category:        entity.AccountCategory(in.Category),
		FormSchema:      in.FormSchema,
		CountryIDs:      in.CountryIDs,
	}
}

type AccountTypeUpdate struct {
	Name            entity.Optional[string]             `json:"name" validate:"omitempty,max=50"`
	Description     entity.Optional[string]             `json:"description" validate:"omitempty,max=255"`
	IconURL         entity.Optional[string]             `json:"icon_url" validate:"omitempty,max=255"`
	IsInternational entity.Optional[bool]               `json:"is_international"`
	Category        entity.Optional[string]             `json:"category" validate:"omitempty,oneof=CONTACT BANK_ACCOUNT MOBILE_PAYMENT PAYMENT_GATEWAY PUBLIC_PROFILE WEBHOOK LOCATION"`
	FormSchema      entity.Optional[[]entity.FormField] `json:"form_schema" validate:"omitempty,dive"`
	CountryIDs      entity.Optional[[]uuid.UUID]        `json:"country_ids" validate:"omitempty,dive,required"`
}

func (in AccountTypeUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "description", in.Description)
	set(p, "icon_url", in.IconURL)
	set(p, "is_international", in.IsInternational)
	set(p, "category", in.Category)
	set(p, "form_schema", in.FormSchema)
	set(p, repository.CountryIDsKey, in.CountryIDs)

	return p.build()
}

// AccountTypeUsecase manages account types and their availability per country.
type AccountTypeUsecase interface {
	CRUDUsecase[entity.AccountType, AccountTypeCreate, AccountTypeUpdate]

	// ListForCountry merges the country's account types with the international ones.
	ListForCountry(ctx context.Context, countryID uuid.UUID, categories []entity.AccountCategory) ([]*entity.AccountType, error)

	// Categories lists every account type category.
	Categories() []entity.AccountCategory
}

type StoreContactCreate struct {
	StoreID        uuid.UUID      `json:"store_id" validate:"required"`
	AccountTypeID  uuid.UUID      `json:"account_type_id" validate:"required"`
	ContactDetails map[string]any `json:"contact_details" validate:"required"`
	Description    *string        `json:"description" validate:"omitempty,max=255"`
}

func (in StoreContactCreate) ToEntity() *entity.StoreContact {
	return &entity.StoreContact{
		StoreID:        in.StoreID,
		AccountTypeID:  in.AccountTypeID,
		ContactDetails: in.ContactDetails,
		Description:    in.Description,
	}
}

type StoreContactUpdate struct {
	StoreID        entity.Optional[uuid.UUID]      `json:"store_id"`
	AccountTypeID  entity.Optional[uuid.UUID]      `json:"account_type_id"`
	ContactDetails entity.Optional[map[string]any] `json:"contact_details"`
	Description    entity.Optional[string]         `json:"description" validate:"omitempty,max=255"`
}

func (in StoreContactUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "store_id", in.StoreID)
	set(p, "account_type_id", in.AccountTypeID)
	set(p, "contact_details", in.ContactDetails)
	set(p, "description", in.Description)

	return p.build()
}

// StoreContactUsecase manages store contacts, whose details must satisfy the account
// type's form.
type StoreContactUsecase interface {
	CRUDUsecase[entity.StoreContact, StoreContactCreate, StoreContactUpdate]

	ListByStore(ctx context.Context, storeID uuid.UUID, categories []entity.AccountCategory) ([]*entity.StoreContact, error)
}
