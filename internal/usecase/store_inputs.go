package usecase

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type StoreCreate struct {
	Name            string     `json:"name" validate:"required,max=100"`
	CountryID       uuid.UUID  `json:"country_id" validate:"required"`
	AdminID         *uuid.UUID `json:"admin_id"`
	AvailableTokens int        `json:"available_tokens" validate:"gte=0"`
	Plan            string     `json:"plan" validate:"required,max=50"`
	BackLink        *string    `json:"back_link" validate:"omitempty,url"`
	DBLink          *string    `json:"db_link" validate:"omitempty,max=255"`
}

func (in StoreCreate) ToEntity() *entity.Store {
	return &entity.Store{
		Name:            in.Name,
		CountryID:       in.CountryID,
		AdminID:         in.AdminID,
		AvailableTokens: in.AvailableTokens,
		Plan:            in.Plan,
		BackLink:        in.BackLink,
		DBLink:          in.DBLink,
	}
}

type StoreUpdate struct {
	Name            entity.Optional[string]    `json:"name" validate:"omitempty,max=100"`
	CountryID       entity.Optional[uuid.UUID] `json:"country_id"`
	AdminID         entity.Optional[uuid.UUID] `json:"admin_id"`
	AvailableTokens entity.Optional[int]       `json:"available_tokens" validate:"omitempty,gte=0"`
	Plan            entity.Optional[string]    `json:"plan" validate:"omitempty,max=50"`
	BackLink        entity.Optional[string]    `json:"back_link" validate:"omitempty,url"`
	DBLink          entity.Optional[string]    `json:"db_link" validate:"omitempty,max=255"`
}

func (in StoreUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "country_id", in.CountryID)
	set(p, "admin_id", in.AdminID)
	set(p, "available_tokens", in.AvailableTokens)
	set(p, "plan", in.Plan)
	set(p, "back_link", in.BackLink)
	set(p, "db_link", in.DBLink)

	return p.build()
}

type ConfigurationCreate struct {
	Key         string     `json:"key" validate:"required,max=50"`
	Value       string     `json:"value" validate:"required"`
	Description string     `json:"description" validate:"max=255"`
	StoreID     *uuid.UUID `json:"store_id"`
}

func (in ConfigurationCreate) ToEntity() *entity.Configuration {
	return &entity.Configuration{
		Key:         in.Key,
		Value:       in.Value,
		Description: in.Description,
		StoreID:     in.StoreID,
	}
}

type ConfigurationUpdate struct {
	Key         entity.Optional[string]    `json:"key" validate:"omitempty,max=50"`
	Value       entity.Optional[string]    `json:"value"`
	Description entity.Optional[string]    `json:"description" validate:"omitempty,max=255"`
	StoreID     entity.Optional[uuid.UUID] `json:"store_id"`
}

func (in ConfigurationUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "key", in.Key)
	set(p, "value", in.Value)
	set(p, "description", in.Description)
	set(p, "store_id", in.StoreID)

	return p.build()
}
