package usecase

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type CountryCreate struct {
	Name   string `json:"name" validate:"required,max=100"`
	Code   string `json:"code" validate:"required,max=3"`
	Prefix string `json:"prefix" validate:"required,max=10"`
}

func (in CountryCreate) ToEntity() *entity.Country {
	return &entity.Country{Name: in.Name, Code: in.Code, Prefix: in.Prefix}
}

type CountryUpdate struct {
	Name   entity.Optional[string] `json:"name" validate:"omitempty,max=100"`
	Code   entity.Optional[string] `json:"code" validate:"omitempty,max=3"`
	Prefix entity.Optional[string] `json:"prefix" validate:"omitempty,max=10"`
}

func (in CountryUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "code", in.Code)
	set(p, "prefix", in.Prefix)

	return p.build()
}

type RegionCreate struct {
	Name      string    `json:"name" validate:"required,max=100"`
	CountryID uuid.UUID `json:"country_id" validate:"required"`
}

func (in RegionCreate) ToEntity() *entity.Region {
	return &entity.Region{Name: in.Name, CountryID: in.CountryID}
}

type RegionUpdate struct {
	Name      entity.Optional[string]    `json:"name" validate:"omitempty,max=100"`
	CountryID entity.Optional[uuid.UUID] `json:"country_id"`
}

func (in RegionUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "country_id", in.CountryID)

	return p.build()
}

type CityCreate struct {
	Name     string    `json:"name" validate:"required,max=100"`
	RegionID uuid.UUID `json:"region_id" validate:"required"`
}

func (in CityCreate) ToEntity() *entity.City {
	return &entity.City{Name: in.Name, RegionID: in.RegionID}
}

type CityUpdate struct {
	Name     entity.Optional[string]    `json:"name" validate:"omitempty,max=100"`
	RegionID entity.Optional[uuid.UUID] `json:"region_id"`
}

func (in CityUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "region_id", in.RegionID)

	return p.build()
}

type RoleCreate struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=255"`
}

func (in RoleCreate) ToEntity() *entity.Role {
	return &entity.Role{Name: in.Name, Description: in.Description}
}

type RoleUpdate struct {
	Name        entity.Optional[string] `json:"name" validate:"omitempty,max=50"`
	Description entity.Optional[string] `json:"description" validate:"omitempty,max=255"`
}

func (in RoleUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "name", in.Name)
	set(p, "description", in.Description)

	return p.build()
}
