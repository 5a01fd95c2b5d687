package usecase

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type UserCreate struct {
	CityID         uuid.UUID  `json:"city_id" validate:"required"`
	RoleID         uuid.UUID  `json:"role_id" validate:"required"`
	StoreID        *uuid.UUID `json:"store_id"`
	DNI            string     `json:"dni" validate:"required,max=16"`
	FirstName      string     `json:"first_name" validate:"required,max=100"`
	MiddleName     *string    `json:"middle_name" validate:"omitempty,max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	SecondLastName *string    `json:"second_last_name" validate:"omitempty,max=100"`
	Email          string     `json:"email" validate:"required,email,max=80"`
	Username       *string    `json:"username" validate:"omitempty,max=40"`
	Prefix         string     `json:"prefix" validate:"required,max=10"`
	Phone          string     `json:"phone" validate:"required,max=20"`
	Address        string     `json:"address" validate:"required,max=255"`
	State          string     `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in UserCreate) ToEntity() *entity.User {
	return &entity.User{
		CityID:         in.CityID,
		RoleID:         in.RoleID,
		StoreID:        in.StoreID,
		DNI:            in.DNI,
		FirstName:      in.FirstName,
		MiddleName:     in.MiddleName,
		LastName:       in.LastName,
		SecondLastName: in.SecondLastName,
		Email:          in.Email,
		Username:       in.Username,
		Prefix:         in.Prefix,
		Phone:          in.Phone,
		Address:        in.Address,
		State:          entity.ActivityState(in.State),
	}
}

type UserUpdate struct {
	CityID         entity.Optional[uuid.UUID] `json:"city_id"`
	RoleID         entity.Optional[uuid.UUID] `json:"role_id"`
	StoreID        entity.Optional[uuid.UUID] `json:"store_id"`
	DNI            entity.Optional[string]    `json:"dni" validate:"omitempty,max=16"`
	FirstName      entity.Optional[string]    `json:"first_name" validate:"omitempty,max=100"`
	MiddleName     entity.Optional[string]    `json:"middle_name" validate:"omitempty,max=100"`
	LastName       entity.Optional[string]    `json:"last_name" validate:"omitempty,max=100"`
	SecondLastName entity.Optional[string]    `json:"second_last_name" validate:"omitempty,max=100"`
	Email          entity.Optional[string]    `json:"email" validate:"omitempty,email,max=80"`
	Username       entity.Optional[string]    `json:"username" validate:"omitempty,max=40"`
	Prefix         entity.Optional[string]    `json:"prefix" validate:"omitempty,max=10"`
	Phone          entity.Optional[string]    `json:"phone" validate:"omitempty,max=20"`
	Address        entity.Optional[string]    `json:"address" validate:"omitempty,max=255"`
	State          entity.Optional[string]    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in UserUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "city_id", in.CityID)
	set(p, "role_id", in.RoleID)
	set(p, "store_id", in.StoreID)
	set(p, "dni", in.DNI)
	set(p, "first_name", in.FirstName)
	set(p, "middle_name", in.MiddleName)
	set(p, "last_name", in.LastName)
	set(p, "second_last_name", in.SecondLastName)
	set(p, "email", in.Email)
	set(p, "username", in.Username)
	set(p, "prefix", in.Prefix)
	set(p, "phone", in.Phone)
	set(p, "address", in.Address)
	set(p, "state", in.State)

	return p.build()
}
