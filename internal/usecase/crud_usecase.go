// Package usecase defines the application's use cases and their inputs.
package usecase

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateInput builds a new entity from a validated create payload.
type CreateInput[E any] interface {
	ToEntity() *E
}

// UpdateInput turns a partial-update payload into a column patch. Absent fields are
// left out; explicit nulls map to nil.
type UpdateInput interface {
	Patch() repository.Patch
}

// CRUDUsecase is the generic contract behind every REST resource.
type CRUDUsecase[E any, C CreateInput[E], U UpdateInput] interface {
	// Get returns ErrNotFound when the entity does not exist.
	Get(ctx context.Context, id uuid.UUID, preload ...string) (*E, error)

	// List clamps pagination to the configured bounds.
	List(ctx context.Context, opts repository.ListOptions) ([]*E, error)

	Count(ctx context.Context, opts repository.ListOptions) (int64, error)

	Create(ctx context.Context, in C) (*E, error)

	// Update returns ErrNotFound when the entity does not exist.
	Update(ctx context.Context, id uuid.UUID, in U) (*E, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type (
	CountryUsecase       = CRUDUsecase[entity.Country, CountryCreate, CountryUpdate]
	RegionUsecase        = CRUDUsecase[entity.Region, RegionCreate, RegionUpdate]
	CityUsecase          = CRUDUsecase[entity.City, CityCreate, CityUpdate]
	RoleUsecase          = CRUDUsecase[entity.Role, RoleCreate, RoleUpdate]
	StoreUsecase         = CRUDUsecase[entity.Store, StoreCreate, StoreUpdate]
	UserUsecase          = CRUDUsecase[entity.User, UserCreate, UserUpdate]
	DeviceUsecase        = CRUDUsecase[entity.Device, DeviceCreate, DeviceUpdate]
	TelevisionUsecase    = CRUDUsecase[entity.Television, TelevisionCreate, TelevisionUpdate]
	PlanUsecase          = CRUDUsecase[entity.Plan, PlanCreate, PlanUpdate]
	PaymentUsecase       = CRUDUsecase[entity.Payment, PaymentCreate, PaymentUpdate]
	ConfigurationUsecase = CRUDUsecase[entity.Configuration, ConfigurationCreate, ConfigurationUpdate]
)
