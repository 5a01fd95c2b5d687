package usecase

import (
	"time"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type PlanCreate struct {
	UserID       uuid.UUID  `json:"user_id" validate:"required"`
	VendorID     uuid.UUID  `json:"vendor_id" validate:"required"`
	DeviceID     *uuid.UUID `json:"device_id"`
	TelevisionID *uuid.UUID `json:"television_id"`
	InitialDate  time.Time  `json:"initial_date" validate:"required"`
	Quotas       int        `json:"quotas" validate:"required,gt=0"`
	Period       *int       `json:"period" validate:"omitempty,gt=0"`
	Value        float64    `json:"value" validate:"gte=0"`
	Contract     string     `json:"contract" validate:"required,max=80"`
}

func (in PlanCreate) ToEntity() *entity.Plan {
	return &entity.Plan{
		UserID:       in.UserID,
		VendorID:     in.VendorID,
		DeviceID:     in.DeviceID,
		TelevisionID: in.TelevisionID,
		InitialDate:  in.InitialDate,
		Quotas:       in.Quotas,
		Period:       in.Period,
		Value:        in.Value,
		Contract:     in.Contract,
	}
}

type PlanUpdate struct {
	UserID       entity.Optional[uuid.UUID] `json:"user_id"`
	VendorID     entity.Optional[uuid.UUID] `json:"vendor_id"`
	DeviceID     entity.Optional[uuid.UUID] `json:"device_id"`
	TelevisionID entity.Optional[uuid.UUID] `json:"television_id"`
	InitialDate  entity.Optional[time.Time] `json:"initial_date"`
	Quotas       entity.Optional[int]       `json:"quotas" validate:"omitempty,gt=0"`
	Period       entity.Optional[int]       `json:"period" validate:"omitempty,gt=0"`
	Value        entity.Optional[float64]   `json:"value" validate:"omitempty,gte=0"`
	Contract     entity.Optional[string]    `json:"contract" validate:"omitempty,max=80"`
}

func (in PlanUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "user_id", in.UserID)
	set(p, "vendor_id", in.VendorID)
	set(p, "device_id", in.DeviceID)
	set(p, "television_id", in.TelevisionID)
	set(p, "initial_date", in.InitialDate)
	set(p, "quotas", in.Quotas)
	set(p, "period", in.Period)
	set(p, "value", in.Value)
	set(p, "contract", in.Contract)

	return p.build()
}

type PaymentCreate struct {
	PlanID       uuid.UUID  `json:"plan_id" validate:"required"`
	DeviceID     *uuid.UUID `json:"device_id"`
	TelevisionID *uuid.UUID `json:"television_id"`
	Value        float64    `json:"value" validate:"gt=0"`
	Method       string     `json:"method" validate:"required,max=20"`
	State        string     `json:"state" validate:"omitempty,oneof=Pending Approved Rejected Failed Returned"`
	Date         time.Time  `json:"date" validate:"required"`
	Reference    string     `json:"reference" validate:"required,max=80"`
}

// ToEntity defaults the state to Pending.
func (in PaymentCreate) ToEntity() *entity.Payment {
	state := entity.PaymentState(in.State)
	if state == "" {
		state = entity.PaymentPending
	}

	return &entity.Payment{
		PlanID:       in.PlanID,
		DeviceID:     in.DeviceID,
		TelevisionID: in.TelevisionID,
		Value:        in.Value,
		Method:       in.Method,
		State:        state,
		Date:         in.Date,
		Reference:    in.Reference,
	}
}

type PaymentUpdate struct {
	PlanID       entity.Optional[uuid.UUID] `json:"plan_id"`
	DeviceID     entity.Optional[uuid.UUID] `json:"device_id"`
	TelevisionID entity.Optional[uuid.UUID] `json:"television_id"`
	Value        entity.Optional[float64]   `json:"value" validate:"omitempty,gt=0"`
	Method       entity.Optional[string]    `json:"method" validate:"omitempty,max=20"`
	State        entity.Optional[string]    `json:"state" validate:"omitempty,oneof=Pending Approved Rejected Failed Returned"`
	Date         entity.Optional[time.Time] `json:"date"`
	Reference    entity.Optional[string]    `json:"reference" validate:"omitempty,max=80"`
}

func (in PaymentUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "plan_id", in.PlanID)
	set(p, "device_id", in.DeviceID)
	set(p, "television_id", in.TelevisionID)
	set(p, "value", in.Value)
	set(p, "method", in.Method)
	set(p, "state", in.State)
	set(p, "date", in.Date)
	set(p, "reference", in.Reference)

	return p.build()
}
