package usecase

import (
	"context"

	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"
	"smartpay/internal/domain/service"

	"github.com/google/uuid"
)

type ActionCreate struct {
	DeviceID     *uuid.UUID `json:"device_id" validate:"required_without=TelevisionID,excluded_with=TelevisionID"`
	TelevisionID *uuid.UUID `json:"television_id" validate:"required_without=DeviceID"`
	AppliedByID  uuid.UUID  `json:"applied_by_id" validate:"required"`
	Action       string     `json:"action" validate:"required,oneof=block locate refresh notify unenroll unblock exception block_sim unblock_sim"`
	Description  *string    `json:"description" validate:"omitempty,max=255"`
}

// ToEntity always starts the action as pending.
func (in ActionCreate) ToEntity() *entity.Action {
	return &entity.Action{
		DeviceID:     in.DeviceID,
		TelevisionID: in.TelevisionID,
		AppliedByID:  in.AppliedByID,
		Action:       entity.ActionType(in.Action),
		State:        entity.ActionPending,
		Description:  in.Description,
	}
}

type ActionUpdate struct {
	State       entity.Optional[string] `json:"state" validate:"omitempty,oneof=pending applied failed"`
	Description entity.Optional[string] `json:"description" validate:"omitempty,max=255"`
}

func (in ActionUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "state", in.State)
	set(p, "description", in.Description)

	return p.build()
}

// ActionUsecase manages remote actions and their delivery to devices.
type ActionUsecase interface {
	CRUDUsecase[entity.Action, ActionCreate, ActionUpdate]

	// Deliver pushes a published action to its device or television topic and records
	// the outcome. It returns an error wrapping service.ErrPushUnavailable when the
	// delivery should be retried.
	Deliver(ctx context.Context, event *service.ActionEvent) error
}
