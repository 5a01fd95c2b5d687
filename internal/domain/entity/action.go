package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionType is the remote command sent to a device or television.
type ActionType string

const (
	ActionBlock      ActionType = "block"
	ActionLocate     ActionType = "locate"
	ActionRefresh    ActionType = "refresh"
	ActionNotify     ActionType = "notify"
	ActionUnenroll   ActionType = "unenroll"
	ActionUnblock    ActionType = "unblock"
	ActionException  ActionType = "exception"
	ActionBlockSim   ActionType = "block_sim"
	ActionUnblockSim ActionType = "unblock_sim"
)

// Action is a remote command issued by a user against a device or a television.
type Action struct {
	ID           uuid.UUID   `json:"action_id"`
	DeviceID     *uuid.UUID  `json:"device_id"`
	TelevisionID *uuid.UUID  `json:"television_id"`
	AppliedByID  uuid.UUID   `json:"applied_by_id"`
	Action       ActionType  `json:"action"`
	State        ActionState `json:"state"`
	Description  *string     `json:"description"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Device     *Device     `json:"device,omitempty"`
	Television *Television `json:"television,omitempty"`
	AppliedBy  *User       `json:"applied_by,omitempty"`
}

// Target returns the push topic suffix for the action, e.g. "device-<id>".
func (a *Action) Target() (kind string, id uuid.UUID, ok bool) {
	switch {
	case a.DeviceID != nil:
		return "device", *a.DeviceID, true
	case a.TelevisionID != nil:
		return "television", *a.TelevisionID, true
	default:
		return "", uuid.Nil, false
	}
}
