package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionModel mirrors the 'action' table.
type ActionModel struct {
	ID           uuid.UUID  `gorm:"column:action_id;type:uuid;primaryKey"`
	DeviceID     *uuid.UUID `gorm:"type:uuid;index"`
	TelevisionID *uuid.UUID `gorm:"type:uuid;index"`
	AppliedByID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action       string     `gorm:"type:varchar(20);not null"`
	State        string     `gorm:"type:varchar(10);not null;default:pending"`
	Description  *string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Device     *DeviceModel     `gorm:"belongsTo:Device;foreignKey:DeviceID;references:ID;constraint:OnDelete:RESTRICT"`
	Television *TelevisionModel `gorm:"belongsTo:Television;foreignKey:TelevisionID;references:ID;constraint:OnDelete:RESTRICT"`
	AppliedBy  *UserModel       `gorm:"belongsTo:AppliedBy;foreignKey:AppliedByID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ActionModel) TableName() string { return "action" }

func (ActionModel) PrimaryKey() string { return "action_id" }

func (ActionModel) DefaultPreloads() []string {
	return []string{"Device", "Television", "AppliedBy"}
}

func (ActionModel) StorePaths() []string {
	return []string{
		"device__enrolment__user__store_id",
		"device__enrolment__vendor__store_id",
		"television__enrolment__user__store_id",
		"television__enrolment__vendor__store_id",
	}
}

func (m *ActionModel) RecordID() uuid.UUID { return m.ID }

func (m *ActionModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.ActionPending)
	}

	return nil
}

func (m *ActionModel) ToEntity() *entity.Action {
	e := &entity.Action{
		ID:           m.ID,
		DeviceID:     copyUUID(m.DeviceID),
		TelevisionID: copyUUID(m.TelevisionID),
		AppliedByID:  m.AppliedByID,
		Action:       entity.ActionType(m.Action),
		State:        entity.ActionState(m.State),
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Device != nil {
		e.Device = m.Device.ToEntity()
	}
	if m.Television != nil {
		e.Television = m.Television.ToEntity()
	}
	if m.AppliedBy != nil {
		e.AppliedBy = m.AppliedBy.ToEntity()
	}

	return e
}

func (m *ActionModel) FromEntity(e *entity.Action) {
	*m = ActionModel{
		ID:           e.ID,
		DeviceID:     copyUUID(e.DeviceID),
		TelevisionID: copyUUID(e.TelevisionID),
		AppliedByID:  e.AppliedByID,
		Action:       string(e.Action),
		State:        string(e.State),
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
