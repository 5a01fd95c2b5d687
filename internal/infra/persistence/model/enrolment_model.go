package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrolmentModel mirrors the 'enrolment' table.
type EnrolmentModel struct {
	ID        uuid.UUID `gorm:"column:enrolment_id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   *UserModel `gorm:"belongsTo:User;foreignKey:UserID;references:ID"`
	Vendor *UserModel `gorm:"belongsTo:Vendor;foreignKey:VendorID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (EnrolmentModel) TableName() string { return "enrolment" }

func (EnrolmentModel) PrimaryKey() string { return "enrolment_id" }

func (EnrolmentModel) DefaultPreloads() []string { return []string{"User", "Vendor"} }

func (EnrolmentModel) StorePaths() []string {
	return []string{"user__store_id", "vendor__store_id"}
}

func (m *EnrolmentModel) RecordID() uuid.UUID { return m.ID }

func (m *EnrolmentModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *EnrolmentModel) ToEntity() *entity.Enrolment {
	e := &entity.Enrolment{
		ID:        m.ID,
		UserID:    m.UserID,
		VendorID:  m.VendorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.User != nil {
		e.User = m.User.ToEntity()
	}
	if m.Vendor != nil {
		e.Vendor = m.Vendor.ToEntity()
	}

	return e
}

func (m *EnrolmentModel) FromEntity(e *entity.Enrolment) {
	*m = EnrolmentModel{
		ID:        e.ID,
		UserID:    e.UserID,
		VendorID:  e.VendorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
