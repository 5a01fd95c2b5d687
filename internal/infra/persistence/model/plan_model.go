package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanModel mirrors the 'plan' table.
type PlanModel struct {
	ID           uuid.UUID  `gorm:"column:plan_id;type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	VendorID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceID     *uuid.UUID `gorm:"type:uuid;index"`
	TelevisionID *uuid.UUID `gorm:"type:uuid;index"`
	InitialDate  time.Time  `gorm:"type:date;not null"`
	Quotas       int        `gorm:"not null"`
	Period       *int
	Value        float64 `gorm:"type:numeric(12,2);not null"`
	Contract     string  `gorm:"type:varchar(80);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User       *UserModel       `gorm:"belongsTo:User;foreignKey:UserID;references:ID"`
	Vendor     *UserModel       `gorm:"belongsTo:Vendor;foreignKey:VendorID;references:ID"`
	Device     *DeviceModel     `gorm:"belongsTo:Device;foreignKey:DeviceID;references:ID"`
	Television *TelevisionModel `gorm:"belongsTo:Television;foreignKey:TelevisionID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string { return "plan" }

func (PlanModel) PrimaryKey() string { return "plan_id" }

func (PlanModel) DefaultPreloads() []string {
	return []string{"User", "Vendor", "Device", "Television"}
}

func (PlanModel) StorePaths() []string {
	return []string{"user__store_id", "vendor__store_id"}
}

func (m *PlanModel) RecordID() uuid.UUID { return m.ID }

func (m *PlanModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *PlanModel) ToEntity() *entity.Plan {
	e := &entity.Plan{
		ID:           m.ID,
		UserID:       m.UserID,
		VendorID:     m.VendorID,
		DeviceID:     copyUUID(m.DeviceID),
		TelevisionID: copyUUID(m.TelevisionID),
		InitialDate:  m.InitialDate,
		Quotas:       m.Quotas,
		Period:       m.Period,
		Value:        m.Value,
		Contract:     m.Contract,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.User != nil {
		e.User = m.User.ToEntity()
	}
	if m.Vendor != nil {
		e.Vendor = m.Vendor.ToEntity()
	}
	if m.Device != nil {
		e.Device = m.Device.ToEntity()
	}
	if m.Television != nil {
		e.Television = m.Television.ToEntity()
	}

	return e
}

func (m *PlanModel) FromEntity(e *entity.Plan) {
	*m = PlanModel{
		ID:           e.ID,
		UserID:       e.UserID,
		VendorID:     e.VendorID,
		DeviceID:     copyUUID(e.DeviceID),
		TelevisionID: copyUUID(e.TelevisionID),
		InitialDate:  e.InitialDate,
		Quotas:       e.Quotas,
		Period:       e.Period,
		Value:        e.Value,
		Contract:     e.Contract,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// PaymentModel mirrors the 'payment' table.
type PaymentModel struct {
	ID           uuid.UUID  `gorm:"column:payment_id;type:uuid;primaryKey"`
	PlanID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceID     *uuid.UUID `gorm:"type:uuid;index"`
	TelevisionID *uuid.UUID `gorm:"type:uuid;index"`
	Value        float64    `gorm:"type:numeric(12,2);not null"`
	Method       string     `gorm:"type:varchar(20);not null"`
	State        string     `gorm:"type:varchar(10);not null"`
	Date         time.Time  `gorm:"not null;index"`
	Reference    string     `gorm:"type:varchar(80);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Plan       *PlanModel       `gorm:"belongsTo:Plan;foreignKey:PlanID;references:ID"`
	Device     *DeviceModel     `gorm:"belongsTo:Device;foreignKey:DeviceID;references:ID"`
	Television *TelevisionModel `gorm:"belongsTo:Television;foreignKey:TelevisionID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string { return "payment" }

func (PaymentModel) PrimaryKey() string { return "payment_id" }

func (PaymentModel) DefaultPreloads() []string { return []string{"Plan"} }

func (PaymentModel) StorePaths() []string {
	return []string{"plan__user__store_id", "plan__vendor__store_id"}
}

func (m *PaymentModel) RecordID() uuid.UUID { return m.ID }

func (m *PaymentModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.PaymentPending)
	}

	return nil
}

func (m *PaymentModel) ToEntity() *entity.Payment {
	e := &entity.Payment{
		ID:           m.ID,
		PlanID:       m.PlanID,
		DeviceID:     copyUUID(m.DeviceID),
		TelevisionID: copyUUID(m.TelevisionID),
		Value:        m.Value,
		Method:       m.Method,
		State:        entity.PaymentState(m.State),
		Date:         m.Date,
		Reference:    m.Reference,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Plan != nil {
		e.Plan = m.Plan.ToEntity()
	}

	return e
}

func (m *PaymentModel) FromEntity(e *entity.Payment) {
	*m = PaymentModel{
		ID:           e.ID,
		PlanID:       e.PlanID,
		DeviceID:     copyUUID(e.DeviceID),
		TelevisionID: copyUUID(e.TelevisionID),
		Value:        e.Value,
		Method:       e.Method,
		State:        string(e.State),
		Date:         e.Date,
		Reference:    e.Reference,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
