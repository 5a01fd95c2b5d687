package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel mirrors the 'device' table.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"column:device_id;type:uuid;primaryKey"`
	EnrolmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(80);not null"`
	IMEI         string    `gorm:"column:imei;type:varchar(15);not null;uniqueIndex:uq_device_imei"`
	IMEITwo      *string   `gorm:"column:imei_two;type:varchar(15);uniqueIndex:uq_device_imei_two"`
	SerialNumber string    `gorm:"type:varchar(20);not null"`
	Model        string    `gorm:"type:varchar(40);not null"`
	Brand        string    `gorm:"type:varchar(40);not null"`
	ProductName  string    `gorm:"type:varchar(40);not null"`
	State        string    `gorm:"type:varchar(10);not null;default:Active"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Enrolment *EnrolmentModel `gorm:"belongsTo:Enrolment;foreignKey:EnrolmentID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string { return "device" }

func (DeviceModel) PrimaryKey() string { return "device_id" }

func (DeviceModel) DefaultPreloads() []string { return []string{"Enrolment"} }

func (DeviceModel) StorePaths() []string {
	return []string{"enrolment__user__store_id", "enrolment__vendor__store_id"}
}

func (m *DeviceModel) RecordID() uuid.UUID { return m.ID }

func (m *DeviceModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.StateActive)
	}

	return nil
}

func (m *DeviceModel) ToEntity() *entity.Device {
	e := &entity.Device{
		ID:           m.ID,
		EnrolmentID:  m.EnrolmentID,
		Name:         m.Name,
		IMEI:         m.IMEI,
		IMEITwo:      m.IMEITwo,
		SerialNumber: m.SerialNumber,
		Model:        m.Model,
		Brand:        m.Brand,
		ProductName:  m.ProductName,
		State:        entity.ActivityState(m.State),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Enrolment != nil {
		e.Enrolment = m.Enrolment.ToEntity()
	}

	return e
}

func (m *DeviceModel) FromEntity(e *entity.Device) {
	*m = DeviceModel{
		ID:           e.ID,
		EnrolmentID:  e.EnrolmentID,
		Name:         e.Name,
		IMEI:         e.IMEI,
		IMEITwo:      e.IMEITwo,
		SerialNumber: e.SerialNumber,
		Model:        e.Model,
		Brand:        e.Brand,
		ProductName:  e.ProductName,
		State:        string(e.State),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// TelevisionModel mirrors the 'television' table. An enrolment has at most one television.
type TelevisionModel struct {
	ID             uuid.UUID `gorm:"column:television_id;type:uuid;primaryKey"`
	EnrolmentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_television_enrolment"`
	Brand          string    `gorm:"type:varchar(50);not null"`
	Model          string    `gorm:"type:varchar(100);not null"`
	AndroidVersion *int
	SerialNumber   string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_television_serial_number"`
	Board          string    `gorm:"type:varchar(50);not null"`
	Fingerprint    string    `gorm:"type:varchar(500);not null"`
	State          string    `gorm:"type:varchar(10);not null;default:Active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Enrolment *EnrolmentModel `gorm:"belongsTo:Enrolment;foreignKey:EnrolmentID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (TelevisionModel) TableName() string { return "television" }

func (TelevisionModel) PrimaryKey() string { return "television_id" }

func (TelevisionModel) DefaultPreloads() []string { return []string{"Enrolment"} }

func (TelevisionModel) StorePaths() []string {
	return []string{"enrolment__user__store_id", "enrolment__vendor__store_id"}
}

func (m *TelevisionModel) RecordID() uuid.UUID { return m.ID }

func (m *TelevisionModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.StateActive)
	}

	return nil
}

func (m *TelevisionModel) ToEntity() *entity.Television {
	e := &entity.Television{
		ID:             m.ID,
		EnrolmentID:    m.EnrolmentID,
		Brand:          m.Brand,
		Model:          m.Model,
		AndroidVersion: m.AndroidVersion,
		SerialNumber:   m.SerialNumber,
		Board:          m.Board,
		Fingerprint:    m.Fingerprint,
		State:          entity.ActivityState(m.State),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Enrolment != nil {
		e.Enrolment = m.Enrolment.ToEntity()
	}

	return e
}

func (m *TelevisionModel) FromEntity(e *entity.Television) {
	*m = TelevisionModel{
		ID:             e.ID,
		EnrolmentID:    e.EnrolmentID,
		Brand:          e.Brand,
		Model:          e.Model,
		AndroidVersion: e.AndroidVersion,
		SerialNumber:   e.SerialNumber,
		Board:          e.Board,
		Fingerprint:    e.Fingerprint,
		State:          string(e.State),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// SimModel mirrors the 'sim' table.
type SimModel struct {
	ID        uuid.UUID `gorm:"column:sim_id;type:uuid;primaryKey"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	IccID     string    `gorm:"column:icc_id;type:varchar(30);not null;uniqueIndex:uq_sim_icc_id"`
	SlotIndex string    `gorm:"type:varchar(10);not null"`
	Operator  string    `gorm:"type:varchar(50);not null"`
	Number    string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_sim_number"`
	State     string    `gorm:"type:varchar(10);not null;default:Active"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Device *DeviceModel `gorm:"belongsTo:Device;foreignKey:DeviceID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SimModel) TableName() string { return "sim" }

func (SimModel) PrimaryKey() string { return "sim_id" }

func (SimModel) DefaultPreloads() []string { return []string{"Device"} }

func (SimModel) StorePaths() []string {
	return []string{"device__enrolment__user__store_id", "device__enrolment__vendor__store_id"}
}

func (m *SimModel) RecordID() uuid.UUID { return m.ID }

func (m *SimModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.StateActive)
	}

	return nil
}

func (m *SimModel) ToEntity() *entity.Sim {
	e := &entity.Sim{
		ID:        m.ID,
		DeviceID:  m.DeviceID,
		IccID:     m.IccID,
		SlotIndex: m.SlotIndex,
		Operator:  m.Operator,
		Number:    m.Number,
		State:     entity.ActivityState(m.State),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Device != nil {
		e.Device = m.Device.ToEntity()
	}

	return e
}

func (m *SimModel) FromEntity(e *entity.Sim) {
	*m = SimModel{
		ID:        e.ID,
		DeviceID:  e.DeviceID,
		IccID:     e.IccID,
		SlotIndex: e.SlotIndex,
		Operator:  e.Operator,
		Number:    e.Number,
		State:     string(e.State),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FactoryResetProtectionModel mirrors the 'factory_reset_protection' table.
type FactoryResetProtectionModel struct {
	ID        uuid.UUID `gorm:"column:factory_reset_protection_id;type:uuid;primaryKey"`
	AccountID string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_frp_account_id"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(80);not null"`
	State     string    `gorm:"type:varchar(10);not null;default:Active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FactoryResetProtectionModel) TableName() string { return "factory_reset_protection" }

func (FactoryResetProtectionModel) PrimaryKey() string { return "factory_reset_protection_id" }

func (m *FactoryResetProtectionModel) RecordID() uuid.UUID { return m.ID }

func (m *FactoryResetProtectionModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.StateActive)
	}

	return nil
}

func (m *FactoryResetProtectionModel) ToEntity() *entity.FactoryResetProtection {
	return &entity.FactoryResetProtection{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Email:     m.Email,
		State:     entity.ActivityState(m.State),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *FactoryResetProtectionModel) FromEntity(e *entity.FactoryResetProtection) {
	*m = FactoryResetProtectionModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Name:      e.Name,
		Email:     e.Email,
		State:     string(e.State),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
