package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel mirrors the 'store' table. Its key column is plain 'id'.
type StoreModel struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(100);not null"`
	CountryID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	AdminID         *uuid.UUID `gorm:"type:uuid;index"`
	AvailableTokens int        `gorm:"not null;default:0"`
	Plan            string     `gorm:"type:varchar(50);not null"`
	BackLink        *string    `gorm:"type:varchar(255)"`
	DBLink          *string    `gorm:"column:db_link;type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Country *CountryModel `gorm:"belongsTo:Country;foreignKey:CountryID;references:ID"`
	Admin   *UserModel    `gorm:"belongsTo:Admin;foreignKey:AdminID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string { return "store" }

func (StoreModel) PrimaryKey() string { return "id" }

func (StoreModel) DefaultPreloads() []string { return []string{"Country", "Admin"} }

func (m *StoreModel) RecordID() uuid.UUID { return m.ID }

func (m *StoreModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *StoreModel) ToEntity() *entity.Store {
	e := &entity.Store{
		ID:              m.ID,
		Name:            m.Name,
		CountryID:       m.CountryID,
		AdminID:         copyUUID(m.AdminID),
		AvailableTokens: m.AvailableTokens,
		Plan:            m.Plan,
		BackLink:        m.BackLink,
		DBLink:          m.DBLink,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Country != nil {
		e.Country = m.Country.ToEntity()
	}
	if m.Admin != nil {
		e.Admin = m.Admin.ToEntity()
	}

	return e
}

func (m *StoreModel) FromEntity(e *entity.Store) {
	*m = StoreModel{
		ID:              e.ID,
		Name:            e.Name,
		CountryID:       e.CountryID,
		AdminID:         copyUUID(e.AdminID),
		AvailableTokens: e.AvailableTokens,
		Plan:            e.Plan,
		BackLink:        e.BackLink,
		DBLink:          e.DBLink,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ConfigurationModel mirrors the 'configuration' table. A key is unique per store,
// and once more among global (store-less) settings.
type ConfigurationModel struct {
	ID          uuid.UUID   `gorm:"column:configuration_id;type:uuid;primaryKey"`
	Key         string      `gorm:"type:varchar(50);not null;uniqueIndex:uq_configuration_key_store,priority:1"`
	Value       string      `gorm:"type:varchar(1000);not null"`
	Description string      `gorm:"type:varchar(255)"`
	StoreID     *uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_configuration_key_store,priority:2"`
	Store       *StoreModel `gorm:"belongsTo:Store;foreignKey:StoreID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ConfigurationModel) TableName() string { return "configuration" }

func (ConfigurationModel) PrimaryKey() string { return "configuration_id" }

func (ConfigurationModel) DefaultPreloads() []string { return []string{"Store"} }

func (ConfigurationModel) StorePaths() []string { return []string{"store_id"} }

func (m *ConfigurationModel) RecordID() uuid.UUID { return m.ID }

func (m *ConfigurationModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *ConfigurationModel) ToEntity() *entity.Configuration {
	e := &entity.Configuration{
		ID:          m.ID,
		Key:         m.Key,
		Value:       m.Value,
		Description: m.Description,
		StoreID:     copyUUID(m.StoreID),
	}
	if m.Store != nil {
		e.Store = m.Store.ToEntity()
	}

	return e
}

func (m *ConfigurationModel) FromEntity(e *entity.Configuration) {
	*m = ConfigurationModel{
		ID:          e.ID,
		Key:         e.Key,
		Value:       e.Value,
		Description: e.Description,
		StoreID:     copyUUID(e.StoreID),
	}
}
