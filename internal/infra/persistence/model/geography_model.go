package model

import (
	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CountryModel mirrors the 'country' table.
type CountryModel struct {
	ID     uuid.UUID `gorm:"column:country_id;type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_country_name"`
	Code   string    `gorm:"type:varchar(3);not null;uniqueIndex:uq_country_code"`
	Prefix string    `gorm:"type:varchar(5)"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string { return "country" }

func (CountryModel) PrimaryKey() string { return "country_id" }

func (m *CountryModel) RecordID() uuid.UUID { return m.ID }

func (m *CountryModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *CountryModel) ToEntity() *entity.Country {
	return &entity.Country{ID: m.ID, Name: m.Name, Code: m.Code, Prefix: m.Prefix}
}

func (m *CountryModel) FromEntity(e *entity.Country) {
	*m = CountryModel{ID: e.ID, Name: e.Name, Code: e.Code, Prefix: e.Prefix}
}

// RegionModel mirrors the 'region' table.
type RegionModel struct {
	ID        uuid.UUID     `gorm:"column:region_id;type:uuid;primaryKey"`
	Name      string        `gorm:"type:varchar(100);not null"`
	CountryID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Country   *CountryModel `gorm:"belongsTo:Country;foreignKey:CountryID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string { return "region" }

func (RegionModel) PrimaryKey() string { return "region_id" }

func (RegionModel) DefaultPreloads() []string { return []string{"Country"} }

func (m *RegionModel) RecordID() uuid.UUID { return m.ID }

func (m *RegionModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *RegionModel) ToEntity() *entity.Region {
	e := &entity.Region{ID: m.ID, Name: m.Name, CountryID: m.CountryID}
	if m.Country != nil {
		e.Country = m.Country.ToEntity()
	}

	return e
}

func (m *RegionModel) FromEntity(e *entity.Region) {
	*m = RegionModel{ID: e.ID, Name: e.Name, CountryID: e.CountryID}
}

// CityModel mirrors the 'city' table.
type CityModel struct {
	ID       uuid.UUID    `gorm:"column:city_id;type:uuid;primaryKey"`
	Name     string       `gorm:"type:varchar(100);not null"`
	RegionID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Region   *RegionModel `gorm:"belongsTo:Region;foreignKey:RegionID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string { return "city" }

func (CityModel) PrimaryKey() string { return "city_id" }

func (CityModel) DefaultPreloads() []string { return []string{"Region.Country"} }

func (m *CityModel) RecordID() uuid.UUID { return m.ID }

func (m *CityModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *CityModel) ToEntity() *entity.City {
	e := &entity.City{ID: m.ID, Name: m.Name, RegionID: m.RegionID}
	if m.Region != nil {
		e.Region = m.Region.ToEntity()
	}

	return e
}

func (m *CityModel) FromEntity(e *entity.City) {
	*m = CityModel{ID: e.ID, Name: e.Name, RegionID: e.RegionID}
}

// RoleModel mirrors the 'role' table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_name"`
	Description string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string { return "role" }

func (RoleModel) PrimaryKey() string { return "role_id" }

func (m *RoleModel) RecordID() uuid.UUID { return m.ID }

func (m *RoleModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

func (m *RoleModel) ToEntity() *entity.Role {
	return &entity.Role{ID: m.ID, Name: m.Name, Description: m.Description}
}

func (m *RoleModel) FromEntity(e *entity.Role) {
	*m = RoleModel{ID: e.ID, Name: e.Name, Description: e.Description}
}
