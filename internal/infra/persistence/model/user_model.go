package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'user' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey"`
	CityID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RoleID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreID        *uuid.UUID `gorm:"type:uuid;index"`
	DNI            string     `gorm:"column:dni;type:varchar(16);not null;uniqueIndex:uq_user_dni"`
	FirstName      string     `gorm:"type:varchar(40);not null"`
	MiddleName     *string    `gorm:"type:varchar(40)"`
	LastName       string     `gorm:"type:varchar(40);not null"`
	SecondLastName *string    `gorm:"type:varchar(40)"`
	Email          string     `gorm:"type:varchar(80);not null;uniqueIndex:uq_user_email"`
	Username       *string    `gorm:"type:varchar(40);uniqueIndex:uq_user_username"`
	Prefix         string     `gorm:"type:varchar(5);not null"`
	Phone          string     `gorm:"type:varchar(15);not null"`
	Address        string     `gorm:"type:varchar(255);not null"`
	State          string     `gorm:"type:varchar(10);not null;default:Active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	City  *CityModel  `gorm:"belongsTo:City;foreignKey:CityID;references:ID"`
	Role  *RoleModel  `gorm:"belongsTo:Role;foreignKey:RoleID;references:ID"`
	Store *StoreModel `gorm:"belongsTo:Store;foreignKey:StoreID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string { return "user" }

func (UserModel) PrimaryKey() string { return "user_id" }

func (UserModel) DefaultPreloads() []string {
	return []string{"Role", "City.Region.Country", "Store"}
}

func (UserModel) StorePaths() []string { return []string{"store_id"} }

func (m *UserModel) RecordID() uuid.UUID { return m.ID }

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.State == "" {
		m.State = string(entity.StateActive)
	}

	return nil
}

func (m *UserModel) ToEntity() *entity.User {
	e := &entity.User{
		ID:             m.ID,
		CityID:         m.CityID,
		RoleID:         m.RoleID,
		StoreID:        copyUUID(m.StoreID),
		DNI:            m.DNI,
		FirstName:      m.FirstName,
		MiddleName:     m.MiddleName,
		LastName:       m.LastName,
		SecondLastName: m.SecondLastName,
		Email:          m.Email,
		Username:       m.Username,
		Prefix:         m.Prefix,
		Phone:          m.Phone,
		Address:        m.Address,
		State:          entity.ActivityState(m.State),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.City != nil {
		e.City = m.City.ToEntity()
	}
	if m.Role != nil {
		e.Role = m.Role.ToEntity()
	}
	if m.Store != nil {
		e.Store = m.Store.ToEntity()
	}

	return e
}

func (m *UserModel) FromEntity(e *entity.User) {
	*m = UserModel{
		ID:             e.ID,
		CityID:         e.CityID,
		RoleID:         e.RoleID,
		StoreID:        copyUUID(e.StoreID),
		DNI:            e.DNI,
		FirstName:      e.FirstName,
		MiddleName:     e.MiddleName,
		LastName:       e.LastName,
		SecondLastName: e.SecondLastName,
		Email:          e.Email,
		Username:       e.Username,
		Prefix:         e.Prefix,
		Phone:          e.Phone,
		Address:        e.Address,
		State:          string(e.State),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
