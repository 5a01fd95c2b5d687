package model

import (
	"time"

	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountTypeModel mirrors the 'account_type' table. Countries are linked through
// 'account_type_country'.
type AccountTypeModel struct {
	ID              uuid.UUID                            `gorm:"column:account_type_id;type:uuid;primaryKey"`
	Name            string                               `gorm:"type:varchar(50);not null;uniqueIndex:uq_account_type_name"`
	Description     *string                              `gorm:"type:text"`
	IconURL         *string                              `gorm:"column:icon_url;type:varchar(255)"`
	IsInternational bool                                 `gorm:"not null;default:false"`
	Category        string                               `gorm:"type:varchar(50);index"`
	FormSchema      datatypes.JSONSlice[entity.FormField] `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Countries []*CountryModel `gorm:"many2many:account_type_country;joinForeignKey:AccountTypeID;joinReferences:CountryID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountTypeModel) TableName() string { return "account_type" }

func (AccountTypeModel) PrimaryKey() string { return "account_type_id" }

func (AccountTypeModel) DefaultPreloads() []string { return []string{"Countries"} }

func (m *AccountTypeModel) RecordID() uuid.UUID { return m.ID }

func (m *AccountTypeModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	if m.FormSchema == nil {
		m.FormSchema = datatypes.JSONSlice[entity.FormField]{}
	}

	return nil
}

// NormalizePatch wraps the form schema so it is stored as JSON.
func (AccountTypeModel) NormalizePatch(patch map[string]any) {
	if fields, ok := patch["form_schema"].([]entity.FormField); ok {
		patch["form_schema"] = datatypes.NewJSONSlice(fields)
	}
	if category, ok := patch["category"].(entity.AccountCategory); ok {
		patch["category"] = string(category)
	}
}

func (m *AccountTypeModel) ToEntity() *entity.AccountType {
	e := &entity.AccountType{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		IconURL:         m.IconURL,
		IsInternational: m.IsInternational,
		Category:        entity.AccountCategory(m.Category),
		FormSchema:      []entity.FormField(m.FormSchema),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Countries != nil {
		e.Countries = lo.Map(m.Countries, func(c *CountryModel, _ int) *entity.Country {
			return c.ToEntity()
		})
		e.CountryIDs = lo.Map(m.Countries, func(c *CountryModel, _ int) uuid.UUID {
			return c.ID
		})
	}

	return e
}

// FromEntity maps scalar columns only. Country links are written by the account
// type repository.
func (m *AccountTypeModel) FromEntity(e *entity.AccountType) {
	*m = AccountTypeModel{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		IconURL:         e.IconURL,
		IsInternational: e.IsInternational,
		Category:        string(e.Category),
		FormSchema:      datatypes.NewJSONSlice(e.FormSchema),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// StoreContactModel mirrors the 'store_contact' table.
type StoreContactModel struct {
	ID             uuid.UUID         `gorm:"column:store_contact_id;type:uuid;primaryKey"`
	StoreID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	AccountTypeID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ContactDetails datatypes.JSONMap `gorm:"not null"`
	Description    *string           `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Store       *StoreModel       `gorm:"belongsTo:Store;foreignKey:StoreID;references:ID"`
	AccountType *AccountTypeModel `gorm:"belongsTo:AccountType;foreignKey:AccountTypeID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreContactModel) TableName() string { return "store_contact" }

func (StoreContactModel) PrimaryKey() string { return "store_contact_id" }

func (StoreContactModel) DefaultPreloads() []string { return []string{"AccountType"} }

func (StoreContactModel) StorePaths() []string { return []string{"store_id"} }

func (m *StoreContactModel) RecordID() uuid.UUID { return m.ID }

func (m *StoreContactModel) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// NormalizePatch wraps contact details so they are stored as JSON.
func (StoreContactModel) NormalizePatch(patch map[string]any) {
	if details, ok := patch["contact_details"].(map[string]any); ok {
		patch["contact_details"] = datatypes.JSONMap(details)
	}
}

func (m *StoreContactModel) ToEntity() *entity.StoreContact {
	e := &entity.StoreContact{
		ID:             m.ID,
		StoreID:        m.StoreID,
		AccountTypeID:  m.AccountTypeID,
		ContactDetails: map[string]any(m.ContactDetails),
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Store != nil {
		e.Store = m.Store.ToEntity()
	}
	if m.AccountType != nil {
		e.AccountType = m.AccountType.ToEntity()
	}

	return e
}

func (m *StoreContactModel) FromEntity(e *entity.StoreContact) {
	*m = StoreContactModel{
		ID:             e.ID,
		StoreID:        e.StoreID,
		AccountTypeID:  e.AccountTypeID,
		ContactDetails: datatypes.JSONMap(e.ContactDetails),
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
