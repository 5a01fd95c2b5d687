package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountCategory groups account types.
type AccountCategory string

const (
	CategoryContact        AccountCategory = "CONTACT"
	CategoryBankAccount    AccountCategory = "BANK_ACCOUNT"
	CategoryMobilePayment  AccountCategory = "MOBILE_PAYMENT"
	CategoryPaymentGateway AccountCategory = "PAYMENT_GATEWAY"
	CategoryPublicProfile  AccountCategory = "PUBLIC_PROFILE"
	CategoryWebhook        AccountCategory = "WEBHOOK"
	CategoryLocation       AccountCategory = "LOCATION"
)

// AccountCategories lists every category in display order.
var AccountCategories = []AccountCategory{
	CategoryContact,
	CategoryBankAccount,
	CategoryMobilePayment,
	CategoryPaymentGateway,
	CategoryPublicProfile,
	CategoryWebhook,
	CategoryLocation,
}

// Form field types understood by the contact form schema.
const (
	FieldTypeString  = "string"
	FieldTypeNumber  = "number"
	FieldTypeBoolean = "boolean"
	FieldTypeSelect  = "select"
)

// FormOption is one choice of a select field.
type FormOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label,omitempty"`
}

// FormField describes one input of a store contact form.
type FormField struct {
	Name     string       `json:"name" validate:"required,max=50"`
	Label    string       `json:"label,omitempty"`
	Type     string       `json:"type" validate:"required,oneof=string number boolean select"`
	Required bool         `json:"required,omitempty"`
	Options  []FormOption `json:"options,omitempty" validate:"omitempty,dive"`
}

// AccountType defines a kind of store contact (WhatsApp, bank account, Yape...) and
// the form its details must satisfy.
type AccountType struct {
	ID              uuid.UUID       `json:"account_type_id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	IconURL         *string         `json:"icon_url"`
	IsInternational bool            `json:"is_international"`
	Category        AccountCategory `json:"category"`
	FormSchema      []FormField     `json:"form_schema"`
	CountryIDs      []uuid.UUID     `json:"country_ids,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Countries []*Country `json:"countries,omitempty"`
}

// StoreContact is a store's public contact or payment channel.
type StoreContact struct {
	ID             uuid.UUID      `json:"store_contact_id"`
	StoreID        uuid.UUID      `json:"store_id"`
	AccountTypeID  uuid.UUID      `json:"account_type_id"`
	ContactDetails map[string]any `json:"contact_details"`
	Description    *string        `json:"description"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Store       *Store       `json:"store,omitempty"`
	AccountType *AccountType `json:"account_type,omitempty"`
}
