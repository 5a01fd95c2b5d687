package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store is a point of sale. Users and, through them, enrolments, devices, plans
// and payments are scoped to a store.
type Store struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	CountryID       uuid.UUID  `json:"country_id"`
	AdminID         *uuid.UUID `json:"admin_id"`
	AvailableTokens int        `json:"available_tokens"`
	Plan            string     `json:"plan"`
	BackLink        *string    `json:"back_link"`
	DBLink          *string    `json:"db_link"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Country *Country `json:"country,omitempty"`
	Admin   *User    `json:"admin,omitempty"`
}

// Configuration is a key/value setting, either global (no store) or per store.
type Configuration struct {
	ID          uuid.UUID  `json:"configuration_id"`
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	Description string     `json:"description"`
	StoreID     *uuid.UUID `json:"store_id"`
	Store       *Store     `json:"store,omitempty"`
}
