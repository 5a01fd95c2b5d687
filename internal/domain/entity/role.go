package entity

import "github.com/google/uuid"

// Role classifies users (customer, vendor, admin...). Names are free-form and unique.
type Role struct {
	ID          uuid.UUID `json:"role_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
