package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is any person in the system: customers, vendors and store admins. The role
// decides which.
type User struct {
	ID             uuid.UUID     `json:"user_id"`
	CityID         uuid.UUID     `json:"city_id"`
	RoleID         uuid.UUID     `json:"role_id"`
	StoreID        *uuid.UUID    `json:"store_id"`
	DNI            string        `json:"dni"`
	FirstName      string        `json:"first_name"`
	MiddleName     *string       `json:"middle_name"`
	LastName       string        `json:"last_name"`
	SecondLastName *string       `json:"second_last_name"`
	Email          string        `json:"email"`
	Username       *string       `json:"username"`
	Prefix         string        `json:"prefix"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	State          ActivityState `json:"state"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	City  *City  `json:"city,omitempty"`
	Role  *Role  `json:"role,omitempty"`
	Store *Store `json:"store,omitempty"`
}

// FullName joins the non-empty name parts.
func (u *User) FullName() string {
	name := u.FirstName
	if u.MiddleName != nil && *u.MiddleName != "" {
		name += " " + *u.MiddleName
	}
	name += " " + u.LastName
	if u.SecondLastName != nil && *u.SecondLastName != "" {
		name += " " + *u.SecondLastName
	}

	return name
}
