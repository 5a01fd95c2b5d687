package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the financing agreement for a device or television.
type Plan struct {
	ID           uuid.UUID  `json:"plan_id"`
	UserID       uuid.UUID  `json:"user_id"`
	VendorID     uuid.UUID  `json:"vendor_id"`
	DeviceID     *uuid.UUID `json:"device_id"`
	TelevisionID *uuid.UUID `json:"television_id"`
	InitialDate  time.Time  `json:"initial_date"`
	Quotas       int        `json:"quotas"`
	Period       *int       `json:"period"` // days between quotas
	Value        float64    `json:"value"`
	Contract     string     `json:"contract"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	User       *User       `json:"user,omitempty"`
	Vendor     *User       `json:"vendor,omitempty"`
	Device     *Device     `json:"device,omitempty"`
	Television *Television `json:"television,omitempty"`
}

// Payment is one installment against a plan.
type Payment struct {
	ID           uuid.UUID    `json:"payment_id"`
	PlanID       uuid.UUID    `json:"plan_id"`
	DeviceID     *uuid.UUID   `json:"device_id"`
	TelevisionID *uuid.UUID   `json:"television_id"`
	Value        float64      `json:"value"`
	Method       string       `json:"method"`
	State        PaymentState `json:"state"`
	Date         time.Time    `json:"date"`
	Reference    string       `json:"reference"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Plan *Plan `json:"plan,omitempty"`
}
