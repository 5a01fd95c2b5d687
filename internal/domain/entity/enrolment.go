package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrolment links a customer and the vendor who assisted them. Devices and
// televisions hang off an enrolment.
type Enrolment struct {
	ID        uuid.UUID `json:"enrolment_id"`
	UserID    uuid.UUID `json:"user_id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User   *User `json:"user,omitempty"`
	Vendor *User `json:"vendor,omitempty"`
}

// EnrolmentQRPayload is what a device scans to provision itself.
type EnrolmentQRPayload struct {
	EnrolmentID uuid.UUID `json:"enrolment_id"`
	UserID      uuid.UUID `json:"user_id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Type        string    `json:"type"`
}

// EnrolmentQRType tags provisioning payloads.
const EnrolmentQRType = "enrolment"
