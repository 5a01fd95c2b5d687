package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a financed phone.
type Device struct {
	ID           uuid.UUID     `json:"device_id"`
	EnrolmentID  uuid.UUID     `json:"enrolment_id"`
	Name         string        `json:"name"`
	IMEI         string        `json:"imei"`
	IMEITwo      *string       `json:"imei_two"`
	SerialNumber string        `json:"serial_number"`
	Model        string        `json:"model"`
	Brand        string        `json:"brand"`
	ProductName  string        `json:"product_name"`
	State        ActivityState `json:"state"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Enrolment *Enrolment `json:"enrolment,omitempty"`
}

// Television is a financed smart TV. An enrolment has at most one.
type Television struct {
	ID             uuid.UUID     `json:"television_id"`
	EnrolmentID    uuid.UUID     `json:"enrolment_id"`
	Brand          string        `json:"brand"`
	Model          string        `json:"model"`
	AndroidVersion *int          `json:"android_version"`
	SerialNumber   string        `json:"serial_number"`
	Board          string        `json:"board"`
	Fingerprint    string        `json:"fingerprint"`
	State          ActivityState `json:"state"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Enrolment *Enrolment `json:"enrolment,omitempty"`
}

// Sim is a SIM card inserted in a device slot.
type Sim struct {
	ID        uuid.UUID     `json:"sim_id"`
	DeviceID  uuid.UUID     `json:"device_id"`
	IccID     string        `json:"icc_id"`
	SlotIndex string        `json:"slot_index"`
	Operator  string        `json:"operator"`
	Number    string        `json:"number"`
	State     ActivityState `json:"state"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Device *Device `json:"device,omitempty"`
}

// FactoryResetProtection records the Google account that locks a device after a reset.
type FactoryResetProtection struct {
	ID        uuid.UUID     `json:"factory_reset_protection_id"`
	AccountID string        `json:"account_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	State     ActivityState `json:"state"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
