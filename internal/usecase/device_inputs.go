package usecase

import (
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
)

type EnrolmentCreate struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	VendorID uuid.UUID `json:"vendor_id" validate:"required"`
}

func (in EnrolmentCreate) ToEntity() *entity.Enrolment {
	return &entity.Enrolment{UserID: in.UserID, VendorID: in.VendorID}
}

type EnrolmentUpdate struct {
	UserID   entity.Optional[uuid.UUID] `json:"user_id"`
	VendorID entity.Optional[uuid.UUID] `json:"vendor_id"`
}

func (in EnrolmentUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "user_id", in.UserID)
	set(p, "vendor_id", in.VendorID)

	return p.build()
}

type DeviceCreate struct {
	EnrolmentID  uuid.UUID `json:"enrolment_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=80"`
	IMEI         string    `json:"imei" validate:"required,max=15"`
	IMEITwo      *string   `json:"imei_two" validate:"omitempty,max=15"`
	SerialNumber string    `json:"serial_number" validate:"required,max=20"`
	Model        string    `json:"model" validate:"required,max=40"`
	Brand        string    `json:"brand" validate:"required,max=40"`
	ProductName  string    `json:"product_name" validate:"required,max=40"`
	State        string    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in DeviceCreate) ToEntity() *entity.Device {
	return &entity.Device{
		EnrolmentID:  in.EnrolmentID,
		Name:         in.Name,
		IMEI:         in.IMEI,
		IMEITwo:      in.IMEITwo,
		SerialNumber: in.SerialNumber,
		Model:        in.Model,
		Brand:        in.Brand,
		ProductName:  in.ProductName,
		State:        entity.ActivityState(in.State),
	}
}

type DeviceUpdate struct {
	EnrolmentID  entity.Optional[uuid.UUID] `json:"enrolment_id"`
	Name         entity.Optional[string]    `json:"name" validate:"omitempty,max=80"`
	IMEI         entity.Optional[string]    `json:"imei" validate:"omitempty,max=15"`
	IMEITwo      entity.Optional[string]    `json:"imei_two" validate:"omitempty,max=15"`
	SerialNumber entity.Optional[string]    `json:"serial_number" validate:"omitempty,max=20"`
	Model        entity.Optional[string]    `json:"model" validate:"omitempty,max=40"`
	Brand        entity.Optional[string]    `json:"brand" validate:"omitempty,max=40"`
	ProductName  entity.Optional[string]    `json:"product_name" validate:"omitempty,max=40"`
	State        entity.Optional[string]    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in DeviceUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "enrolment_id", in.EnrolmentID)
	set(p, "name", in.Name)
	set(p, "imei", in.IMEI)
	set(p, "imei_two", in.IMEITwo)
	set(p, "serial_number", in.SerialNumber)
	set(p, "model", in.Model)
	set(p, "brand", in.Brand)
	set(p, "product_name", in.ProductName)
	set(p, "state", in.State)

	return p.build()
}

type TelevisionCreate struct {
	EnrolmentID    uuid.UUID `json:"enrolment_id" validate:"required"`
	Brand          string    `json:"brand" validate:"required,max=50"`
	Model          string    `json:"model" validate:"required,max=100"`
	AndroidVersion *int      `json:"android_version" validate:"omitempty,gte=0"`
	SerialNumber   string    `json:"serial_number" validate:"required,max=100"`
	Board          string    `json:"board" validate:"required,max=50"`
	Fingerprint    string    `json:"fingerprint" validate:"required,max=500"`
	State          string    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in TelevisionCreate) ToEntity() *entity.Television {
	return &entity.Television{
		EnrolmentID:    in.EnrolmentID,
		Brand:          in.Brand,
		Model:          in.Model,
		AndroidVersion: in.AndroidVersion,
		SerialNumber:   in.SerialNumber,
		Board:          in.Board,
		Fingerprint:    in.Fingerprint,
		State:          entity.ActivityState(in.State),
	}
}

type TelevisionUpdate struct {
	EnrolmentID    entity.Optional[uuid.UUID] `json:"enrolment_id"`
	Brand          entity.Optional[string]    `json:"brand" validate:"omitempty,max=50"`
	Model          entity.Optional[string]    `json:"model" validate:"omitempty,max=100"`
	AndroidVersion entity.Optional[int]       `json:"android_version" validate:"omitempty,gte=0"`
	SerialNumber   entity.Optional[string]    `json:"serial_number" validate:"omitempty,max=100"`
	Board          entity.Optional[string]    `json:"board" validate:"omitempty,max=50"`
	Fingerprint    entity.Optional[string]    `json:"fingerprint" validate:"omitempty,max=500"`
	State          entity.Optional[string]    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in TelevisionUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "enrolment_id", in.EnrolmentID)
	set(p, "brand", in.Brand)
	set(p, "model", in.Model)
	set(p, "android_version", in.AndroidVersion)
	set(p, "serial_number", in.SerialNumber)
	set(p, "board", in.Board)
	set(p, "fingerprint", in.Fingerprint)
	set(p, "state", in.State)

	return p.build()
}

type SimCreate struct {
	DeviceID  uuid.UUID `json:"device_id" validate:"required"`
	IccID     string    `json:"icc_id" validate:"required,max=30"`
	SlotIndex string    `json:"slot_index" validate:"required,max=10"`
	Operator  string    `json:"operator" validate:"required,max=50"`
	Number    string    `json:"number" validate:"required,max=20"`
	State     string    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in SimCreate) ToEntity() *entity.Sim {
	return &entity.Sim{
		DeviceID:  in.DeviceID,
		IccID:     in.IccID,
		SlotIndex: in.SlotIndex,
		Operator:  in.Operator,
		Number:    in.Number,
		State:     entity.ActivityState(in.State),
	}
}

type SimUpdate struct {
	DeviceID  entity.Optional[uuid.UUID] `json:"device_id"`
	IccID     entity.Optional[string]    `json:"icc_id" validate:"omitempty,max=30"`
	SlotIndex entity.Optional[string]    `json:"slot_index" validate:"omitempty,max=10"`
	Operator  entity.Optional[string]    `json:"operator" validate:"omitempty,max=50"`
	Number    entity.Optional[string]    `json:"number" validate:"omitempty,max=20"`
	State     entity.Optional[string]    `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in SimUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "device_id", in.DeviceID)
	set(p, "icc_id", in.IccID)
	set(p, "slot_index", in.SlotIndex)
	set(p, "operator", in.Operator)
	set(p, "number", in.Number)
	set(p, "state", in.State)

	return p.build()
}

type FactoryResetProtectionCreate struct {
	AccountID string `json:"account_id" validate:"required,max=40"`
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=80"`
	State     string `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in FactoryResetProtectionCreate) ToEntity() *entity.FactoryResetProtection {
	return &entity.FactoryResetProtection{
		AccountID: in.AccountID,
		Name:      in.Name,
		Email:     in.Email,
		State:     entity.ActivityState(in.State),
	}
}

type FactoryResetProtectionUpdate struct {
	AccountID entity.Optional[string] `json:"account_id" validate:"omitempty,max=40"`
	Name      entity.Optional[string] `json:"name" validate:"omitempty,max=255"`
	Email     entity.Optional[string] `json:"email" validate:"omitempty,email,max=80"`
	State     entity.Optional[string] `json:"state" validate:"omitempty,oneof=Active Inactive"`
}

func (in FactoryResetProtectionUpdate) Patch() repository.Patch {
	p := newPatch()
	set(p, "account_id", in.AccountID)
	set(p, "name", in.Name)
	set(p, "email", in.Email)
	set(p, "state", in.State)

	return p.build()
}
