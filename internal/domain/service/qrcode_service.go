package service

import (
	"smartpay/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateEnrolmentQR encodes the provisioning payload of an enrolment as a PNG
	GenerateEnrolmentQR(payload *entity.EnrolmentQRPayload) ([]byte, error)

	// ParseEnrolmentQR parses QR code data back into a provisioning payload
	ParseEnrolmentQR(qrData string) (*entity.EnrolmentQRPayload, error)
}
