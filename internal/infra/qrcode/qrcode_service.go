package qrcode

import (
	"encoding/json"
	"fmt"

	"smartpay/config"
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateEnrolmentQR generates the provisioning QR code of an enrolment
func (s *qrcodeService) GenerateEnrolmentQR(payload *entity.EnrolmentQRPayload) ([]byte, error) {
	data := *payload
	data.Type = entity.EnrolmentQRType

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseEnrolmentQR parses scanned QR code text back into the provisioning payload
func (s *qrcodeService) ParseEnrolmentQR(qrData string) (*entity.EnrolmentQRPayload, error) {
	var data entity.EnrolmentQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != entity.EnrolmentQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	for name, id := range map[string]uuid.UUID{
		"enrolment_id": data.EnrolmentID,
		"user_id":      data.UserID,
		"vendor_id":    data.VendorID,
	} {
		if id == uuid.Nil {
			return nil, fmt.Errorf("missing %s in QR code data", name)
		}
	}

	return &data, nil
}
