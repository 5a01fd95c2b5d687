package qrcode

import (
	"encoding/json"
	"testing"

	"smartpay/config"
	"smartpay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayload() *entity.EnrolmentQRPayload {
	return &entity.EnrolmentQRPayload{
		EnrolmentID: uuid.New(),
		UserID:      uuid.New(),
		VendorID:    uuid.New(),
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	assert.NotNil(t, NewFromConfig(&config.Config{}))
	assert.NotNil(t, NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_GenerateEnrolmentQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateEnrolmentQR(newPayload())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_ParseEnrolmentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	payload := newPayload()
	payload.Type = entity.EnrolmentQRType

	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	parsed, err := service.ParseEnrolmentQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, payload, parsed)
}

func TestQRCodeService_ParseEnrolmentQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	wrongType := newPayload()
	wrongType.Type = "subscription"
	wrongTypeJSON, err := json.Marshal(wrongType)
	require.NoError(t, err)

	missingVendor := newPayload()
	missingVendor.Type = entity.EnrolmentQRType
	missingVendor.VendorID = uuid.Nil
	missingVendorJSON, err := json.Marshal(missingVendor)
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"invalid uuid", `{"enrolment_id":"nope","type":"enrolment"}`, "failed to unmarshal QR code data"},
		{"wrong type", string(wrongTypeJSON), "invalid QR code type"},
		{"missing vendor", string(missingVendorJSON), "missing vendor_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseEnrolmentQR(tt.data)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
