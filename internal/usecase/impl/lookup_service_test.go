package impl

import (
	"context"
	"testing"

	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	mockRepo "smartpay/internal/mocks/repository"
	mockSvc "smartpay/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimService_ListByDevice(t *testing.T) {
	repo := mockRepo.NewMockRepository[entity.Sim](t)
	svc := NewSimService(newTestCRUDParams(t), repo)
	ctx := context.Background()
	deviceID := uuid.New()

	sims := []*entity.Sim{{ID: uuid.New(), DeviceID: deviceID, Number: "3001"}}
	repo.EXPECT().
		List(ctx, repository.ListOptions{Limit: 1000, Filters: repository.Filters{"device_id": deviceID}}).
		Return(sims, nil)

	got, err := svc.ListByDevice(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, sims, got)
}

func TestSimService_GetByNumber(t *testing.T) {
	ctx := context.Background()
	byNumber := repository.ListOptions{Limit: 1, Filters: repository.Filters{"number": "3001"}}

	t.Run("found", func(t *testing.T) {
		repo := mockRepo.NewMockRepository[entity.Sim](t)
		svc := NewSimService(newTestCRUDParams(t), repo)
		sim := &entity.Sim{ID: uuid.New(), Number: "3001"}

		repo.EXPECT().List(ctx, byNumber).Return([]*entity.Sim{sim}, nil)

		got, err := svc.GetByNumber(ctx, "3001")
		require.NoError(t, err)
		assert.Equal(t, sim, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mockRepo.NewMockRepository[entity.Sim](t)
		svc := NewSimService(newTestCRUDParams(t), repo)

		repo.EXPECT().List(ctx, byNumber).Return(nil, nil)

		_, err := svc.GetByNumber(ctx, "3001")
		require.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Equal(t, "Sim not found", err.Error())
	})
}

func TestFactoryResetProtectionService_GetByAccount(t *testing.T) {
	repo := mockRepo.NewMockRepository[entity.FactoryResetProtection](t)
	svc := NewFactoryResetProtectionService(newTestCRUDParams(t), repo)
	ctx := context.Background()

	repo.EXPECT().
		List(ctx, repository.ListOptions{Limit: 1, Filters: repository.Filters{"account_id": "acc-1"}}).
		Return(nil, nil)

	_, err := svc.GetByAccount(ctx, "acc-1")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, "Factory reset protection not found", err.Error())
}

func TestEnrolmentService_QRCode(t *testing.T) {
	ctx := context.Background()
	enrolment := &entity.Enrolment{ID: uuid.New(), UserID: uuid.New(), VendorID: uuid.New()}

	t.Run("encodes the enrolment", func(t *testing.T) {
		repo := mockRepo.NewMockRepository[entity.Enrolment](t)
		qr := mockSvc.NewMockQRCodeService(t)
		svc := NewEnrolmentService(newTestCRUDParams(t), repo, qr)

		repo.EXPECT().Get(ctx, enrolment.ID).Return(enrolment, nil)
		qr.EXPECT().GenerateEnrolmentQR(&entity.EnrolmentQRPayload{
			EnrolmentID: enrolment.ID,
			UserID:      enrolment.UserID,
			VendorID:    enrolment.VendorID,
		}).Return([]byte("png"), nil)

		png, err := svc.QRCode(ctx, enrolment.ID)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown enrolment", func(t *testing.T) {
		repo := mockRepo.NewMockRepository[entity.Enrolment](t)
		svc := NewEnrolmentService(newTestCRUDParams(t), repo, mockSvc.NewMockQRCodeService(t))

		repo.EXPECT().Get(ctx, enrolment.ID).Return(nil, nil)

		_, err := svc.QRCode(ctx, enrolment.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
