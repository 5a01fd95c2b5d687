package impl

import (
	"context"
	"testing"

	deliverycontext "smartpay/internal/delivery/context"
	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/domain/service"
	mockRepo "smartpay/internal/mocks/repository"
	mockSvc "smartpay/internal/mocks/service"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type actionServiceFixtures struct {
	service    usecase.ActionUsecase
	actionRepo *mockRepo.MockRepository[entity.Action]
	publisher  *mockSvc.MockEventPublisher
	pushSender *mockSvc.MockDevicePushService
}

func createTestActionService(t *testing.T) actionServiceFixtures {
	actionRepo := mockRepo.NewMockRepository[entity.Action](t)
	publisher := mockSvc.NewMockEventPublisher(t)
	pushSender := mockSvc.NewMockDevicePushService(t)

	svc := NewActionService(ActionServiceParams{
		CRUDParams: newTestCRUDParams(t),
		ActionRepo: actionRepo,
		Publisher:  publisher,
		PushSender: pushSender,
	})

	return actionServiceFixtures{
		service:    svc,
		actionRepo: actionRepo,
		publisher:  publisher,
		pushSender: pushSender,
	}
}

func stateIs(state entity.ActionState) any {
	return repository.Patch{"state": string(state)}
}

func TestActionService_CreatePublishesEvent(t *testing.T) {
	fx := createTestActionService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	deviceID := uuid.New()
	stored := &entity.Action{ID: uuid.New(), DeviceID: &deviceID, Action: entity.ActionBlock, State: entity.ActionPending}

	fx.actionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Action) bool {
			return a.State == entity.ActionPending && a.Action == entity.ActionBlock
		})).
		Return(stored, nil)
	fx.publisher.EXPECT().
		PublishActionEvent(ctx, &service.ActionEvent{
			RequestID: "req-7",
			ActionID:  stored.ID.String(),
			Action:    "block",
			DeviceID:  deviceID.String(),
		}).
		Return(nil)

	got, err := fx.service.Create(ctx, usecase.ActionCreate{
		DeviceID:    &deviceID,
		AppliedByID: uuid.New(),
		Action:      "block",
	})
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestActionService_CreateMarksFailedWhenPublishFails(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()

	tvID := uuid.New()
	stored := &entity.Action{ID: uuid.New(), TelevisionID: &tvID, Action: entity.ActionLocate, State: entity.ActionPending}
	failed := *stored
	failed.State = entity.ActionFailed

	fx.actionRepo.EXPECT().Create(ctx, mock.Anything).Return(stored, nil)
	fx.publisher.EXPECT().PublishActionEvent(ctx, mock.Anything).Return(errors.New("topic not found"))
	fx.actionRepo.EXPECT().Get(mock.Anything, stored.ID).Return(stored, nil)
	fx.actionRepo.EXPECT().Update(mock.Anything, stored.ID, stateIs(entity.ActionFailed)).Return(&failed, nil)

	got, err := fx.service.Create(ctx, usecase.ActionCreate{
		TelevisionID: &tvID,
		AppliedByID:  uuid.New(),
		Action:       "locate",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionFailed, got.State)
}

func TestActionService_UpdateRetryRepublishes(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()

	deviceID := uuid.New()
	current := &entity.Action{ID: uuid.New(), DeviceID: &deviceID, Action: entity.ActionBlock, State: entity.ActionFailed}
	pending := *current
	pending.State = entity.ActionPending

	fx.actionRepo.EXPECT().Get(mock.Anything, current.ID).Return(current, nil)
	fx.actionRepo.EXPECT().Update(mock.Anything, current.ID, stateIs(entity.ActionPending)).Return(&pending, nil)
	fx.publisher.EXPECT().
		PublishActionEvent(ctx, mock.MatchedBy(func(e *service.ActionEvent) bool { return e.ActionID == current.ID.String() })).
		Return(nil)

	got, err := fx.service.Update(ctx, current.ID, usecase.ActionUpdate{State: entity.Some("pending")})
	require.NoError(t, err)
	assert.Equal(t, entity.ActionPending, got.State)
}

func TestActionService_UpdateRejectsAppliedRollback(t *testing.T) {
	fx := createTestActionService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.actionRepo.EXPECT().Get(mock.Anything, id).Return(&entity.Action{ID: id, State: entity.ActionApplied}, nil)

	_, err := fx.service.Update(ctx, id, usecase.ActionUpdate{State: entity.Some("pending")})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestActionService_Deliver(t *testing.T) {
	deviceID := uuid.New()
	pendingAction := func() *entity.Action {
		description := "overdue"

		return &entity.Action{
			ID:          uuid.New(),
			DeviceID:    &deviceID,
			Action:      entity.ActionBlock,
			State:       entity.ActionPending,
			Description: &description,
		}
	}

	t.Run("pushes and marks applied", func(t *testing.T) {
		fx := createTestActionService(t)
		ctx := context.Background()
		action := pendingAction()

		fx.actionRepo.EXPECT().Get(mock.Anything, action.ID).Return(action, nil)
		fx.pushSender.EXPECT().
			SendToTopic(ctx, "device-"+deviceID.String(), map[string]string{
				"action_id":   action.ID.String(),
				"action":      "block",
				"request_id":  "req-1",
				"description": "overdue",
			}).
			Return("projects/x/messages/1", nil)
		fx.actionRepo.EXPECT().Update(mock.Anything, action.ID, stateIs(entity.ActionApplied)).Return(action, nil)

		err := fx.service.Deliver(ctx, &service.ActionEvent{RequestID: "req-1", ActionID: action.ID.String()})
		require.NoError(t, err)
	})

	t.Run("retryable push failure leaves the action pending", func(t *testing.T) {
		fx := createTestActionService(t)
		ctx := context.Background()
		action := pendingAction()

		fx.actionRepo.EXPECT().Get(mock.Anything, action.ID).Return(action, nil)
		fx.pushSender.EXPECT().SendToTopic(ctx, mock.Anything, mock.Anything).
			Return("", errors.Wrap(service.ErrPushUnavailable, "fcm"))

		err := fx.service.Deliver(ctx, &service.ActionEvent{ActionID: action.ID.String()})
		assert.ErrorIs(t, err, service.ErrPushUnavailable)
	})

	t.Run("permanent push failure marks failed", func(t *testing.T) {
		fx := createTestActionService(t)
		ctx := context.Background()
		action := pendingAction()

		fx.actionRepo.EXPECT().Get(mock.Anything, action.ID).Return(action, nil)
		fx.pushSender.EXPECT().SendToTopic(ctx, mock.Anything, mock.Anything).
			Return("", errors.New("invalid topic"))
		fx.actionRepo.EXPECT().Update(mock.Anything, action.ID, stateIs(entity.ActionFailed)).Return(action, nil)

		err := fx.service.Deliver(ctx, &service.ActionEvent{ActionID: action.ID.String()})
		require.NoError(t, err)
	})

	t.Run("non-pending actions are skipped", func(t *testing.T) {
		fx := createTestActionService(t)
		ctx := context.Background()
		action := pendingAction()
		action.State = entity.ActionApplied

		fx.actionRepo.EXPECT().Get(mock.Anything, action.ID).Return(action, nil)

		err := fx.service.Deliver(ctx, &service.ActionEvent{ActionID: action.ID.String()})
		require.NoError(t, err)
	})

	t.Run("malformed action id", func(t *testing.T) {
		fx := createTestActionService(t)

		err := fx.service.Deliver(context.Background(), &service.ActionEvent{ActionID: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("deleted action", func(t *testing.T) {
		fx := createTestActionService(t)
		id := uuid.New()

		fx.actionRepo.EXPECT().Get(mock.Anything, id).Return(nil, nil)

		err := fx.service.Deliver(context.Background(), &service.ActionEvent{ActionID: id.String()})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
