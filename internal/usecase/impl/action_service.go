package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "smartpay/internal/delivery/context"
	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
	"smartpay/internal/domain/service"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type actionService struct {
	*CRUDService[entity.Action, usecase.ActionCreate, usecase.ActionUpdate]
	publisher  service.EventPublisher
	pushSender service.DevicePushService
}

// ActionServiceParams holds dependencies for ActionService, injected by Fx.
type ActionServiceParams struct {
	fx.In

	CRUDParams
	ActionRepo repository.Repository[entity.Action]
	Publisher  service.EventPublisher
	PushSender service.DevicePushService `optional:"true"`
}

// NewActionService creates the action service. The push sender is only needed by the
// action worker.
func NewActionService(params ActionServiceParams) usecase.ActionUsecase {
	return &actionService{
		CRUDService: NewCRUDService[entity.Action, usecase.ActionCreate, usecase.ActionUpdate](params.CRUDParams, params.ActionRepo, "Action").
			WithTransitionGuard(actionTransitionGuard),
		publisher:  params.Publisher,
		pushSender: params.PushSender,
	}
}

// Create stores the action and publishes it for delivery. A publish failure marks the
// action failed instead of failing the request.
func (s *actionService) Create(ctx context.Context, in usecase.ActionCreate) (*entity.Action, error) {
	action, err := s.CRUDService.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.publish(ctx, action), nil
}

// Update republishes an action moved from failed back to pending.
func (s *actionService) Update(ctx context.Context, id uuid.UUID, in usecase.ActionUpdate) (*entity.Action, error) {
	retry := in.State.Present() && entity.ActionState(in.State.Value) == entity.ActionPending

	var previous entity.ActionState
	if retry {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		previous = current.State
	}

	action, err := s.CRUDService.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if retry && previous == entity.ActionFailed {
		return s.publish(ctx, action), nil
	}

	return action, nil
}

func (s *actionService) publish(ctx context.Context, action *entity.Action) *entity.Action {
	event := &service.ActionEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ActionID:  action.ID.String(),
		Action:    string(action.Action),
	}
	if action.DeviceID != nil {
		event.DeviceID = action.DeviceID.String()
	}
	if action.TelevisionID != nil {
		event.TelevisionID = action.TelevisionID.String()
	}
	if action.Description != nil {
		event.Description = *action.Description
	}

	err := s.publisher.PublishActionEvent(ctx, event)
	if err == nil {
		return action
	}

	s.log(ctx).Error("Failed to publish action event",
		slog.String("action_id", event.ActionID),
		slog.Any("error", err),
	)

	failed, err := s.setState(ctx, action.ID, entity.ActionFailed)
	if err != nil {
		s.log(ctx).Error("Failed to mark action as failed",
			slog.String("action_id", event.ActionID),
			slog.Any("error", err),
		)

		return action
	}

	return failed
}

func (s *actionService) setState(ctx context.Context, id uuid.UUID, state entity.ActionState) (*entity.Action, error) {
	return s.CRUDService.Update(ctx, id, usecase.ActionUpdate{State: entity.Some(string(state))})
}

// Deliver sends a pending action to the FCM topic of its target. Anything but a
// pending action is acknowledged without sending.
func (s *actionService) Deliver(ctx context.Context, event *service.ActionEvent) error {
	if s.pushSender == nil {
		return errors.New("device push sender is not configured")
	}

	id, err := uuid.Parse(event.ActionID)
	if err != nil {
		return domainerrors.ErrValidation.WithMessagef("Invalid action id %q", event.ActionID)
	}

	action, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	logger := s.log(ctx).With(slog.String("action_id", action.ID.String()))

	if action.State != entity.ActionPending {
		logger.Info("Skipping action that is not pending", slog.String("state", string(action.State)))

		return nil
	}

	kind, targetID, ok := action.Target()
	if !ok {
		if _, err := s.setState(ctx, action.ID, entity.ActionFailed); err != nil {
			return err
		}

		return domainerrors.ErrValidation.WithMessage("Action has no device or television")
	}

	topic := fmt.Sprintf("%s-%s", kind, targetID)
	data := map[string]string{
		"action_id":  action.ID.String(),
		"action":     string(action.Action),
		"request_id": event.RequestID,
	}
	if action.Description != nil {
		data["description"] = *action.Description
	}

	messageID, err := s.pushSender.SendToTopic(ctx, topic, data)
	if err != nil {
		if errors.Is(err, service.ErrPushUnavailable) {
			logger.Warn("Push provider unavailable, delivery will be retried", slog.Any("error", err))

			return err
		}

		logger.Error("Failed to push action", slog.String("topic", topic), slog.Any("error", err))
		if _, err := s.setState(ctx, action.ID, entity.ActionFailed); err != nil {
			return err
		}

		return nil
	}

	if _, err := s.setState(ctx, action.ID, entity.ActionApplied); err != nil {
		return err
	}

	logger.Info("Action pushed", slog.String("topic", topic), slog.String("message_id", messageID))

	return nil
}
