package impl

import (
	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"
)

const stateColumn = "state"

// nextState reads the requested state from a patch. Explicit nulls are left to the
// storage not-null check.
func nextState(patch repository.Patch) (string, bool) {
	next, ok := patch[stateColumn].(string)

	return next, ok
}

func paymentTransitionGuard(current *entity.Payment, patch repository.Patch) error {
	next, ok := nextState(patch)
	if !ok {
		return nil
	}
	if !current.State.CanTransitionTo(entity.PaymentState(next)) {
		return domainerrors.ErrValidation.
			WithMessagef("Payment state cannot change from %s to %s", current.State, next)
	}

	return nil
}

func actionTransitionGuard(current *entity.Action, patch repository.Patch) error {
	next, ok := nextState(patch)
	if !ok {
		return nil
	}
	if !current.State.CanTransitionTo(entity.ActionState(next)) {
		return domainerrors.ErrValidation.
			WithMessagef("Action state cannot change from %s to %s", current.State, next)
	}

	return nil
}
