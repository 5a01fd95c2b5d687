package entity

// ActivityState is the Active/Inactive flag shared by users, devices, televisions,
// sims and factory reset protection records. Any transition is allowed.
type ActivityState string

const (
	StateActive   ActivityState = "Active"
	StateInactive ActivityState = "Inactive"
)

// IsValid checks if the state is a known value.
func (s ActivityState) IsValid() bool {
	return s == StateActive || s == StateInactive
}

// PaymentState is the lifecycle of a payment.
type PaymentState string

const (
	PaymentPending  PaymentState = "Pending"
	PaymentApproved PaymentState = "Approved"
	PaymentRejected PaymentState = "Rejected"
	PaymentFailed   PaymentState = "Failed"
	PaymentReturned PaymentState = "Returned"
)

var paymentTransitions = map[PaymentState][]PaymentState{
	PaymentPending:  {PaymentApproved, PaymentRejected, PaymentFailed},
	PaymentFailed:   {PaymentPending},
	PaymentApproved: {PaymentReturned},
}

// IsValid checks if the state is a known value.
func (s PaymentState) IsValid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected, PaymentFailed, PaymentReturned:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a payment may move from s to next.
// Rejected and Returned are terminal; staying in place is always allowed.
func (s PaymentState) CanTransitionTo(next PaymentState) bool {
	if s == next {
		return true
	}
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ActionState tracks delivery of a remote action to a device.
type ActionState string

const (
	ActionPending ActionState = "pending"
	ActionApplied ActionState = "applied"
	ActionFailed  ActionState = "failed"
)

// IsValid checks if the state is a known value.
func (s ActionState) IsValid() bool {
	switch s {
	case ActionPending, ActionApplied, ActionFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an action may move from s to next.
// A failed action may be retried; an applied one is final.
func (s ActionState) CanTransitionTo(next ActionState) bool {
	if s == next {
		return true
	}
	switch s {
	case ActionPending:
		return next == ActionApplied || next == ActionFailed
	case ActionFailed:
		return next == ActionPending
	default:
		return false
	}
}
