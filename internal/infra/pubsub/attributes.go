package pubsub

import (
	"smartpay/internal/domain/constants"
	"smartpay/internal/domain/service"
)

// Message attribute keys that let subscriptions filter by target.
const (
	attrActionID     = "action_id"
	attrAction       = "action"
	attrDeviceID     = "device_id"
	attrTelevisionID = "television_id"
)

// actionAttributes builds the message attributes for filtering and tracing.
func actionAttributes(event *service.ActionEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeAction,
		attrActionID:            event.ActionID,
		attrAction:              event.Action,
	}
	if event.DeviceID != "" {
		attributes[attrDeviceID] = event.DeviceID
	}
	if event.TelevisionID != "" {
		attributes[attrTelevisionID] = event.TelevisionID
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
