// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through config.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Attribute keys set on published messages.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// EventTypeAction marks action dispatch messages.
const EventTypeAction = "action"
