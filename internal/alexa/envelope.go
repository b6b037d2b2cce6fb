// Package alexa binds the incoming voice-platform event into typed request
// objects. It is a data-binding layer only: no dialogue logic lives here.
package alexa

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SupportedSchemaVersion is the only request schema version this service
// accepts.
const SupportedSchemaVersion = "1.0"

// RequestType names the kind of turn the platform sent.
type RequestType string

// The standard request types.
const (
	RequestTypeLaunch       RequestType = "LaunchRequest"
	RequestTypeIntent       RequestType = "IntentRequest"
	RequestTypeSessionEnded RequestType = "SessionEndedRequest"
)

// Static errors.
var (
	// ErrUnsupportedVersion indicates an event with an unknown schema version.
	ErrUnsupportedVersion = errors.New("unsupported request schema version")
	// ErrUnknownRequestType indicates an event of a type this service does not handle.
	ErrUnknownRequestType = errors.New("unknown request type")
	// ErrMissingIntent indicates an IntentRequest without an intent object.
	ErrMissingIntent = errors.New("intent request without intent")
	// ErrWrongApplication indicates the event was addressed to a different skill.
	ErrWrongApplication = errors.New("event addressed to a different application")
)

// Application identifies the skill the event was addressed to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the account that made the request.
type User struct {
	UserID string `json:"userId"`
}

// Session is the conversational session the turn belongs to. Attributes are
// the key/value state round-tripped through the platform between turns.
type Session struct {
	New         bool              `json:"new"`
	SessionID   string            `json:"sessionId"`
	Attributes  SessionAttributes `json:"attributes"`
	Application Application       `json:"application"`
	User        User              `json:"user"`
}

// Request is the turn itself. Intent is present only for IntentRequest
// events; Reason only for SessionEndedRequest events.
type Request struct {
	Type      RequestType `json:"type"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp"`
	Locale    string      `json:"locale"`
	Intent    *Intent     `json:"intent,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}

// Envelope is the full platform event.
type Envelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session"`
	Request Request  `json:"request"`
}

// ParseEnvelope decodes and validates a platform event.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var envelope Envelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to decode request envelope: %w", err)
	}

	if envelope.Version != SupportedSchemaVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, envelope.Version)
	}

	switch envelope.Request.Type {
	case RequestTypeLaunch, RequestTypeSessionEnded:
	case RequestTypeIntent:
		if envelope.Request.Intent == nil {
			return nil, ErrMissingIntent
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequestType, envelope.Request.Type)
	}

	return &envelope, nil
}

// VerifyApplication checks the event was addressed to this skill. An empty
// expected ID disables the check (local development).
func (e *Envelope) VerifyApplication(applicationID string) error {
	if applicationID == "" || e.Session == nil {
		return nil
	}

	if e.Session.Application.ApplicationID != applicationID {
		return fmt.Errorf("%w: %q", ErrWrongApplication, e.Session.Application.ApplicationID)
	}

	return nil
}

// CarriedAttributes returns the session attributes, tolerating a nil session.
func (e *Envelope) CarriedAttributes() SessionAttributes {
	if e.Session == nil {
		return SessionAttributes{Intents: nil}
	}

	return e.Session.Attributes
}
