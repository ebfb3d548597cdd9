package contracts

import (
	"time"
)

// AuditEventType represents the type of event being audited
type AuditEventType string

const (
	// User interactions
	EventTypeUserQuery    AuditEventType = "user_query"
	EventTypeUserFeedback AuditEventType = "user_feedback"

	// AI operations
	EventTypeAIResponse   AuditEventType = "ai_response"
	EventTypeAIEscalation AuditEventType = "ai_escalation"

	// System events
	EventTypeSystemError    AuditEventType = "system_error"
	EventTypeSystemStartup  AuditEventType = "system_startup"
	EventTypeSystemShutdown AuditEventType = "system_shutdown"

	// Governance events
	EventTypePolicyCheck     AuditEventType = "policy_check"
	EventTypePolicyViolation AuditEventType = "policy_violation"
	EventTypeHumanOverride   AuditEventType = "human_override"

	// Data operations
	EventTypeDataAccess AuditEventType = "data_access"
	EventTypeDataExport AuditEventType = "data_export"

	// Authentication
	EventTypeAuthLogin   AuditEventType = "auth_login"
	EventTypeAuthLogout  AuditEventType = "auth_logout"
	EventTypeAuthFailure AuditEventType = "auth_failure"
)

// Valid reports whether t is one of the defined event type tags.
// Matching is exact and case-sensitive.
func (t AuditEventType) Valid() bool {
	switch t {
	case EventTypeUserQuery, EventTypeUserFeedback,
		EventTypeAIResponse, EventTypeAIEscalation,
		EventTypeSystemError, EventTypeSystemStartup, EventTypeSystemShutdown,
		EventTypePolicyCheck, EventTypePolicyViolation, EventTypeHumanOverride,
		EventTypeDataAccess, EventTypeDataExport,
		EventTypeAuthLogin, EventTypeAuthLogout, EventTypeAuthFailure:
		return true
	}
	return false
}

// AuditEvent represents a single audit trail entry captured for
// compliance review.
type AuditEvent struct {
	EventID   string                 `json:"event_id" validate:"required"`
	EventType AuditEventType         `json:"event_type" validate:"required,event_type"`
	Timestamp time.Time              `json:"timestamp"`
	Component string                 `json:"component" validate:"required"`
	Action    string                 `json:"action" validate:"required"`
	UserID    string                 `json:"user_id,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
	Success   bool                   `json:"success"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewAuditEvent constructs an AuditEvent from a field map. The timestamp
// defaults to the configured clock and success defaults to true when the
// corresponding keys are absent. Returns a *ValidationError listing every
// violated field when the map does not satisfy the schema.
func NewAuditEvent(fields map[string]interface{}, opts ...Option) (AuditEvent, error) {
	o := buildOptions(opts)
	fe := make(fieldErrors)

	event := AuditEvent{Success: true}

	event.EventID, _ = decodeString(fields, "event_id", fe)
	if s, ok := decodeString(fields, "event_type", fe); ok {
		event.EventType = AuditEventType(s)
	}
	if ts, ok := decodeTime(fields, "timestamp", fe); ok {
		event.Timestamp = ts
	} else if _, flagged := fe["timestamp"]; !flagged {
		event.Timestamp = o.clock()
	}
	event.Component, _ = decodeString(fields, "component", fe)
	event.Action, _ = decodeString(fields, "action", fe)
	event.UserID, _ = decodeString(fields, "user_id", fe)
	event.SessionID, _ = decodeString(fields, "session_id", fe)
	if b, ok := decodeBool(fields, "success", fe); ok {
		event.Success = b
	}
	event.Details, _ = decodeMap(fields, "details", fe)
	event.Metadata, _ = decodeMap(fields, "metadata", fe)

	if err := validateStruct("audit_event", event, fe); err != nil {
		return AuditEvent{}, err
	}
	return event, nil
}

// Validate checks the record against the schema constraints.
func (e AuditEvent) Validate() error {
	return validateStruct("audit_event", e, make(fieldErrors))
}

// ToMap returns the record as a plain key/value map suitable for JSON
// encoding. Optional fields are omitted when unset; the event type
// serializes to its string tag. The result is the exact inverse of
// NewAuditEvent.
func (e AuditEvent) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"event_id":   e.EventID,
		"event_type": string(e.EventType),
		"timestamp":  e.Timestamp,
		"component":  e.Component,
		"action":     e.Action,
		"success":    e.Success,
	}
	if e.UserID != "" {
		m["user_id"] = e.UserID
	}
	if e.SessionID != "" {
		m["session_id"] = e.SessionID
	}
	if e.Details != nil {
		m["details"] = e.Details
	}
	if e.Metadata != nil {
		m["metadata"] = e.Metadata
	}
	return m
}
