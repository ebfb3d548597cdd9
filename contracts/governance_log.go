package contracts

import (
	"time"
)

// GovernanceLogEntry is a display-oriented projection of a
// governance-relevant event, held per session for the governance panel.
type GovernanceLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Component string    `json:"component" validate:"required"`
	Action    string    `json:"action" validate:"required"`
	Success   bool      `json:"success"`
	Details   string    `json:"details,omitempty"`
}

// NewGovernanceLogEntry constructs a GovernanceLogEntry from a field map.
// Success defaults to true and the timestamp defaults to the configured
// clock.
func NewGovernanceLogEntry(fields map[string]interface{}, opts ...Option) (GovernanceLogEntry, error) {
	o := buildOptions(opts)
	fe := make(fieldErrors)

	entry := GovernanceLogEntry{Success: true}

	if ts, ok := decodeTime(fields, "timestamp", fe); ok {
		entry.Timestamp = ts
	} else if _, flagged := fe["timestamp"]; !flagged {
		entry.Timestamp = o.clock()
	}
	entry.Component, _ = decodeString(fields, "component", fe)
	entry.Action, _ = decodeString(fields, "action", fe)
	if b, ok := decodeBool(fields, "success", fe); ok {
		entry.Success = b
	}
	entry.Details, _ = decodeString(fields, "details", fe)

	if err := validateStruct("governance_log_entry", entry, fe); err != nil {
		return GovernanceLogEntry{}, err
	}
	return entry, nil
}

// Validate checks the entry against the schema constraints.
func (e GovernanceLogEntry) Validate() error {
	return validateStruct("governance_log_entry", e, make(fieldErrors))
}

// ToMap returns the entry as a plain key/value map, the exact inverse of
// NewGovernanceLogEntry.
func (e GovernanceLogEntry) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"timestamp": e.Timestamp,
		"component": e.Component,
		"action":    e.Action,
		"success":   e.Success,
	}
	if e.Details != "" {
		m["details"] = e.Details
	}
	return m
}
