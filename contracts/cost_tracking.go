package contracts

import (
	"fmt"
	"time"
)

// CostTracking represents token usage and the computed USD cost of one
// model invocation. EventID references the matching AuditEvent by
// convention; the link is not enforced here, and neither is
// total = input + output. Both are the caller's responsibility.
type CostTracking struct {
	EventID      string    `json:"event_id" validate:"required"`
	Timestamp    time.Time `json:"timestamp"`
	Model        string    `json:"model" validate:"required"`
	InputTokens  int       `json:"input_tokens" validate:"gte=0"`
	OutputTokens int       `json:"output_tokens" validate:"gte=0"`
	TotalTokens  int       `json:"total_tokens" validate:"gte=0"`
	CostUSD      float64   `json:"cost_usd" validate:"gte=0"`
	Component    string    `json:"component,omitempty"`
	SessionID    string    `json:"session_id,omitempty"`
}

// costRequiredNumerics are required fields whose zero value is legitimate,
// so presence has to be checked against the map rather than the struct.
var costRequiredNumerics = []string{"input_tokens", "output_tokens", "total_tokens", "cost_usd"}

// NewCostTracking constructs a CostTracking record from a field map.
// Token counts and cost must be present and non-negative; the timestamp
// defaults to the configured clock.
func NewCostTracking(fields map[string]interface{}, opts ...Option) (CostTracking, error) {
	o := buildOptions(opts)
	fe := make(fieldErrors)

	for _, key := range costRequiredNumerics {
		if v, ok := fields[key]; !ok || v == nil {
			fe.add(key, ReasonMissingRequired, fmt.Sprintf("%s is required", key))
		}
	}

	var record CostTracking
	record.EventID, _ = decodeString(fields, "event_id", fe)
	if ts, ok := decodeTime(fields, "timestamp", fe); ok {
		record.Timestamp = ts
	} else if _, flagged := fe["timestamp"]; !flagged {
		record.Timestamp = o.clock()
	}
	record.Model, _ = decodeString(fields, "model", fe)
	record.InputTokens, _ = decodeInt(fields, "input_tokens", fe)
	record.OutputTokens, _ = decodeInt(fields, "output_tokens", fe)
	record.TotalTokens, _ = decodeInt(fields, "total_tokens", fe)
	record.CostUSD, _ = decodeFloat(fields, "cost_usd", fe)
	record.Component, _ = decodeString(fields, "component", fe)
	record.SessionID, _ = decodeString(fields, "session_id", fe)

	if err := validateStruct("cost_tracking", record, fe); err != nil {
		return CostTracking{}, err
	}
	return record, nil
}

// Validate checks the record against the schema constraints.
func (c CostTracking) Validate() error {
	return validateStruct("cost_tracking", c, make(fieldErrors))
}

// ToMap returns the record as a plain key/value map, the exact inverse of
// NewCostTracking.
func (c CostTracking) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"event_id":      c.EventID,
		"timestamp":     c.Timestamp,
		"model":         c.Model,
		"input_tokens":  c.InputTokens,
		"output_tokens": c.OutputTokens,
		"total_tokens":  c.TotalTokens,
		"cost_usd":      c.CostUSD,
	}
	if c.Component != "" {
		m["component"] = c.Component
	}
	if c.SessionID != "" {
		m["session_id"] = c.SessionID
	}
	return m
}
