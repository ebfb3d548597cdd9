package contracts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 6, 15, 9, 5, 3, 0, time.UTC)
}

// AuditEvent tests

func TestNewAuditEvent(t *testing.T) {
	event, err := NewAuditEvent(map[string]interface{}{
		"event_id":   "EVT_AB12CD34EF56",
		"event_type": "user_query",
		"component":  "SupportFlow",
		"action":     "chat_message",
	}, WithClock(fixedClock))

	require.NoError(t, err)
	assert.Equal(t, "EVT_AB12CD34EF56", event.EventID)
	assert.Equal(t, EventTypeUserQuery, event.EventType)
	assert.Equal(t, "SupportFlow", event.Component)
	assert.Equal(t, "chat_message", event.Action)
	assert.Equal(t, fixedClock(), event.Timestamp)
	assert.True(t, event.Success)
	assert.Empty(t, event.UserID)
	assert.Nil(t, event.Details)
}

func TestNewAuditEvent_AllFields(t *testing.T) {
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	event, err := NewAuditEvent(map[string]interface{}{
		"event_id":   "EVT_000000000001",
		"event_type": "policy_violation",
		"timestamp":  ts,
		"component":  "PolicyEngine",
		"action":     "content_filter",
		"user_id":    "user-42",
		"session_id": "sess-7",
		"success":    false,
		"details":    map[string]interface{}{"rule": "no_pii"},
		"metadata":   map[string]interface{}{"source": "careflow"},
	})

	require.NoError(t, err)
	assert.Equal(t, ts, event.Timestamp)
	assert.Equal(t, "user-42", event.UserID)
	assert.Equal(t, "sess-7", event.SessionID)
	assert.False(t, event.Success)
	assert.Equal(t, "no_pii", event.Details["rule"])
	assert.Equal(t, "careflow", event.Metadata["source"])
}

func TestNewAuditEvent_MissingRequired(t *testing.T) {
	valid := map[string]interface{}{
		"event_id":   "EVT_AB12CD34EF56",
		"event_type": "user_query",
		"component":  "SupportFlow",
		"action":     "chat_message",
	}

	for _, field := range []string{"event_id", "event_type", "component", "action"} {
		t.Run(field, func(t *testing.T) {
			fields := map[string]interface{}{}
			for k, v := range valid {
				if k != field {
					fields[k] = v
				}
			}

			_, err := NewAuditEvent(fields)
			require.Error(t, err)
			require.True(t, IsValidationError(err))
			assert.Equal(t, ReasonMissingRequired, GetValidationFields(err)[field].Reason)
		})
	}
}

func TestNewAuditEvent_InvalidEventType(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
	}{
		{"unknown tag", "bogus_event"},
		{"wrong case", "USER_QUERY"},
		{"whitespace", " user_query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuditEvent(map[string]interface{}{
				"event_id":   "EVT_AB12CD34EF56",
				"event_type": tt.eventType,
				"component":  "SupportFlow",
				"action":     "chat_message",
			})
			require.Error(t, err)
			assert.Equal(t, ReasonWrongType, GetValidationFields(err)["event_type"].Reason)
		})
	}
}

func TestNewAuditEvent_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"numeric component", "component", 42},
		{"string success", "success", "yes"},
		{"string details", "details", "not a map"},
		{"numeric timestamp", "timestamp", 1718442303},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]interface{}{
				"event_id":   "EVT_AB12CD34EF56",
				"event_type": "user_query",
				"component":  "SupportFlow",
				"action":     "chat_message",
			}
			fields[tt.key] = tt.value

			_, err := NewAuditEvent(fields)
			require.Error(t, err)
			assert.Equal(t, ReasonWrongType, GetValidationFields(err)[tt.key].Reason)
		})
	}
}

func TestAuditEvent_RoundTrip(t *testing.T) {
	fields := map[string]interface{}{
		"event_id":   "EVT_AB12CD34EF56",
		"event_type": "data_export",
		"component":  "Reporting",
		"action":     "export_csv",
		"user_id":    "user-42",
		"details":    map[string]interface{}{"rows": 120},
	}

	first, err := NewAuditEvent(fields, WithClock(fixedClock))
	require.NoError(t, err)

	second, err := NewAuditEvent(first.ToMap())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, "data_export", first.ToMap()["event_type"])
}

func TestAuditEvent_JSONMarshaling(t *testing.T) {
	event, err := NewAuditEvent(map[string]interface{}{
		"event_id":   "EVT_AB12CD34EF56",
		"event_type": "auth_login",
		"component":  "Auth",
		"action":     "login",
	}, WithClock(fixedClock))
	require.NoError(t, err)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"event_type":"auth_login"`)
	assert.Contains(t, string(data), `"success":true`)
	assert.NotContains(t, string(data), "user_id")
}

// CostTracking tests

func TestNewCostTracking(t *testing.T) {
	record, err := NewCostTracking(map[string]interface{}{
		"event_id":      "EVT_AB12CD34EF56",
		"model":         "gpt-4o-mini",
		"input_tokens":  1000,
		"output_tokens": 500,
		"total_tokens":  1500,
		"cost_usd":      0.00045,
		"component":     "SupportFlow",
	}, WithClock(fixedClock))

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", record.Model)
	assert.Equal(t, 1000, record.InputTokens)
	assert.Equal(t, 500, record.OutputTokens)
	assert.Equal(t, 1500, record.TotalTokens)
	assert.Equal(t, 0.00045, record.CostUSD)
	assert.Equal(t, fixedClock(), record.Timestamp)
}

func TestNewCostTracking_ZeroIsValid(t *testing.T) {
	record, err := NewCostTracking(map[string]interface{}{
		"event_id":      "EVT_AB12CD34EF56",
		"model":         "gpt-4o-mini",
		"input_tokens":  0,
		"output_tokens": 0,
		"total_tokens":  0,
		"cost_usd":      0.0,
	})

	require.NoError(t, err)
	assert.Zero(t, record.TotalTokens)
	assert.Zero(t, record.CostUSD)
}

func TestNewCostTracking_NegativeValues(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
	}{
		{"input_tokens", -1},
		{"output_tokens", -10},
		{"total_tokens", -1},
		{"cost_usd", -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			fields := map[string]interface{}{
				"event_id":      "EVT_AB12CD34EF56",
				"model":         "gpt-4o-mini",
				"input_tokens":  1,
				"output_tokens": 1,
				"total_tokens":  2,
				"cost_usd":      0.001,
			}
			fields[tt.key] = tt.value

			_, err := NewCostTracking(fields)
			require.Error(t, err)
			require.True(t, IsValidationError(err))
			assert.Equal(t, ReasonOutOfRange, GetValidationFields(err)[tt.key].Reason)
		})
	}
}

func TestNewCostTracking_MissingNumerics(t *testing.T) {
	_, err := NewCostTracking(map[string]interface{}{
		"event_id": "EVT_AB12CD34EF56",
		"model":    "gpt-4o-mini",
	})

	require.Error(t, err)
	fields := GetValidationFields(err)
	for _, key := range []string{"input_tokens", "output_tokens", "total_tokens", "cost_usd"} {
		assert.Equal(t, ReasonMissingRequired, fields[key].Reason, key)
	}
}

func TestNewCostTracking_JSONNumbers(t *testing.T) {
	// encoding/json decodes integers as float64; whole values are accepted,
	// fractional token counts are not.
	record, err := NewCostTracking(map[string]interface{}{
		"event_id":      "EVT_AB12CD34EF56",
		"model":         "gpt-4o",
		"input_tokens":  float64(1000),
		"output_tokens": float64(500),
		"total_tokens":  float64(1500),
		"cost_usd":      float64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, record.TotalTokens)

	_, err = NewCostTracking(map[string]interface{}{
		"event_id":      "EVT_AB12CD34EF56",
		"model":         "gpt-4o",
		"input_tokens":  10.5,
		"output_tokens": 500,
		"total_tokens":  1500,
		"cost_usd":      0.1,
	})
	require.Error(t, err)
	assert.Equal(t, ReasonWrongType, GetValidationFields(err)["input_tokens"].Reason)
}

func TestNewCostTracking_HugeNumbers(t *testing.T) {
	// Whole-valued float64s beyond int range must not convert to a
	// garbage count that slips past the non-negativity check.
	for _, value := range []float64{1e19, -1e19} {
		_, err := NewCostTracking(map[string]interface{}{
			"event_id":      "EVT_AB12CD34EF56",
			"model":         "gpt-4o",
			"input_tokens":  value,
			"output_tokens": 500,
			"total_tokens":  1500,
			"cost_usd":      0.1,
		})
		require.Error(t, err)
		assert.Equal(t, ReasonOutOfRange, GetValidationFields(err)["input_tokens"].Reason)
	}
}

func TestCostTracking_RoundTrip(t *testing.T) {
	first, err := NewCostTracking(map[string]interface{}{
		"event_id":      "EVT_AB12CD34EF56",
		"model":         "gpt-4-turbo",
		"input_tokens":  200,
		"output_tokens": 100,
		"total_tokens":  300,
		"cost_usd":      0.005,
		"session_id":    "sess-7",
	}, WithClock(fixedClock))
	require.NoError(t, err)

	second, err := NewCostTracking(first.ToMap())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// GovernanceLogEntry tests

func TestNewGovernanceLogEntry(t *testing.T) {
	entry, err := NewGovernanceLogEntry(map[string]interface{}{
		"component": "Auth",
		"action":    "User login",
		"details":   "User authenticated via SSO",
	}, WithClock(fixedClock))

	require.NoError(t, err)
	assert.Equal(t, "Auth", entry.Component)
	assert.Equal(t, "User login", entry.Action)
	assert.True(t, entry.Success)
	assert.Equal(t, "User authenticated via SSO", entry.Details)
	assert.Equal(t, fixedClock(), entry.Timestamp)
}

func TestNewGovernanceLogEntry_MissingRequired(t *testing.T) {
	_, err := NewGovernanceLogEntry(map[string]interface{}{
		"component": "Auth",
	})

	require.Error(t, err)
	assert.Equal(t, ReasonMissingRequired, GetValidationFields(err)["action"].Reason)
}

func TestGovernanceLogEntry_RoundTrip(t *testing.T) {
	first, err := NewGovernanceLogEntry(map[string]interface{}{
		"component": "PolicyEngine",
		"action":    "Policy check",
		"success":   false,
		"details":   "Blocked by content policy",
	}, WithClock(fixedClock))
	require.NoError(t, err)

	second, err := NewGovernanceLogEntry(first.ToMap())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
